package gdrive

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
)

// FindFile looks for a non-folder file by name inside the given folder.
// Returns an empty ID when there's no match.
func (c *Client) FindFile(ctx context.Context, folderID, name string) (string, error) {
	q := fmt.Sprintf("name = '%s' and mimeType != '%s' and '%s' in parents and trashed = false",
		escapeQuery(name), folderMimeType, escapeQuery(folderID))

	list, err := c.service.Files.List().
		Q(q).
		Spaces("drive").
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("gdrive: couldn't list files named %q: %w", name, err)
	}

	if len(list.Files) == 0 {
		return "", nil
	}

	return list.Files[0].Id, nil
}

// FileName fetches the display name of a file.  Used to preserve the source
// document's title when copying without an explicit new name.
func (c *Client) FileName(ctx context.Context, fileID string) (string, error) {
	file, err := c.service.Files.Get(fileID).Fields("name").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gdrive: couldn't get file %s: %w", fileID, err)
	}

	return file.Name, nil
}

// CopyFile copies a document into the given folder under the given name and
// returns the new file's ID.
func (c *Client) CopyFile(ctx context.Context, sourceID, folderID, name string) (string, error) {
	copied, err := c.service.Files.Copy(sourceID, &drive.File{
		Name:    name,
		Parents: []string{folderID},
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gdrive: couldn't copy file %s into folder %s: %w", sourceID, folderID, err)
	}

	return copied.Id, nil
}

// DeleteFile permanently removes a file.  No trash, no backup - callers gate
// this behind the override flag.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	if err := c.service.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gdrive: couldn't delete file %s: %w", fileID, err)
	}

	return nil
}
