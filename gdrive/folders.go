package gdrive

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
)

const folderMimeType = "application/vnd.google-apps.folder"

// FindFolder looks for a folder by name directly under the lab root.
// Returns an empty ID when no such folder exists - absence is not an error.
func (c *Client) FindFolder(ctx context.Context, name string) (string, error) {
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and '%s' in parents and trashed = false",
		escapeQuery(name), folderMimeType, c.root)

	list, err := c.service.Files.List().
		Q(q).
		Spaces("drive").
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("gdrive: couldn't list folders named %q: %w", name, err)
	}

	if len(list.Files) == 0 {
		return "", nil
	}

	// if there's more than one, take the first - the run that created the
	// duplicate already lost the race, nothing we can do about it here.
	return list.Files[0].Id, nil
}

// CreateFolder creates a folder under the lab root and returns its ID.
func (c *Client) CreateFolder(ctx context.Context, name string) (string, error) {
	folder := &drive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{c.root},
	}

	created, err := c.service.Files.Create(folder).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gdrive: couldn't create folder %q: %w", name, err)
	}

	return created.Id, nil
}

// Drive query strings are single-quoted, so quote the quotes.
func escapeQuery(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}
