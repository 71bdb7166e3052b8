package gdrive

import (
	"fmt"
	"net/url"
	"strings"
)

// DocumentID extracts the file ID from the Google Doc / Drive URL shapes we
// see in the opportunity fixtures:
//
//   https://docs.google.com/document/d/<id>/edit
//   https://drive.google.com/file/d/<id>/view
//   https://drive.google.com/open?id=<id>
func DocumentID(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("gdrive: couldn't parse document URL: %w", err)
	}

	switch {
	case strings.Contains(parsed.Host, "docs.google.com"):
		parts := strings.Split(parsed.Path, "/")
		for i, part := range parts {
			if part == "d" && i+1 < len(parts) && parts[i+1] != "" {
				return parts[i+1], nil
			}
		}

	case strings.Contains(parsed.Host, "drive.google.com"):
		if rest, ok := strings.CutPrefix(parsed.Path, "/file/d/"); ok {
			if id := strings.SplitN(rest, "/", 2)[0]; id != "" {
				return id, nil
			}
		}
		if id := parsed.Query().Get("id"); id != "" {
			return id, nil
		}
	}

	return "", fmt.Errorf("gdrive: could not extract document ID from URL: %s", rawURL)
}

// TargetFolder extracts the per-site folder name (the last path segment) from
// a site base URL.  ok is false for URLs we must not clone into, i.e. the
// _adobe_presenters source folders, or anything without a usable path.
func TargetFolder(baseURL string) (name string, ok bool) {
	// fixtures sometimes carry a stray @ or whitespace
	baseURL = strings.TrimSpace(strings.ReplaceAll(baseURL, "@", ""))

	if strings.Contains(baseURL, "_adobe_presenters") {
		return "", false
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", false
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return "", false
	}

	return parts[len(parts)-1], true
}

// DocURL renders the canonical edit URL for a document ID.
func DocURL(id string) string {
	return fmt.Sprintf("https://docs.google.com/document/d/%s/edit", id)
}

// FolderURL renders the canonical Drive URL for a folder ID.  This is the
// value a site's content source points at.
func FolderURL(id string) string {
	return fmt.Sprintf("https://drive.google.com/drive/folders/%s", id)
}
