package provision

import (
	"context"
	"fmt"

	"github.com/summitops/lab337-admin/gdrive"
	"github.com/summitops/lab337-admin/spacecat"
)

// EnsureFolder finds or creates the Drive folder with the given name under
// the lab root, returning its ID.  Calling it twice in a row returns the same
// ID and creates at most one folder; it is NOT safe against a concurrent
// caller racing the check-then-create.
func (p *Provisioner) EnsureFolder(ctx context.Context, name string) (string, error) {
	id, err := p.Drive.FindFolder(ctx, name)
	if err != nil {
		return "", fmt.Errorf("provision: couldn't look up folder %q: %w", name, err)
	}
	if id != "" {
		return id, nil
	}

	id, err = p.Drive.CreateFolder(ctx, name)
	if err != nil {
		return "", fmt.Errorf("provision: couldn't create folder %q: %w", name, err)
	}

	p.logf("created folder %q (%s)", name, id)
	return id, nil
}

// ReconcileContentSource makes a site's content source point at the given
// Drive folder.  If the site is already configured correctly this is a no-op
// with no outbound write; otherwise the config is set or overwritten.  There
// is no versioning, so a concurrent external update between our fetch and
// patch gets silently clobbered.
func (p *Provisioner) ReconcileContentSource(ctx context.Context, siteID, folderID string) (changed bool, err error) {
	site, err := p.Backoffice.Site(ctx, siteID)
	if err != nil {
		return false, fmt.Errorf("provision: couldn't fetch site %s: %w", siteID, err)
	}

	desired := spacecat.ContentSource{
		Type: spacecat.GoogleDriveSourceType,
		URL:  gdrive.FolderURL(folderID),
	}

	if site.ContentSource() == desired {
		return false, nil
	}

	if _, err := p.Backoffice.UpdateContentSource(ctx, siteID, desired); err != nil {
		return false, fmt.Errorf("provision: couldn't update content source of site %s: %w", siteID, err)
	}

	p.logf("site %s content source now points at folder %s", siteID, folderID)
	return true, nil
}

// CloneDoc copies a source document into a destination folder.  If a file of
// the same name already exists there, override decides: false returns the
// existing file's ID untouched, true deletes it first and copies fresh.
// There is no backup of the deleted file.  copied reports whether a new file
// was actually made.
//
// An empty name means "keep the source document's title".
func (p *Provisioner) CloneDoc(ctx context.Context, sourceID, folderID, name string, override bool) (id string, copied bool, err error) {
	if name == "" {
		if name, err = p.Drive.FileName(ctx, sourceID); err != nil {
			return "", false, fmt.Errorf("provision: couldn't resolve source document name: %w", err)
		}
	}

	existing, err := p.Drive.FindFile(ctx, folderID, name)
	if err != nil {
		return "", false, fmt.Errorf("provision: couldn't look for existing %q in folder %s: %w", name, folderID, err)
	}

	if existing != "" {
		if !override {
			p.logf("document %q already present in folder %s, keeping it", name, folderID)
			return existing, false, nil
		}
		if err := p.Drive.DeleteFile(ctx, existing); err != nil {
			return "", false, fmt.Errorf("provision: couldn't delete existing %q: %w", name, err)
		}
		p.logf("deleted existing document %q (%s)", name, existing)
	}

	id, err = p.Drive.CopyFile(ctx, sourceID, folderID, name)
	if err != nil {
		return "", false, fmt.Errorf("provision: couldn't copy document %s into folder %s: %w", sourceID, folderID, err)
	}

	p.logf("copied document %s into folder %s as %q (%s)", sourceID, folderID, name, id)
	return id, true, nil
}
