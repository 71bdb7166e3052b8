package provision

import (
	"context"
	"testing"

	"github.com/summitops/lab337-admin/gdrive"
	"github.com/summitops/lab337-admin/spacecat"
)

func TestEnsureFolderCreatesOnce(t *testing.T) {
	drive := newFakeDrive()
	p := &Provisioner{Drive: drive}

	first, err := p.EnsureFolder(context.Background(), "007")
	if err != nil {
		t.Fatalf("Unexpected error from EnsureFolder (%v)", err)
	}
	if first == "" {
		t.Fatalf("EnsureFolder returned empty folder ID")
	}

	second, err := p.EnsureFolder(context.Background(), "007")
	if err != nil {
		t.Fatalf("Unexpected error from repeat EnsureFolder (%v)", err)
	}

	if first != second {
		t.Errorf("EnsureFolder not idempotent\n   expected: %v\n   got:      %v\n", first, second)
	}

	if drive.folderCreates != 1 {
		t.Errorf("Expected exactly 1 folder create, got %d", drive.folderCreates)
	}
}

func TestEnsureFolderFindsExisting(t *testing.T) {
	drive := newFakeDrive()
	drive.folders["042"] = "folder-existing"
	p := &Provisioner{Drive: drive}

	id, err := p.EnsureFolder(context.Background(), "042")
	if err != nil {
		t.Fatalf("Unexpected error from EnsureFolder (%v)", err)
	}

	if id != "folder-existing" {
		t.Errorf("Expected existing folder ID 'folder-existing', got %v", id)
	}

	if drive.folderCreates != 0 {
		t.Errorf("Expected no folder creates, got %d", drive.folderCreates)
	}
}

func TestReconcileContentSourceConverges(t *testing.T) {
	backoffice := newFakeBackoffice()
	site := backoffice.addSite("https://example.com/lab-337/007/")
	p := &Provisioner{Backoffice: backoffice}

	changed, err := p.ReconcileContentSource(context.Background(), site.ID, "folder-7")
	if err != nil {
		t.Fatalf("Unexpected error from ReconcileContentSource (%v)", err)
	}
	if !changed {
		t.Errorf("Expected first reconcile to write the config")
	}

	source := backoffice.sites[site.ID].ContentSource()
	if source.Type != spacecat.GoogleDriveSourceType {
		t.Errorf("Incorrect content source type\n   expected: %v\n   got:      %v\n", spacecat.GoogleDriveSourceType, source.Type)
	}
	if source.URL != gdrive.FolderURL("folder-7") {
		t.Errorf("Incorrect content source URL\n   expected: %v\n   got:      %v\n", gdrive.FolderURL("folder-7"), source.URL)
	}

	changed, err = p.ReconcileContentSource(context.Background(), site.ID, "folder-7")
	if err != nil {
		t.Fatalf("Unexpected error from second ReconcileContentSource (%v)", err)
	}
	if changed {
		t.Errorf("Expected second reconcile to be a no-op")
	}

	if backoffice.patches != 1 {
		t.Errorf("Expected exactly 1 PATCH, got %d", backoffice.patches)
	}
}

func TestReconcileContentSourceCorrectsWrongFolder(t *testing.T) {
	backoffice := newFakeBackoffice()
	site := backoffice.addSite("https://example.com/lab-337/008/")
	site.HlxConfig = &spacecat.HlxConfig{
		Content: spacecat.ContentConfig{
			Source: spacecat.ContentSource{
				Type: spacecat.GoogleDriveSourceType,
				URL:  gdrive.FolderURL("somebody-elses-folder"),
			},
		},
	}

	p := &Provisioner{Backoffice: backoffice}

	changed, err := p.ReconcileContentSource(context.Background(), site.ID, "folder-8")
	if err != nil {
		t.Fatalf("Unexpected error from ReconcileContentSource (%v)", err)
	}

	if !changed {
		t.Errorf("Expected reconcile to overwrite the wrong folder")
	}

	if got := backoffice.sites[site.ID].ContentSource().URL; got != gdrive.FolderURL("folder-8") {
		t.Errorf("Incorrect content source URL\n   expected: %v\n   got:      %v\n", gdrive.FolderURL("folder-8"), got)
	}
}

func TestCloneDocKeepsExistingWithoutOverride(t *testing.T) {
	drive := newFakeDrive()
	source := drive.addFile("templates", "Welcome")
	existing := drive.addFile("folder-7", "Welcome")

	p := &Provisioner{Drive: drive}

	id, copied, err := p.CloneDoc(context.Background(), source, "folder-7", "", false)
	if err != nil {
		t.Fatalf("Unexpected error from CloneDoc (%v)", err)
	}

	if copied {
		t.Errorf("Expected copied=false for existing destination")
	}
	if id != existing {
		t.Errorf("Incorrect document ID\n   expected: %v\n   got:      %v\n", existing, id)
	}
	if drive.deletes != 0 || drive.copies != 0 {
		t.Errorf("Expected no deletes/copies, got %d/%d", drive.deletes, drive.copies)
	}
}

func TestCloneDocOverrideReplacesExisting(t *testing.T) {
	drive := newFakeDrive()
	source := drive.addFile("templates", "Welcome")
	existing := drive.addFile("folder-7", "Welcome")

	p := &Provisioner{Drive: drive}

	id, copied, err := p.CloneDoc(context.Background(), source, "folder-7", "", true)
	if err != nil {
		t.Fatalf("Unexpected error from CloneDoc (%v)", err)
	}

	if !copied {
		t.Errorf("Expected copied=true with override")
	}
	if id == existing {
		t.Errorf("Expected a fresh document ID, got the old one (%v)", id)
	}
	if drive.deletes != 1 {
		t.Errorf("Expected exactly 1 delete, got %d", drive.deletes)
	}
	if drive.copies != 1 {
		t.Errorf("Expected exactly 1 copy, got %d", drive.copies)
	}

	if got := drive.files["folder-7"]["Welcome"]; got != id {
		t.Errorf("Replacement not present under the same name\n   expected: %v\n   got:      %v\n", id, got)
	}
}

func TestCloneDocFreshCopyKeepsSourceTitle(t *testing.T) {
	drive := newFakeDrive()
	source := drive.addFile("templates", "Welcome")

	p := &Provisioner{Drive: drive}

	id, copied, err := p.CloneDoc(context.Background(), source, "folder-7", "", false)
	if err != nil {
		t.Fatalf("Unexpected error from CloneDoc (%v)", err)
	}

	if !copied {
		t.Errorf("Expected copied=true for empty destination")
	}
	if got := drive.files["folder-7"]["Welcome"]; got != id {
		t.Errorf("Clone not stored under the source title\n   expected: %v\n   got:      %v\n", id, got)
	}
}
