package provision

import (
	"context"
	"fmt"

	"github.com/summitops/lab337-admin/spacecat"
)

// fakeDrive is an in-memory stand-in for the Drive client.  It counts write
// operations so tests can assert on the exact number of creates and deletes.
type fakeDrive struct {
	folders map[string]string            // name -> id
	files   map[string]map[string]string // folderID -> name -> id
	names   map[string]string            // fileID -> name

	folderCreates int
	copies        int
	deletes       int

	nextID int
}

func newFakeDrive() *fakeDrive {
	return &fakeDrive{
		folders: map[string]string{},
		files:   map[string]map[string]string{},
		names:   map[string]string{},
	}
}

func (d *fakeDrive) id(prefix string) string {
	d.nextID++
	return fmt.Sprintf("%s-%d", prefix, d.nextID)
}

func (d *fakeDrive) addFile(folderID, name string) string {
	id := d.id("file")
	if d.files[folderID] == nil {
		d.files[folderID] = map[string]string{}
	}
	d.files[folderID][name] = id
	d.names[id] = name
	return id
}

func (d *fakeDrive) FindFolder(ctx context.Context, name string) (string, error) {
	return d.folders[name], nil
}

func (d *fakeDrive) CreateFolder(ctx context.Context, name string) (string, error) {
	d.folderCreates++
	id := d.id("folder")
	d.folders[name] = id
	return id, nil
}

func (d *fakeDrive) FindFile(ctx context.Context, folderID, name string) (string, error) {
	return d.files[folderID][name], nil
}

func (d *fakeDrive) FileName(ctx context.Context, fileID string) (string, error) {
	name, ok := d.names[fileID]
	if !ok {
		return "", fmt.Errorf("fake: no such file %s", fileID)
	}
	return name, nil
}

func (d *fakeDrive) CopyFile(ctx context.Context, sourceID, folderID, name string) (string, error) {
	if _, ok := d.names[sourceID]; !ok {
		return "", fmt.Errorf("fake: no such source file %s", sourceID)
	}
	d.copies++
	return d.addFile(folderID, name), nil
}

func (d *fakeDrive) DeleteFile(ctx context.Context, fileID string) error {
	for folderID, files := range d.files {
		for name, id := range files {
			if id == fileID {
				delete(d.files[folderID], name)
				delete(d.names, fileID)
				d.deletes++
				return nil
			}
		}
	}
	return fmt.Errorf("fake: no such file %s", fileID)
}

// fakeBackoffice is an in-memory stand-in for the spacecat API.
type fakeBackoffice struct {
	sites     map[string]*spacecat.Site // id -> site
	byBaseURL map[string]string         // baseURL -> id

	opportunities map[string][]spacecat.Opportunity // siteID -> opportunities
	suggestions   map[string][]spacecat.Suggestion  // opportunityID -> suggestions

	siteCreates int
	patches     int
	opptDeletes int

	nextID int
}

func newFakeBackoffice() *fakeBackoffice {
	return &fakeBackoffice{
		sites:         map[string]*spacecat.Site{},
		byBaseURL:     map[string]string{},
		opportunities: map[string][]spacecat.Opportunity{},
		suggestions:   map[string][]spacecat.Suggestion{},
	}
}

func (b *fakeBackoffice) id(prefix string) string {
	b.nextID++
	return fmt.Sprintf("%s-%d", prefix, b.nextID)
}

func (b *fakeBackoffice) addSite(baseURL string) *spacecat.Site {
	site := &spacecat.Site{ID: b.id("site"), BaseURL: baseURL}
	b.sites[site.ID] = site
	b.byBaseURL[baseURL] = site.ID
	return site
}

func (b *fakeBackoffice) SiteByBaseURL(ctx context.Context, baseURL string) (*spacecat.Site, error) {
	id, ok := b.byBaseURL[baseURL]
	if !ok {
		return nil, fmt.Errorf("fake: %s: %w", baseURL, spacecat.ErrNotFound)
	}
	return b.sites[id], nil
}

func (b *fakeBackoffice) CreateSite(ctx context.Context, site spacecat.NewSite) (*spacecat.Site, error) {
	b.siteCreates++
	created := &spacecat.Site{
		ID:             b.id("site"),
		OrganizationID: site.OrganizationID,
		BaseURL:        site.BaseURL,
		DeliveryType:   site.DeliveryType,
		Name:           site.Name,
	}
	b.sites[created.ID] = created
	b.byBaseURL[created.BaseURL] = created.ID
	return created, nil
}

func (b *fakeBackoffice) Site(ctx context.Context, siteID string) (*spacecat.Site, error) {
	site, ok := b.sites[siteID]
	if !ok {
		return nil, fmt.Errorf("fake: site %s: %w", siteID, spacecat.ErrNotFound)
	}
	return site, nil
}

func (b *fakeBackoffice) UpdateContentSource(ctx context.Context, siteID string, source spacecat.ContentSource) (*spacecat.Site, error) {
	site, ok := b.sites[siteID]
	if !ok {
		return nil, fmt.Errorf("fake: site %s: %w", siteID, spacecat.ErrNotFound)
	}
	b.patches++
	site.HlxConfig = &spacecat.HlxConfig{Content: spacecat.ContentConfig{Source: source}}
	return site, nil
}

func (b *fakeBackoffice) Opportunities(ctx context.Context, siteID string, opts spacecat.ListOpportunitiesQuery) ([]spacecat.Opportunity, error) {
	matching := []spacecat.Opportunity{}
	for _, opportunity := range b.opportunities[siteID] {
		if opts.Type == "" || opportunity.Type == opts.Type {
			matching = append(matching, opportunity)
		}
	}
	return matching, nil
}

func (b *fakeBackoffice) CreateOpportunity(ctx context.Context, siteID string, opportunity spacecat.Opportunity) (*spacecat.Opportunity, error) {
	opportunity.ID = b.id("oppt")
	b.opportunities[siteID] = append(b.opportunities[siteID], opportunity)
	return &opportunity, nil
}

func (b *fakeBackoffice) DeleteOpportunity(ctx context.Context, siteID, opportunityID string) error {
	remaining := []spacecat.Opportunity{}
	found := false
	for _, opportunity := range b.opportunities[siteID] {
		if opportunity.ID == opportunityID {
			found = true
			continue
		}
		remaining = append(remaining, opportunity)
	}
	if !found {
		return fmt.Errorf("fake: opportunity %s: %w", opportunityID, spacecat.ErrNotFound)
	}
	b.opportunities[siteID] = remaining
	b.opptDeletes++
	return nil
}

func (b *fakeBackoffice) CreateSuggestions(ctx context.Context, siteID, opportunityID string, suggestions []spacecat.Suggestion) ([]spacecat.Suggestion, error) {
	b.suggestions[opportunityID] = append(b.suggestions[opportunityID], suggestions...)
	return suggestions, nil
}
