// Package provision holds the reusable create-or-fix routines of the lab-337
// run: check-then-create of tenant sites, find-or-create of per-site Drive
// folders, reconciliation of each site's content source, and clone-with-
// overwrite of template documents.  Everything is query-before-create
// idempotence; there is no locking, so correctness relies on one operator
// running one instance at a time.
package provision

import (
	"context"
	"log"

	"github.com/summitops/lab337-admin/spacecat"
)

// Backoffice is the slice of the Sites Optimizer API we depend on.
// *spacecat.API satisfies it.
type Backoffice interface {
	SiteByBaseURL(ctx context.Context, baseURL string) (*spacecat.Site, error)
	CreateSite(ctx context.Context, site spacecat.NewSite) (*spacecat.Site, error)
	Site(ctx context.Context, siteID string) (*spacecat.Site, error)
	UpdateContentSource(ctx context.Context, siteID string, source spacecat.ContentSource) (*spacecat.Site, error)
	Opportunities(ctx context.Context, siteID string, opts spacecat.ListOpportunitiesQuery) ([]spacecat.Opportunity, error)
	CreateOpportunity(ctx context.Context, siteID string, opportunity spacecat.Opportunity) (*spacecat.Opportunity, error)
	DeleteOpportunity(ctx context.Context, siteID, opportunityID string) error
	CreateSuggestions(ctx context.Context, siteID, opportunityID string, suggestions []spacecat.Suggestion) ([]spacecat.Suggestion, error)
}

// Drive is the slice of the Drive API we depend on.  Find* methods return an
// empty ID for "no such thing".  *gdrive.Client satisfies it.
type Drive interface {
	FindFolder(ctx context.Context, name string) (string, error)
	CreateFolder(ctx context.Context, name string) (string, error)
	FindFile(ctx context.Context, folderID, name string) (string, error)
	FileName(ctx context.Context, fileID string) (string, error)
	CopyFile(ctx context.Context, sourceID, folderID, name string) (string, error)
	DeleteFile(ctx context.Context, fileID string) error
}

type Provisioner struct {
	Backoffice Backoffice
	Drive      Drive

	// OrganizationID and DeliveryType go into every created site.
	OrganizationID string
	DeliveryType   string

	Logger *log.Logger
}

func (p *Provisioner) logf(format string, a ...any) {
	if p.Logger != nil {
		p.Logger.Printf(format, a...)
	}
}
