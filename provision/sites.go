package provision

import (
	"context"
	"errors"
	"fmt"

	"github.com/summitops/lab337-admin/spacecat"
)

// The whole event is a fixed enumeration of ~200 sites, one per 3-digit
// index, all hanging off the wknd-summit2025 host.
const (
	baseURLPattern = "https://main--wknd-summit2025--adobe.aem.live/lab-337/%s/"
	siteNamePrefix = "L337-"
)

// DefaultOrganizationID is the IMS org all lab sites belong to.
const DefaultOrganizationID = "d488fc90-d009-412c-82a1-70b338b1869c"

// DefaultDeliveryType for every lab site.
const DefaultDeliveryType = "aem_edge"

// SiteNumber renders an index as the zero-padded site number, e.g. 7 -> "007".
func SiteNumber(index int) string {
	return fmt.Sprintf("%03d", index)
}

// BaseURL derives the canonical base URL for a site index.
func BaseURL(index int) string {
	return fmt.Sprintf(baseURLPattern, SiteNumber(index))
}

// SiteName derives the display name for a site index, e.g. "L337-007".
func SiteName(index int) string {
	return siteNamePrefix + SiteNumber(index)
}

// EnsureSite checks whether the site for the given index already exists and
// creates it if not.  created reports whether a create call was made.
func (p *Provisioner) EnsureSite(ctx context.Context, index int) (site *spacecat.Site, created bool, err error) {
	baseURL := BaseURL(index)

	existing, err := p.Backoffice.SiteByBaseURL(ctx, baseURL)
	if err == nil {
		p.logf("site %s already exists with ID %s", SiteName(index), existing.ID)
		return existing, false, nil
	}
	if !errors.Is(err, spacecat.ErrNotFound) {
		return nil, false, fmt.Errorf("provision: couldn't check whether site %s exists: %w", SiteName(index), err)
	}

	site, err = p.Backoffice.CreateSite(ctx, spacecat.NewSite{
		OrganizationID: p.OrganizationID,
		BaseURL:        baseURL,
		DeliveryType:   p.DeliveryType,
		Name:           SiteName(index),
	})
	if err != nil {
		return nil, false, fmt.Errorf("provision: couldn't create site %s: %w", SiteName(index), err)
	}

	p.logf("created site %s with ID %s", SiteName(index), site.ID)
	return site, true, nil
}
