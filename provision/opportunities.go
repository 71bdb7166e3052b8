package provision

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/summitops/lab337-admin/gdrive"
	"github.com/summitops/lab337-admin/spacecat"
)

// Fixture is the on-disk shape of an opportunity export, e.g.
// oppt/opp--alt-text--3_7_2025.json.
type Fixture struct {
	Opportunity *spacecat.Opportunity `json:"opportunity"`
	Suggestions []spacecat.Suggestion `json:"suggestions"`
}

// LoadFixture reads and validates an opportunity fixture file.
func LoadFixture(path string) (*Fixture, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("provision: couldn't read fixture file %s: %w", path, err)
	}

	var fixture Fixture
	if err := json.Unmarshal(source, &fixture); err != nil {
		return nil, fmt.Errorf("provision: invalid JSON in fixture file %s: %w", path, err)
	}

	if fixture.Opportunity == nil {
		return nil, fmt.Errorf("provision: no 'opportunity' key found in %s", path)
	}

	return &fixture, nil
}

// OpportunityResult summarises one CloneOpportunity call.
type OpportunityResult struct {
	OpportunityID string   `json:"opportunityId"`
	Deleted       int      `json:"deleted"`
	Suggestions   int      `json:"suggestions"`
	ClonedDocs    []string `json:"clonedDocs,omitempty"`
}

// CloneOpportunity replaces a site's opportunity records with the fixture's:
// existing opportunities (optionally restricted to purgeType) are deleted,
// then the fixture opportunity is recreated and its suggestions attached with
// opportunityId rewritten to the server-assigned ID.
//
// Suggestions whose variations point at a Google Doc get that doc cloned into
// folderID (when non-empty) and the variation URL rewritten to the clone.
func (p *Provisioner) CloneOpportunity(ctx context.Context, siteID string, fixture *Fixture, folderID string, purgeType string, override bool) (*OpportunityResult, error) {
	result := OpportunityResult{}

	// 1. out with the old
	existing, err := p.Backoffice.Opportunities(ctx, siteID, spacecat.ListOpportunitiesQuery{Type: purgeType})
	if err != nil {
		return nil, fmt.Errorf("provision: couldn't list opportunities of site %s: %w", siteID, err)
	}

	for _, opportunity := range existing {
		if err := p.Backoffice.DeleteOpportunity(ctx, siteID, opportunity.ID); err != nil {
			return nil, fmt.Errorf("provision: couldn't delete opportunity %s: %w", opportunity.ID, err)
		}
		result.Deleted++
	}
	if result.Deleted > 0 {
		p.logf("deleted %d existing opportunities from site %s", result.Deleted, siteID)
	}

	// 2. in with the new; the fixture may still carry the old ID, the server
	// assigns a fresh one.
	opportunity := *fixture.Opportunity
	opportunity.ID = ""
	if opportunity.Origin == "" {
		opportunity.Origin = "AUTOMATION"
	}

	created, err := p.Backoffice.CreateOpportunity(ctx, siteID, opportunity)
	if err != nil {
		return nil, fmt.Errorf("provision: couldn't create opportunity on site %s: %w", siteID, err)
	}
	result.OpportunityID = created.ID
	p.logf("created opportunity %s on site %s", created.ID, siteID)

	if len(fixture.Suggestions) == 0 {
		p.logf("no suggestions in fixture, done")
		return &result, nil
	}

	// 3. fix up the suggestions before attaching them
	for _, suggestion := range fixture.Suggestions {
		if folderID != "" {
			if err := p.cloneVariationDocs(ctx, suggestion, folderID, override, &result); err != nil {
				return nil, err
			}
		}
		suggestion.SetOpportunityID(created.ID)
	}

	attached, err := p.Backoffice.CreateSuggestions(ctx, siteID, created.ID, fixture.Suggestions)
	if err != nil {
		return nil, fmt.Errorf("provision: couldn't add suggestions to opportunity %s: %w", created.ID, err)
	}
	result.Suggestions = len(attached)
	p.logf("added %d suggestions to opportunity %s", result.Suggestions, created.ID)

	return &result, nil
}

// cloneVariationDocs copies any Google Doc a variation's edit URL points at
// into the site's folder and rewrites the URL to the clone.
func (p *Provisioner) cloneVariationDocs(ctx context.Context, suggestion spacecat.Suggestion, folderID string, override bool, result *OpportunityResult) error {
	for _, variation := range suggestion.Variations() {
		editURL, ok := variation["variationEditPageUrl"].(string)
		if !ok || !strings.HasPrefix(editURL, "https://docs.google.com") {
			continue
		}

		sourceID, err := gdrive.DocumentID(editURL)
		if err != nil {
			return fmt.Errorf("provision: bad variation edit URL: %w", err)
		}

		clonedID, _, err := p.CloneDoc(ctx, sourceID, folderID, "", override)
		if err != nil {
			return fmt.Errorf("provision: couldn't clone variation doc %s: %w", sourceID, err)
		}

		variation["variationEditPageUrl"] = gdrive.DocURL(clonedID)
		result.ClonedDocs = append(result.ClonedDocs, clonedID)
	}

	return nil
}
