package spacecat

// GoogleDriveSourceType is the content source type a site is expected to
// carry once its Drive folder has been wired up.  Anything else means the
// site still points at the shared template content.
const GoogleDriveSourceType = "drive.google"

// Site is a tenant record in the backoffice.  Identity is baseURL -> id,
// looked up via the by-base-url endpoint.
type Site struct {
	ID             string     `json:"id,omitempty"`
	OrganizationID string     `json:"organizationId,omitempty"`
	BaseURL        string     `json:"baseURL,omitempty"`
	DeliveryType   string     `json:"deliveryType,omitempty"`
	Name           string     `json:"name,omitempty"`
	HlxConfig      *HlxConfig `json:"hlxConfig,omitempty"`
}

type HlxConfig struct {
	Content ContentConfig `json:"content"`
}

type ContentConfig struct {
	Source ContentSource `json:"source"`
}

type ContentSource struct {
	Type string `json:"type,omitempty"`
	URL  string `json:"url,omitempty"`
}

// ContentSource digs out the site's configured content source, surviving a
// missing hlxConfig (freshly created sites have none).
func (s *Site) ContentSource() ContentSource {
	if s == nil || s.HlxConfig == nil {
		return ContentSource{}
	}
	return s.HlxConfig.Content.Source
}

// NewSite is the POST /sites payload.
type NewSite struct {
	OrganizationID string `json:"organizationId"`
	BaseURL        string `json:"baseURL"`
	DeliveryType   string `json:"deliveryType"`
	Name           string `json:"name"`
}

// Opportunity is a recommendation record attached to a site.  The server
// assigns ID on creation.
type Opportunity struct {
	ID          string         `json:"id,omitempty"`
	AuditID     string         `json:"auditId"`
	Runbook     string         `json:"runbook"`
	Type        string         `json:"type"`
	Origin      string         `json:"origin"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Tags        []string       `json:"tags"`
	Data        map[string]any `json:"data"`

	// Guidance is optional and free-form; we only send it when the fixture
	// actually has one.
	Guidance any `json:"guidance,omitempty"`
}

// Suggestion is a free-form payload nested under an opportunity.  We keep it
// as a raw map so unknown fields survive the clone round-trip; the only keys
// we ever touch are opportunityId and data.variations[].variationEditPageUrl.
type Suggestion map[string]any

// SetOpportunityID rewrites the suggestion's parent pointer to the freshly
// created opportunity.
func (s Suggestion) SetOpportunityID(id string) {
	s["opportunityId"] = id
}

// Variations returns the data.variations entries as mutable maps, or nil if
// the suggestion doesn't carry any.  Mutating a returned map edits the
// suggestion itself.
func (s Suggestion) Variations() []map[string]any {
	data, ok := s["data"].(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := data["variations"].([]any)
	if !ok {
		return nil
	}

	variations := []map[string]any{}
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			variations = append(variations, m)
		}
	}
	return variations
}
