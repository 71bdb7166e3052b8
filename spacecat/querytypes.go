package spacecat

// ListOpportunitiesQuery defines the query parameters for
// GET /sites/{siteId}/opportunities.
type ListOpportunitiesQuery struct {
	// Filter by opportunity type, e.g. "alt-text".  Empty means everything.
	Type string `url:"type,omitempty"`
}
