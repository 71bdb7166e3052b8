package spacecat

import (
	"encoding/base64"
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// sitesEndpoint returns the endpoint to list or create sites.
func (a *API) sitesEndpoint() (*url.URL, error) {
	return a.resolveEndpoint("/sites")
}

// siteEndpoint returns the endpoint for a single site (GET/PATCH).
func (a *API) siteEndpoint(siteID string) (*url.URL, error) {
	if siteID == "" {
		return nil, fmt.Errorf("spacecat: please provide a site ID")
	}
	return a.resolveEndpoint(fmt.Sprintf("/sites/%s", siteID))
}

// siteByBaseURLEndpoint returns the endpoint to look up a site by its base
// URL.  The backoffice wants the URL base64-encoded in the path.
func (a *API) siteByBaseURLEndpoint(baseURL string) (*url.URL, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("spacecat: please provide a base URL to look up")
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(baseURL))
	return a.resolveEndpoint(fmt.Sprintf("/sites/by-base-url/%s", encoded))
}

// opportunitiesEndpoint returns the endpoint to list or create opportunities
// for a site.
func (a *API) opportunitiesEndpoint(siteID string, opts ListOpportunitiesQuery) (*url.URL, error) {
	if siteID == "" {
		return nil, fmt.Errorf("spacecat: please provide a site ID")
	}

	ep, err := a.resolveEndpoint(fmt.Sprintf("/sites/%s/opportunities", siteID))
	if err != nil {
		return nil, fmt.Errorf("spacecat: couldn't resolve endpoint: %w", err)
	}

	v, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("spacecat: couldn't encode query params: %w", err)
	}
	ep.RawQuery = v.Encode()

	return ep, nil
}

// opportunityEndpoint returns the endpoint for a single opportunity (DELETE).
func (a *API) opportunityEndpoint(siteID, opportunityID string) (*url.URL, error) {
	if siteID == "" || opportunityID == "" {
		return nil, fmt.Errorf("spacecat: please provide site and opportunity IDs")
	}
	return a.resolveEndpoint(fmt.Sprintf("/sites/%s/opportunities/%s", siteID, opportunityID))
}

// suggestionsEndpoint returns the endpoint to attach suggestions to an
// opportunity.
func (a *API) suggestionsEndpoint(siteID, opportunityID string) (*url.URL, error) {
	if siteID == "" || opportunityID == "" {
		return nil, fmt.Errorf("spacecat: please provide site and opportunity IDs")
	}
	return a.resolveEndpoint(fmt.Sprintf("/sites/%s/opportunities/%s/suggestions", siteID, opportunityID))
}

// Do a bit of error checking on endpoint format, and return it relative to the base URI.
func (a *API) resolveEndpoint(endpoint string) (*url.URL, error) {
	ref, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("spacecat: failed to parse endpoint ref: %w", err)
	}

	// ResolveReference would eat the "/api/v1" path prefix, so splice instead.
	resolved := *a.BaseURI
	resolved.Path = a.BaseURI.Path + ref.Path
	return &resolved, nil
}
