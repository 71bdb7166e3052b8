package spacecat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// SiteByBaseURL looks a site up by its base URL.  Returns ErrNotFound if no
// site exists for that URL yet - that's the normal "go ahead and create it"
// signal, not a failure.
func (api *API) SiteByBaseURL(ctx context.Context, baseURL string) (*Site, error) {
	ep, err := api.siteByBaseURLEndpoint(baseURL)
	if err != nil {
		return nil, fmt.Errorf("spacecat: couldn't get by-base-url endpoint: %w", err)
	}

	body, err := api.request(ctx, http.MethodGet, ep, nil)
	if err != nil {
		return nil, err
	}

	var site Site
	if err := json.Unmarshal(body, &site); err != nil {
		return nil, fmt.Errorf("spacecat: couldn't parse json response: %w", err)
	}

	return &site, nil
}

// CreateSite registers a new tenant site.
func (api *API) CreateSite(ctx context.Context, site NewSite) (*Site, error) {
	ep, err := api.sitesEndpoint()
	if err != nil {
		return nil, fmt.Errorf("spacecat: couldn't get sites endpoint: %w", err)
	}

	body, err := api.request(ctx, http.MethodPost, ep, site)
	if err != nil {
		return nil, err
	}

	var created Site
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("spacecat: couldn't parse json response: %w", err)
	}

	return &created, nil
}

// Site fetches a single site by ID.
func (api *API) Site(ctx context.Context, siteID string) (*Site, error) {
	ep, err := api.siteEndpoint(siteID)
	if err != nil {
		return nil, fmt.Errorf("spacecat: couldn't get site endpoint: %w", err)
	}

	body, err := api.request(ctx, http.MethodGet, ep, nil)
	if err != nil {
		return nil, err
	}

	var site Site
	if err := json.Unmarshal(body, &site); err != nil {
		return nil, fmt.Errorf("spacecat: couldn't parse json response: %w", err)
	}

	return &site, nil
}

// UpdateContentSource patches a site's hlxConfig content source.  The PATCH
// body only carries the config subtree, the backoffice merges it.
func (api *API) UpdateContentSource(ctx context.Context, siteID string, source ContentSource) (*Site, error) {
	ep, err := api.siteEndpoint(siteID)
	if err != nil {
		return nil, fmt.Errorf("spacecat: couldn't get site endpoint: %w", err)
	}

	payload := Site{
		HlxConfig: &HlxConfig{
			Content: ContentConfig{Source: source},
		},
	}

	body, err := api.request(ctx, http.MethodPatch, ep, payload)
	if err != nil {
		return nil, err
	}

	var updated Site
	if err := json.Unmarshal(body, &updated); err != nil {
		return nil, fmt.Errorf("spacecat: couldn't parse json response: %w", err)
	}

	return &updated, nil
}

// Opportunities lists a site's opportunities, optionally filtered by type.
func (api *API) Opportunities(ctx context.Context, siteID string, opts ListOpportunitiesQuery) ([]Opportunity, error) {
	ep, err := api.opportunitiesEndpoint(siteID, opts)
	if err != nil {
		return nil, fmt.Errorf("spacecat: couldn't get opportunities endpoint: %w", err)
	}

	body, err := api.request(ctx, http.MethodGet, ep, nil)
	if err != nil {
		return nil, err
	}

	var opportunities []Opportunity
	if err := json.Unmarshal(body, &opportunities); err != nil {
		return nil, fmt.Errorf("spacecat: couldn't parse json response: %w", err)
	}

	return opportunities, nil
}

// CreateOpportunity posts a new opportunity to a site.  The response carries
// the server-assigned ID.
func (api *API) CreateOpportunity(ctx context.Context, siteID string, opportunity Opportunity) (*Opportunity, error) {
	ep, err := api.opportunitiesEndpoint(siteID, ListOpportunitiesQuery{})
	if err != nil {
		return nil, fmt.Errorf("spacecat: couldn't get opportunities endpoint: %w", err)
	}

	body, err := api.request(ctx, http.MethodPost, ep, opportunity)
	if err != nil {
		return nil, err
	}

	var created Opportunity
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("spacecat: couldn't parse json response: %w", err)
	}

	return &created, nil
}

// DeleteOpportunity removes one opportunity (and, server-side, its nested
// suggestions).
func (api *API) DeleteOpportunity(ctx context.Context, siteID, opportunityID string) error {
	ep, err := api.opportunityEndpoint(siteID, opportunityID)
	if err != nil {
		return fmt.Errorf("spacecat: couldn't get opportunity endpoint: %w", err)
	}

	if _, err := api.request(ctx, http.MethodDelete, ep, nil); err != nil {
		return err
	}

	return nil
}

// CreateSuggestions attaches a batch of suggestions to an opportunity.  The
// whole array goes in one POST, matching the backoffice contract.
func (api *API) CreateSuggestions(ctx context.Context, siteID, opportunityID string, suggestions []Suggestion) ([]Suggestion, error) {
	ep, err := api.suggestionsEndpoint(siteID, opportunityID)
	if err != nil {
		return nil, fmt.Errorf("spacecat: couldn't get suggestions endpoint: %w", err)
	}

	body, err := api.request(ctx, http.MethodPost, ep, suggestions)
	if err != nil {
		return nil, err
	}

	var created []Suggestion
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("spacecat: couldn't parse json response: %w", err)
	}

	return created, nil
}

// request implements the basic request function.  A nil payload means no
// request body.
func (api *API) request(ctx context.Context, method string, url *url.URL, payload any) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("spacecat: couldn't marshal request payload: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("spacecat: couldn't instantiate http request: %w", err)
	}

	req.Header.Add("Accept", "application/json, */*")
	req.Header.Set("Authorization", "Bearer "+api.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	response, err := api.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spacecat: couldn't perform http request: %w", err)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("spacecat: couldn't read http response body: %w", err)
	}

	if err := response.Body.Close(); err != nil {
		return nil, fmt.Errorf("spacecat: couldn't close response body: %w", err)
	}

	switch response.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
		return body, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("spacecat: %s: %w", url.Path, ErrNotFound)
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("spacecat: authentication failed, is ASO_TOKEN still valid?")
	case http.StatusServiceUnavailable:
		return nil, fmt.Errorf("spacecat: service is not available: %s", response.Status)
	case http.StatusInternalServerError:
		return nil, fmt.Errorf("spacecat: internal server error: %s", response.Status)
	}

	return nil, fmt.Errorf("spacecat: unexpected HTTP response status: %s: %s", response.Status, url.String())
}
