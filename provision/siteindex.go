package provision

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"

	"golang.org/x/exp/maps"
)

// DefaultSiteIndexURL is the published list of all lab sites, served from the
// event's own content.
const DefaultSiteIndexURL = "https://main--wknd-summit2025--adobe.aem.live/lab-337/lab-337-sites.json"

// SiteIndexEntry is one row of the published lab-337-sites.json.
type SiteIndexEntry struct {
	ID      string `json:"id"`
	BaseURL string `json:"baseURL"`
}

type siteIndexResponse struct {
	Data []SiteIndexEntry `json:"data"`
}

// FetchSiteIndex downloads the published site list.  Duplicate IDs are
// collapsed (last one wins) - the sheet behind the JSON has been known to
// carry repeats.
func FetchSiteIndex(ctx context.Context, client *http.Client, indexURL string) ([]SiteIndexEntry, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if indexURL == "" {
		indexURL = DefaultSiteIndexURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, indexURL, nil)
	if err != nil {
		return nil, fmt.Errorf("provision: couldn't instantiate site index request: %w", err)
	}

	response, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provision: couldn't fetch site index: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provision: site index fetch failed: %s", response.Status)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("provision: couldn't read site index response: %w", err)
	}

	var index siteIndexResponse
	if err := json.Unmarshal(body, &index); err != nil {
		return nil, fmt.Errorf("provision: couldn't parse site index JSON: %w", err)
	}

	byID := map[string]SiteIndexEntry{}
	for _, entry := range index.Data {
		byID[entry.ID] = entry
	}

	entries := maps.Values(byID)
	sort.Slice(entries, func(i, j int) bool { return entries[i].BaseURL < entries[j].BaseURL })
	return entries, nil
}
