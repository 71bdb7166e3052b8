package spacecat

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// DefaultBaseURL is the production Sites Optimizer backoffice API.
const DefaultBaseURL = "https://spacecat.experiencecloud.live/api/v1"

// ErrNotFound is returned for 404 responses, e.g. when looking up a site by
// base URL that hasn't been created yet.
var ErrNotFound = errors.New("spacecat: not found")

func NewAPI(baseURL string, token string) (*API, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if token == "" {
		return &API{}, fmt.Errorf("spacecat: auth token is empty, please set ASO_TOKEN")
	}

	u, err := url.ParseRequestURI(baseURL)
	if err != nil {
		return nil, fmt.Errorf("spacecat: couldn't parse REST API URL: %w", err)
	}

	a := &API{
		BaseURI: u,
		token:   token,
	}
	a.Client = &http.Client{}

	return a, nil
}

type API struct {
	// Base URI of the backoffice API, e.g. https://spacecat.experiencecloud.live/api/v1
	BaseURI *url.URL

	// An HTTP client - you can substitute VCR or whatnot.
	Client *http.Client

	// IMS bearer token
	token string
}
