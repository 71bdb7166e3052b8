// Package gdrive wraps the handful of Google Drive v3 calls the lab-337
// provisioning run needs: folder lookup/creation under the fixed lab root,
// and copy/delete of the per-site template documents.
package gdrive

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DefaultRootFolderID is the shared lab-337 folder that all per-site folders
// live under.
const DefaultRootFolderID = "1MF90nBGR1LDyQN7kaDDye91bujdB87cL"

type Client struct {
	service *drive.Service

	// All folder queries are scoped to this parent.
	root string
}

// NewClient authorises against Drive with a service-account credentials file
// and returns a client scoped to the given root folder.
func NewClient(ctx context.Context, credentials string, rootFolderID string) (*Client, error) {
	if rootFolderID == "" {
		rootFolderID = DefaultRootFolderID
	}

	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, fmt.Errorf("gdrive: couldn't read credentials file %s: %w", credentials, err)
	}

	config, err := google.JWTConfigFromJSON(b, drive.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("gdrive: couldn't parse service account credentials: %w", err)
	}

	service, err := drive.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("gdrive: couldn't create Drive service: %w", err)
	}

	return &Client{
		service: service,
		root:    rootFolderID,
	}, nil
}
