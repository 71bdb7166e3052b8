/*
Copyright © 2025 summitops
*/
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"gopkg.in/dnaeon/go-vcr.v3/cassette"
	"gopkg.in/dnaeon/go-vcr.v3/recorder"

	"github.com/summitops/lab337-admin/gdrive"
	"github.com/summitops/lab337-admin/provision"
	"github.com/summitops/lab337-admin/spacecat"
)

// newBackoffice builds the spacecat API client from the ASO_TOKEN env var,
// optionally wrapping its HTTP client in a go-vcr recorder.  The returned
// stop function flushes the cassette; call it when done.
func newBackoffice() (*spacecat.API, func() error, error) {
	token := os.Getenv("ASO_TOKEN")
	if token == "" {
		return nil, nil, fmt.Errorf("cmd: ASO_TOKEN environment variable is not set, export ASO_TOKEN=your_token_here")
	}

	api, err := spacecat.NewAPI(APIBase, token)
	if err != nil {
		return nil, nil, fmt.Errorf("cmd: backoffice API creation failed: %w", err)
	}

	stop := func() error { return nil }

	if WithVCR {
		// set up VCR recordings.
		opts := &recorder.Options{
			CassetteName:       "fixtures/spacecat",
			Mode:               recorder.ModeReplayWithNewEpisodes,
			SkipRequestLatency: true,
			RealTransport:      http.DefaultTransport,
		}
		r, err := recorder.NewWithOptions(opts)
		if err != nil {
			return nil, nil, fmt.Errorf("cmd: couldn't set up go-vcr recording: %w", err)
		}

		// Add a hook which removes Authorization headers from all requests
		hook := func(i *cassette.Interaction) error {
			delete(i.Request.Headers, "Authorization")
			return nil
		}
		r.AddHook(hook, recorder.AfterCaptureHook)
		r.SetReplayableInteractions(true)

		api.Client = r.GetDefaultClient()
		stop = r.Stop
	}

	return api, stop, nil
}

func newDrive(ctx context.Context) (*gdrive.Client, error) {
	drv, err := gdrive.NewClient(ctx, Credentials, DriveRoot)
	if err != nil {
		return nil, fmt.Errorf("cmd: Drive client creation failed: %w", err)
	}
	return drv, nil
}

func newProvisioner(api *spacecat.API, drv *gdrive.Client) *provision.Provisioner {
	p := &provision.Provisioner{
		OrganizationID: Organization,
		DeliveryType:   provision.DefaultDeliveryType,
	}
	if p.OrganizationID == "" {
		p.OrganizationID = provision.DefaultOrganizationID
	}
	if api != nil {
		p.Backoffice = api
	}
	if drv != nil {
		p.Drive = drv
	}
	if Debug {
		p.Logger = log.New(os.Stderr, "[lab337-admin] ", log.LstdFlags)
	}
	return p
}

func newRunner() *provision.Runner {
	return &provision.Runner{
		Workers:  Workers,
		Throttle: Throttle,
	}
}
