/*
Copyright © 2025 summitops
*/
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/summitops/lab337-admin/gdrive"
	"github.com/summitops/lab337-admin/provision"
)

var driveSyncUsage = strings.TrimSpace(`
Find-or-create the Drive folder for every site in the range, then point each
site's content source at its folder.  Correctly configured sites are left
untouched; misconfigured ones are overwritten.
`)

var driveSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile per-site folders and content sources",
	Long:  driveSyncUsage,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDriveSync(cmd.Context())
	},
}

func init() {
	driveCmd.AddCommand(driveSyncCmd)

	driveSyncCmd.Flags().IntVar(&FromIndex, "from", 0, "first site index (inclusive)")
	driveSyncCmd.Flags().IntVar(&ToIndex, "to", 199, "last site index (inclusive)")
	driveSyncCmd.Flags().StringVar(&ReportPath, "report", "", "write a JSON report to this path")
}

func runDriveSync(ctx context.Context) error {
	indexes := provision.Indexes(FromIndex, ToIndex)
	if len(indexes) == 0 {
		return fmt.Errorf("cmd: empty index range %d..%d", FromIndex, ToIndex)
	}

	api, stop, err := newBackoffice()
	if err != nil {
		return err
	}
	defer stop()

	drv, err := newDrive(ctx)
	if err != nil {
		return err
	}

	p := newProvisioner(api, drv)

	results, err := runPhase(ctx, "drive", indexes, func(ctx context.Context, index int) provision.Result {
		baseURL := provision.BaseURL(index)

		folderID, err := p.EnsureFolder(ctx, provision.SiteNumber(index))
		if err != nil {
			return provision.Result{BaseURL: baseURL, Error: err.Error()}
		}

		site, err := p.Backoffice.SiteByBaseURL(ctx, baseURL)
		if err != nil {
			return provision.Result{
				BaseURL:    baseURL,
				BaseDocURL: gdrive.FolderURL(folderID),
				Error:      fmt.Sprintf("site lookup failed (run 'sites create' first?): %v", err),
			}
		}

		changed, err := p.ReconcileContentSource(ctx, site.ID, folderID)
		if err != nil {
			return provision.Result{ID: site.ID, BaseURL: baseURL, Error: err.Error()}
		}

		action := "unchanged"
		if changed {
			action = "reconciled"
		}
		return provision.Result{
			ID:         site.ID,
			BaseURL:    baseURL,
			BaseDocURL: gdrive.FolderURL(folderID),
			Action:     action,
		}
	})
	if err != nil {
		return err
	}

	return finishPhase("drive", results, ReportPath)
}
