/*
Copyright © 2025 summitops
*/
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/summitops/lab337-admin/provision"
)

var sitesCreateUsage = strings.TrimSpace(`
Create the numbered lab-337 tenant sites, skipping any that already exist.
`)

var sitesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create tenant sites for an index range",
	Long:  sitesCreateUsage,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		debugLog("  range: %03d..%03d\n", FromIndex, ToIndex)
		return runSitesCreate(cmd.Context())
	},
}

var (
	FromIndex  int
	ToIndex    int
	ReportPath string
)

func init() {
	sitesCmd.AddCommand(sitesCreateCmd)

	sitesCreateCmd.Flags().IntVar(&FromIndex, "from", 0, "first site index (inclusive)")
	sitesCreateCmd.Flags().IntVar(&ToIndex, "to", 199, "last site index (inclusive)")
	sitesCreateCmd.Flags().StringVar(&ReportPath, "report", "", "write a JSON report to this path")
}

func runSitesCreate(ctx context.Context) error {
	indexes := provision.Indexes(FromIndex, ToIndex)
	if len(indexes) == 0 {
		return fmt.Errorf("cmd: empty index range %d..%d", FromIndex, ToIndex)
	}

	api, stop, err := newBackoffice()
	if err != nil {
		return err
	}
	defer stop()

	p := newProvisioner(api, nil)

	results, err := runPhase(ctx, "sites", indexes, func(ctx context.Context, index int) provision.Result {
		site, created, err := p.EnsureSite(ctx, index)
		if err != nil {
			return provision.Result{BaseURL: provision.BaseURL(index), Error: err.Error()}
		}

		action := "exists"
		if created {
			action = "created"
		}
		return provision.Result{
			ID:      site.ID,
			BaseURL: site.BaseURL,
			Action:  action,
		}
	})
	if err != nil {
		return err
	}

	return finishPhase("sites", results, ReportPath)
}
