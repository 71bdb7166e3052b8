/*
Copyright © 2025 summitops
*/
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/summitops/lab337-admin/gdrive"
	"github.com/summitops/lab337-admin/provision"
)

var opptsCloneUsage = strings.TrimSpace(`
Clone an opportunity fixture file into a site: existing opportunities are
deleted, the fixture's opportunity is recreated, and its suggestions are
attached with their opportunityId rewritten to the new record.  Suggestions
pointing at Google Docs get those docs cloned into the site's folder too.
`)

var opptsCloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Clone an opportunity fixture into a site",
	Long:  opptsCloneUsage,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		debugLog("  site: %s, fixture: %s\n", SiteID, FixtureFile)
		return runOpptsClone(cmd.Context())
	},
}

var (
	SiteID      string
	FixtureFile string
	PurgeType   string
	SkipDocs    bool
)

func init() {
	opptsCmd.AddCommand(opptsCloneCmd)

	opptsCloneCmd.Flags().StringVar(&SiteID, "site", "", "target site ID (required)")
	opptsCloneCmd.Flags().StringVar(&FixtureFile, "file", "", "path to the opportunity JSON fixture (required)")
	opptsCloneCmd.Flags().StringVar(&PurgeType, "purge-type", "", "only delete existing opportunities of this type (default: all)")
	opptsCloneCmd.Flags().BoolVar(&Override, "override", false, "replace same-named variation docs in the site folder")
	opptsCloneCmd.Flags().BoolVar(&SkipDocs, "skip-docs", false, "don't clone variation Google Docs")

	opptsCloneCmd.MarkFlagRequired("site")
	opptsCloneCmd.MarkFlagRequired("file")
}

func runOpptsClone(ctx context.Context) error {
	fixture, err := provision.LoadFixture(FixtureFile)
	if err != nil {
		return err
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

	// the variation docs land in the site's own folder; resolve it from the
	// site's base URL the same way drive sync does.
	folderID := ""
	if !SkipDocs {
		site, err := p.Backoffice.Site(ctx, SiteID)
		if err != nil {
			return fmt.Errorf("cmd: couldn't fetch site %s: %w", SiteID, err)
		}

		if name, ok := gdrive.TargetFolder(site.BaseURL); ok {
			if folderID, err = p.EnsureFolder(ctx, name); err != nil {
				return fmt.Errorf("cmd: couldn't resolve folder for site %s: %w", SiteID, err)
			}
		} else {
			fmt.Printf("no target folder for %s, skipping doc cloning\n", site.BaseURL)
		}
	}

	result, err := p.CloneOpportunity(ctx, SiteID, fixture, folderID, PurgeType, Override)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("cmd: couldn't render result: %w", err)
	}

	fmt.Printf("Opportunity cloned:\n%s\n", encoded)
	return nil
}
