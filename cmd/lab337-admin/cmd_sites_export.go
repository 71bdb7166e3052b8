/*
Copyright © 2025 summitops
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/summitops/lab337-admin/gdrive"
	"github.com/summitops/lab337-admin/provision"
)

var sitesExportUsage = strings.TrimSpace(`
Export the published lab-337 site list as a CSV audit sheet
(id,baseURL,baseDocURL), looking each site's Drive folder up to fill in the
baseDocURL column.  This phase is read-only, so --workers > 1 is fine here.
`)

var sitesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the site list with Drive folder URLs",
	Long:  sitesExportUsage,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSitesExport(cmd.Context())
	},
}

var (
	CSVPath        string
	JSONReportPath string
)

func init() {
	sitesCmd.AddCommand(sitesExportCmd)

	sitesExportCmd.Flags().StringVar(&CSVPath, "out", "lab-337-sites.csv", "CSV output path")
	sitesExportCmd.Flags().StringVar(&JSONReportPath, "json", "", "also write a JSON report to this path")
}

func runSitesExport(ctx context.Context) error {
	entries, err := provision.FetchSiteIndex(ctx, http.DefaultClient, SiteIndexURL)
	if err != nil {
		return err
	}
	debugLog("  %d sites in the published index\n", len(entries))

	drv, err := newDrive(ctx)
	if err != nil {
		return err
	}

	results, err := runPhase(ctx, "export", provision.Indexes(0, len(entries)-1), func(ctx context.Context, i int) provision.Result {
		entry := entries[i]
		result := provision.Result{ID: entry.ID, BaseURL: entry.BaseURL}

		name, ok := gdrive.TargetFolder(entry.BaseURL)
		if !ok {
			result.Action = "skipped"
			return result
		}

		folderID, err := drv.FindFolder(ctx, name)
		if err != nil {
			result.Error = err.Error()
			return result
		}
		if folderID == "" {
			result.Error = fmt.Sprintf("no Drive folder named %q, run 'drive sync' first", name)
			return result
		}

		result.BaseDocURL = gdrive.FolderURL(folderID)
		result.Action = "resolved"
		return result
	})
	if err != nil {
		return err
	}

	if err := provision.WriteCSV(CSVPath, results); err != nil {
		return err
	}
	fmt.Printf("CSV written to %s\n", CSVPath)

	if JSONReportPath != "" {
		report := provision.SitesReport{
			Summary: provision.Summarize(phaseStarted, results),
			Sites:   results,
		}
		if err := provision.WriteJSON(JSONReportPath, report); err != nil {
			return err
		}
		fmt.Printf("JSON report written to %s\n", JSONReportPath)
	}

	return finishPhase("export", results, "")
}
