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

var docsCloneUsage = strings.TrimSpace(`
Copy a template Google Doc into the Drive folder of every site in the range.
If the destination already holds a document of the same name it is kept,
unless --override is given, in which case it is deleted and recreated.
`)

var docsCloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Clone a template doc into each site's folder",
	Long:  docsCloneUsage,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		debugLog("  doc: %s, override: %v\n", DocURL, Override)
		return runDocsClone(cmd.Context())
	},
}

var (
	DocURL   string
	DocName  string
	Override bool
)

func init() {
	docsCmd.AddCommand(docsCloneCmd)

	docsCloneCmd.Flags().StringVar(&DocURL, "doc", "", "URL of the Google Doc to clone (required)")
	docsCloneCmd.Flags().StringVar(&DocName, "name", "", "name for the cloned doc (default: keep the source title)")
	docsCloneCmd.Flags().BoolVar(&Override, "override", false, "replace same-named destination documents")
	docsCloneCmd.Flags().IntVar(&FromIndex, "from", 0, "first site index (inclusive)")
	docsCloneCmd.Flags().IntVar(&ToIndex, "to", 199, "last site index (inclusive)")
	docsCloneCmd.Flags().StringVar(&ReportPath, "report", "", "write a JSON report to this path")

	docsCloneCmd.MarkFlagRequired("doc")
}

func runDocsClone(ctx context.Context) error {
	indexes := provision.Indexes(FromIndex, ToIndex)
	if len(indexes) == 0 {
		return fmt.Errorf("cmd: empty index range %d..%d", FromIndex, ToIndex)
	}

	sourceID, err := gdrive.DocumentID(DocURL)
	if err != nil {
		return fmt.Errorf("cmd: couldn't parse --doc: %w", err)
	}

	drv, err := newDrive(ctx)
	if err != nil {
		return err
	}

	p := newProvisioner(nil, drv)

	results, err := runPhase(ctx, "docs", indexes, func(ctx context.Context, index int) provision.Result {
		baseURL := provision.BaseURL(index)

		folderID, err := p.EnsureFolder(ctx, provision.SiteNumber(index))
		if err != nil {
			return provision.Result{BaseURL: baseURL, Error: err.Error()}
		}

		clonedID, copied, err := p.CloneDoc(ctx, sourceID, folderID, DocName, Override)
		if err != nil {
			return provision.Result{BaseURL: baseURL, Error: err.Error()}
		}

		action := "kept"
		if copied {
			action = "cloned"
		}
		return provision.Result{
			BaseURL:    baseURL,
			BaseDocURL: gdrive.DocURL(clonedID),
			Action:     action,
		}
	})
	if err != nil {
		return err
	}

	return finishPhase("docs", results, ReportPath)
}
