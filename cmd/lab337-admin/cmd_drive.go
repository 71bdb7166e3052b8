/*
Copyright © 2025 summitops
*/
package main

import (
	"github.com/spf13/cobra"
)

var driveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Commands to work with the per-site Drive folders",
	Long: `
Commands in this namespace reconcile Google Drive state: one folder per site
under the shared lab-337 root, and each site's content source pointing at its
own folder.
`,
}

func init() {
	rootCmd.AddCommand(driveCmd)
}
