/*
Copyright © 2025 summitops
*/
package main

import (
	"github.com/spf13/cobra"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Commands to work with tenant sites",
	Long: `
Commands in this namespace create the numbered lab-337 tenant sites in the
backoffice and export audit sheets of the result.
`,
}

func init() {
	rootCmd.AddCommand(sitesCmd)
}
