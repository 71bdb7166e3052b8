/*
Copyright © 2025 summitops
*/
package main

import (
	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Commands to work with template documents",
	Long: `
Commands in this namespace copy Google Docs into the per-site folders.
`,
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
