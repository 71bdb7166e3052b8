/*
Copyright © 2025 summitops
*/
package main

import (
	"github.com/spf13/cobra"
)

var opptsCmd = &cobra.Command{
	Use:   "oppts",
	Short: "Commands to work with opportunities",
	Long: `
Commands in this namespace clone opportunity fixtures (opportunity plus its
nested suggestions) into sites.
`,
}

func init() {
	rootCmd.AddCommand(opptsCmd)
}
