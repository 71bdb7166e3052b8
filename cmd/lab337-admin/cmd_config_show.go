/*
Copyright © 2025 summitops
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Output current config",
	Long: `
Is something not working for you?  Have a look whether your config is as you expect.
`,
	Run: func(cmd *cobra.Command, args []string) {
		// Note, you can only talk about persistent flags here.  Command-specific ones won't be
		// visible.
		fmt.Printf("Dump current config state:\n\n")

		fmt.Printf("  Config file: %s\n", Config)
		fmt.Printf("  Debug: %v\n", Debug)
		fmt.Println()
		fmt.Printf("  Parsed YAML:\n%#v\n", ParsedConfig)
		fmt.Println()
		fmt.Printf("  API: %s\n", APIBase)
		fmt.Printf("  Credentials: %s\n", Credentials)
		fmt.Printf("  DriveRoot: %s\n", DriveRoot)
		fmt.Printf("  Organization: %s\n", Organization)
		fmt.Printf("  SiteIndex: %s\n", SiteIndexURL)
		fmt.Printf("  Throttle: %s\n", Throttle)
		fmt.Printf("  Workers: %d\n", Workers)
	},
}

func init() {
	configCmd.AddCommand(showCmd)
}
