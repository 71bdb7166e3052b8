/*
Copyright © 2025 summitops
*/

package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/fatih/structs"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var (
	// Store the result of binding cobra flags
	Config string
	Debug  bool

	APIBase      string
	Credentials  string
	DriveRoot    string
	Organization string
	SiteIndexURL string

	Throttle time.Duration
	Workers  int
	WithVCR  bool

	ParsedConfig YamlConfig
)

// Build the cobra command that handles our command line tool.
var rootCmd = &cobra.Command{
	Use:   "lab337-admin",
	Short: "Provision and audit the lab-337 tenant sites",
	Long: `
One-off admin tooling for the lab-337 event: creates the ~200 numbered tenant
sites in the Sites Optimizer backoffice, wires each one up to its own Google
Drive folder, clones the template documents and opportunity fixtures into
them, and exports CSV/JSON audit reports.  Re-running any phase is safe; every
step queries before it creates.
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// You can bind cobra and config in a few locations, but PersistentPreRunE on the root command works well
		if err := initializeConfig(cmd); err != nil {
			return fmt.Errorf("lab337-admin: failed to initialise config: %w", err)
		}
		return nil
	},
}

func init() {
	// Define cobra flags, the default value has the lowest (least significant) precedence
	rootCmd.PersistentFlags().StringVar(&Config, "config", "", "config file location (default: ~/.config/lab337-admin.yaml, respects LAB337_ADMIN_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "display debug output")
	rootCmd.PersistentFlags().StringVar(&APIBase, "api", "", "backoffice API base URL (default: production Sites Optimizer)")
	rootCmd.PersistentFlags().StringVar(&Credentials, "credentials", "credentials.json", "Google service account credentials file")
	rootCmd.PersistentFlags().StringVar(&DriveRoot, "drive-root", "", "Drive folder ID that all per-site folders live under (default: lab-337 root)")
	rootCmd.PersistentFlags().StringVar(&Organization, "organization", "", "IMS organization ID for created sites (default: lab-337 org)")
	rootCmd.PersistentFlags().StringVar(&SiteIndexURL, "site-index", "", "URL of the published lab-337-sites.json")
	rootCmd.PersistentFlags().DurationVar(&Throttle, "throttle", time.Second, "delay between per-site requests")
	rootCmd.PersistentFlags().IntVar(&Workers, "workers", 1, "parallel workers; keep at 1 for anything that writes")
	rootCmd.PersistentFlags().BoolVar(&WithVCR, "with-vcr", false, "use go-vcr to cache backoffice responses")
}

func initializeConfig(cmd *cobra.Command) error {
	explicit := Config != ""
	if Config == "" {
		// Did the user provide an ENV?
		envConfig := os.Getenv("LAB337_ADMIN_CONFIG")
		if envConfig != "" {
			Config = envConfig
			explicit = true
		} else {
			// As fallback, search for config in home XDG-ish directory
			Config = "~/.config/lab337-admin.yaml"
		}
	}
	config, err := homedir.Expand(Config)
	if err != nil {
		return fmt.Errorf("lab337-admin: unable to expand homedir: %w", err)
	}
	Config = config

	if _, err := os.Stat(Config); errors.Is(err, os.ErrNotExist) {
		if explicit {
			return fmt.Errorf("lab337-admin: specified config file does not exist: %w", err)
		}
		// no config file is fine, flags and env will have to do
		return nil
	}

	yamlFile, err := os.ReadFile(Config)
	if err != nil {
		return fmt.Errorf("lab337-admin: error reading config file: %w", err)
	}

	// I'd like to bark if a user sets a flag we don't recognise:
	if err := yaml.UnmarshalStrict(yamlFile, &ParsedConfig); err != nil {
		return fmt.Errorf("lab337-admin: issue parsing config file: %w", err)
	}

	// Bind the current command's flags to the parsed config
	if err := bindFlags(cmd, ParsedConfig); err != nil {
		return fmt.Errorf("lab337-admin: failed to bind flags: %w", err)
	}

	return nil
}

type YamlConfig struct {
	WithVCR  *bool `yaml:"with-vcr"`
	Override *bool `yaml:"override"`

	API          string `yaml:"api"`
	Credentials  string `yaml:"credentials"`
	DriveRoot    string `yaml:"drive-root"`
	Organization string `yaml:"organization"`
	SiteIndex    string `yaml:"site-index"`
	Throttle     string `yaml:"throttle"`

	Workers int `yaml:"workers"`
}

// Bind each cobra flag to its associated config file entry
func bindFlags(cmd *cobra.Command, v YamlConfig) error {
	for _, field := range structs.Fields(v) {
		key := field.Tag("yaml")
		if key == "" {
			return fmt.Errorf("lab337-admin: could not retrieve struct tag 'yaml'")
		}
		if flag := cmd.Flag(key); flag == nil {
			// hmm... the flag is unknown.  but that can legitimately happen if you're running
			// e.g. `sites export` which has no `override` flag but your YAML file does
			// define that flag...
			continue
		}
		if !cmd.Flags().Changed(key) {
			switch field.Kind() {
			case reflect.Ptr:
				// err, this is crappy, but i know YamlConfig only uses pointers for bools.....
				b, ok := field.Value().(*bool)
				if !ok {
					return fmt.Errorf("lab337-admin: found unrecognised field: %+v", field)
				}
				if b != nil {
					cmd.Flags().Set(key, fmt.Sprintf("%v", *b))
				}

			case reflect.String:
				s, ok := field.Value().(string)
				if !ok {
					return fmt.Errorf("lab337-admin: found unrecognised field: %+v", field)
				}
				if s != "" {
					cmd.Flags().Set(key, s)
				}

			case reflect.Int:
				n, ok := field.Value().(int)
				if !ok {
					return fmt.Errorf("lab337-admin: found unrecognised field: %+v", field)
				}
				if n != 0 {
					cmd.Flags().Set(key, fmt.Sprintf("%d", n))
				}

			default:
				return fmt.Errorf("lab337-admin: found unrecognised field: %+v", field)
			}
		}
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Flags are only available after (or inside, presumably) the .Execute() thing.
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("lab337-admin: execution error: %w", err)
	}

	return nil
}
