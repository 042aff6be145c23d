package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trondarild/local-tools/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set global configuration values.

Usage:
  citemd config                      # Show all config
  citemd config bib-path             # Get specific value
  citemd config bib-path refs.bib    # Set value
  citemd config style numbered       # Set default style

Keys:
  bib-path    Default bibliography file
  style       Default citation style
  index-path  SQLite index location`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// ConfigResponse is the JSON view of the global config.
type ConfigResponse struct {
	BibPath   string `json:"bib_path,omitempty"`
	Style     string `json:"style,omitempty"`
	IndexPath string `json:"index_path,omitempty"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			fmt.Printf("bib-path:   %s\n", cfg.BibPath)
			fmt.Printf("style:      %s\n", cfg.Style)
			fmt.Printf("index-path: %s\n", cfg.IndexPath)
		} else {
			outputJSON(ConfigResponse{
				BibPath:   cfg.BibPath,
				Style:     cfg.Style,
				IndexPath: cfg.IndexPath,
			})
		}
		return nil
	}

	key := args[0]

	// One arg: get specific value
	if len(args) == 1 {
		value, err := configValue(cfg, key)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		if humanOutput {
			fmt.Println(value)
		} else {
			outputJSON(map[string]string{key: value})
		}
		return nil
	}

	// Two args: set value
	switch key {
	case "bib-path":
		cfg.BibPath = config.ExpandTilde(args[1])
	case "style":
		cfg.Style = args[1]
	case "index-path":
		cfg.IndexPath = config.ExpandTilde(args[1])
	default:
		exitWithError(ExitError, "unknown config key: %s", key)
	}

	if err := cfg.Save(); err != nil {
		exitWithError(ExitConfigError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Set %s = %s\n", key, args[1])
		return nil
	}
	return outputJSON(StatusResponse{Status: "updated", Path: config.Path()})
}

// configValue reads one config field by its CLI key name.
func configValue(cfg *config.Config, key string) (string, error) {
	switch key {
	case "bib-path":
		return cfg.BibPath, nil
	case "style":
		return cfg.Style, nil
	case "index-path":
		return cfg.IndexPath, nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}
