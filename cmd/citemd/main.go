// Package main provides the citemd CLI entry point.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/trondarild/local-tools/internal/config"
	"github.com/trondarild/local-tools/internal/storage"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether query commands use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "citemd",
	Short: "Markdown citation resolution toolkit",
	Long: `citemd resolves LaTeX-style \cite{...} markers in markdown documents.

Core features:
  - Numbered citation resolution against a BibTeX bibliography
  - Pluggable reference styles with a built-in numbered style
  - Reference formatting for explicit key lists
  - SQLite-backed bibliography index with full-text search
  - DOI extraction from paper PDFs
  - Markdown to MediaWiki heading conversion

Documents flow through stdin/stdout so citemd composes with shell
pipelines. Query commands output JSON by default for agent integration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// .env may carry CITEMD_BIB / CITEMD_STYLE defaults
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// mustLoadConfig loads global configuration, exits on error.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// mustOpenIndex opens the SQLite bibliography index, exits on error.
// The caller is responsible for calling Close() on the returned DB.
func mustOpenIndex(cfg *config.Config) *storage.DB {
	path := cfg.ResolveIndexPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		exitWithError(ExitError, "creating index directory: %v", err)
	}
	db, err := storage.OpenDB(path)
	if err != nil {
		exitWithError(ExitError, "opening index: %v", err)
	}
	return db
}

// resolveBibPath returns the bibliography path from args or config, exits
// with a usage error when neither supplies one.
func resolveBibPath(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	if path := cfg.DefaultBibPath(); path != "" {
		return path
	}
	exitWithError(ExitConfigError, "no bibliography file given and none configured (set bib_path or %s)", config.EnvBibPath)
	return ""
}
