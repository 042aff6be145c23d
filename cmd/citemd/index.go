package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/trondarild/local-tools/internal/bibtex"
)

func init() {
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [bibfile]",
	Short: "Rebuild the SQLite bibliography index",
	Long: `Parse a bibliography file and rebuild the SQLite index from it.

The .bib file stays the source of truth; the index is an ephemeral cache
used by list, search and get. Rebuilding replaces the previous contents.

Examples:
  citemd index refs.bib
  citemd index            # uses the configured bib_path`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	bibPath := resolveBibPath(args, cfg)

	entries, err := bibtex.ParseFile(bibPath, os.Stderr)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	db := mustOpenIndex(cfg)
	defer db.Close()

	count, err := db.Rebuild(entries)
	if err != nil {
		exitWithError(ExitError, "rebuilding index: %v", err)
	}

	if humanOutput {
		fmt.Printf("Indexed %d entries from %s\n", count, bibPath)
		return nil
	}
	return outputJSON(StatusResponse{Status: "indexed", Path: bibPath, Count: count})
}
