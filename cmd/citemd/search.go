package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trondarild/local-tools/internal/storage"
)

// DefaultSearchLimit bounds search output when --limit is not given.
const DefaultSearchLimit = 50

var (
	searchLimit int
	searchField string
)

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", DefaultSearchLimit, "Maximum results to return")
	searchCmd.Flags().StringVar(&searchField, "field", "", "Restrict search to one field (author, title, journal)")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over indexed entries",
	Long: `Search the bibliography index by title, author and journal.

Examples:
  citemd search "variational inference"
  citemd search Einstein --field author --human`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenIndex(cfg)
	defer db.Close()

	query := args[0]
	var entries []storage.IndexedEntry
	var err error
	if searchField != "" {
		entries, err = db.SearchField(searchField, query, searchLimit)
	} else {
		entries, err = db.Search(query, searchLimit)
	}
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}

	if humanOutput {
		if len(entries) == 0 {
			fmt.Printf("No entries match %q\n", query)
			return nil
		}
		fmt.Printf("%d entries match %q:\n\n", len(entries), query)
		for _, entry := range entries {
			printEntrySummary(entry)
		}
		return nil
	}
	return outputJSON(EntriesResponse{Total: len(entries), Entries: entries})
}
