package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trondarild/local-tools/internal/storage"
)

var listLimit int

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum results to return (0 = all)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed bibliography entries",
	Long: `List all entries in the bibliography index.

Examples:
  citemd list
  citemd list --limit 20 --human`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// EntriesResponse carries entries returned by list/search.
type EntriesResponse struct {
	Total   int                    `json:"total"`
	Entries []storage.IndexedEntry `json:"entries"`
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenIndex(cfg)
	defer db.Close()

	entries, err := db.ListAll(listLimit)
	if err != nil {
		exitWithError(ExitError, "listing entries: %v", err)
	}

	total, _ := db.Count()

	if humanOutput {
		if len(entries) == 0 {
			fmt.Println("No entries in index (run 'citemd index' first)")
			return nil
		}
		if listLimit > 0 && listLimit < total {
			fmt.Printf("%d entries (showing first %d):\n\n", total, len(entries))
		} else {
			fmt.Printf("%d entries in index:\n\n", len(entries))
		}
		for _, entry := range entries {
			printEntrySummary(entry)
		}
		return nil
	}
	return outputJSON(EntriesResponse{Total: total, Entries: entries})
}

// printEntrySummary prints a one-entry summary in human format.
func printEntrySummary(entry storage.IndexedEntry) {
	fmt.Printf("%s (%s)\n", entry.Key, entry.Type)
	if entry.Title != "" {
		fmt.Printf("  %s\n", truncateForDisplay(entry.Title, 70))
	}
	if entry.Author != "" || entry.Year != "" {
		fmt.Printf("  %s %s\n", truncateForDisplay(entry.Author, 60), entry.Year)
	}
	fmt.Println()
}

// truncateForDisplay truncates a string to maxLen for display, adding "..." if truncated.
func truncateForDisplay(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
