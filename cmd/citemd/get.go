package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Fetch one indexed entry by citation key",
	Long: `Fetch a single bibliography entry from the index.

Examples:
  citemd get smith2020
  citemd get smith2020 --human`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenIndex(cfg)
	defer db.Close()

	key := args[0]
	entry, err := db.GetByKey(key)
	if err != nil {
		exitWithError(ExitError, "fetching entry: %v", err)
	}
	if entry == nil {
		exitWithError(ExitDataError, "entry %q not found in index", key)
	}

	if humanOutput {
		fmt.Printf("%s (%s)\n", entry.Key, entry.Type)
		names := make([]string, 0, len(entry.Fields))
		for name := range entry.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %s: %s\n", name, entry.Fields[name])
		}
		return nil
	}
	return outputJSON(entry)
}
