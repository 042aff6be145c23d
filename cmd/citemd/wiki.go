package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/trondarild/local-tools/internal/wiki"
)

func init() {
	rootCmd.AddCommand(wikiCmd)
}

var wikiCmd = &cobra.Command{
	Use:   "wiki",
	Short: "Convert Markdown headings to MediaWiki headings",
	Long: `Convert Markdown headings to MediaWiki headings, line by line.

"## Title" becomes "== Title =="; everything else passes through
untouched. Reads stdin, writes stdout.

Example:
  citemd cite refs.bib numbered < paper.md | citemd wiki > paper.wiki`,
	Args: cobra.NoArgs,
	RunE: runWiki,
}

func runWiki(cmd *cobra.Command, args []string) error {
	if err := wiki.Convert(os.Stdin, os.Stdout); err != nil {
		fatal(ExitError, "%v", err)
	}
	return nil
}
