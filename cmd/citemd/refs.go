package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trondarild/local-tools/internal/bibtex"
	"github.com/trondarild/local-tools/internal/cite"
	"github.com/trondarild/local-tools/internal/keylist"
	"github.com/trondarild/local-tools/internal/style"
)

func init() {
	rootCmd.AddCommand(refsCmd)
}

var refsCmd = &cobra.Command{
	Use:   "refs [bibfile] [style]",
	Short: "Format references for a newline-delimited key list",
	Long: `Format references for an explicit list of citation keys.

Reads one key per line from stdin (surrounding quotes are stripped, so
shell-quoted lists work), numbers them in list order, and prints one
formatted reference per line. Unknown keys warn on stderr and are skipped
without renumbering the rest.

Examples:
  echo smith2020 | citemd refs refs.bib numbered
  cut -d, -f1 keys.csv | citemd refs refs.bib`,
	Args: cobra.MaximumNArgs(2),
	RunE: runRefs,
}

func runRefs(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	bibPath := resolveBibPath(args, cfg)
	styleName := cfg.DefaultStyle()
	if len(args) > 1 {
		styleName = args[1]
	}

	registry := style.NewRegistry()
	if _, err := registry.Get(styleName); err != nil {
		fatal(ExitError, "%v", err)
	}

	entries, err := bibtex.ParseFile(bibPath, os.Stderr)
	if err != nil {
		fatal(ExitError, "%v", err)
	}

	keys, err := keylist.Read(os.Stdin)
	if err != nil {
		fatal(ExitError, "could not read from standard input: %v", err)
	}

	resolver := cite.NewResolver(entries, registry, os.Stderr)
	references, err := resolver.ForKeys(keys, styleName)
	if err != nil {
		fatal(ExitError, "%v", err)
	}

	if len(references) > 0 {
		fmt.Println(strings.Join(references, "\n"))
	}
	return nil
}
