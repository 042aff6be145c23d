package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trondarild/local-tools/internal/bibtex"
	"github.com/trondarild/local-tools/internal/cite"
	"github.com/trondarild/local-tools/internal/style"
)

func init() {
	rootCmd.AddCommand(citeCmd)
}

var citeCmd = &cobra.Command{
	Use:   "cite [bibfile] [style]",
	Short: "Resolve \\cite{...} markers in a markdown document",
	Long: `Resolve LaTeX-style \cite{key1,key2,...} markers in a markdown document.

Reads the document from stdin, replaces each marker with bracketed numbers
assigned by first appearance, and appends a "## References" section
formatted in the chosen style. Keys without a bibliography entry render
as "?" and produce a warning on stderr; they never stop processing.

Bibliography file and style default to the global config (or CITEMD_BIB
and CITEMD_STYLE) when omitted.

Examples:
  cat paper.md | citemd cite refs.bib numbered > resolved.md
  cat paper.md | citemd cite refs.bib`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCite,
}

func runCite(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	bibPath := resolveBibPath(args, cfg)
	styleName := cfg.DefaultStyle()
	if len(args) > 1 {
		styleName = args[1]
	}

	// Unknown style is a usage error, reported before any parsing.
	registry := style.NewRegistry()
	if _, err := registry.Get(styleName); err != nil {
		fatal(ExitError, "%v", err)
	}

	entries, err := bibtex.ParseFile(bibPath, os.Stderr)
	if err != nil {
		fatal(ExitError, "%v", err)
	}

	document, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal(ExitError, "could not read from standard input: %v", err)
	}

	resolver := cite.NewResolver(entries, registry, os.Stderr)
	result, err := resolver.Resolve(string(document), styleName)
	if err != nil {
		fatal(ExitError, "%v", err)
	}

	fmt.Println(result.Text)
	if len(result.References) > 0 {
		fmt.Println("\n\n## References")
		fmt.Println(strings.Join(result.References, "; "))
	}
	return nil
}
