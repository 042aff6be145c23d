package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trondarild/local-tools/internal/pdfmeta"
)

func init() {
	rootCmd.AddCommand(doiCmd)
}

var doiCmd = &cobra.Command{
	Use:   "doi <file.pdf>",
	Short: "Extract a DOI from a paper PDF",
	Long: `Scan the first pages of a paper PDF for a DOI.

Useful when adding a paper to the bibliography by hand.

Example:
  citemd doi smith2020.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runDOI,
}

// DOIResponse is the JSON response for the doi command.
type DOIResponse struct {
	Path string `json:"path"`
	DOI  string `json:"doi,omitempty"`
}

func runDOI(cmd *cobra.Command, args []string) error {
	path := args[0]

	doi, err := pdfmeta.ExtractDOI(path)
	if err != nil {
		exitWithError(ExitError, "reading PDF %s: %v", path, err)
	}
	if doi == "" {
		exitWithError(ExitDataError, "no DOI found in %s", path)
	}

	if humanOutput {
		fmt.Println(doi)
		return nil
	}
	return outputJSON(DOIResponse{Path: path, DOI: doi})
}
