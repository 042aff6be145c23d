package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trondarild/local-tools/internal/style"
)

func init() {
	rootCmd.AddCommand(stylesCmd)
}

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the registered citation styles",
	Args:  cobra.NoArgs,
	RunE:  runStyles,
}

// StylesResponse lists the registered style names.
type StylesResponse struct {
	Styles []string `json:"styles"`
}

func runStyles(cmd *cobra.Command, args []string) error {
	names := style.NewRegistry().Names()

	if humanOutput {
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}
	return outputJSON(StylesResponse{Styles: names})
}
