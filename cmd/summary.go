package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evalizada/manat/internal/cli"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a one-shot budget summary",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	l := newLedger()

	fmt.Println()
	fmt.Println(cli.RenderSummary(l))

	return nil
}
