// Summary command edits a day's one-line summary.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <day> <text>...",
	Short: "Set a day's summary",
	Long: `Summary replaces a day's one-line summary. Extra arguments are joined
with spaces, so quoting is optional. Setting the summary a day already has
is a no-op.

Example:
  atlas summary 3 Castle in the morning, market after lunch`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	dayIndex, err := parseDayIndex(args[0])
	if err != nil {
		return err
	}

	p, err := newPlanner(cmd.Context())
	if err != nil {
		return err
	}

	text := strings.Join(args[1:], " ")
	if err := p.SetDaySummary(cmd.Context(), dayIndex, text); err != nil {
		return fmt.Errorf("set summary: %w", err)
	}
	fmt.Printf("Updated summary for day %d\n", dayIndex+1)
	return nil
}
