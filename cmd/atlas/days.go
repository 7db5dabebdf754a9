// Days command lists the itinerary day by day.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List itinerary days in order",
	Long: `Days lists every day of the itinerary in chronological order, with the
day's stop, summary, and assigned points of interest.

The printed day numbers are what focus, add-poi, rm-poi, summary, and
set-days accept.

Example:
  atlas days
  atlas days --json`,
	Args: cobra.NoArgs,
	RunE: runDays,
}

func runDays(cmd *cobra.Command, args []string) error {
	p, err := newPlanner(cmd.Context())
	if err != nil {
		return err
	}
	state := p.Snapshot()

	if flagJSON {
		out, err := json.MarshalIndent(state.Days, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal days: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if len(state.Days) == 0 {
		fmt.Println("No days found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tDATE\tSTOP\tPOIS\tSUMMARY")
	for i, d := range state.Days {
		stopName := d.StopID
		if stop, ok := state.StopByID(d.StopID); ok {
			stopName = stop.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i+1,
			d.Date,
			stopName,
			strings.Join(d.POIIDs, ","),
			truncate(d.Summary, 50),
		)
	}
	w.Flush()

	fmt.Printf("Total: %d day(s)\n", len(state.Days))
	return nil
}

// truncate shortens s for table display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
