// Stops command lists the itinerary stops.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/msoren/trip-atlas/internal/itinerary"
)

var stopsCmd = &cobra.Command{
	Use:   "stops",
	Short: "List stops in itinerary order",
	Long: `Stops lists every stop in itinerary order, with the dates the stop is
planned for. Dates are compacted into ranges, e.g. "25–26 Apr / 28 Apr".

Example:
  atlas stops
  atlas stops --json`,
	Args: cobra.NoArgs,
	RunE: runStops,
}

func runStops(cmd *cobra.Command, args []string) error {
	p, err := newPlanner(cmd.Context())
	if err != nil {
		return err
	}
	state := p.Snapshot()
	planned := p.PlannedDates()

	if flagJSON {
		out, err := json.MarshalIndent(state.Stops, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal stops: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if len(state.Stops) == 0 {
		fmt.Println("No stops found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCITY\tPLANNED")
	for _, s := range state.Stops {
		dates := itinerary.FormatPlannedDatesShort(planned.ForStop(s.ID))
		if dates == "" {
			dates = s.Dates
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.City, dates)
	}
	w.Flush()

	fmt.Printf("Total: %d stop(s)\n", len(state.Stops))
	return nil
}
