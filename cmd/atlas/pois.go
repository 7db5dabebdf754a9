// Pois command lists points of interest.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/msoren/trip-atlas/internal/domain"
	"github.com/msoren/trip-atlas/internal/itinerary"
)

var poisCmd = &cobra.Command{
	Use:   "pois",
	Short: "List points of interest",
	Long: `Pois lists every point of interest with its location and the dates it is
planned on. Unassigned POIs show an empty PLANNED column.

Example:
  atlas pois
  atlas pois --json`,
	Args: cobra.NoArgs,
	RunE: runPOIs,
}

func runPOIs(cmd *cobra.Command, args []string) error {
	p, err := newPlanner(cmd.Context())
	if err != nil {
		return err
	}
	state := p.Snapshot()
	planned := p.PlannedDates()

	ids := make([]string, 0, len(state.POIs))
	for id := range state.POIs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if flagJSON {
		pois := make([]domain.POI, 0, len(ids))
		for _, id := range ids {
			pois = append(pois, state.POIs[id])
		}
		out, err := json.MarshalIndent(pois, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal pois: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if len(ids) == 0 {
		fmt.Println("No points of interest found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLOCATION\tPLANNED")
	for _, id := range ids {
		poi := state.POIs[id]
		dates := itinerary.FormatPlannedDatesShort(planned.ForPOI(id))
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", poi.ID, poi.Name, truncate(poi.Location, 40), dates)
	}
	w.Flush()

	fmt.Printf("Total: %d POI(s)\n", len(ids))
	return nil
}
