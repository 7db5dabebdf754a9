// Focus command renders one day's map view as GeoJSON.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msoren/trip-atlas/internal/focus"
	"github.com/msoren/trip-atlas/internal/itinerary"
	"github.com/msoren/trip-atlas/internal/render"
)

var focusOutput string

var focusCmd = &cobra.Command{
	Use:   "focus <day>",
	Short: "Render a day's focus view as GeoJSON",
	Long: `Focus renders the map view for one day: every stop and POI as point
features, with the focused day's stop and POIs marked highlighted, plus a
transit leg LineString when the day involves travel. The bbox covers the
focused day's points.

The output is a GeoJSON FeatureCollection, suitable for geojson.io or any
map renderer.

Example:
  atlas focus 3
  atlas focus 3 -o day3.geojson`,
	Args: cobra.ExactArgs(1),
	RunE: runFocus,
}

func init() {
	focusCmd.Flags().StringVarP(&focusOutput, "output", "o", "", "write GeoJSON to file instead of stdout")
}

func runFocus(cmd *cobra.Command, args []string) error {
	dayIndex, err := parseDayIndex(args[0])
	if err != nil {
		return err
	}

	p, err := newPlanner(cmd.Context())
	if err != nil {
		return err
	}
	state := p.Snapshot()

	if dayIndex >= len(state.Days) {
		return fmt.Errorf("day %d does not exist: itinerary has %d day(s)", dayIndex+1, len(state.Days))
	}

	surface := render.NewGeoJSON()
	surface.SetPlaces(state, itinerary.BuildPlannedDates(state.Days))

	engine := focus.NewEngine(&state, cfg.GetString(cfgKeyAirportPOI))
	projector := focus.NewProjector(surface, engine)
	projector.FocusDay(dayIndex)

	out := os.Stdout
	if focusOutput != "" {
		f, err := os.Create(focusOutput)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := surface.Encode(out); err != nil {
		return fmt.Errorf("encode GeoJSON: %w", err)
	}
	return nil
}
