// Export command writes the itinerary as CSV.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msoren/trip-atlas/internal/planner"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the itinerary as CSV",
	Long: `Export writes the itinerary as CSV, one row per day/POI pair. Days with
no POIs still get a row, so every day appears in the output.

Example:
  atlas export
  atlas export -o trip.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write CSV to file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	p, err := newPlanner(cmd.Context())
	if err != nil {
		return err
	}

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	rows := planner.ExportRows(p.Snapshot())
	if err := planner.WriteCSV(out, rows); err != nil {
		return fmt.Errorf("write CSV: %w", err)
	}
	return nil
}
