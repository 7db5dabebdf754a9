package planner

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/msoren/trip-atlas/internal/domain"
	"github.com/msoren/trip-atlas/internal/itinerary"
)

// csvHeaders defines the column names written as the first row of a CSV export.
var csvHeaders = []string{
	"day_id", "date", "stop_id", "stop_name", "summary",
	"poi_id", "poi_name", "lat", "lng",
}

// ExportRows flattens the itinerary into one row per (day, POI) pair.
// Days with no POIs contribute one row with empty POI fields. Missing
// references (a day naming an unknown stop or POI) render as the bare id
// with empty name/position rather than being dropped — the export is for
// eyeballing the data, including its inconsistencies.
func ExportRows(state itinerary.State) []domain.ExportRow {
	var rows []domain.ExportRow
	for _, day := range state.Days {
		base := domain.ExportRow{
			DayID:      day.ID,
			Date:       day.Date,
			StopID:     day.StopID,
			DaySummary: day.Summary,
		}
		if stop, ok := state.StopByID(day.StopID); ok {
			base.StopName = stop.Name
		}

		if len(day.POIIDs) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, poiID := range day.POIIDs {
			row := base
			row.POIID = poiID
			if poi, ok := state.POIByID(poiID); ok {
				row.POIName = poi.Name
				row.Lat = poi.Position.Lat
				row.Lng = poi.Position.Lng
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// WriteCSV encodes export rows as CSV with a header row.
func WriteCSV(w io.Writer, rows []domain.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return fmt.Errorf("planner.WriteCSV: %w", err)
	}
	for _, r := range rows {
		lat, lng := "", ""
		if r.POIID != "" && (r.Lat != 0 || r.Lng != 0) {
			lat = strconv.FormatFloat(r.Lat, 'f', -1, 64)
			lng = strconv.FormatFloat(r.Lng, 'f', -1, 64)
		}
		record := []string{
			r.DayID, r.Date, r.StopID, r.StopName, r.DaySummary,
			r.POIID, r.POIName, lat, lng,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("planner.WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("planner.WriteCSV: %w", err)
	}
	return nil
}
