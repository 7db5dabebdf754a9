package domain

// ExportRow is a single row in the flattened itinerary export.
// It is a denormalized view: one row per (day, POI) pair, with day and stop
// fields repeated for every POI on that day. Days with no POIs yield one row
// with empty POI fields.
type ExportRow struct {
	// Day fields — repeated for every POI on the day.
	DayID      string
	Date       string
	StopID     string
	StopName   string
	DaySummary string

	// POI fields — zero values when the day has no POIs.
	POIID    string
	POIName  string
	Lat      float64
	Lng      float64
}
