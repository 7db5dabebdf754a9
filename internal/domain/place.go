// Package domain contains the core data types for the trip-atlas application.
// This package has zero external dependencies and is imported by every other
// internal package (itinerary, focus, planner, repo, service, handler).
package domain

import "fmt"

// Position is a geographic point. Lng before Lat would match GeoJSON order,
// but Lat/Lng matches the storage record shape, so that wins here.
type Position struct {
	Lat float64
	Lng float64
}

// Key6 renders the position at 6 decimal places (roughly 10 cm).
// Two positions with equal Key6 values are treated as the same point
// when deduplicating focus points.
func (p Position) Key6() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lng, p.Lat)
}

// Stop represents a multi-night lodging base.
// Dates is a free-text label written by the traveller ("25–29 Apr"), not a
// parsed range; planned dates are derived from the Day list instead.
type Stop struct {
	ID       string
	Key      string
	Name     string
	City     string
	Dates    string
	Details  string
	Position Position
}

// POI represents a single place of interest, distinct from a Stop.
// Key echoes the storage key ("poi:<id>") so edits can be persisted
// without reconstructing it.
type POI struct {
	ID       string
	Key      string
	Name     string
	Location string
	Details  string
	Position Position
}
