package domain

import "slices"

// Day is one calendar day of the itinerary.
// Date is one of two accepted textual formats ("25 Apr 2026" or "2026-04-25").
// StopID may be empty when no lodging base is set for the day.
// POIIDs must never contain a Stop id; the state builder enforces this.
type Day struct {
	ID      string
	Key     string
	Date    string
	StopID  string
	Summary string
	POIIDs  []string
}

// HasPOI reports whether the given POI id is scheduled on this day.
func (d Day) HasPOI(id string) bool {
	return slices.Contains(d.POIIDs, id)
}

// Clone returns a deep copy of the day. Mutation snapshots rely on this so a
// rollback cannot alias the slice being modified.
func (d Day) Clone() Day {
	out := d
	out.POIIDs = slices.Clone(d.POIIDs)
	return out
}
