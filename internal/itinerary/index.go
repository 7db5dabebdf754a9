package itinerary

import (
	"sort"

	"github.com/msoren/trip-atlas/internal/domain"
)

// PlannedDates is the derived index from stop/POI ids to the date labels on
// which they are scheduled. It is a pure function of the Day list: rebuild it
// in full after any day mutation, never patch it incrementally. Day counts
// are tens at most, so the full rebuild is cheap.
type PlannedDates struct {
	stopDates map[string]map[string]struct{}
	poiDates  map[string]map[string]struct{}
}

// BuildPlannedDates derives the index from the given days.
func BuildPlannedDates(days []domain.Day) *PlannedDates {
	idx := &PlannedDates{
		stopDates: map[string]map[string]struct{}{},
		poiDates:  map[string]map[string]struct{}{},
	}
	for _, day := range days {
		if day.StopID != "" {
			addDate(idx.stopDates, day.StopID, day.Date)
		}
		for _, poiID := range day.POIIDs {
			addDate(idx.poiDates, poiID, day.Date)
		}
	}
	return idx
}

func addDate(m map[string]map[string]struct{}, id, date string) {
	set, ok := m[id]
	if !ok {
		set = map[string]struct{}{}
		m[id] = set
	}
	set[date] = struct{}{}
}

// ForStop returns the date labels on which any day is based at the stop.
// The slice is lexically sorted so output is deterministic; callers that
// need calendar order pass it through FormatPlannedDatesShort, which
// re-sorts by parsed date anyway.
func (idx *PlannedDates) ForStop(stopID string) []string {
	return sortedDates(idx.stopDates[stopID])
}

// ForPOI returns the date labels on which any day includes the POI.
func (idx *PlannedDates) ForPOI(poiID string) []string {
	return sortedDates(idx.poiDates[poiID])
}

func sortedDates(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
