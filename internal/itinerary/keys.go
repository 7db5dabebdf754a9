// Package itinerary turns flat storage records into the in-memory itinerary
// graph (stops, POIs, days) and derives the planned-dates index from it.
// No business logic above this layer re-parses keys or dates.
package itinerary

import (
	"strings"

	"github.com/msoren/trip-atlas/internal/domain"
)

const (
	stopKeyPrefix = "stop:"
	poiKeyPrefix  = "poi:"
	dayKeyPrefix  = "day:"
)

// ParsePlaceKey interprets a storage key in the "stop:<id>" or "poi:<id>"
// namespace. The second return value is false for any other key, in which
// case the record is not a place and the caller tries ParseDayKey next.
func ParsePlaceKey(key string) (domain.PlaceRef, bool) {
	if id, ok := strings.CutPrefix(key, stopKeyPrefix); ok {
		return domain.PlaceRef{Kind: domain.KindStop, ID: id}, true
	}
	if id, ok := strings.CutPrefix(key, poiKeyPrefix); ok {
		return domain.PlaceRef{Kind: domain.KindPOI, ID: id}, true
	}
	return domain.PlaceRef{}, false
}

// ParseDayKey interprets a storage key in the "day:<id>" namespace.
// Returns the bare id and whether the key matched.
func ParseDayKey(key string) (string, bool) {
	return strings.CutPrefix(key, dayKeyPrefix)
}

// StopKey, POIKey, and DayKey build storage keys from bare ids.
// They are the inverse of the parse functions above.
func StopKey(id string) string { return stopKeyPrefix + id }

func POIKey(id string) string { return poiKeyPrefix + id }

func DayKey(id string) string { return dayKeyPrefix + id }
