// Package focus derives map focus state from the itinerary graph: the
// transit leg implied by a day, the set of points a "focus this day" camera
// move should frame, and the marker highlight / route projection that keeps
// a map surface in sync with the focused day.
package focus

import (
	"github.com/msoren/trip-atlas/internal/domain"
	"github.com/msoren/trip-atlas/internal/itinerary"
)

// Engine computes transit legs and focus points for a given itinerary state.
// airportPOI is the designated airport POI id used by the first/last-day
// special case; it is configuration, not a constant, so other itineraries
// can designate their own airport.
type Engine struct {
	state      *itinerary.State
	airportPOI string
}

// NewEngine constructs an Engine over the given state.
func NewEngine(state *itinerary.State, airportPOI string) *Engine {
	return &Engine{state: state, airportPOI: airportPOI}
}

// TransitLeg computes the leg for arriving at the given day, or nil when the
// day continues at the same base. Rules, in priority order:
//
//  1. Airport special case: on the first or last day of the itinerary, with
//     the designated airport POI scheduled and a resolvable stop, the leg is
//     airport→stop (first day) or stop→airport (last day).
//  2. Stop change: when the previous day has a different, resolvable stop,
//     the leg is previous stop → current stop.
//  3. Otherwise no leg.
//
// Missing references (a day naming an unknown stop or POI) contribute
// nothing; they never error.
func (e *Engine) TransitLeg(dayIndex int) *domain.TransitLeg {
	if dayIndex < 0 || dayIndex >= len(e.state.Days) {
		return nil
	}
	day := e.state.Days[dayIndex]
	lastIndex := len(e.state.Days) - 1

	if (dayIndex == 0 || dayIndex == lastIndex) && e.airportPOI != "" && day.HasPOI(e.airportPOI) {
		airport, haveAirport := e.state.POIByID(e.airportPOI)
		stop, haveStop := e.state.StopByID(day.StopID)
		if haveAirport && haveStop {
			airportEnd := domain.Endpoint{
				PlaceRef: domain.PlaceRef{Kind: domain.KindPOI, ID: airport.ID},
				Position: airport.Position,
			}
			stopEnd := domain.Endpoint{
				PlaceRef: domain.PlaceRef{Kind: domain.KindStop, ID: stop.ID},
				Position: stop.Position,
			}
			if dayIndex == 0 {
				return &domain.TransitLeg{From: airportEnd, To: stopEnd}
			}
			return &domain.TransitLeg{From: stopEnd, To: airportEnd}
		}
	}

	if dayIndex == 0 {
		return nil
	}
	prev := e.state.Days[dayIndex-1]
	if day.StopID == "" || prev.StopID == "" || day.StopID == prev.StopID {
		return nil
	}

	from, haveFrom := e.state.StopByID(prev.StopID)
	to, haveTo := e.state.StopByID(day.StopID)
	if !haveFrom || !haveTo {
		return nil
	}

	return &domain.TransitLeg{
		From: domain.Endpoint{
			PlaceRef: domain.PlaceRef{Kind: domain.KindStop, ID: from.ID},
			Position: from.Position,
		},
		To: domain.Endpoint{
			PlaceRef: domain.PlaceRef{Kind: domain.KindStop, ID: to.ID},
			Position: to.Position,
		},
	}
}

// FocusPoints collects every geographic point a camera move for the day
// should frame: the day's stop, each resolvable POI, and both endpoints of
// the transit leg (if any). Points whose coordinates match to 6 decimal
// places are deduplicated. An empty slice is a valid result — the caller
// treats it as a no-op focus.
func (e *Engine) FocusPoints(dayIndex int) []domain.Position {
	if dayIndex < 0 || dayIndex >= len(e.state.Days) {
		return nil
	}
	day := e.state.Days[dayIndex]

	var points []domain.Position
	if stop, ok := e.state.StopByID(day.StopID); ok {
		points = append(points, stop.Position)
	}
	for _, poiID := range day.POIIDs {
		if poi, ok := e.state.POIByID(poiID); ok {
			points = append(points, poi.Position)
		}
	}
	if leg := e.TransitLeg(dayIndex); leg != nil {
		points = append(points, leg.From.Position, leg.To.Position)
	}

	seen := make(map[string]bool, len(points))
	unique := points[:0]
	for _, p := range points {
		key := p.Key6()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, p)
	}
	return unique
}
