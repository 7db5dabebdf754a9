// Package render provides a GeoJSON implementation of the focus.MapSurface
// drawing contract. Instead of driving a live map, it accumulates marker,
// highlight, and route state and serializes one FeatureCollection that any
// GL map (or geojson.io) can display directly.
package render

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/msoren/trip-atlas/internal/domain"
	"github.com/msoren/trip-atlas/internal/focus"
	"github.com/msoren/trip-atlas/internal/itinerary"
)

// GeoJSON is an always-ready MapSurface that renders to a writer on demand.
type GeoJSON struct {
	state   itinerary.State
	planned *itinerary.PlannedDates

	hiStops map[string]bool
	hiPOIs  map[string]bool
	route   *[2]domain.Position
	bounds  []domain.Position
}

var _ focus.MapSurface = (*GeoJSON)(nil)

// NewGeoJSON constructs an empty surface.
func NewGeoJSON() *GeoJSON {
	return &GeoJSON{hiStops: map[string]bool{}, hiPOIs: map[string]bool{}}
}

// SetPlaces registers the markers to render: every stop and POI in the
// state, annotated with its planned dates. Call after each state rebuild.
func (g *GeoJSON) SetPlaces(state itinerary.State, planned *itinerary.PlannedDates) {
	g.state = state
	g.planned = planned
}

// Ready always reports true: there is no asynchronous style to wait for.
func (g *GeoJSON) Ready() bool { return true }

// HighlightMarkers stores the complete highlight assignment.
func (g *GeoJSON) HighlightMarkers(stopIDs, poiIDs map[string]bool) {
	g.hiStops = stopIDs
	g.hiPOIs = poiIDs
}

// SetRoute stores a two-point route line.
func (g *GeoJSON) SetRoute(from, to domain.Position) {
	g.route = &[2]domain.Position{from, to}
}

// ClearRoute removes the route line.
func (g *GeoJSON) ClearRoute() { g.route = nil }

// FitBounds records the points to derive the output bbox from.
// Padding has no meaning for a serialized document and is ignored.
func (g *GeoJSON) FitBounds(points []domain.Position, _ int) {
	g.bounds = points
}

// EaseTo collapses the bbox onto a single center point.
func (g *GeoJSON) EaseTo(center domain.Position, _ float64) {
	g.bounds = []domain.Position{center}
}

type feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   geometry       `json:"geometry"`
}

type geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

type featureCollection struct {
	Type     string    `json:"type"`
	BBox     []float64 `json:"bbox,omitempty"`
	Features []feature `json:"features"`
}

// Encode writes the accumulated state as a GeoJSON FeatureCollection.
// Stops come first in itinerary order, then POIs, then the route line.
func (g *GeoJSON) Encode(w io.Writer) error {
	fc := featureCollection{Type: "FeatureCollection", Features: []feature{}}

	for i, stop := range g.state.Stops {
		props := map[string]any{
			"kind":        "stop",
			"id":          stop.ID,
			"name":        stop.Name,
			"city":        stop.City,
			"order":       i + 1,
			"highlighted": g.hiStops[stop.ID],
		}
		if g.planned != nil {
			props["planned"] = itinerary.FormatPlannedDatesShort(g.planned.ForStop(stop.ID))
		}
		fc.Features = append(fc.Features, pointFeature(stop.Position, props))
	}

	// Map iteration order is random; render POIs in stable id order.
	for _, id := range sortedIDs(g.state.POIs) {
		poi := g.state.POIs[id]
		props := map[string]any{
			"kind":        "poi",
			"id":          poi.ID,
			"name":        poi.Name,
			"highlighted": g.hiPOIs[poi.ID],
		}
		if g.planned != nil {
			props["planned"] = itinerary.FormatPlannedDatesShort(g.planned.ForPOI(poi.ID))
		}
		fc.Features = append(fc.Features, pointFeature(poi.Position, props))
	}

	if g.route != nil {
		fc.Features = append(fc.Features, feature{
			Type:       "Feature",
			Properties: map[string]any{"kind": "transit"},
			Geometry: geometry{
				Type: "LineString",
				Coordinates: [][2]float64{
					{g.route[0].Lng, g.route[0].Lat},
					{g.route[1].Lng, g.route[1].Lat},
				},
			},
		})
	}

	fc.BBox = bbox(g.bounds)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fc)
}

func pointFeature(pos domain.Position, props map[string]any) feature {
	return feature{
		Type:       "Feature",
		Properties: props,
		Geometry:   geometry{Type: "Point", Coordinates: [2]float64{pos.Lng, pos.Lat}},
	}
}

func sortedIDs(pois map[string]domain.POI) []string {
	ids := make([]string, 0, len(pois))
	for id := range pois {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// bbox returns [minLng, minLat, maxLng, maxLat], or nil for no points.
func bbox(points []domain.Position) []float64 {
	if len(points) == 0 {
		return nil
	}
	out := []float64{points[0].Lng, points[0].Lat, points[0].Lng, points[0].Lat}
	for _, p := range points[1:] {
		if p.Lng < out[0] {
			out[0] = p.Lng
		}
		if p.Lat < out[1] {
			out[1] = p.Lat
		}
		if p.Lng > out[2] {
			out[2] = p.Lng
		}
		if p.Lat > out[3] {
			out[3] = p.Lat
		}
	}
	return out
}
