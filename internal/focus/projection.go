package focus

import "github.com/msoren/trip-atlas/internal/domain"

// MapSurface is the drawing contract the projector renders through.
// Defining it here — in the consumer package — keeps the projector testable
// with a fake and keeps the real renderer free to be anything that can draw
// markers and a line (a browser map, a GeoJSON file, a test recorder).
//
// Ready reports whether style-dependent layer operations can be applied.
// When it returns false the projector skips route updates without error;
// the owner calls Resync on the next ready signal.
type MapSurface interface {
	Ready() bool

	// HighlightMarkers assigns the complete highlight state for every
	// registered marker: a marker is highlighted iff its id is present in
	// the corresponding set. This is a total assignment, not a diff, so
	// repeated calls with the same sets are idempotent.
	HighlightMarkers(stopIDs, poiIDs map[string]bool)

	// SetRoute replaces the route line geometry with a two-point line and
	// makes the layer visible. ClearRoute empties the geometry and hides it.
	SetRoute(from, to domain.Position)
	ClearRoute()

	// FitBounds frames all given points with the given padding.
	// Implementations must treat an empty point list as a no-op.
	FitBounds(points []domain.Position, padding int)

	// EaseTo moves the viewport to a single center. zoom <= 0 keeps the
	// current zoom level.
	EaseTo(center domain.Position, zoom float64)
}

const focusPadding = 70

// Projector keeps a MapSurface consistent with the focused day. It owns the
// focused-day index so a late "style ready" signal can re-apply the same
// focus via Resync.
type Projector struct {
	surface MapSurface
	engine  *Engine
	focused int // -1 when nothing is focused
}

// NewProjector constructs a Projector. The engine can be swapped with
// SetEngine after every state rebuild; the focused day survives the swap.
func NewProjector(surface MapSurface, engine *Engine) *Projector {
	return &Projector{surface: surface, engine: engine, focused: -1}
}

// SetEngine replaces the engine after a state rebuild and re-applies the
// current focus against the new state.
func (p *Projector) SetEngine(engine *Engine) {
	p.engine = engine
	p.Resync()
}

// FocusedDay returns the focused day index, or -1.
func (p *Projector) FocusedDay() int { return p.focused }

// FocusDay highlights the day's markers, draws its transit leg, and frames
// its focus points. Out-of-range indexes clear the focus instead.
func (p *Projector) FocusDay(dayIndex int) {
	if dayIndex < 0 || dayIndex >= len(p.engine.state.Days) {
		p.ClearFocus()
		return
	}
	p.focused = dayIndex
	p.apply()

	if points := p.engine.FocusPoints(dayIndex); len(points) > 0 {
		p.surface.FitBounds(points, focusPadding)
	}
}

// ClearFocus turns every highlight off and removes the route line.
func (p *Projector) ClearFocus() {
	p.focused = -1
	p.apply()
}

// Resync re-applies the current focus state without moving the camera.
// Call it after a style (re)load: style reloads can drop the route layer,
// and a focus requested before the style finished loading was a no-op.
func (p *Projector) Resync() {
	if p.focused >= len(p.engine.state.Days) {
		p.focused = -1
	}
	p.apply()
}

// apply pushes the complete highlight and route state for the focused day.
// It is written as a total function of p.focused so that calling it twice
// in a row cannot flicker or accumulate.
func (p *Projector) apply() {
	stopIDs := map[string]bool{}
	poiIDs := map[string]bool{}
	var leg *domain.TransitLeg

	if p.focused >= 0 {
		day := p.engine.state.Days[p.focused]
		if day.StopID != "" {
			stopIDs[day.StopID] = true
		}
		for _, id := range day.POIIDs {
			poiIDs[id] = true
		}

		leg = p.engine.TransitLeg(p.focused)
		if leg != nil {
			for _, end := range []domain.Endpoint{leg.From, leg.To} {
				switch end.Kind {
				case domain.KindStop:
					stopIDs[end.ID] = true
				case domain.KindPOI:
					poiIDs[end.ID] = true
				}
			}
		}
	}

	p.surface.HighlightMarkers(stopIDs, poiIDs)

	// Route layers live in the map style; leave them alone until the style
	// is ready and rely on Resync to catch up.
	if !p.surface.Ready() {
		return
	}
	if leg == nil {
		p.surface.ClearRoute()
		return
	}
	p.surface.SetRoute(leg.From.Position, leg.To.Position)
}
