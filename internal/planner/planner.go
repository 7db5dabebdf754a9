// Package planner owns the itinerary application state and every write to
// it. All mutations are optimistic: apply in memory, persist through the
// storage contract, and restore the pre-image if persistence fails, so a
// reader never observes a state that cannot be rolled forward or back.
package planner

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/msoren/trip-atlas/internal/domain"
	"github.com/msoren/trip-atlas/internal/itinerary"
)

// Store is the persistence contract the planner depends on. The storage
// HTTP client satisfies it in production; tests inject a function-field mock.
type Store interface {
	ListCollection(ctx context.Context) ([]domain.Record, error)
	UpsertRecord(ctx context.Context, record domain.Record) error
}

// RenderFunc receives a state snapshot and the rebuilt planned-dates index
// after every committed mutation or refresh. The snapshot is a deep copy —
// renderers can hold it across later mutations.
type RenderFunc func(state itinerary.State, planned *itinerary.PlannedDates)

// Planner is the single controller that owns stops, POIs, and days.
type Planner struct {
	store         Store
	defaultCenter domain.Position

	mu         sync.Mutex
	state      itinerary.State
	planned    *itinerary.PlannedDates
	refreshSeq int64
	// inflight maps POI id to the content fingerprint of a save that has
	// been issued but not yet confirmed, so identical rapid-fire edits
	// collapse into one request.
	inflight map[string]string

	onRender RenderFunc
}

// New constructs a Planner with an empty state.
func New(store Store, defaultCenter domain.Position) *Planner {
	return &Planner{
		store:         store,
		defaultCenter: defaultCenter,
		state:         itinerary.State{POIs: map[string]domain.POI{}},
		planned:       itinerary.BuildPlannedDates(nil),
		inflight:      map[string]string{},
	}
}

// OnRender registers the render hook. Pass nil to disable.
func (p *Planner) OnRender(fn RenderFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onRender = fn
}

// Snapshot returns a deep copy of the current state.
func (p *Planner) Snapshot() itinerary.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Clone()
}

// PlannedDates returns the current planned-dates index. The index is
// immutable once built; mutations replace it wholesale.
func (p *Planner) PlannedDates() *itinerary.PlannedDates {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.planned
}

// Refresh reloads the full collection and rebuilds the state.
//
// Refreshes are guarded by a monotonically increasing sequence: if a newer
// refresh starts before this one's response arrives, this one's result is
// discarded on arrival. Last-started wins, not last-arrived.
func (p *Planner) Refresh(ctx context.Context) error {
	p.mu.Lock()
	p.refreshSeq++
	seq := p.refreshSeq
	p.mu.Unlock()

	records, err := p.store.ListCollection(ctx)

	p.mu.Lock()
	if seq != p.refreshSeq {
		p.mu.Unlock()
		return nil // superseded; discard result and error alike
	}
	if err != nil {
		p.mu.Unlock()
		return fmt.Errorf("planner.Planner.Refresh: %w", err)
	}
	p.state = itinerary.Build(records, p.defaultCenter)
	p.planned = itinerary.BuildPlannedDates(p.state.Days)
	p.mu.Unlock()

	p.notify()
	return nil
}

// AddPOIToDay appends a POI to a day's set and persists the day record.
// Blank and already-present ids are silent no-ops; an unknown POI id
// reports domain.ErrNotFound so the caller can show a status message.
func (p *Planner) AddPOIToDay(ctx context.Context, dayIndex int, poiID string) error {
	poiID = strings.TrimSpace(poiID)
	if poiID == "" {
		return nil
	}

	p.mu.Lock()
	if dayIndex < 0 || dayIndex >= len(p.state.Days) {
		p.mu.Unlock()
		return fmt.Errorf("planner.Planner.AddPOIToDay: day %d: %w", dayIndex, domain.ErrNotFound)
	}
	if _, ok := p.state.POIByID(poiID); !ok {
		p.mu.Unlock()
		return fmt.Errorf("planner.Planner.AddPOIToDay: unknown poi %q: %w", poiID, domain.ErrNotFound)
	}
	day := &p.state.Days[dayIndex]
	if day.HasPOI(poiID) {
		p.mu.Unlock()
		return nil
	}

	snapshot := day.Clone()
	day.POIIDs = append(day.POIIDs, poiID)
	rec := dayRecord(*day)
	p.mu.Unlock()

	if err := p.store.UpsertRecord(ctx, rec); err != nil {
		p.restoreDay(dayIndex, snapshot)
		return fmt.Errorf("planner.Planner.AddPOIToDay: %w", err)
	}

	p.commitDays()
	return nil
}

// RemovePOIFromDay removes a POI from a day's set and persists the day
// record. Removing an id that is not present is a silent no-op.
func (p *Planner) RemovePOIFromDay(ctx context.Context, dayIndex int, poiID string) error {
	poiID = strings.TrimSpace(poiID)
	if poiID == "" {
		return nil
	}

	p.mu.Lock()
	if dayIndex < 0 || dayIndex >= len(p.state.Days) {
		p.mu.Unlock()
		return fmt.Errorf("planner.Planner.RemovePOIFromDay: day %d: %w", dayIndex, domain.ErrNotFound)
	}
	day := &p.state.Days[dayIndex]
	if !day.HasPOI(poiID) {
		p.mu.Unlock()
		return nil
	}

	snapshot := day.Clone()
	next := make([]string, 0, len(day.POIIDs)-1)
	for _, id := range day.POIIDs {
		if id != poiID {
			next = append(next, id)
		}
	}
	day.POIIDs = next
	rec := dayRecord(*day)
	p.mu.Unlock()

	if err := p.store.UpsertRecord(ctx, rec); err != nil {
		p.restoreDay(dayIndex, snapshot)
		return fmt.Errorf("planner.Planner.RemovePOIFromDay: %w", err)
	}

	p.commitDays()
	return nil
}

// SetDaySummary replaces a day's summary and persists it. When the trimmed
// new value equals the trimmed current value nothing is sent.
func (p *Planner) SetDaySummary(ctx context.Context, dayIndex int, summary string) error {
	summary = strings.TrimSpace(summary)

	p.mu.Lock()
	if dayIndex < 0 || dayIndex >= len(p.state.Days) {
		p.mu.Unlock()
		return fmt.Errorf("planner.Planner.SetDaySummary: day %d: %w", dayIndex, domain.ErrNotFound)
	}
	day := &p.state.Days[dayIndex]
	if summary == strings.TrimSpace(day.Summary) {
		p.mu.Unlock()
		return nil
	}

	snapshot := day.Clone()
	day.Summary = summary
	rec := dayRecord(*day)
	p.mu.Unlock()

	if err := p.store.UpsertRecord(ctx, rec); err != nil {
		p.restoreDay(dayIndex, snapshot)
		return fmt.Errorf("planner.Planner.SetDaySummary: %w", err)
	}

	p.commitDays()
	return nil
}

// POIUpdate carries a partial edit of a POI. Nil fields keep their current
// value. Name, Details, and Location are trimmed before comparison.
type POIUpdate struct {
	Name     *string
	Details  *string
	Location *string
	Lat      *float64
	Lng      *float64
}

// UpdatePOI applies a partial edit as a single upsert, but only when at
// least one field actually changed from the in-memory value. Identical
// in-flight saves are coalesced by a content fingerprint so rapid repeated
// edits of the same values issue one request.
func (p *Planner) UpdatePOI(ctx context.Context, poiID string, upd POIUpdate) error {
	p.mu.Lock()
	poi, ok := p.state.POIByID(poiID)
	if !ok {
		p.mu.Unlock()
		return fmt.Errorf("planner.Planner.UpdatePOI: unknown poi %q: %w", poiID, domain.ErrNotFound)
	}

	next := poi
	if upd.Name != nil {
		next.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Details != nil {
		next.Details = strings.TrimSpace(*upd.Details)
	}
	if upd.Location != nil {
		next.Location = strings.TrimSpace(*upd.Location)
	}
	if upd.Lat != nil {
		next.Position.Lat = *upd.Lat
	}
	if upd.Lng != nil {
		next.Position.Lng = *upd.Lng
	}

	if next == poi {
		p.mu.Unlock()
		return nil
	}

	fingerprint := fmt.Sprintf("%s\n%s\n%s\n%v\n%v",
		next.Name, next.Details, next.Location, next.Position.Lat, next.Position.Lng)
	if p.inflight[poiID] == fingerprint {
		p.mu.Unlock()
		return nil
	}
	p.inflight[poiID] = fingerprint

	p.state.POIs[poiID] = next
	rec := poiRecord(next)
	p.mu.Unlock()

	err := p.store.UpsertRecord(ctx, rec)

	p.mu.Lock()
	if p.inflight[poiID] == fingerprint {
		delete(p.inflight, poiID)
	}
	if err != nil {
		// Restore the pre-image unless a later edit already replaced it.
		if cur, still := p.state.POIs[poiID]; still && cur == next {
			p.state.POIs[poiID] = poi
		}
		p.mu.Unlock()
		return fmt.Errorf("planner.Planner.UpdatePOI: %w", err)
	}
	p.mu.Unlock()

	p.notify()
	return nil
}

// ReassignPOIDays replaces the set of days a POI is scheduled on. Only the
// days in the symmetric difference between current and desired are touched;
// their records are persisted sequentially, and if any persist fails every
// affected day is restored to its pre-operation value — partial application
// is not a legal end state. The planned-dates index is rebuilt only after
// the whole batch succeeds.
func (p *Planner) ReassignPOIDays(ctx context.Context, poiID string, dayIndexes []int) error {
	poiID = strings.TrimSpace(poiID)

	p.mu.Lock()
	if _, ok := p.state.POIByID(poiID); !ok {
		p.mu.Unlock()
		return fmt.Errorf("planner.Planner.ReassignPOIDays: unknown poi %q: %w", poiID, domain.ErrNotFound)
	}

	desired := make(map[int]bool, len(dayIndexes))
	for _, i := range dayIndexes {
		if i >= 0 && i < len(p.state.Days) {
			desired[i] = true
		}
	}

	var affected []int
	snapshots := map[int]domain.Day{}
	for i := range p.state.Days {
		if desired[i] == p.state.Days[i].HasPOI(poiID) {
			continue
		}
		affected = append(affected, i)
		snapshots[i] = p.state.Days[i].Clone()
	}
	if len(affected) == 0 {
		p.mu.Unlock()
		return nil
	}

	records := make([]domain.Record, 0, len(affected))
	for _, i := range affected {
		day := &p.state.Days[i]
		if desired[i] {
			day.POIIDs = append(day.POIIDs, poiID)
		} else {
			next := make([]string, 0, len(day.POIIDs))
			for _, id := range day.POIIDs {
				if id != poiID {
					next = append(next, id)
				}
			}
			day.POIIDs = next
		}
		records = append(records, dayRecord(*day))
	}
	p.mu.Unlock()

	for _, rec := range records {
		if err := p.store.UpsertRecord(ctx, rec); err != nil {
			p.mu.Lock()
			for i, snap := range snapshots {
				p.state.Days[i] = snap
			}
			p.mu.Unlock()
			return fmt.Errorf("planner.Planner.ReassignPOIDays: %w", err)
		}
	}

	p.commitDays()
	return nil
}

// restoreDay puts one day back to its snapshot after a failed persist.
func (p *Planner) restoreDay(dayIndex int, snapshot domain.Day) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if dayIndex >= 0 && dayIndex < len(p.state.Days) {
		p.state.Days[dayIndex] = snapshot
	}
}

// commitDays rebuilds the planned-dates index and fires the render hook.
// Every successful mutation that touches day/POI associations ends here.
func (p *Planner) commitDays() {
	p.mu.Lock()
	p.planned = itinerary.BuildPlannedDates(p.state.Days)
	p.mu.Unlock()
	p.notify()
}

// notify calls the render hook with a snapshot. The hook runs without the
// planner lock held, so it is free to call back into Snapshot or mutations.
func (p *Planner) notify() {
	p.mu.Lock()
	fn := p.onRender
	var st itinerary.State
	var planned *itinerary.PlannedDates
	if fn != nil {
		st = p.state.Clone()
		planned = p.planned
	}
	p.mu.Unlock()

	if fn != nil {
		fn(st, planned)
	}
}

// dayRecord builds the storage record for a day. POI ids are always written
// as a JSON array even when the record originally used the comma-separated
// form.
func dayRecord(day domain.Day) domain.Record {
	poiIDs := make([]any, len(day.POIIDs))
	for i, id := range day.POIIDs {
		poiIDs[i] = id
	}
	return domain.Record{
		"key":     day.Key,
		"date":    day.Date,
		"stopId":  day.StopID,
		"summary": day.Summary,
		"poiIds":  poiIDs,
	}
}

// poiRecord builds the storage record for a POI. Position is written both
// flat (lat/lng) and nested, matching what existing readers accept.
func poiRecord(poi domain.POI) domain.Record {
	return domain.Record{
		"key":      poi.Key,
		"name":     poi.Name,
		"details":  poi.Details,
		"location": poi.Location,
		"lat":      poi.Position.Lat,
		"lng":      poi.Position.Lng,
		"position": map[string]any{"lat": poi.Position.Lat, "lng": poi.Position.Lng},
	}
}
