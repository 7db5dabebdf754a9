package itinerary

import (
	"sort"
	"strings"
	"time"

	"github.com/msoren/trip-atlas/internal/domain"
)

// State is the in-memory itinerary graph built from one full collection load.
// Stops and Days carry their load-time ordering (see Build); POIs are keyed
// by id. State is owned by the planner; nothing else mutates it.
type State struct {
	Stops []domain.Stop
	POIs  map[string]domain.POI
	Days  []domain.Day
}

// StopByID returns the stop with the given id.
func (s *State) StopByID(id string) (domain.Stop, bool) {
	for _, stop := range s.Stops {
		if stop.ID == id {
			return stop, true
		}
	}
	return domain.Stop{}, false
}

// POIByID returns the POI with the given id.
func (s State) POIByID(id string) (domain.POI, bool) {
	p, ok := s.POIs[id]
	return p, ok
}

// Clone returns a deep copy of the state. The planner hands clones to
// renderers so a concurrent mutation cannot be observed mid-write.
func (s *State) Clone() State {
	out := State{
		Stops: make([]domain.Stop, len(s.Stops)),
		POIs:  make(map[string]domain.POI, len(s.POIs)),
		Days:  make([]domain.Day, len(s.Days)),
	}
	copy(out.Stops, s.Stops)
	for id, p := range s.POIs {
		out.POIs[id] = p
	}
	for i, d := range s.Days {
		out.Days[i] = d.Clone()
	}
	return out
}

// Build transforms an unordered list of raw storage records into a State.
//
// Malformed records (missing key, unrecognized namespace) are dropped
// silently — a bad record never fails the whole load. A place record whose
// position cannot be determined gets defaultCenter instead.
//
// Post-passes enforce the stop/POI split: a Day's POI list never contains a
// stop id, and a POI whose id collides with a stop id is discarded in favor
// of the stop. Days are sorted ascending by parsed date (fallback: parsed
// id, then lexical id); stops are sorted by the earliest day that references
// them, with unreferenced stops last.
func Build(records []domain.Record, defaultCenter domain.Position) State {
	st := State{POIs: map[string]domain.POI{}}

	for _, rec := range records {
		key := rec.Key()
		if key == "" {
			continue
		}

		if ref, ok := ParsePlaceKey(key); ok {
			pos := positionFromRecord(rec, defaultCenter)
			name := rec.Str("name")
			if name == "" {
				name = ref.ID
			}

			switch ref.Kind {
			case domain.KindStop:
				st.Stops = append(st.Stops, domain.Stop{
					ID:       ref.ID,
					Key:      key,
					Name:     name,
					City:     rec.Str("city"),
					Dates:    rec.Str("dates"),
					Details:  rec.Str("details"),
					Position: pos,
				})
			case domain.KindPOI:
				st.POIs[ref.ID] = domain.POI{
					ID:       ref.ID,
					Key:      key,
					Name:     name,
					Location: rec.Str("location"),
					Details:  rec.Str("details"),
					Position: pos,
				}
			}
			continue
		}

		if id, ok := ParseDayKey(key); ok {
			date := rec.Str("date")
			if date == "" {
				// Legacy field name, then the key's own id ("day:2026-04-25").
				date = rec.Str("dateLabel")
			}
			if date == "" {
				date = id
			}
			stopID := rec.Str("stopId")
			if stopID == "" {
				stopID = rec.Str("stop_id")
			}

			ids := rec["poiIds"]
			if ids == nil {
				ids = rec["pois"]
			}
			if ids == nil {
				ids = rec["poi_ids"]
			}

			st.Days = append(st.Days, domain.Day{
				ID:      id,
				Key:     key,
				Date:    date,
				StopID:  stopID,
				Summary: rec.Str("summary"),
				POIIDs:  normalizeStringList(ids),
			})
		}
	}

	pruneStopIDsFromDays(&st)
	sortDays(st.Days)
	sortStops(st.Stops, st.Days)
	return st
}

// positionFromRecord reads lat/lng from the record's top-level fields, or
// from a nested "position" object as a fallback. Records with no resolvable
// position get the default whole-country center rather than failing.
func positionFromRecord(rec domain.Record, fallback domain.Position) domain.Position {
	lat, latOK := rec.Num("lat")
	lng, lngOK := rec.Num("lng")
	if latOK && lngOK {
		return domain.Position{Lat: lat, Lng: lng}
	}
	if nested, ok := rec["position"].(map[string]any); ok {
		lat, latOK = domain.Record(nested).Num("lat")
		lng, lngOK = domain.Record(nested).Num("lng")
		if latOK && lngOK {
			return domain.Position{Lat: lat, Lng: lng}
		}
	}
	return fallback
}

// normalizeStringList accepts either a JSON array or a comma-separated
// string and returns trimmed, non-empty entries.
func normalizeStringList(v any) []string {
	var raw []string
	switch vv := v.(type) {
	case []any:
		for _, item := range vv {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	case []string:
		raw = vv
	case string:
		raw = strings.Split(vv, ",")
	default:
		return nil
	}

	var out []string
	for _, s := range raw {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// pruneStopIDsFromDays enforces that stops are not POIs: any day POI entry
// equal to a stop id (or written as a full "stop:" key) is removed, and any
// POI whose id collides with a stop id is dropped from the POI map.
func pruneStopIDsFromDays(st *State) {
	stopIDs := make(map[string]bool, len(st.Stops))
	for _, s := range st.Stops {
		if s.ID != "" {
			stopIDs[s.ID] = true
		}
	}

	for i, day := range st.Days {
		clean := day.POIIDs[:0]
		for _, id := range day.POIIDs {
			if ref, ok := ParsePlaceKey(id); ok && ref.Kind == domain.KindStop {
				continue
			}
			if stopIDs[id] {
				continue
			}
			clean = append(clean, id)
		}
		st.Days[i].POIIDs = clean
	}

	for id := range st.POIs {
		if stopIDs[id] {
			delete(st.POIs, id)
		}
	}
}

// dayDate resolves a day's sort date from its label, falling back to its id
// (day ids are commonly ISO dates).
func dayDate(d domain.Day) (time.Time, bool) {
	if t, ok := ParseDayDate(d.Date); ok {
		return t, true
	}
	return ParseDayDate(d.ID)
}

func sortDays(days []domain.Day) {
	sort.SliceStable(days, func(i, j int) bool {
		di, iOK := dayDate(days[i])
		dj, jOK := dayDate(days[j])
		switch {
		case iOK && jOK:
			return di.Before(dj)
		case iOK:
			return true
		case jOK:
			return false
		default:
			return days[i].ID < days[j].ID
		}
	})
}

func sortStops(stops []domain.Stop, days []domain.Day) {
	firstDate := make(map[string]time.Time)
	for _, day := range days {
		if day.StopID == "" {
			continue
		}
		d, ok := dayDate(day)
		if !ok {
			continue
		}
		if cur, seen := firstDate[day.StopID]; !seen || d.Before(cur) {
			firstDate[day.StopID] = d
		}
	}

	sort.SliceStable(stops, func(i, j int) bool {
		di, iOK := firstDate[stops[i].ID]
		dj, jOK := firstDate[stops[j].ID]
		switch {
		case iOK && jOK:
			if !di.Equal(dj) {
				return di.Before(dj)
			}
			return stops[i].ID < stops[j].ID
		case iOK:
			return true
		case jOK:
			return false
		default:
			return stops[i].ID < stops[j].ID
		}
	})
}
