package planner

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/msoren/trip-atlas/internal/domain"
	"github.com/msoren/trip-atlas/internal/itinerary"
)

// CreatePOI adds a new POI from an external search result. The id is a slug
// of the name plus a short hash salt derived from name, coordinates, and
// the current time; on the (unlikely) collision with an existing id the
// salt is recomputed with fresh UUID entropy until it is free.
//
// The record is persisted before the POI enters in-memory state, so a
// persistence failure leaves the state untouched.
func (p *Planner) CreatePOI(ctx context.Context, name, location string, pos domain.Position) (domain.POI, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.POI{}, fmt.Errorf("planner.Planner.CreatePOI: name is required: %w", domain.ErrValidation)
	}

	p.mu.Lock()
	id := newPOIID(name, pos, p.state.POIs)
	p.mu.Unlock()

	poi := domain.POI{
		ID:       id,
		Key:      itinerary.POIKey(id),
		Name:     name,
		Location: strings.TrimSpace(location),
		Position: pos,
	}

	if err := p.store.UpsertRecord(ctx, poiRecord(poi)); err != nil {
		return domain.POI{}, fmt.Errorf("planner.Planner.CreatePOI: %w", err)
	}

	p.mu.Lock()
	p.state.POIs[id] = poi
	p.planned = itinerary.BuildPlannedDates(p.state.Days)
	p.mu.Unlock()
	p.notify()

	return poi, nil
}

// newPOIID generates a collision-free POI id: slug + "-" + 6-hex-char salt.
// existing is consulted under the planner lock, so two concurrent creates
// cannot race to the same id.
func newPOIID(name string, pos domain.Position, existing map[string]domain.POI) string {
	slug := slugify(name)
	if slug == "" {
		slug = "poi"
	}

	seed := fmt.Sprintf("%s|%.6f|%.6f|%d", name, pos.Lat, pos.Lng, time.Now().UnixNano())
	for {
		id := slug + "-" + shortHash(seed)
		if _, taken := existing[id]; !taken {
			return id
		}
		seed += "|" + uuid.NewString()
	}
}

// slugify lowercases the name and collapses every non-alphanumeric run into
// a single hyphen.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

func shortHash(seed string) string {
	sum := sha1.Sum([]byte(seed))
	return hex.EncodeToString(sum[:3])
}
