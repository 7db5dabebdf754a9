package focus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msoren/trip-atlas/internal/domain"
	"github.com/msoren/trip-atlas/internal/focus"
	"github.com/msoren/trip-atlas/internal/itinerary"
)

// tripState builds a three-day itinerary used across the engine tests:
// arrive at Osaka via the airport, move to Kyoto, fly home from Kyoto.
func tripState() *itinerary.State {
	return &itinerary.State{
		Stops: []domain.Stop{
			{ID: "osaka", Name: "Osaka", Position: domain.Position{Lat: 34.6937, Lng: 135.5023}},
			{ID: "kyoto", Name: "Kyoto", Position: domain.Position{Lat: 35.0116, Lng: 135.7681}},
		},
		POIs: map[string]domain.POI{
			"kix":           {ID: "kix", Name: "Kansai Airport", Position: domain.Position{Lat: 34.4342, Lng: 135.2328}},
			"fushimi-inari": {ID: "fushimi-inari", Position: domain.Position{Lat: 34.9671, Lng: 135.7727}},
		},
		Days: []domain.Day{
			{ID: "1", Date: "25 Apr 2026", StopID: "osaka", POIIDs: []string{"kix"}},
			{ID: "2", Date: "26 Apr 2026", StopID: "kyoto", POIIDs: []string{"fushimi-inari"}},
			{ID: "3", Date: "27 Apr 2026", StopID: "kyoto", POIIDs: []string{"kix"}},
		},
	}
}

func TestTransitLeg_FirstDayAirportArrival(t *testing.T) {
	e := focus.NewEngine(tripState(), "kix")

	leg := e.TransitLeg(0)

	require.NotNil(t, leg)
	assert.Equal(t, domain.PlaceRef{Kind: domain.KindPOI, ID: "kix"}, leg.From.PlaceRef)
	assert.Equal(t, domain.PlaceRef{Kind: domain.KindStop, ID: "osaka"}, leg.To.PlaceRef)
}

func TestTransitLeg_LastDayAirportDeparture(t *testing.T) {
	e := focus.NewEngine(tripState(), "kix")

	leg := e.TransitLeg(2)

	require.NotNil(t, leg)
	assert.Equal(t, domain.PlaceRef{Kind: domain.KindStop, ID: "kyoto"}, leg.From.PlaceRef)
	assert.Equal(t, domain.PlaceRef{Kind: domain.KindPOI, ID: "kix"}, leg.To.PlaceRef)
}

func TestTransitLeg_StopChange(t *testing.T) {
	e := focus.NewEngine(tripState(), "kix")

	leg := e.TransitLeg(1)

	require.NotNil(t, leg)
	assert.Equal(t, domain.PlaceRef{Kind: domain.KindStop, ID: "osaka"}, leg.From.PlaceRef)
	assert.Equal(t, domain.PlaceRef{Kind: domain.KindStop, ID: "kyoto"}, leg.To.PlaceRef)
}

func TestTransitLeg_SameStop_NoLeg(t *testing.T) {
	st := tripState()
	st.Days[2].POIIDs = nil // no airport on the last day

	e := focus.NewEngine(st, "kix")

	assert.Nil(t, e.TransitLeg(2), "staying at the same stop has no leg")
}

func TestTransitLeg_MidItineraryAirportIgnored(t *testing.T) {
	st := tripState()
	// The airport on a middle day does not trigger the special case; the
	// stop change rule applies instead.
	st.Days[1].POIIDs = append(st.Days[1].POIIDs, "kix")

	e := focus.NewEngine(st, "kix")
	leg := e.TransitLeg(1)

	require.NotNil(t, leg)
	assert.Equal(t, domain.KindStop, leg.From.Kind)
	assert.Equal(t, domain.KindStop, leg.To.Kind)
}

func TestTransitLeg_AirportWithoutResolvableStop(t *testing.T) {
	st := tripState()
	st.Days[0].StopID = "unknown"

	e := focus.NewEngine(st, "kix")

	assert.Nil(t, e.TransitLeg(0), "unresolvable stop disables the airport case")
}

func TestTransitLeg_NoAirportConfigured(t *testing.T) {
	e := focus.NewEngine(tripState(), "")

	assert.Nil(t, e.TransitLeg(0))
}

func TestTransitLeg_UnresolvableStopChange(t *testing.T) {
	st := tripState()
	st.Days[1].StopID = "ghost"
	st.Days[1].POIIDs = nil

	e := focus.NewEngine(st, "kix")

	assert.Nil(t, e.TransitLeg(1), "unknown stop contributes nothing")
}

func TestTransitLeg_OutOfRange(t *testing.T) {
	e := focus.NewEngine(tripState(), "kix")

	assert.Nil(t, e.TransitLeg(-1))
	assert.Nil(t, e.TransitLeg(3))
}

func TestFocusPoints_StopPOIsAndLeg(t *testing.T) {
	e := focus.NewEngine(tripState(), "kix")

	points := e.FocusPoints(1)

	// Kyoto (stop), Fushimi Inari (POI), Osaka (leg origin). Kyoto appears
	// once even though it is both the stop and the leg destination.
	assert.Len(t, points, 3)
}

func TestFocusPoints_DeduplicatesAtSixDecimals(t *testing.T) {
	st := tripState()
	// A POI sitting exactly on the stop (to 6 decimals) collapses into it.
	st.POIs["clone"] = domain.POI{ID: "clone", Position: domain.Position{Lat: 35.0116, Lng: 135.7681}}
	st.Days[1].POIIDs = []string{"clone"}

	e := focus.NewEngine(st, "")
	points := e.FocusPoints(1)

	assert.Len(t, points, 2, "stop+clone dedupe to one point, plus the leg origin")
}

func TestFocusPoints_SkipsMissingReferences(t *testing.T) {
	st := &itinerary.State{
		POIs: map[string]domain.POI{},
		Days: []domain.Day{{ID: "1", StopID: "ghost", POIIDs: []string{"phantom"}}},
	}

	e := focus.NewEngine(st, "")

	assert.Empty(t, e.FocusPoints(0))
}

func TestFocusPoints_OutOfRange(t *testing.T) {
	e := focus.NewEngine(tripState(), "kix")

	assert.Nil(t, e.FocusPoints(99))
}
