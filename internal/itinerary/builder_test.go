package itinerary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msoren/trip-atlas/internal/domain"
	"github.com/msoren/trip-atlas/internal/itinerary"
)

var testCenter = domain.Position{Lat: 36.2048, Lng: 138.2529}

func stopRecord(id, name string, lat, lng float64) domain.Record {
	return domain.Record{"key": "stop:" + id, "name": name, "lat": lat, "lng": lng}
}

func dayRecord(id, date, stopID string, poiIDs ...any) domain.Record {
	return domain.Record{"key": "day:" + id, "date": date, "stopId": stopID, "poiIds": poiIDs}
}

func TestBuild_Basic(t *testing.T) {
	records := []domain.Record{
		stopRecord("osaka", "Osaka", 34.6937, 135.5023),
		{"key": "poi:kix", "name": "Kansai Airport", "lat": 34.4342, "lng": 135.2328, "location": "Izumisano"},
		dayRecord("2026-04-25", "25 Apr 2026", "osaka", "kix"),
	}

	st := itinerary.Build(records, testCenter)

	require.Len(t, st.Stops, 1)
	assert.Equal(t, "osaka", st.Stops[0].ID)
	assert.Equal(t, "stop:osaka", st.Stops[0].Key)

	poi, ok := st.POIByID("kix")
	require.True(t, ok)
	assert.Equal(t, "Kansai Airport", poi.Name)
	assert.Equal(t, "Izumisano", poi.Location)

	require.Len(t, st.Days, 1)
	assert.Equal(t, "25 Apr 2026", st.Days[0].Date)
	assert.Equal(t, "osaka", st.Days[0].StopID)
	assert.Equal(t, []string{"kix"}, st.Days[0].POIIDs)
}

func TestBuild_DropsKeylessAndUnknownNamespaces(t *testing.T) {
	records := []domain.Record{
		{"name": "no key at all"},
		{"key": "note:something"},
		{"key": ""},
		stopRecord("osaka", "Osaka", 1, 2),
	}

	st := itinerary.Build(records, testCenter)

	assert.Len(t, st.Stops, 1)
	assert.Empty(t, st.POIs)
	assert.Empty(t, st.Days)
}

func TestBuild_NameFallsBackToID(t *testing.T) {
	st := itinerary.Build([]domain.Record{{"key": "poi:kix"}}, testCenter)

	poi, ok := st.POIByID("kix")
	require.True(t, ok)
	assert.Equal(t, "kix", poi.Name)
}

func TestBuild_PositionFallbacks(t *testing.T) {
	records := []domain.Record{
		{"key": "poi:flat", "lat": 1.0, "lng": 2.0},
		{"key": "poi:nested", "position": map[string]any{"lat": 3.0, "lng": 4.0}},
		{"key": "poi:none"},
		{"key": "poi:partial", "lat": 5.0},
	}

	st := itinerary.Build(records, testCenter)

	assert.Equal(t, domain.Position{Lat: 1, Lng: 2}, st.POIs["flat"].Position)
	assert.Equal(t, domain.Position{Lat: 3, Lng: 4}, st.POIs["nested"].Position)
	assert.Equal(t, testCenter, st.POIs["none"].Position)
	assert.Equal(t, testCenter, st.POIs["partial"].Position, "lat without lng is unusable")
}

func TestBuild_DayFieldFallbacks(t *testing.T) {
	records := []domain.Record{
		{"key": "day:a", "dateLabel": "25 Apr 2026", "stop_id": "osaka", "pois": []any{"kix"}},
		{"key": "day:2026-04-26", "poi_ids": []any{"kix"}},
	}

	st := itinerary.Build(records, testCenter)

	require.Len(t, st.Days, 2)
	// Sorted: day "a" has a parseable label (25 Apr), the other falls back
	// to its id (26 Apr).
	assert.Equal(t, "25 Apr 2026", st.Days[0].Date)
	assert.Equal(t, "osaka", st.Days[0].StopID)
	assert.Equal(t, []string{"kix"}, st.Days[0].POIIDs)

	assert.Equal(t, "2026-04-26", st.Days[1].Date, "date falls back to the day id")
	assert.Equal(t, []string{"kix"}, st.Days[1].POIIDs)
}

func TestBuild_POIListFromCSVString(t *testing.T) {
	records := []domain.Record{
		{"key": "day:2026-04-25", "poiIds": "kix, fushimi-inari , ,"},
	}

	st := itinerary.Build(records, testCenter)

	require.Len(t, st.Days, 1)
	assert.Equal(t, []string{"kix", "fushimi-inari"}, st.Days[0].POIIDs)
}

func TestBuild_PrunesStopIDsFromDayPOIs(t *testing.T) {
	records := []domain.Record{
		stopRecord("osaka", "Osaka", 1, 2),
		{"key": "poi:kix"},
		// Day list polluted with the stop id and a full stop key.
		dayRecord("2026-04-25", "25 Apr 2026", "osaka", "osaka", "stop:osaka", "kix"),
	}

	st := itinerary.Build(records, testCenter)

	require.Len(t, st.Days, 1)
	assert.Equal(t, []string{"kix"}, st.Days[0].POIIDs)
}

func TestBuild_POIStopIDCollision_StopWins(t *testing.T) {
	records := []domain.Record{
		stopRecord("osaka", "Osaka", 1, 2),
		{"key": "poi:osaka", "name": "Osaka as POI"},
	}

	st := itinerary.Build(records, testCenter)

	require.Len(t, st.Stops, 1)
	_, ok := st.POIByID("osaka")
	assert.False(t, ok, "POI colliding with a stop id must be dropped")
}

func TestBuild_SortsDaysByDate(t *testing.T) {
	records := []domain.Record{
		dayRecord("c", "28 Apr 2026", ""),
		dayRecord("a", "25 Apr 2026", ""),
		dayRecord("z", "unparseable", ""),
		dayRecord("b", "2026-04-26", ""),
	}

	st := itinerary.Build(records, testCenter)

	require.Len(t, st.Days, 4)
	ids := []string{st.Days[0].ID, st.Days[1].ID, st.Days[2].ID, st.Days[3].ID}
	// Parseable dates ascending, unparseable last.
	assert.Equal(t, []string{"a", "b", "c", "z"}, ids)
}

func TestBuild_SortsStopsByFirstReferencingDay(t *testing.T) {
	records := []domain.Record{
		stopRecord("kyoto", "Kyoto", 1, 2),
		stopRecord("osaka", "Osaka", 3, 4),
		stopRecord("nara", "Nara", 5, 6), // never referenced
		dayRecord("2026-04-25", "25 Apr 2026", "osaka"),
		dayRecord("2026-04-27", "27 Apr 2026", "kyoto"),
	}

	st := itinerary.Build(records, testCenter)

	require.Len(t, st.Stops, 3)
	assert.Equal(t, "osaka", st.Stops[0].ID)
	assert.Equal(t, "kyoto", st.Stops[1].ID)
	assert.Equal(t, "nara", st.Stops[2].ID, "unreferenced stops sort last")
}

func TestState_Clone_IsDeep(t *testing.T) {
	st := itinerary.Build([]domain.Record{
		stopRecord("osaka", "Osaka", 1, 2),
		{"key": "poi:kix"},
		dayRecord("2026-04-25", "25 Apr 2026", "osaka", "kix"),
	}, testCenter)

	clone := st.Clone()
	clone.Days[0].POIIDs[0] = "mutated"
	clone.POIs["new"] = domain.POI{ID: "new"}

	assert.Equal(t, []string{"kix"}, st.Days[0].POIIDs, "clone must not share day POI slices")
	_, ok := st.POIByID("new")
	assert.False(t, ok, "clone must not share the POI map")
}

func TestBuildPlannedDates(t *testing.T) {
	days := []domain.Day{
		{ID: "1", Date: "25 Apr 2026", StopID: "osaka", POIIDs: []string{"kix"}},
		{ID: "2", Date: "26 Apr 2026", StopID: "osaka", POIIDs: []string{"kix", "castle"}},
		{ID: "3", Date: "28 Apr 2026", StopID: "kyoto"},
	}

	idx := itinerary.BuildPlannedDates(days)

	assert.Equal(t, []string{"25 Apr 2026", "26 Apr 2026"}, idx.ForStop("osaka"))
	assert.Equal(t, []string{"28 Apr 2026"}, idx.ForStop("kyoto"))
	assert.Equal(t, []string{"25 Apr 2026", "26 Apr 2026"}, idx.ForPOI("kix"))
	assert.Equal(t, []string{"26 Apr 2026"}, idx.ForPOI("castle"))
	assert.Nil(t, idx.ForPOI("unknown"))
	assert.Nil(t, idx.ForStop("unknown"))
}

func TestBuildPlannedDates_ShortFormatExample(t *testing.T) {
	days := []domain.Day{
		{ID: "1", Date: "25 Apr 2026", POIIDs: []string{"kix"}},
		{ID: "2", Date: "26 Apr 2026", POIIDs: []string{"kix"}},
		{ID: "3", Date: "28 Apr 2026", POIIDs: []string{"kix"}},
	}

	idx := itinerary.BuildPlannedDates(days)

	assert.Equal(t, "25–26 Apr / 28 Apr", itinerary.FormatPlannedDatesShort(idx.ForPOI("kix")))
}
