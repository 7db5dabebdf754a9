package itinerary_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msoren/trip-atlas/internal/itinerary"
)

func TestParseDayDate_DayMonthYear(t *testing.T) {
	got, ok := itinerary.ParseDayDate("25 Apr 2026")

	require.True(t, ok)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.April, got.Month())
	assert.Equal(t, 25, got.Day())
	assert.Equal(t, 12, got.Hour(), "dates are pinned to noon")
}

func TestParseDayDate_CaseInsensitiveMonth(t *testing.T) {
	for _, label := range []string{"25 apr 2026", "25 APR 2026", "25 Apr 2026"} {
		_, ok := itinerary.ParseDayDate(label)
		assert.True(t, ok, "label %q should parse", label)
	}
}

func TestParseDayDate_ISO(t *testing.T) {
	got, ok := itinerary.ParseDayDate("2026-04-25")

	require.True(t, ok)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.April, got.Month())
	assert.Equal(t, 25, got.Day())
	assert.Equal(t, 12, got.Hour())
}

func TestParseDayDate_TrimsWhitespace(t *testing.T) {
	_, ok := itinerary.ParseDayDate("  25 Apr 2026  ")
	assert.True(t, ok)
}

func TestParseDayDate_Rejects(t *testing.T) {
	for _, label := range []string{
		"", "someday", "25 April 2026", "Apr 25 2026", "25/04/2026", "2026-4-25", "25 Xyz 2026",
	} {
		_, ok := itinerary.ParseDayDate(label)
		assert.False(t, ok, "label %q should not parse", label)
	}
}

func TestFormatPlannedDatesShort_SingleDay(t *testing.T) {
	assert.Equal(t, "25 Apr", itinerary.FormatPlannedDatesShort([]string{"25 Apr 2026"}))
}

func TestFormatPlannedDatesShort_RunAndGap(t *testing.T) {
	got := itinerary.FormatPlannedDatesShort([]string{"25 Apr 2026", "26 Apr 2026", "28 Apr 2026"})
	assert.Equal(t, "25–26 Apr / 28 Apr", got)
}

func TestFormatPlannedDatesShort_Unsorted(t *testing.T) {
	// Input order does not matter; runs are found after sorting.
	got := itinerary.FormatPlannedDatesShort([]string{"28 Apr 2026", "25 Apr 2026", "26 Apr 2026"})
	assert.Equal(t, "25–26 Apr / 28 Apr", got)
}

func TestFormatPlannedDatesShort_CrossMonthRun(t *testing.T) {
	got := itinerary.FormatPlannedDatesShort([]string{"30 Apr 2026", "1 May 2026", "2 May 2026"})
	assert.Equal(t, "30 Apr–2 May", got)
}

func TestFormatPlannedDatesShort_MixedGrammars(t *testing.T) {
	// Both grammars land on the same timeline, so a run can span them.
	got := itinerary.FormatPlannedDatesShort([]string{"25 Apr 2026", "2026-04-26"})
	assert.Equal(t, "25–26 Apr", got)
}

func TestFormatPlannedDatesShort_DropsUnparseable(t *testing.T) {
	got := itinerary.FormatPlannedDatesShort([]string{"garbage", "25 Apr 2026", ""})
	assert.Equal(t, "25 Apr", got)
}

func TestFormatPlannedDatesShort_NothingParses(t *testing.T) {
	assert.Equal(t, "", itinerary.FormatPlannedDatesShort([]string{"garbage"}))
	assert.Equal(t, "", itinerary.FormatPlannedDatesShort(nil))
}
