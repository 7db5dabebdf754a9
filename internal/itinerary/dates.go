package itinerary

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// The two accepted date grammars. Anything else fails to parse and the
// caller falls back to identifier-based ordering.
var (
	dayMonthYearRe = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]{3})\s+(\d{4})$`)
	isoDateRe      = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

var monthByAbbrev = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseDayDate parses a date label in either "25 Apr 2026" form (English
// 3-letter month abbreviation, case-insensitive) or ISO "2026-04-25" form.
//
// Parsed dates are pinned to 12:00 local time so that day-to-day deltas
// computed later cannot be thrown off by a daylight-saving transition.
func ParseDayDate(label string) (time.Time, bool) {
	raw := strings.TrimSpace(label)

	if m := dayMonthYearRe.FindStringSubmatch(raw); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, ok := monthByAbbrev[strings.ToLower(m[2])]
		if !ok {
			return time.Time{}, false
		}
		year, _ := strconv.Atoi(m[3])
		return time.Date(year, month, day, 12, 0, 0, 0, time.Local), true
	}

	if m := isoDateRe.FindStringSubmatch(raw); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.Local), true
	}

	return time.Time{}, false
}

// FormatPlannedDatesShort renders a set of date labels as a compact
// human-readable string: consecutive calendar days collapse into a run,
// runs are joined with " / ".
//
//	["25 Apr 2026","26 Apr 2026","28 Apr 2026"] → "25–26 Apr / 28 Apr"
//
// Labels that fail to parse are silently dropped. An empty result means no
// label parsed.
func FormatPlannedDatesShort(labels []string) string {
	var dates []time.Time
	for _, l := range labels {
		if d, ok := ParseDayDate(l); ok {
			dates = append(dates, d)
		}
	}
	if len(dates) == 0 {
		return ""
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	type run struct{ start, end time.Time }
	runs := []run{{dates[0], dates[0]}}
	for _, d := range dates[1:] {
		last := &runs[len(runs)-1]
		// Noon-pinned dates make this delta exact across DST boundaries.
		if int(d.Sub(last.end).Round(24*time.Hour)/(24*time.Hour)) == 1 {
			last.end = d
			continue
		}
		runs = append(runs, run{d, d})
	}

	parts := make([]string, len(runs))
	for i, r := range runs {
		parts[i] = formatDateRangeShort(r.start, r.end)
	}
	return strings.Join(parts, " / ")
}

// formatDateRangeShort renders a single run: "25 Apr" for one day,
// "25–26 Apr" within a month, "30 Apr–2 May" when the run crosses months.
// The year is intentionally omitted; itineraries span weeks, not years.
func formatDateRangeShort(start, end time.Time) string {
	if start.Equal(end) {
		return strconv.Itoa(start.Day()) + " " + start.Month().String()[:3]
	}
	if start.Year() == end.Year() && start.Month() == end.Month() {
		return strconv.Itoa(start.Day()) + "–" + strconv.Itoa(end.Day()) + " " + start.Month().String()[:3]
	}
	return strconv.Itoa(start.Day()) + " " + start.Month().String()[:3] +
		"–" + strconv.Itoa(end.Day()) + " " + end.Month().String()[:3]
}
