package analyzer

import (
	"sort"
	"strings"
	"time"

	"marketing-dashboard/config"
	"marketing-dashboard/models"
)

// BOUNDS_SAMPLE_ROWS caps how many rows per dataset are inspected.
const BOUNDS_SAMPLE_ROWS = 100

var dateColumnHints = []string{"date", "time", "publish"}

// KnownDateFields lists documented date columns whose names the generic
// scan could miss.
var KnownDateFields = map[string][]string{
	config.EMAIL_CAMPAIGN_PERFORMANCE: {"Send date", "Sent on", "Day"},
	config.FB_POSTS:                   {"Publish time", "Published"},
	config.FB_VIDEOS:                  {"Publish time", "Published"},
	config.IG_POSTS:                   {"Publish time", "Published"},
	config.YOUTUBE_CONTENT:            {"Video publish time", "Published"},
	config.GA_TRAFFIC_ACQUISITION:     {"Date", "Day"},
	config.GA_UTMS:                    {"Date", "Day"},
}

// ExtractBounds computes the earliest and latest plausible date across all
// datasets. When nothing usable turns up, or the span is under a day, the
// bounds fall back to the year ending at now.
func ExtractBounds(datasets map[string]models.RawRowSet, now time.Time, parsers ParserSet) models.AvailableDateBounds {
	now = now.UTC()
	minYear, maxYear := 2000, now.Year()+1

	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)

	var dates []time.Time
	for _, name := range names {
		set := datasets[name]
		parser := parsers.For(name)
		known := KnownDateFields[name]

		limit := len(set.Rows)
		if limit > BOUNDS_SAMPLE_ROWS {
			limit = BOUNDS_SAMPLE_ROWS
		}
		for _, row := range set.Rows[:limit] {
			for _, column := range row.Columns() {
				if !isDateColumn(column) {
					continue
				}
				raw, _ := row.Get(column)
				if t, ok := parser.Parse(raw); ok && t.Year() >= minYear && t.Year() <= maxYear {
					dates = append(dates, t)
				}
			}
			for _, column := range known {
				if isDateColumn(column) {
					continue
				}
				raw, ok := row.GetFold(column)
				if !ok {
					continue
				}
				if t, ok := parser.Parse(raw); ok && t.Year() >= minYear && t.Year() <= maxYear {
					dates = append(dates, t)
				}
			}
		}
	}

	if len(dates) == 0 {
		return fallbackBounds(now)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	earliest, latest := dates[0], dates[len(dates)-1]
	if latest.Sub(earliest) < 24*time.Hour {
		return fallbackBounds(now)
	}
	return models.AvailableDateBounds{Earliest: earliest, Latest: latest}
}

func fallbackBounds(now time.Time) models.AvailableDateBounds {
	return models.AvailableDateBounds{
		Earliest: now.AddDate(-1, 0, 0),
		Latest:   now,
		Fallback: true,
	}
}

func isDateColumn(column string) bool {
	lower := strings.ToLower(column)
	for _, hint := range dateColumnHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}
