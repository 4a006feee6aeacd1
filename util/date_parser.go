package util

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateOrder decides how an ambiguous NN/NN/YYYY date is read.
type DateOrder string

const (
	MonthFirst DateOrder = "month_first"
	DayFirst   DateOrder = "day_first"
)

// ParseDateOrder maps a config value onto a DateOrder.
func ParseDateOrder(s string) (DateOrder, error) {
	switch DateOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", MonthFirst:
		return MonthFirst, nil
	case DayFirst:
		return DayFirst, nil
	}
	return MonthFirst, fmt.Errorf("unknown date order %q", s)
}

var (
	slashDateRegexp = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})(?:[ T]+(\d{1,2}):(\d{2})(?::(\d{2}))?)?$`)
	isoPrefixRegexp = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})(?:[ T]+(\d{1,2}):(\d{2})(?::(\d{2}))?)?`)
	dashDateRegexp  = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})(?:[ T]+(\d{1,2}):(\d{2})(?::(\d{2}))?)?$`)
	longDateRegexp  = regexp.MustCompile(`(?i)^([a-z]+)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})$`)
	digitsRegexp    = regexp.MustCompile(`^\d+$`)
)

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

var fallbackLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"2006/01/02",
	"2006/01/02 15:04:05",
	"Mon Jan 2 2006",
	"Mon, Jan 2, 2006",
	"January 2006",
}

var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// minTimestamp guards against small integers being read as epoch millis.
var minTimestamp = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

type dateStrategy func(string) (time.Time, bool)

// DateParser recognizes the date formats found across platform exports.
// Every result is in UTC.
type DateParser struct {
	order      DateOrder
	strategies []dateStrategy
}

// NewDateParser builds a parser. With DayFirst the DD/MM/YYYY strategy runs
// ahead of MM/DD/YYYY.
func NewDateParser(order DateOrder) *DateParser {
	p := &DateParser{order: order}
	monthFirst, dayFirst := parseMonthFirstSlash, parseDayFirstSlash
	if order == DayFirst {
		monthFirst, dayFirst = dayFirst, monthFirst
	}
	p.strategies = []dateStrategy{
		parseISO,
		monthFirst,
		dayFirst,
		parseISOPrefix,
		parseMonthFirstDash,
		parseLongForm,
		parseMillis,
		parseFallback,
	}
	return p
}

var defaultDateParser = NewDateParser(MonthFirst)

// DefaultDateParser is the month-first parser shared by callers without a
// per-source preference.
func DefaultDateParser() *DateParser {
	return defaultDateParser
}

// ParseDate runs raw through the default month-first parser.
func ParseDate(raw string) (time.Time, bool) {
	return defaultDateParser.Parse(raw)
}

// Order returns the ambiguity rule the parser was built with.
func (p *DateParser) Order() DateOrder {
	return p.order
}

// Parse returns the first valid calendar date any strategy produces.
// A false result means no date is available, not an error.
func (p *DateParser) Parse(raw string) (t time.Time, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, strategy := range p.strategies {
		if t, ok = safeStrategy(strategy, s); ok {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func safeStrategy(strategy dateStrategy, s string) (t time.Time, ok bool) {
	defer func() {
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()
	return strategy(s)
}

func parseISO(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseMonthFirstSlash(s string) (time.Time, bool) {
	m := slashDateRegexp.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	return buildDate(m[3], m[1], m[2], m[4:])
}

func parseDayFirstSlash(s string) (time.Time, bool) {
	m := slashDateRegexp.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	return buildDate(m[3], m[2], m[1], m[4:])
}

func parseISOPrefix(s string) (time.Time, bool) {
	m := isoPrefixRegexp.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	return buildDate(m[1], m[2], m[3], m[4:])
}

func parseMonthFirstDash(s string) (time.Time, bool) {
	m := dashDateRegexp.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	return buildDate(m[3], m[1], m[2], m[4:])
}

func parseLongForm(s string) (time.Time, bool) {
	m := longDateRegexp.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	month, ok := monthNames[strings.ToLower(m[1])]
	if !ok {
		return time.Time{}, false
	}
	return buildDate(m[3], strconv.Itoa(int(month)), m[2], nil)
}

func parseMillis(s string) (time.Time, bool) {
	if !digitsRegexp.MatchString(s) {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	t := time.UnixMilli(ms).UTC()
	if t.Before(minTimestamp) {
		return time.Time{}, false
	}
	return t, true
}

func parseFallback(s string) (time.Time, bool) {
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// buildDate assembles a UTC time and rejects components that would
// overflow into another day, such as February 30.
func buildDate(year, month, day string, clock []string) (time.Time, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	mo, err := strconv.Atoi(month)
	if err != nil || mo < 1 || mo > 12 {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > 31 {
		return time.Time{}, false
	}
	var hh, mm, ss int
	if len(clock) >= 2 && clock[0] != "" {
		hh, _ = strconv.Atoi(clock[0])
		mm, _ = strconv.Atoi(clock[1])
		if len(clock) >= 3 && clock[2] != "" {
			ss, _ = strconv.Atoi(clock[2])
		}
		if hh > 23 || mm > 59 || ss > 59 {
			return time.Time{}, false
		}
	}
	t := time.Date(y, time.Month(mo), d, hh, mm, ss, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != mo || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}
