package util

import (
	"strings"

	"marketing-dashboard/models"
)

// ResolveKey finds the column a logical field lives under. Candidates are
// tried as exact names first; only when none matches is each candidate
// looked for as a case-insensitive substring of the row's columns.
func ResolveKey(row models.RawRow, candidates []string) (string, bool) {
	for _, name := range candidates {
		if _, ok := row.Get(name); ok {
			return name, true
		}
	}
	for _, name := range candidates {
		needle := strings.ToLower(name)
		if needle == "" {
			continue
		}
		for _, column := range row.Columns() {
			if strings.Contains(strings.ToLower(column), needle) {
				return column, true
			}
		}
	}
	return "", false
}

// Resolve returns the numeric value of the first matching candidate field,
// or def when no column matches.
func Resolve(row models.RawRow, candidates []string, def float64) float64 {
	key, ok := ResolveKey(row, candidates)
	if !ok {
		return def
	}
	v, _ := row.Get(key)
	if strings.Contains(v, "%") {
		v = strings.ReplaceAll(v, "%", "")
	}
	return ToFloat(v, def)
}

// ResolveInt is Resolve rounded through ToInt.
func ResolveInt(row models.RawRow, candidates []string, def int) int {
	key, ok := ResolveKey(row, candidates)
	if !ok {
		return def
	}
	v, _ := row.Get(key)
	return ToInt(v, def)
}

// ResolveString returns the trimmed text of the first matching candidate
// field, or def when no column matches or the value is blank.
func ResolveString(row models.RawRow, candidates []string, def string) string {
	key, ok := ResolveKey(row, candidates)
	if !ok {
		return def
	}
	v, _ := row.Get(key)
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}
