package models

import "strings"

// RawRow is one CSV record keyed by the column names found in its file.
// Column names drift between export vintages, so values are only reached
// through lookups, never through a typed struct.
type RawRow struct {
	columns []string
	values  map[string]string
}

// NewRawRow pairs a header with a record. Short records are padded with
// empty values and extra fields are dropped. On duplicate header names the
// last value wins.
func NewRawRow(header []string, record []string) RawRow {
	values := make(map[string]string, len(header))
	columns := make([]string, 0, len(header))
	for i, name := range header {
		v := ""
		if i < len(record) {
			v = record[i]
		}
		if _, dup := values[name]; !dup {
			columns = append(columns, name)
		}
		values[name] = v
	}
	return RawRow{columns: columns, values: values}
}

// Get returns the raw value stored under the exact column name.
func (r RawRow) Get(column string) (string, bool) {
	v, ok := r.values[column]
	return v, ok
}

// GetFold returns the value of the first column equal to name ignoring case.
func (r RawRow) GetFold(column string) (string, bool) {
	if v, ok := r.values[column]; ok {
		return v, true
	}
	for _, c := range r.columns {
		if strings.EqualFold(c, column) {
			return r.values[c], true
		}
	}
	return "", false
}

// Columns returns the column names in header order.
func (r RawRow) Columns() []string {
	return r.columns
}

// Len is the number of columns in the row.
func (r RawRow) Len() int {
	return len(r.columns)
}

// RawRowSet is the ordered content of one named source file. A failed load
// is an empty set, never nil.
type RawRowSet struct {
	Name    string
	Columns []string
	Rows    []RawRow
}

// NewRawRowSet returns an empty set for the named file.
func NewRawRowSet(name string) RawRowSet {
	return RawRowSet{Name: name, Columns: []string{}, Rows: []RawRow{}}
}

// Len is the number of rows in the set.
func (s RawRowSet) Len() int {
	return len(s.Rows)
}

// IsEmpty reports whether the set holds no rows.
func (s RawRowSet) IsEmpty() bool {
	return len(s.Rows) == 0
}

// HasColumnFold reports whether the header carries a column equal to name
// ignoring case.
func (s RawRowSet) HasColumnFold(name string) bool {
	for _, c := range s.Columns {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// WithRows returns a copy of the set holding the given rows.
func (s RawRowSet) WithRows(rows []RawRow) RawRowSet {
	if rows == nil {
		rows = []RawRow{}
	}
	return RawRowSet{Name: s.Name, Columns: s.Columns, Rows: rows}
}
