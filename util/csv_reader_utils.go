package util

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"marketing-dashboard/models"
)

const (
	ENCODING_UTF8       = "utf-8"
	ENCODING_CP1252     = "windows-1252"
	ENCODING_ISO_8859_1 = "iso-8859-1"
)

var (
	errNotUTF8      = errors.New("content is not valid utf-8")
	errTooFewColumn = errors.New("header has fewer than 2 columns")
	errNoRows       = errors.New("no data rows")
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Encoding is one decoding attempt in the fallback chain.
type Encoding struct {
	Name   string
	Decode func([]byte) ([]byte, error)
}

// DecodeAttempt records how one encoding fared on a file.
type DecodeAttempt struct {
	Encoding string
	Rows     models.RawRowSet
	Err      error
}

// OK reports whether the attempt produced usable rows.
func (a DecodeAttempt) OK() bool {
	return a.Err == nil
}

// DefaultEncodings is the order files are tried in.
func DefaultEncodings() []Encoding {
	return []Encoding{
		{Name: ENCODING_UTF8, Decode: decodeUTF8},
		{Name: ENCODING_CP1252, Decode: charmapDecoder(charmap.Windows1252)},
		{Name: ENCODING_ISO_8859_1, Decode: charmapDecoder(charmap.ISO8859_1)},
	}
}

// charmapDecoder builds a fresh decoder per call; x/text decoders keep state.
func charmapDecoder(cm *charmap.Charmap) func([]byte) ([]byte, error) {
	return func(data []byte) ([]byte, error) {
		return cm.NewDecoder().Bytes(data)
	}
}

func decodeUTF8(data []byte) ([]byte, error) {
	if !utf8.Valid(data) {
		return nil, errNotUTF8
	}
	return data, nil
}

// DecodeCSV walks the encoding chain and stops at the first attempt that
// yields a header with at least two columns and one data row. Every attempt
// is returned so callers can report why a file was rejected.
func DecodeCSV(name string, data []byte, encodings []Encoding) (models.RawRowSet, []DecodeAttempt) {
	attempts := make([]DecodeAttempt, 0, len(encodings))
	for _, enc := range encodings {
		attempt := DecodeAttempt{Encoding: enc.Name}
		decoded, err := enc.Decode(data)
		if err != nil {
			attempt.Err = fmt.Errorf("decode %s: %w", enc.Name, err)
			attempts = append(attempts, attempt)
			continue
		}
		attempt.Rows, attempt.Err = ParseCSV(name, decoded)
		attempts = append(attempts, attempt)
		if attempt.OK() {
			return attempt.Rows, attempts
		}
	}
	return models.NewRawRowSet(name), attempts
}

// ParseCSV reads header-first CSV content into a RawRowSet. Values stay
// strings; typing happens when fields are resolved.
func ParseCSV(name string, data []byte) (models.RawRowSet, error) {
	data = stripPreamble(bytes.TrimPrefix(data, utf8BOM))
	if len(bytes.TrimSpace(data)) == 0 {
		return models.NewRawRowSet(name), errNoRows
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return models.NewRawRowSet(name), errNoRows
		}
		return models.NewRawRowSet(name), fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) < 2 {
		return models.NewRawRowSet(name), errTooFewColumn
	}

	set := models.NewRawRowSet(name)
	set.Columns = header
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.NewRawRowSet(name), fmt.Errorf("read row: %w", err)
		}
		if isBlankRecord(record) {
			continue
		}
		set.Rows = append(set.Rows, models.NewRawRow(header, record))
	}
	if set.IsEmpty() {
		return models.NewRawRowSet(name), errNoRows
	}
	return set, nil
}

// stripPreamble drops the lines some exporters put above the header: GA
// "#" comment blocks, Excel "sep=," hints and blank lines.
func stripPreamble(data []byte) []byte {
	for len(data) > 0 {
		end := bytes.IndexByte(data, '\n')
		line := data
		if end >= 0 {
			line = data[:end]
		}
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) != 0 && trimmed[0] != '#' && !bytes.HasPrefix(bytes.ToLower(trimmed), []byte("sep=")) {
			return data
		}
		if end < 0 {
			return nil
		}
		data = data[end+1:]
	}
	return data
}

func isBlankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// JoinAttemptErrors folds the failures of every attempt into one error.
func JoinAttemptErrors(attempts []DecodeAttempt) error {
	errs := make([]error, 0, len(attempts))
	for _, a := range attempts {
		if a.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", a.Encoding, a.Err))
		}
	}
	if len(errs) == 0 {
		return errNoRows
	}
	return errors.Join(errs...)
}
