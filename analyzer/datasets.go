package analyzer

import (
	"marketing-dashboard/models"
	"marketing-dashboard/util"
)

// Datasets is read access to the loaded files. Analyzers never write to it.
type Datasets interface {
	Dataset(name string) models.RawRowSet
}

// DatasetMap is a plain in-memory Datasets. Missing names read as empty sets.
type DatasetMap map[string]models.RawRowSet

func (m DatasetMap) Dataset(name string) models.RawRowSet {
	if set, ok := m[name]; ok {
		return set
	}
	return models.NewRawRowSet(name)
}

// ParserSet picks the date parser configured for each source file.
type ParserSet struct {
	bySource map[string]*util.DateParser
	fallback *util.DateParser
}

// NewParserSet returns a set that uses fallback for unlisted sources. A nil
// fallback means month-first.
func NewParserSet(bySource map[string]*util.DateParser, fallback *util.DateParser) ParserSet {
	if fallback == nil {
		fallback = util.DefaultDateParser()
	}
	if bySource == nil {
		bySource = map[string]*util.DateParser{}
	}
	return ParserSet{bySource: bySource, fallback: fallback}
}

// DefaultParserSet reads every source month first.
func DefaultParserSet() ParserSet {
	return NewParserSet(nil, nil)
}

// For returns the parser for the named source.
func (p ParserSet) For(name string) *util.DateParser {
	if parser, ok := p.bySource[name]; ok && parser != nil {
		return parser
	}
	if p.fallback == nil {
		return util.DefaultDateParser()
	}
	return p.fallback
}
