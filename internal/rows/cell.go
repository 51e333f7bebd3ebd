// Package rows normalizes loosely-typed spreadsheet rows into typed records.
package rows

import (
	"sort"
	"strconv"
	"strings"
)

// Kind tags the representation of one spreadsheet cell.
type Kind int

const (
	// KindAbsent means the column did not exist in the input row. It is
	// distinct from a present-but-blank text cell.
	KindAbsent Kind = iota
	KindText
	KindNumber
)

// Cell is a tagged spreadsheet value: text, number, or absent.
type Cell struct {
	Kind   Kind
	Text   string
	Number float64
}

// Absent returns the explicit "column not provided" cell.
func Absent() Cell { return Cell{Kind: KindAbsent} }

// Text returns a text cell. An empty string is a valid, present value.
func Text(s string) Cell { return Cell{Kind: KindText, Text: s} }

// Number returns a numeric cell.
func Number(f float64) Cell { return Cell{Kind: KindNumber, Number: f} }

// StringValue renders the cell as a string. Numbers use the shortest exact
// decimal form ("1001", "3.5"). ok is false for absent cells.
func (c Cell) StringValue() (s string, ok bool) {
	switch c.Kind {
	case KindText:
		return c.Text, true
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64), true
	default:
		return "", false
	}
}

// IsBlank reports whether the cell is present but holds only whitespace.
func (c Cell) IsBlank() bool {
	s, ok := c.StringValue()
	return ok && strings.TrimSpace(s) == ""
}

// Row maps raw column names to cells, as produced by a spreadsheet reader.
type Row map[string]Cell

// columnAliases maps legacy column spellings (already canonicalized) to the
// canonical field keys. The set mirrors the headers accepted by the original
// requirements workbook template.
var columnAliases = map[string]string{
	"type":           "req_type",
	"iepuid":         "ie_puid",
	"foreignid":      "foreign_id",
	"desc":           "description",
	"text":           "text_content",
	"reqprefix":      "req_prefix",
	"spec_object_id": "identifier",
	"relationtype":   "relation_type",
	"sourceiepuid":   "source_ie_puid",
	"targetiepuid":   "target_ie_puid",
	"sourceid":       "source_id",
	"targetid":       "target_id",
}

// CanonicalKey normalizes a raw column name: lower-cased, with spaces, tabs
// and hyphens treated as underscores, doubled separators collapsed, and
// known legacy spellings mapped to their canonical field key.
func CanonicalKey(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '\t':
			return '_'
		}
		return r
	}, s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	s = strings.Trim(s, "_")
	if canon, ok := columnAliases[s]; ok {
		return canon
	}
	return s
}

// Canonical returns a copy of the row keyed by canonical field keys. When
// two raw columns collapse onto the same canonical key, the one whose raw
// name sorts last wins, so the result does not depend on map iteration
// order.
func (r Row) Canonical() Row {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(Row, len(r))
	for _, k := range keys {
		out[CanonicalKey(k)] = r[k]
	}
	return out
}

// cell returns the cell for a canonical key, or the absent cell.
func (r Row) cell(key string) Cell {
	if c, ok := r[key]; ok {
		return c
	}
	return Absent()
}
