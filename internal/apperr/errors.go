// Package apperr defines the error taxonomy for the conversion pipeline.
//
// Row-level defects (MalformedRow, InvalidEnumValue, DuplicateKey,
// UnresolvedReference) are collected across the whole input and surfaced
// together as a List so a caller can fix an entire spreadsheet in one pass.
// SerializationError signals a broken internal invariant and aborts the run.
package apperr

import (
	"fmt"
	"strings"
)

// Sheet names used to attribute row errors to their input sequence.
const (
	SheetRequirements = "requirements"
	SheetRelations    = "relations"
)

// MalformedRowError reports a missing required column or an uncoercible cell.
type MalformedRowError struct {
	Field  string
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row: field %q: %s", e.Field, e.Reason)
}

// InvalidEnumValueError reports a value outside an enum field's vocabulary.
type InvalidEnumValueError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid value %q for field %q, allowed: %s",
		e.Value, e.Field, strings.Join(e.Allowed, ", "))
}

// DuplicateKeyError reports an identifier or IE PUID collision.
// Kind names the colliding key space, e.g. "identifier" or "ie_puid".
type DuplicateKeyError struct {
	Kind  string
	Value string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate %s %q", e.Kind, e.Value)
}

// UnresolvedReferenceError reports a relation endpoint that names no known
// requirement. Role is "source" or "target".
type UnresolvedReferenceError struct {
	Role  string
	Value string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved %s reference %q", e.Role, e.Value)
}

// SerializationError reports an internal invariant violation discovered
// while emitting XML. It indicates a defect in the builder/registry
// contract, never bad user input, and is fatal.
type SerializationError struct {
	Reason string
}

func (e *SerializationError) Error() string {
	return "serialization: " + e.Reason
}

// RowError attributes a defect to one input row. Row is the 1-based ordinal
// within its sheet.
type RowError struct {
	Sheet string
	Row   int
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s row %d: %v", e.Sheet, e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// List is the aggregate failure for a conversion run: every offending row
// with its reason, in input order.
type List []*RowError

func (l List) Error() string {
	if len(l) == 0 {
		return "no errors"
	}
	lines := make([]string, 0, len(l)+1)
	lines = append(lines, fmt.Sprintf("%d invalid row(s):", len(l)))
	for _, e := range l {
		lines = append(lines, "  "+e.Error())
	}
	return strings.Join(lines, "\n")
}

// ErrOrNil returns the list as an error, or nil when no defects were
// collected. A non-nil List with zero entries must never escape as an error.
func (l List) ErrOrNil() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
