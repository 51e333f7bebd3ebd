package rows

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/starford/gebo/internal/apperr"
	"github.com/starford/gebo/internal/model"
)

// RequirementRow is one normalized requirement row. Every field is optional
// at this layer; the builder decides which ones are required. nil means the
// column was absent, a pointer to "" means present but blank.
type RequirementRow struct {
	Identifier  *string
	IEPUID      *string
	Type        *model.ReqType
	ForeignID   *string
	Name        *string
	Chapter     *string
	Description *string
	TextContent *string
	Status      *model.Status
	Priority    *model.Priority
	ReqPrefix   *string
	Order       *int64
}

// RelationRow is one normalized relation row. Endpoints may be given
// directly by requirement identifier or indirectly by IE PUID.
type RelationRow struct {
	Kind       *model.RelationKind
	SourceID   *string
	TargetID   *string
	SourcePUID *string
	TargetPUID *string
	Identifier *string
}

// NormalizeRequirement maps a raw requirement row onto canonical field keys
// and coerces each cell to its typed representation. It is a pure function:
// one row in, one record or one error out.
func NormalizeRequirement(raw Row) (*RequirementRow, error) {
	r := raw.Canonical()

	reqType, err := enumField(r, "req_type", model.ReqTypes())
	if err != nil {
		return nil, err
	}
	status, err := enumField(r, "status", model.Statuses())
	if err != nil {
		return nil, err
	}
	priority, err := enumField(r, "priority", model.Priorities())
	if err != nil {
		return nil, err
	}
	order, err := intField(r, "order")
	if err != nil {
		return nil, err
	}

	row := &RequirementRow{
		Identifier:  trimmedField(r, "identifier"),
		IEPUID:      trimmedField(r, "ie_puid"),
		ForeignID:   trimmedField(r, "foreign_id"),
		Name:        trimmedField(r, "name"),
		Chapter:     textField(r, "chapter"),
		Description: textField(r, "description"),
		TextContent: textField(r, "text_content"),
		ReqPrefix:   trimmedField(r, "req_prefix"),
		Order:       order,
	}
	if reqType != nil {
		t := model.ReqType(*reqType)
		row.Type = &t
	}
	if status != nil {
		s := model.Status(*status)
		row.Status = &s
	}
	if priority != nil {
		p := model.Priority(*priority)
		row.Priority = &p
	}
	return row, nil
}

// NormalizeRelation maps a raw relation row onto canonical field keys.
func NormalizeRelation(raw Row) (*RelationRow, error) {
	r := raw.Canonical()

	kind, err := enumField(r, "relation_type", model.RelationKinds())
	if err != nil {
		return nil, err
	}

	row := &RelationRow{
		SourceID:   trimmedField(r, "source_id"),
		TargetID:   trimmedField(r, "target_id"),
		SourcePUID: trimmedField(r, "source_ie_puid"),
		TargetPUID: trimmedField(r, "target_ie_puid"),
		Identifier: trimmedField(r, "identifier"),
	}
	if kind != nil {
		k := model.RelationKind(*kind)
		row.Kind = &k
	}
	return row, nil
}

// textField returns the cell rendered as a string, preserving blanks.
func textField(r Row, key string) *string {
	s, ok := r.cell(key).StringValue()
	if !ok {
		return nil
	}
	return &s
}

// trimmedField is textField with surrounding whitespace removed. A cell
// holding only whitespace stays present (as the empty string).
func trimmedField(r Row, key string) *string {
	s := textField(r, key)
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// enumField lower-cases the cell and validates it against the field's fixed
// vocabulary. Blank cells are treated as absent: spreadsheet exports render
// unset optional enums as empty strings.
func enumField(r Row, key string, allowed []string) (*string, error) {
	c := r.cell(key)
	s, ok := c.StringValue()
	if !ok || c.IsBlank() {
		return nil, nil
	}
	v := strings.ToLower(strings.TrimSpace(s))
	for _, a := range allowed {
		if v == a {
			return &v, nil
		}
	}
	return nil, &apperr.InvalidEnumValueError{Field: key, Value: v, Allowed: allowed}
}

// intField coerces a numeric or integer-like text cell to int64.
func intField(r Row, key string) (*int64, error) {
	c := r.cell(key)
	switch c.Kind {
	case KindAbsent:
		return nil, nil
	case KindNumber:
		n := int64(c.Number)
		if float64(n) != c.Number {
			return nil, &apperr.MalformedRowError{
				Field:  key,
				Reason: fmt.Sprintf("value %v is not an integer", c.Number),
			}
		}
		return &n, nil
	default:
		s := strings.TrimSpace(c.Text)
		if s == "" {
			return nil, nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, &apperr.MalformedRowError{
				Field:  key,
				Reason: fmt.Sprintf("value %q is not an integer", s),
			}
		}
		return &n, nil
	}
}
