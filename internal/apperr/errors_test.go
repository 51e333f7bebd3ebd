package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowErrorUnwrap(t *testing.T) {
	inner := &InvalidEnumValueError{Field: "status", Value: "done", Allowed: []string{"draft"}}
	re := &RowError{Sheet: SheetRequirements, Row: 4, Err: inner}

	assert.Equal(t, `requirements row 4: invalid value "done" for field "status", allowed: draft`, re.Error())

	var enumErr *InvalidEnumValueError
	require.True(t, errors.As(re, &enumErr))
	assert.Same(t, inner, enumErr)
}

func TestListFormat(t *testing.T) {
	list := List{
		{Sheet: SheetRequirements, Row: 1, Err: &MalformedRowError{Field: "name", Reason: "required column missing or blank"}},
		{Sheet: SheetRelations, Row: 2, Err: &UnresolvedReferenceError{Role: "target", Value: "P-9"}},
	}

	msg := list.Error()
	assert.Contains(t, msg, "2 invalid row(s):")
	assert.Contains(t, msg, `  requirements row 1: malformed row: field "name": required column missing or blank`)
	assert.Contains(t, msg, `  relations row 2: unresolved target reference "P-9"`)
}

func TestListErrOrNil(t *testing.T) {
	assert.NoError(t, List{}.ErrOrNil())
	assert.NoError(t, List(nil).ErrOrNil())

	list := List{{Sheet: SheetRequirements, Row: 1, Err: &DuplicateKeyError{Kind: "ie_puid", Value: "P-1"}}}
	err := list.ErrOrNil()
	require.Error(t, err)
	assert.ErrorContains(t, err, `duplicate ie_puid "P-1"`)
}
