package rows

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/gebo/internal/apperr"
	"github.com/starford/gebo/internal/model"
)

func TestNormalizeRequirementFull(t *testing.T) {
	row := Row{
		"IE PUID":    Text("P-1"),
		"Type":       Text("Functional"),
		"ForeignID":  Number(1001),
		"Name":       Text("Power on"),
		"Chapter":    Text("1 Intro"),
		"Desc":       Text("Boots within 5s"),
		"Text":       Text("The system shall power on."),
		"Status":     Text("APPROVED"),
		"Priority":   Text("high"),
		"ReqPrefix":  Text("SYS"),
		"Order":      Number(3),
		"Irrelevant": Text("ignored"),
	}

	nr, err := NormalizeRequirement(row)
	require.NoError(t, err)

	require.NotNil(t, nr.IEPUID)
	assert.Equal(t, "P-1", *nr.IEPUID)
	require.NotNil(t, nr.Type)
	assert.Equal(t, model.ReqTypeFunctional, *nr.Type)
	require.NotNil(t, nr.ForeignID)
	assert.Equal(t, "1001", *nr.ForeignID)
	require.NotNil(t, nr.Status)
	assert.Equal(t, model.StatusApproved, *nr.Status)
	require.NotNil(t, nr.Priority)
	assert.Equal(t, model.PriorityHigh, *nr.Priority)
	require.NotNil(t, nr.Order)
	assert.Equal(t, int64(3), *nr.Order)
	require.NotNil(t, nr.ReqPrefix)
	assert.Equal(t, "SYS", *nr.ReqPrefix)
}

func TestNormalizeRequirementAbsentVersusBlank(t *testing.T) {
	nr, err := NormalizeRequirement(Row{
		"ie_puid":    Text("P-1"),
		"req_type":   Text("functional"),
		"foreign_id": Text("1"),
		"name":       Text("n"),
		"chapter":    Text(""),
	})
	require.NoError(t, err)

	// Present-but-blank chapter survives as an empty string.
	require.NotNil(t, nr.Chapter)
	assert.Equal(t, "", *nr.Chapter)
	// Columns never provided stay nil.
	assert.Nil(t, nr.Description)
	assert.Nil(t, nr.TextContent)
	assert.Nil(t, nr.Status)
	assert.Nil(t, nr.Order)
}

func TestNormalizeRequirementBlankEnumIsAbsent(t *testing.T) {
	nr, err := NormalizeRequirement(Row{
		"ie_puid":    Text("P-1"),
		"req_type":   Text("functional"),
		"foreign_id": Text("1"),
		"name":       Text("n"),
		"status":     Text("  "),
		"priority":   Text(""),
	})
	require.NoError(t, err)
	assert.Nil(t, nr.Status)
	assert.Nil(t, nr.Priority)
}

func TestNormalizeRequirementRejectsUnknownEnum(t *testing.T) {
	_, err := NormalizeRequirement(Row{
		"ie_puid":    Text("P-1"),
		"req_type":   Text("structural"),
		"foreign_id": Text("1"),
		"name":       Text("n"),
	})
	var enumErr *apperr.InvalidEnumValueError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "req_type", enumErr.Field)
	assert.Equal(t, "structural", enumErr.Value)
	assert.Equal(t, []string{"functional", "interface", "performance"}, enumErr.Allowed)
}

func TestNormalizeRequirementOrderCoercion(t *testing.T) {
	t.Run("text digits", func(t *testing.T) {
		nr, err := NormalizeRequirement(minimalReq(Row{"order": Text(" 42 ")}))
		require.NoError(t, err)
		require.NotNil(t, nr.Order)
		assert.Equal(t, int64(42), *nr.Order)
	})

	t.Run("blank text is absent", func(t *testing.T) {
		nr, err := NormalizeRequirement(minimalReq(Row{"order": Text("")}))
		require.NoError(t, err)
		assert.Nil(t, nr.Order)
	})

	t.Run("fractional number rejected", func(t *testing.T) {
		_, err := NormalizeRequirement(minimalReq(Row{"order": Number(1.5)}))
		var malformed *apperr.MalformedRowError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "order", malformed.Field)
	})

	t.Run("non-numeric text rejected", func(t *testing.T) {
		_, err := NormalizeRequirement(minimalReq(Row{"order": Text("first")}))
		var malformed *apperr.MalformedRowError
		require.True(t, errors.As(err, &malformed))
	})
}

func TestNormalizeRelation(t *testing.T) {
	nr, err := NormalizeRelation(Row{
		"Relation Type":  Text("SATISFY"),
		"Source IE PUID": Text("P-2"),
		"Target IE PUID": Text("P-1"),
	})
	require.NoError(t, err)
	require.NotNil(t, nr.Kind)
	assert.Equal(t, model.RelationSatisfy, *nr.Kind)
	require.NotNil(t, nr.SourcePUID)
	assert.Equal(t, "P-2", *nr.SourcePUID)
	assert.Nil(t, nr.SourceID)
	assert.Nil(t, nr.Identifier)
}

func TestNormalizeRelationRejectsUnknownKind(t *testing.T) {
	_, err := NormalizeRelation(Row{"relation_type": Text("traces")})
	var enumErr *apperr.InvalidEnumValueError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, []string{"satisfy", "derive", "refine"}, enumErr.Allowed)
}

// minimalReq merges extra cells into a valid minimal requirement row.
func minimalReq(extra Row) Row {
	row := Row{
		"ie_puid":    Text("P-1"),
		"req_type":   Text("functional"),
		"foreign_id": Text("1"),
		"name":       Text("n"),
	}
	for k, v := range extra {
		row[k] = v
	}
	return row
}
