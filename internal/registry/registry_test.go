package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/gebo/internal/model"
)

func TestSpecTypesStableOrderAndIDs(t *testing.T) {
	types := SpecTypes()
	require.Len(t, types, 3)
	assert.Equal(t, "T-REQ-FUNCTIONAL", types[0].ID)
	assert.Equal(t, "T-REQ-INTERFACE", types[1].ID)
	assert.Equal(t, "T-REQ-PERFORMANCE", types[2].ID)

	// Two calls yield identical tables.
	assert.Equal(t, types, SpecTypes())
}

func TestSpecTypeAttributeLayout(t *testing.T) {
	st, ok := SpecTypeFor(model.ReqTypeFunctional)
	require.True(t, ok)
	require.Len(t, st.Attributes, 10)

	// Attribute ids carry the type prefix.
	puid, ok := st.AttrByField("ie_puid")
	require.True(t, ok)
	assert.Equal(t, "F-AD-IEPUID", puid.ID)
	assert.Equal(t, "IE PUID", puid.LongName)
	assert.Equal(t, AttrString, puid.Kind)
	assert.Equal(t, DatatypeString, puid.DatatypeRef)

	perf, ok := SpecTypeFor(model.ReqTypePerformance)
	require.True(t, ok)
	status, ok := perf.AttrByField("status")
	require.True(t, ok)
	assert.Equal(t, "P-AD-STATUS", status.ID)
	assert.Equal(t, AttrEnumeration, status.Kind)
	assert.Equal(t, DatatypeStatus, status.DatatypeRef)

	order, ok := perf.AttrByField("order")
	require.True(t, ok)
	assert.Equal(t, AttrInteger, order.Kind)

	_, ok = perf.AttrByField("nonexistent")
	assert.False(t, ok)
}

func TestSpecTypeForUnknown(t *testing.T) {
	_, ok := SpecTypeFor(model.ReqType("structural"))
	assert.False(t, ok)
}

func TestRelationTypes(t *testing.T) {
	types := RelationTypes()
	require.Len(t, types, 3)
	assert.Equal(t, "T-REL-SATISFY", types[0].ID)
	assert.Equal(t, "T-REL-DERIVE", types[1].ID)
	assert.Equal(t, "T-REL-REFINE", types[2].ID)

	rt, ok := RelationTypeFor(model.RelationRefine)
	require.True(t, ok)
	assert.Equal(t, "refine", rt.LongName)

	_, ok = RelationTypeFor(model.RelationKind("traces"))
	assert.False(t, ok)
}

func TestEnumValueKeys(t *testing.T) {
	statuses := StatusValues()
	require.Len(t, statuses, 4)
	for i, v := range statuses {
		assert.Equal(t, i, v.Key, "status %s", v.ID)
	}

	priorities := PriorityValues()
	require.Len(t, priorities, 3)
	for i, v := range priorities {
		assert.Equal(t, i, v.Key, "priority %s", v.ID)
	}
}

func TestEnumValueRefs(t *testing.T) {
	ref, ok := StatusValueRef(model.StatusWIP)
	require.True(t, ok)
	assert.Equal(t, "EV-STATUS-WIP", ref)

	ref, ok = PriorityValueRef(model.PriorityLow)
	require.True(t, ok)
	assert.Equal(t, "EV-PRIO-LOW", ref)

	_, ok = StatusValueRef(model.Status("obsolete"))
	assert.False(t, ok)
}
