package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularies(t *testing.T) {
	assert.Equal(t, []string{"functional", "interface", "performance"}, ReqTypes())
	assert.Equal(t, []string{"draft", "wip", "reviewed", "approved"}, Statuses())
	assert.Equal(t, []string{"high", "medium", "low"}, Priorities())
	assert.Equal(t, []string{"satisfy", "derive", "refine"}, RelationKinds())
}

func TestRequirementByID(t *testing.T) {
	doc := &Document{
		Requirements: []Requirement{
			{Identifier: "SO-1", IEPUID: "P-1"},
			{Identifier: "SO-2", IEPUID: "P-2"},
		},
	}

	req, ok := doc.RequirementByID("SO-2")
	require.True(t, ok)
	assert.Equal(t, "P-2", req.IEPUID)
	// The pointer aliases the document's slice, not a copy.
	assert.Same(t, &doc.Requirements[1], req)

	_, ok = doc.RequirementByID("SO-9")
	assert.False(t, ok)
}
