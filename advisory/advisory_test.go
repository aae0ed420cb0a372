package advisory_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/seatplan/advisory"
)

func TestList_AddPreservesOrder(t *testing.T) {
	var l advisory.List
	l.Add(advisory.KindDefaultApplied, "tables derived")
	l.Add(advisory.KindCoverage, "low coverage")
	l.Add(advisory.KindDefaultApplied, "rounds derived")

	assert.Equal(t, []string{"tables derived", "low coverage", "rounds derived"}, l.Messages())
	assert.True(t, l.Has(advisory.KindCoverage))
	assert.False(t, l.Has(advisory.KindAssignmentStall))
	assert.Equal(t, 2, l.Count(advisory.KindDefaultApplied))
}

func TestList_Append(t *testing.T) {
	var a, b advisory.List
	a.Add(advisory.KindRosterReconciled, "first")
	b.Add(advisory.KindCapacityAdjustment, "second")
	a.Append(b)

	assert.Len(t, a, 2)
	assert.Equal(t, advisory.KindCapacityAdjustment, a[1].Kind)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "default_applied", advisory.KindDefaultApplied.String())
	assert.Equal(t, "assignment_stall", advisory.KindAssignmentStall.String())
	assert.Equal(t, "unknown", advisory.Kind(42).String())

	text, err := advisory.KindCoverage.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "coverage", string(text))
}

func TestList_EmptyMessages(t *testing.T) {
	var l advisory.List
	assert.Empty(t, l.Messages())
	assert.NotNil(t, l.Messages())
}

func TestKind_UnmarshalText(t *testing.T) {
	var k advisory.Kind
	assert.NoError(t, k.UnmarshalText([]byte("roster_reconciled")))
	assert.Equal(t, advisory.KindRosterReconciled, k)

	assert.ErrorIs(t, k.UnmarshalText([]byte("nope")), advisory.ErrUnknownKind)
}

func TestNote_JSONRoundTripByName(t *testing.T) {
	raw, err := json.Marshal(advisory.Note{Kind: advisory.KindCoverage, Message: "m"})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"kind":"coverage","message":"m"}`, string(raw))

	var n advisory.Note
	assert.NoError(t, json.Unmarshal(raw, &n))
	assert.Equal(t, advisory.KindCoverage, n.Kind)
}
