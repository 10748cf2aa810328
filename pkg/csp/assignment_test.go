package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoVars builds a tiny problem with two integer variables for assignment
// and constraint tests.
func twoVars(t *testing.T) (*CSP[int], *Variable[int], *Variable[int]) {
	t.Helper()
	b := NewBuilder[int]("pair")
	x, err := b.AddVariable("x", IntRange(1, 5))
	require.NoError(t, err)
	y, err := b.AddVariable("y", IntRange(1, 5))
	require.NoError(t, err)
	p, err := b.Build()
	require.NoError(t, err)
	return p, x, y
}

func TestAssignmentBasics(t *testing.T) {
	p, x, y := twoVars(t)
	a := p.EmptyAssignment()

	assert.True(t, a.IsEmpty())
	assert.False(t, a.IsComplete())
	assert.Equal(t, 2, a.TotalVariables())

	a.Assign(x, 3)
	assert.True(t, a.IsAssigned(x))
	assert.False(t, a.IsAssigned(y))
	assert.Equal(t, 1, a.Size())

	value, ok := a.Value(x)
	assert.True(t, ok)
	assert.Equal(t, 3, value)

	_, ok = a.Value(y)
	assert.False(t, ok)

	a.Assign(y, 1)
	assert.True(t, a.IsComplete())

	a.Unassign(x)
	assert.False(t, a.IsAssigned(x))
	assert.Equal(t, 1, a.Size())

	// Unassigning twice is harmless.
	a.Unassign(x)
	assert.Equal(t, 1, a.Size())
}

func TestAssignmentReassignKeepsSize(t *testing.T) {
	p, x, _ := twoVars(t)
	a := p.EmptyAssignment()

	a.Assign(x, 1)
	a.Assign(x, 2)
	assert.Equal(t, 1, a.Size())

	value, _ := a.Value(x)
	assert.Equal(t, 2, value)
}

func TestAssignmentCopyIndependence(t *testing.T) {
	p, x, y := twoVars(t)
	a := p.EmptyAssignment()
	a.Assign(x, 4)

	clone := a.Copy()
	clone.Assign(y, 5)
	clone.Unassign(x)

	assert.True(t, a.IsAssigned(x))
	assert.False(t, a.IsAssigned(y))
	assert.False(t, clone.IsAssigned(x))
	assert.True(t, clone.IsAssigned(y))
}

func TestAssignmentMap(t *testing.T) {
	p, x, y := twoVars(t)
	a := p.EmptyAssignment()
	a.Assign(x, 2)
	a.Assign(y, 4)

	assert.Equal(t, map[string]int{"x": 2, "y": 4}, p.AssignmentMap(a))
}
