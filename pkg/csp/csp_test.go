package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderDuplicateVariable(t *testing.T) {
	b := NewBuilder[int]("dup")
	_, err := b.AddVariable("x", IntRange(1, 3))
	require.NoError(t, err)

	_, err = b.AddVariable("x", IntRange(1, 3))
	assert.ErrorIs(t, err, ErrDuplicateVariable)
}

func TestBuilderUnknownVariableInConstraint(t *testing.T) {
	b := NewBuilder[int]("known")
	x, err := b.AddVariable("x", IntRange(1, 3))
	require.NoError(t, err)

	other := NewBuilder[int]("other")
	stranger, err := other.AddVariable("y", IntRange(1, 3))
	require.NoError(t, err)

	err = b.AddConstraint(NewNotEqual(x, stranger))
	assert.ErrorIs(t, err, ErrUnknownVariable)
}

func TestBuilderEmptyProblem(t *testing.T) {
	_, err := NewBuilder[int]("empty").Build()
	assert.ErrorIs(t, err, ErrNoVariables)
}

func TestCSPAccessors(t *testing.T) {
	b := NewBuilder[int]("accessors")
	vars, err := AddIntVariables(b, "v", 3, 0, 2)
	require.NoError(t, err)
	require.NoError(t, b.AddConstraint(NewNotEqual(vars[0], vars[1])))

	p, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "accessors", p.Name())
	assert.Equal(t, 3, p.NumVariables())
	assert.Equal(t, 1, p.NumConstraints())
	assert.Same(t, vars[1], p.Variable("v1"))
	assert.Nil(t, p.Variable("nope"))
	assert.Same(t, vars[2], p.VariableAt(2))
	assert.Equal(t, 0, vars[0].Index())
	assert.Equal(t, 2, vars[2].Index())
}

func TestWorkingDomainsAreCopies(t *testing.T) {
	b := NewBuilder[int]("working")
	v, err := b.AddVariable("v", IntRange(1, 4))
	require.NoError(t, err)
	p, err := b.Build()
	require.NoError(t, err)

	domains := p.WorkingDomains()
	domains[v].Remove(1)

	assert.Equal(t, 4, v.InitialDomain().Size(), "initial domains stay pristine")
	assert.Equal(t, 3, domains[v].Size())

	fresh := p.WorkingDomains()
	assert.Equal(t, 4, fresh[v].Size())
}

func TestConstraintNetworkIndexes(t *testing.T) {
	b := NewBuilder[int]("network")
	vars, err := AddIntVariables(b, "v", 4, 1, 3)
	require.NoError(t, err)

	ne01 := NewNotEqual(vars[0], vars[1])
	ne12 := NewNotEqual(vars[1], vars[2])
	require.NoError(t, b.AddConstraint(ne01))
	require.NoError(t, b.AddConstraint(ne12))

	allDiff, err := NewAllDifferent(vars[:3])
	require.NoError(t, err)
	require.NoError(t, b.AddConstraint(allDiff))

	p, err := b.Build()
	require.NoError(t, err)
	network := p.Network()

	assert.Len(t, network.ConstraintsOn(vars[1]), 3)
	assert.Len(t, network.ConstraintsOn(vars[3]), 0)
	assert.Equal(t, 3, network.Degree(vars[1]))
	assert.Equal(t, 0, network.Degree(vars[3]))

	between := network.ConstraintsBetween(vars[0], vars[1])
	assert.Len(t, between, 1, "only binary constraints index by pair")
	assert.Same(t, Constraint[int](ne01), between[0])
	assert.Len(t, network.ConstraintsBetween(vars[1], vars[0]), 1, "pair lookup is unordered")

	neighbors := network.Neighbors(vars[0])
	assert.True(t, neighbors.Contains(vars[1]))
	assert.True(t, neighbors.Contains(vars[2]), "AllDifferent links the whole scope")
	assert.False(t, neighbors.Contains(vars[3]))
	assert.Equal(t, 2, network.NeighborCount(vars[0]))
}

func TestNetworkAllArcs(t *testing.T) {
	b := NewBuilder[int]("arcs")
	vars, err := AddIntVariables(b, "v", 2, 1, 3)
	require.NoError(t, err)
	require.NoError(t, b.AddConstraint(NewNotEqual(vars[0], vars[1])))
	p, err := b.Build()
	require.NoError(t, err)

	arcs := p.Network().AllArcs()
	assert.Len(t, arcs, 2)
	assert.Equal(t, vars[0], arcs[0].X)
	assert.Equal(t, vars[1], arcs[0].Y)
}
