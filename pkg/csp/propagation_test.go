package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangle builds three mutually-unequal variables over 1..k.
func triangle(t *testing.T, k int) (*CSP[int], []*Variable[int]) {
	t.Helper()
	b := NewBuilder[int]("triangle")
	vars, err := AddIntVariables(b, "v", 3, 1, k)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			require.NoError(t, b.AddConstraint(NewNotEqual(vars[i], vars[j])))
		}
	}
	p, err := b.Build()
	require.NoError(t, err)
	return p, vars
}

func TestForwardCheckerPreprocessIsNoop(t *testing.T) {
	p, _ := triangle(t, 3)
	fc := NewForwardChecker[int]()
	result := fc.Preprocess(p, p.WorkingDomains())
	assert.True(t, result.OK())
	assert.Zero(t, result.DomainReductions)
}

func TestForwardCheckerPrunesNeighbors(t *testing.T) {
	p, vars := triangle(t, 3)
	domains := p.WorkingDomains()
	a := p.EmptyAssignment()
	fc := NewForwardChecker[int]()

	a.Assign(vars[0], 1)
	result := fc.PropagateAfterAssignment(vars[0], 1, p, a, domains)

	require.True(t, result.OK())
	assert.True(t, domains[vars[0]].IsSingleton(), "assigned domain reduced to the value")
	assert.Equal(t, []int{2, 3}, domains[vars[1]].Values())
	assert.Equal(t, []int{2, 3}, domains[vars[2]].Values())
	assert.Equal(t, 2, result.DomainReductions)
	assert.Positive(t, result.ConstraintChecks)
}

func TestForwardCheckerReportsWipeout(t *testing.T) {
	// Two variables over a single shared value: assigning one wipes the
	// other.
	b := NewBuilder[int]("wipe")
	x, err := b.AddVariable("x", IntRange(1, 1))
	require.NoError(t, err)
	y, err := b.AddVariable("y", IntRange(1, 1))
	require.NoError(t, err)
	ne := NewNotEqual(x, y)
	require.NoError(t, b.AddConstraint(ne))
	p, err := b.Build()
	require.NoError(t, err)

	domains := p.WorkingDomains()
	a := p.EmptyAssignment()
	a.Assign(x, 1)

	result := NewForwardChecker[int]().PropagateAfterAssignment(x, 1, p, a, domains)
	assert.True(t, result.Contradiction)
	assert.Same(t, Constraint[int](ne), result.FailedConstraint)
	assert.True(t, domains[y].IsEmpty())
}

func TestAC3PreprocessPrunesSingletons(t *testing.T) {
	// x fixed to 2, y in 1..3, x != y: AC-3 must drop 2 from y.
	b := NewBuilder[int]("ac3")
	x, err := b.AddVariable("x", Singleton(2))
	require.NoError(t, err)
	y, err := b.AddVariable("y", IntRange(1, 3))
	require.NoError(t, err)
	require.NoError(t, b.AddConstraint(NewNotEqual(x, y)))
	p, err := b.Build()
	require.NoError(t, err)

	domains := p.WorkingDomains()
	result := NewAC3Propagator[int]().Preprocess(p, domains)

	require.True(t, result.OK())
	assert.Equal(t, []int{1, 3}, domains[y].Values())
	assert.Equal(t, 1, result.DomainReductions)
	assert.Positive(t, result.ArcRevisions)
}

func TestAC3Idempotence(t *testing.T) {
	p, _ := triangle(t, 3)
	domains := p.WorkingDomains()
	ac3 := NewAC3Propagator[int]()

	first := ac3.Preprocess(p, domains)
	require.True(t, first.OK())
	snapshot := make(map[string][]int)
	for v, d := range domains {
		snapshot[v.Name()] = d.Values()
	}

	second := ac3.Preprocess(p, domains)
	require.True(t, second.OK())
	assert.Zero(t, second.DomainReductions, "second run reduces nothing")
	for v, d := range domains {
		assert.Equal(t, snapshot[v.Name()], d.Values())
	}
}

func TestAC3DetectsWipeout(t *testing.T) {
	// x <= y with D(x) = {5}, D(y) = {1, 2}: revising y against x empties y
	// (or revising x against y empties x, depending on arc order).
	b := NewBuilder[int]("leq-wipe")
	x, err := b.AddVariable("x", Singleton(5))
	require.NoError(t, err)
	y, err := b.AddVariable("y", IntRange(1, 2))
	require.NoError(t, err)
	leq := NewLessThanOrEqual(x, y)
	require.NoError(t, b.AddConstraint(leq))
	p, err := b.Build()
	require.NoError(t, err)

	domains := p.WorkingDomains()
	result := NewAC3Propagator[int]().Preprocess(p, domains)

	assert.True(t, result.Contradiction)
	assert.Same(t, Constraint[int](leq), result.FailedConstraint)
}

func TestAC3AfterAssignment(t *testing.T) {
	p, vars := triangle(t, 3)
	domains := p.WorkingDomains()
	a := p.EmptyAssignment()
	ac3 := NewAC3Propagator[int]()

	a.Assign(vars[0], 3)
	result := ac3.PropagateAfterAssignment(vars[0], 3, p, a, domains)

	require.True(t, result.OK())
	assert.False(t, domains[vars[1]].Contains(3))
	assert.False(t, domains[vars[2]].Contains(3))
}

func TestPropagationSoundness(t *testing.T) {
	// When forward checking reports a contradiction, no completion of the
	// partial assignment satisfies all constraints. Exhaustively verify on
	// the 3-variable, 2-value triangle.
	p, vars := triangle(t, 2)
	domains := p.WorkingDomains()
	a := p.EmptyAssignment()
	fc := NewForwardChecker[int]()

	a.Assign(vars[0], 1)
	require.NoError(t, domains[vars[0]].ReduceTo(1))
	result := fc.PropagateAfterAssignment(vars[0], 1, p, a, domains)
	require.True(t, result.OK())

	a.Assign(vars[1], 2)
	require.NoError(t, domains[vars[1]].ReduceTo(2))
	result = fc.PropagateAfterAssignment(vars[1], 2, p, a, domains)
	require.True(t, result.Contradiction)

	// Exhaustive check: no value of v2 satisfies everything.
	for _, value := range []int{1, 2} {
		trial := a.Copy()
		trial.Assign(vars[2], value)
		satisfiedAll := true
		for _, c := range p.Constraints() {
			if !c.IsSatisfied(trial) {
				satisfiedAll = false
				break
			}
		}
		assert.False(t, satisfiedAll)
	}
}
