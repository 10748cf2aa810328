package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain builds v0 - v1 - v2 - v3 connected in a path by NotEqual, so
// interior variables have higher degree than endpoints.
func chain(t *testing.T) (*CSP[int], []*Variable[int]) {
	t.Helper()
	b := NewBuilder[int]("chain")
	vars, err := AddIntVariables(b, "v", 4, 1, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, b.AddConstraint(NewNotEqual(vars[i], vars[i+1])))
	}
	p, err := b.Build()
	require.NoError(t, err)
	return p, vars
}

func TestMRVSelector(t *testing.T) {
	p, vars := chain(t)
	domains := p.WorkingDomains()
	domains[vars[2]].Remove(1)
	domains[vars[2]].Remove(2)

	selector := NewMRVSelector[int]()
	picked := selector.Select(vars, domains, p, p.EmptyAssignment())
	assert.Same(t, vars[2], picked, "smallest domain wins")

	assert.Nil(t, selector.Select(nil, domains, p, p.EmptyAssignment()))
}

func TestMRVSelectorTiesBreakByOrder(t *testing.T) {
	p, vars := chain(t)
	domains := p.WorkingDomains()

	selector := NewMRVSelector[int]()
	picked := selector.Select(vars, domains, p, p.EmptyAssignment())
	assert.Same(t, vars[0], picked, "all tied: first in iteration order")
}

func TestDegreeSelector(t *testing.T) {
	p, vars := chain(t)
	domains := p.WorkingDomains()
	a := p.EmptyAssignment()

	selector := NewDegreeSelector[int]()
	picked := selector.Select(vars, domains, p, a)
	assert.Same(t, vars[1], picked, "interior variable has degree 2")

	// Assigning v2 drops v1's active degree to 1 and v3's to 0.
	a.Assign(vars[2], 1)
	unassigned := []*Variable[int]{vars[0], vars[1], vars[3]}
	picked = selector.Select(unassigned, domains, p, a)
	assert.Same(t, vars[0], picked, "v0 and v1 tie at active degree 1; first wins")
}

func TestCompositeMRVDegree(t *testing.T) {
	p, vars := chain(t)
	domains := p.WorkingDomains()

	// All domains equal: MRV ties on everything, Degree picks an interior
	// variable.
	selector := NewMRVDegreeSelector[int]()
	picked := selector.Select(vars, domains, p, p.EmptyAssignment())
	assert.Same(t, vars[1], picked)

	// A strictly smaller domain beats degree.
	domains[vars[3]].Remove(1)
	picked = selector.Select(vars, domains, p, p.EmptyAssignment())
	assert.Same(t, vars[3], picked)

	assert.Equal(t, "MRV+Degree", selector.Name())
}

func TestDomWDegLearnsWeights(t *testing.T) {
	p, vars := chain(t)
	domains := p.WorkingDomains()
	a := p.EmptyAssignment()
	selector := NewDomWDegSelector[int]()

	c01 := p.Constraints()[0]
	assert.Equal(t, 1.0, selector.Weight(c01))

	selector.RecordFailure(vars[0], c01)
	selector.RecordFailure(vars[0], c01)
	assert.Equal(t, 3.0, selector.Weight(c01))

	// v0 only touches the heavy constraint: wdeg(v0) = 3, ratio 3/3 = 1.
	// v3 only touches an unweighted one: ratio 3/1 = 3. v1 touches the
	// heavy constraint plus one more: 3/4. v1 wins.
	picked := selector.Select(vars, domains, p, a)
	assert.Same(t, vars[1], picked)

	selector.Reset()
	assert.Equal(t, 1.0, selector.Weight(c01), "reset forgets learned weights")
}

func TestDomWDegIgnoresNilConstraint(t *testing.T) {
	selector := NewDomWDegSelector[int]()
	selector.RecordFailure(nil, nil)
	// Nothing to assert beyond not panicking; weight map stays empty.
	assert.Equal(t, "Dom/WDeg", selector.Name())
}

func TestDefaultValueSelectorUniverseOrder(t *testing.T) {
	p, vars := chain(t)
	domains := p.WorkingDomains()
	domains[vars[0]].Remove(2)

	selector := NewDefaultValueSelector[int]()
	ordered := selector.Order(vars[0], domains[vars[0]], p, p.EmptyAssignment(), domains)
	assert.Equal(t, []int{1, 3}, ordered)
}

func TestLCVSelectorPrefersLeastConstraining(t *testing.T) {
	// v0 and v1 share NotEqual; v1's domain is {1}. Assigning v0=1 rules
	// out v1's only value, so LCV must try 2 and 3 first.
	b := NewBuilder[int]("lcv")
	v0, err := b.AddVariable("v0", IntRange(1, 3))
	require.NoError(t, err)
	v1, err := b.AddVariable("v1", Singleton(1))
	require.NoError(t, err)
	require.NoError(t, b.AddConstraint(NewNotEqual(v0, v1)))
	p, err := b.Build()
	require.NoError(t, err)

	domains := p.WorkingDomains()
	selector := NewLCVSelector[int]()
	ordered := selector.Order(v0, domains[v0], p, p.EmptyAssignment(), domains)

	require.Len(t, ordered, 3)
	assert.Equal(t, 1, ordered[2], "the most constraining value goes last")
}

func TestLCVSelectorFallsBackOnLargeDomains(t *testing.T) {
	b := NewBuilder[int]("lcv-large")
	v, err := b.AddVariable("v", IntRange(1, 30))
	require.NoError(t, err)
	p, err := b.Build()
	require.NoError(t, err)

	domains := p.WorkingDomains()
	selector := NewLCVSelector[int]()
	ordered := selector.Order(v, domains[v], p, p.EmptyAssignment(), domains)
	assert.Equal(t, domains[v].Values(), ordered, "degenerates to universe order")
}
