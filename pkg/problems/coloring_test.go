package problems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gocsp/pkg/csp"
)

func TestAustraliaThreeColors(t *testing.T) {
	m := AustraliaMap()
	p, err := m.CSP()
	require.NoError(t, err)

	solver := csp.NewBacktrackingSolver[string]()
	result := solver.Solve(p)

	require.Equal(t, csp.StatusSatisfiable, result.Status)
	solution := result.Solution()
	require.NotNil(t, solution)

	// Every adjacent pair differs.
	for _, region := range m.Regions() {
		color, ok := solution.Value(p.Variable(region))
		require.True(t, ok, "%s assigned", region)
		assert.Contains(t, m.Colors(), color)

		for _, other := range m.Adjacent(region) {
			otherColor, _ := solution.Value(p.Variable(other))
			assert.NotEqual(t, color, otherColor, "%s and %s share a border", region, other)
		}
	}
}

func TestMapColoringValidation(t *testing.T) {
	_, err := NewMapColoring(nil, []string{"Red"}, "empty")
	assert.Error(t, err)

	_, err = NewMapColoring(map[string][]string{"A": {}}, nil, "no colors")
	assert.Error(t, err)

	_, err = NewMapColoring(map[string][]string{"A": {"B"}}, []string{"Red"}, "dangling")
	assert.Error(t, err, "A borders unknown region B")
}

func TestGraphColoringValidation(t *testing.T) {
	_, err := NewGraphColoring(nil, nil, 3, "")
	assert.Error(t, err)

	_, err = NewGraphColoring([]string{"A"}, nil, 0, "")
	assert.Error(t, err)

	_, err = NewGraphColoring([]string{"A"}, [][2]int{{0, 5}}, 3, "")
	assert.Error(t, err, "edge index out of range")
}

func TestPetersenGraphThreeColorable(t *testing.T) {
	g, err := PetersenGraph(3)
	require.NoError(t, err)
	p, err := g.CSP()
	require.NoError(t, err)

	result := csp.NewBacktrackingSolver[int]().Solve(p)
	require.Equal(t, csp.StatusSatisfiable, result.Status)

	solution := result.Solution()
	for _, e := range g.Edges() {
		u, _ := solution.Value(p.Variable(g.Nodes()[e[0]]))
		v, _ := solution.Value(p.Variable(g.Nodes()[e[1]]))
		assert.NotEqual(t, u, v)
	}
}

func TestCompleteGraphChromaticNumber(t *testing.T) {
	// K4 needs four colors: three must fail, four must succeed.
	g3, err := CompleteGraph(4, 3)
	require.NoError(t, err)
	p3, err := g3.CSP()
	require.NoError(t, err)
	assert.Equal(t, csp.StatusUnsatisfiable, csp.NewBacktrackingSolver[int]().Solve(p3).Status)

	g4, err := CompleteGraph(4, 4)
	require.NoError(t, err)
	p4, err := g4.CSP()
	require.NoError(t, err)
	assert.Equal(t, csp.StatusSatisfiable, csp.NewBacktrackingSolver[int]().Solve(p4).Status)
}

func TestOddCycleNeedsThreeColors(t *testing.T) {
	g2, err := CycleGraph(5, 2)
	require.NoError(t, err)
	p2, err := g2.CSP()
	require.NoError(t, err)
	assert.Equal(t, csp.StatusUnsatisfiable, csp.NewBacktrackingSolver[int]().Solve(p2).Status)

	g3, err := CycleGraph(5, 3)
	require.NoError(t, err)
	p3, err := g3.CSP()
	require.NoError(t, err)
	assert.Equal(t, csp.StatusSatisfiable, csp.NewBacktrackingSolver[int]().Solve(p3).Status)
}

func TestRandomGraphIsSeeded(t *testing.T) {
	a, err := RandomGraph(12, 0.4, 3, 11)
	require.NoError(t, err)
	b, err := RandomGraph(12, 0.4, 3, 11)
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges(), "same seed yields the same graph")

	c, err := RandomGraph(12, 0.4, 3, 12)
	require.NoError(t, err)
	assert.NotEqual(t, a.Edges(), c.Edges(), "different seeds differ")
}
