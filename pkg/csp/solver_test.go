package csp

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// australia builds the Australia map coloring problem inline: six mainland
// regions plus Tasmania, three colors.
func australia(t *testing.T) *CSP[int] {
	t.Helper()
	regions := []string{"WA", "NT", "SA", "Q", "NSW", "V", "T"}
	borders := [][2]string{
		{"WA", "NT"}, {"WA", "SA"}, {"NT", "SA"}, {"NT", "Q"},
		{"SA", "Q"}, {"SA", "NSW"}, {"SA", "V"}, {"Q", "NSW"}, {"NSW", "V"},
	}

	b := NewBuilder[int]("Australia")
	for _, region := range regions {
		_, err := b.AddVariable(region, IntRange(0, 2))
		require.NoError(t, err)
	}
	for _, border := range borders {
		require.NoError(t, b.AddConstraint(NewNotEqual(b.Variable(border[0]), b.Variable(border[1]))))
	}
	p, err := b.Build()
	require.NoError(t, err)
	return p
}

func TestSolveAustraliaMapColoring(t *testing.T) {
	p := australia(t)
	solver := NewBacktrackingSolver[int]()
	result := solver.Solve(p)

	require.Equal(t, StatusSatisfiable, result.Status)
	solution := result.Solution()
	require.NotNil(t, solution)
	require.True(t, solution.IsComplete())

	for _, c := range p.Constraints() {
		assert.True(t, c.IsSatisfied(solution), "constraint %s holds", c.Name())
	}
	assert.GreaterOrEqual(t, result.Metrics.NodesExplored, int64(7))
	assert.GreaterOrEqual(t, result.Metrics.NodesExplored, result.Metrics.Backtracks)
}

func TestSolverConfigurationsAllSolve(t *testing.T) {
	configs := map[string]SolverConfig{
		"mrv":          DefaultSolverConfig().WithVariableHeuristic(HeuristicMRV),
		"degree":       DefaultSolverConfig().WithVariableHeuristic(HeuristicDegree),
		"dom-wdeg":     DefaultSolverConfig().WithVariableHeuristic(HeuristicDomWDeg),
		"lcv":          DefaultSolverConfig().WithLCV(20),
		"ac3-search":   DefaultSolverConfig().WithPropagator(PropagatorAC3),
		"no-preproc":   DefaultSolverConfig().WithAC3Preprocessing(false),
		"find-all-two": DefaultSolverConfig().WithMaxSolutions(2),
	}

	for name, config := range configs {
		t.Run(name, func(t *testing.T) {
			p := australia(t)
			solver := NewBacktrackingSolverWithConfig[int](config)
			result := solver.Solve(p)

			require.Equal(t, StatusSatisfiable, result.Status)
			for _, solution := range result.Solutions {
				for _, c := range p.Constraints() {
					assert.True(t, c.IsSatisfied(solution))
				}
			}
		})
	}
}

func TestSolveUnsatisfiableTriangle(t *testing.T) {
	// Three mutually unequal variables over two values.
	p, _ := triangle(t, 2)
	solver := NewBacktrackingSolver[int]()
	result := solver.Solve(p)

	assert.Equal(t, StatusUnsatisfiable, result.Status)
	assert.Empty(t, result.Solutions)
}

func TestSolveUnsatisfiableByPreprocessing(t *testing.T) {
	// x in {1}, y in {1}, x != y: AC-3 preprocessing wipes a domain before
	// any search node is explored.
	b := NewBuilder[int]("preproc-unsat")
	x, err := b.AddVariable("x", Singleton(1))
	require.NoError(t, err)
	y, err := b.AddVariable("y", Singleton(1))
	require.NoError(t, err)
	require.NoError(t, b.AddConstraint(NewNotEqual(x, y)))
	p, err := b.Build()
	require.NoError(t, err)

	solver := NewBacktrackingSolver[int]()
	result := solver.Solve(p)

	assert.Equal(t, StatusUnsatisfiable, result.Status)
	assert.Zero(t, result.Metrics.Backtracks)
	assert.Zero(t, result.Metrics.NodesExplored)
}

func TestSolveFindAllSolutions(t *testing.T) {
	// Two free variables over {1,2} with x != y: exactly two solutions.
	b := NewBuilder[int]("all")
	x, err := b.AddVariable("x", IntRange(1, 2))
	require.NoError(t, err)
	y, err := b.AddVariable("y", IntRange(1, 2))
	require.NoError(t, err)
	require.NoError(t, b.AddConstraint(NewNotEqual(x, y)))
	p, err := b.Build()
	require.NoError(t, err)

	config := DefaultSolverConfig().WithMaxSolutions(10)
	solver := NewBacktrackingSolverWithConfig[int](config)
	result := solver.Solve(p)

	require.Equal(t, StatusSatisfiable, result.Status)
	assert.Equal(t, 2, result.SolutionCount())

	maps := result.SolutionMaps(p)
	assert.Contains(t, maps, map[string]int{"x": 1, "y": 2})
	assert.Contains(t, maps, map[string]int{"x": 2, "y": 1})
}

func TestSolveZeroTimeout(t *testing.T) {
	p := australia(t)
	config := DefaultSolverConfig().WithTimeout(0)
	solver := NewBacktrackingSolverWithConfig[int](config)
	result := solver.Solve(p)

	assert.Equal(t, StatusTimeout, result.Status)
	assert.Empty(t, result.Solutions)
}

func TestSolveCancellation(t *testing.T) {
	// A large unsatisfiable pigeonhole-style problem keeps the search busy
	// long enough to observe the cancel flag.
	b := NewBuilder[int]("busy")
	vars, err := AddIntVariables(b, "v", 14, 1, 13)
	require.NoError(t, err)
	for i := range vars {
		for j := i + 1; j < len(vars); j++ {
			require.NoError(t, b.AddConstraint(NewNotEqual(vars[i], vars[j])))
		}
	}
	p, err := b.Build()
	require.NoError(t, err)

	config := DefaultSolverConfig().WithAC3Preprocessing(false)
	solver := NewBacktrackingSolverWithConfig[int](config)

	var wg sync.WaitGroup
	var result *SolverResult[int]
	wg.Add(1)
	go func() {
		defer wg.Done()
		result = solver.Solve(p)
	}()

	// Wait until the solve is observably running, then cancel.
	deadline := time.Now().Add(5 * time.Second)
	for !solver.IsSolving() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	solver.Cancel()
	wg.Wait()

	assert.Contains(t, []Status{StatusCancelled, StatusUnsatisfiable}, result.Status,
		"cancelled mid-search, or finished before the flag was seen")
}

func TestSolverStateAccessors(t *testing.T) {
	config := DefaultSolverConfig().WithTimeout(5 * time.Second)
	solver := NewBacktrackingSolverWithConfig[int](config)

	assert.False(t, solver.IsSolving())
	assert.Equal(t, config.Timeout, solver.Configuration().Timeout)

	p := australia(t)
	result := solver.Solve(p)
	assert.False(t, solver.IsSolving(), "solving flag clears on return")
	assert.Equal(t, StatusSatisfiable, result.Status)
}

// recordingPublisher captures event callbacks for assertions.
type recordingPublisher struct {
	started    int
	completed  int
	solutions  int
	assigned   int
	backtracks int
}

func (r *recordingPublisher) OnSolveStarted(int, int)              { r.started++ }
func (r *recordingPublisher) OnVariableSelected(string, int, int)  {}
func (r *recordingPublisher) OnValueAssigned(string, any, int)     { r.assigned++ }
func (r *recordingPublisher) OnBacktrack(string, int)              { r.backtracks++ }
func (r *recordingPublisher) OnSolutionFound(int, MetricsSnapshot) { r.solutions++ }
func (r *recordingPublisher) OnProgress(MetricsSnapshot)           {}
func (r *recordingPublisher) OnSolveCompleted(bool, MetricsSnapshot) {
	r.completed++
}

func TestSolverPublishesEvents(t *testing.T) {
	publisher := &recordingPublisher{}
	config := DefaultSolverConfig().WithEventPublisher(publisher)

	p := australia(t)
	solver := NewBacktrackingSolverWithConfig[int](config)
	result := solver.Solve(p)

	require.Equal(t, StatusSatisfiable, result.Status)
	assert.Equal(t, 1, publisher.started)
	assert.Equal(t, 1, publisher.completed)
	assert.Equal(t, 1, publisher.solutions)
	assert.Positive(t, publisher.assigned)
}

func TestSolveReusableAcrossRuns(t *testing.T) {
	solver := NewBacktrackingSolver[int]()

	first := solver.Solve(australia(t))
	second := solver.Solve(australia(t))

	assert.Equal(t, StatusSatisfiable, first.Status)
	assert.Equal(t, StatusSatisfiable, second.Status)
	assert.Equal(t, first.Metrics.NodesExplored, second.Metrics.NodesExplored,
		"metrics reset between runs keeps solves deterministic")
}
