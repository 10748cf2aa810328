package problems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gocsp/pkg/csp"
)

func TestBenchmarkNQueensAggregates(t *testing.T) {
	results, err := BenchmarkNQueens([]int{4, 8}, 2, csp.DefaultSolverConfig())
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, r := range results {
		assert.Equal(t, 2, r.Runs)
		assert.Equal(t, 2, r.Solved)
		assert.Equal(t, "backtracking", r.Method)
		assert.GreaterOrEqual(t, r.MaxElapsed, r.MinElapsed)
		assert.Positive(t, r.AvgNodes)
	}
}

func TestBenchmarkNQueensMinimumRuns(t *testing.T) {
	results, err := BenchmarkNQueens([]int{4}, 0, csp.DefaultSolverConfig())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Runs, "run count clamps to one")
}

func TestBenchmarkNQueensPropagatesErrors(t *testing.T) {
	_, err := BenchmarkNQueens([]int{-1}, 1, csp.DefaultSolverConfig())
	assert.Error(t, err)
}

func BenchmarkSolve8Queens(b *testing.B) {
	config := csp.DefaultSolverConfig()
	for i := 0; i < b.N; i++ {
		if _, err := SolveNQueens(8, config); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolveEasySudoku(b *testing.B) {
	puzzle := EasySudoku()
	for i := 0; i < b.N; i++ {
		p, err := puzzle.CSP()
		if err != nil {
			b.Fatal(err)
		}
		result := csp.NewBacktrackingSolver[int]().Solve(p)
		if result.Status != csp.StatusSatisfiable {
			b.Fatalf("unexpected status %s", result.Status)
		}
	}
}

func BenchmarkMinConflicts1000Queens(b *testing.B) {
	for i := 0; i < b.N; i++ {
		solver := csp.NewMinConflictsQueens(1000, csp.DefaultMinConflictsSeed)
		if _, ok := solver.Solve(50 * 1000); !ok {
			b.Fatal("1000-queens did not solve")
		}
	}
}

func BenchmarkSolveNQueensFast(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if SolveNQueensFast(24) == nil {
			b.Fatal("24-queens did not solve")
		}
	}
}

func BenchmarkSolveNQueensFastWithMetrics(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if result := SolveNQueensFastWithMetrics(24); result.Status != csp.StatusSatisfiable {
			b.Fatalf("unexpected status %s", result.Status)
		}
	}
}
