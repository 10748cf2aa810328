package problems

import (
	"fmt"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// SolveNQueensFast finds one N-Queens placement with a specialized
// backtracker: boolean occupancy arrays for columns and both diagonal
// directions give O(1) conflict checks and no allocation in the hot path.
// Returns nil when no placement exists (n = 2 or 3).
//
// This bypasses the CSP machinery entirely; use it for benchmarking and as
// a cross-check for the general solver. SolveNQueensFastWithMetrics runs
// the same search with full metrics accounting.
func SolveNQueensFast(n int) []int {
	if n <= 0 {
		return nil
	}
	solution := make([]int, n)
	columns := make([]bool, n)
	diag1 := make([]bool, 2*n) // row + col
	diag2 := make([]bool, 2*n) // row - col + n

	if fastBacktrack(0, n, solution, columns, diag1, diag2) {
		return solution
	}
	return nil
}

func fastBacktrack(row, n int, solution []int, columns, diag1, diag2 []bool) bool {
	if row == n {
		return true
	}
	for col := 0; col < n; col++ {
		d1 := row + col
		d2 := row - col + n
		if columns[col] || diag1[d1] || diag2[d2] {
			continue
		}
		solution[row] = col
		columns[col] = true
		diag1[d1] = true
		diag2[d2] = true

		if fastBacktrack(row+1, n, solution, columns, diag1, diag2) {
			return true
		}

		columns[col] = false
		diag1[d1] = false
		diag2[d2] = false
	}
	return false
}

// bitRow is a fixed-size bitset over uint64 words for occupancy tracking.
type bitRow []uint64

func newBitRow(n int) bitRow { return make(bitRow, (n+63)/64) }

func (b bitRow) get(i int) bool { return (b[i/64]>>uint(i%64))&1 == 1 }
func (b bitRow) set(i int)      { b[i/64] |= 1 << uint(i%64) }
func (b bitRow) clear(i int)    { b[i/64] &^= 1 << uint(i%64) }

// SolveNQueensFastWithMetrics runs the specialized backtracker with
// bitset-based column and diagonal tracking and full metrics accounting.
// The result carries one solution binding Q0..Q(n-1) to the queen columns,
// or UNSATISFIABLE when no placement exists; the metrics snapshot counts
// explored nodes and backtracks like the general solver's.
func SolveNQueensFastWithMetrics(n int) *csp.SolverResult[int] {
	metrics := csp.NewSolverMetrics()

	if n <= 0 {
		metrics.Stop()
		return csp.Unsatisfiable[int](metrics.Snapshot())
	}

	solution := make([]int, n)
	columns := newBitRow(n)
	diag1 := newBitRow(2 * n) // row + col
	diag2 := newBitRow(2 * n) // row - col + n

	found := metricsBacktrack(0, n, solution, columns, diag1, diag2, metrics)
	metrics.Stop()

	if !found {
		return csp.Unsatisfiable[int](metrics.Snapshot())
	}

	// Rebuild the placement as an assignment over Q0..Q(n-1).
	b := csp.NewBuilder[int](fmt.Sprintf("N-Queens-%d-fast", n))
	assignment := csp.NewAssignment[int](n)
	for row, col := range solution {
		v, err := b.AddVariable(fmt.Sprintf("Q%d", row), csp.Singleton(col))
		if err != nil {
			return csp.Errored[int](err.Error(), metrics.Snapshot())
		}
		assignment.Assign(v, col)
	}
	return csp.Satisfiable([]*csp.Assignment[int]{assignment}, metrics.Snapshot())
}

func metricsBacktrack(row, n int, solution []int, columns, diag1, diag2 bitRow, metrics *csp.SolverMetrics) bool {
	if row == n {
		metrics.IncrementSolutionsFound()
		return true
	}

	// Sequential column ordering is the fastest for large boards.
	for col := 0; col < n; col++ {
		d1 := row + col
		d2 := row - col + n
		if columns.get(col) || diag1.get(d1) || diag2.get(d2) {
			continue
		}
		metrics.IncrementNodesExplored()

		solution[row] = col
		columns.set(col)
		diag1.set(d1)
		diag2.set(d2)

		if metricsBacktrack(row+1, n, solution, columns, diag1, diag2, metrics) {
			return true
		}

		columns.clear(col)
		diag1.clear(d1)
		diag2.clear(d2)
		metrics.IncrementBacktracks()
	}
	return false
}
