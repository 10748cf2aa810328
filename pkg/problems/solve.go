package problems

import (
	"fmt"
	"time"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// MinConflictsThreshold is the board size at and above which SolveNQueens
// routes to min-conflicts local search instead of backtracking.
const MinConflictsThreshold = 50

// NQueensResult is the outcome of SolveNQueens: the terminal status, the
// queen columns per row on success, the method used, and metrics for the
// backtracking path.
type NQueensResult struct {
	Status  csp.Status
	Queens  []int
	Method  string
	Metrics csp.MetricsSnapshot
}

// SolveNQueens solves N-Queens with the routing rule: boards of
// MinConflictsThreshold rows or more use min-conflicts local search with an
// iteration budget of 50·N (unless the config overrides it); smaller boards
// run the backtracking solver.
func SolveNQueens(n int, config csp.SolverConfig) (*NQueensResult, error) {
	problem, err := NewNQueens(n)
	if err != nil {
		return nil, err
	}

	if n >= MinConflictsThreshold {
		return solveQueensMinConflicts(problem, config)
	}
	return solveQueensBacktracking(problem, config)
}

func solveQueensBacktracking(problem *NQueens, config csp.SolverConfig) (*NQueensResult, error) {
	p, err := problem.CSP()
	if err != nil {
		return nil, err
	}

	solver := csp.NewBacktrackingSolverWithConfig[int](config)
	result := solver.Solve(p)

	out := &NQueensResult{
		Status:  result.Status,
		Method:  "backtracking",
		Metrics: result.Metrics,
	}
	if solution := result.Solution(); solution != nil {
		columns, err := problem.Columns(p, solution)
		if err != nil {
			return nil, err
		}
		out.Queens = columns
	}
	return out, nil
}

func solveQueensMinConflicts(problem *NQueens, config csp.SolverConfig) (*NQueensResult, error) {
	n := problem.N()
	maxIter := config.MinConflictsMaxIter
	if maxIter <= 0 {
		maxIter = csp.DefaultMinConflictsPerSize * n
	}

	start := time.Now()
	solver := csp.NewMinConflictsQueens(n, config.MinConflictsSeed)
	queens, ok := solver.Solve(maxIter)
	elapsed := time.Since(start)

	out := &NQueensResult{
		Method:  "min-conflicts",
		Metrics: csp.MetricsSnapshot{ElapsedMs: elapsed.Milliseconds()},
	}
	if !ok {
		// Local search is incomplete: budget exhaustion says nothing about
		// satisfiability, so report it as a timeout.
		out.Status = csp.StatusTimeout
		return out, nil
	}
	if !ValidateSolution(queens) {
		return nil, fmt.Errorf("n-queens: min-conflicts produced an invalid placement")
	}
	out.Status = csp.StatusSatisfiable
	out.Queens = queens
	return out, nil
}
