package problems

import (
	"time"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// QueensBenchmark aggregates the runs of one N-Queens board size.
type QueensBenchmark struct {
	N             int
	Runs          int
	Method        string
	Solved        int
	AvgElapsed    time.Duration
	MinElapsed    time.Duration
	MaxElapsed    time.Duration
	AvgNodes      int64
	AvgBacktracks int64
}

// BenchmarkNQueens runs SolveNQueens for each board size the given number
// of times and aggregates timing and search statistics per size.
func BenchmarkNQueens(sizes []int, runs int, config csp.SolverConfig) ([]QueensBenchmark, error) {
	if runs < 1 {
		runs = 1
	}
	results := make([]QueensBenchmark, 0, len(sizes))

	for _, n := range sizes {
		bench := QueensBenchmark{N: n, Runs: runs}
		var totalElapsed time.Duration
		var totalNodes, totalBacktracks int64

		for run := 0; run < runs; run++ {
			start := time.Now()
			result, err := SolveNQueens(n, config)
			if err != nil {
				return nil, err
			}
			elapsed := time.Since(start)

			bench.Method = result.Method
			if result.Status == csp.StatusSatisfiable {
				bench.Solved++
			}
			totalElapsed += elapsed
			totalNodes += result.Metrics.NodesExplored
			totalBacktracks += result.Metrics.Backtracks

			if run == 0 || elapsed < bench.MinElapsed {
				bench.MinElapsed = elapsed
			}
			if elapsed > bench.MaxElapsed {
				bench.MaxElapsed = elapsed
			}
		}

		bench.AvgElapsed = totalElapsed / time.Duration(runs)
		bench.AvgNodes = totalNodes / int64(runs)
		bench.AvgBacktracks = totalBacktracks / int64(runs)
		results = append(results, bench)
	}
	return results, nil
}
