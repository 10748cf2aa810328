// Package csp provides finite-domain constraint satisfaction infrastructure.
// This file implements the min-conflicts local search for N-Queens, the
// escape hatch for board sizes where pairwise backtracking is too slow.
package csp

import (
	"math"
	"math/rand"
)

// MinConflictsQueens solves N-Queens by local search: a greedy left-to-right
// initialization followed by repeatedly moving the queen of a random
// conflicted row to its least conflicting column. Column and diagonal
// occupancy counters give O(1) conflict evaluation per candidate move.
//
// The random source is seeded explicitly, so runs with the same seed and
// board size are reproducible.
type MinConflictsQueens struct {
	n      int
	queens []int // queens[row] = column
	rng    *rand.Rand

	rowConflicts []int
	colCounts    []int
	diag1Counts  []int // row + col
	diag2Counts  []int // row - col + n - 1

	totalConflicts int
}

// NewMinConflictsQueens creates a solver for an n×n board with the given
// random seed.
func NewMinConflictsQueens(n int, seed int64) *MinConflictsQueens {
	return &MinConflictsQueens{
		n:            n,
		queens:       make([]int, n),
		rng:          rand.New(rand.NewSource(seed)),
		rowConflicts: make([]int, n),
		colCounts:    make([]int, n),
		diag1Counts:  make([]int, 2*n-1),
		diag2Counts:  make([]int, 2*n-1),
	}
}

// Solve runs up to maxIterations improvement steps. It returns the queen
// columns per row and true on success, or nil and false when the iteration
// budget is exhausted with conflicts remaining.
func (m *MinConflictsQueens) Solve(maxIterations int) ([]int, bool) {
	m.initializeGreedy()

	if m.totalConflicts == 0 {
		return m.solution(), true
	}

	for iter := 0; iter < maxIterations; iter++ {
		row := m.pickConflictedRow()
		if row == -1 {
			return m.solution(), true
		}

		bestCol := m.findMinConflictColumn(row)
		if bestCol != m.queens[row] {
			m.moveQueen(row, bestCol)
		}

		if m.totalConflicts == 0 {
			return m.solution(), true
		}
	}
	return nil, false
}

// TotalConflicts returns the number of attacking pairs after the last run.
func (m *MinConflictsQueens) TotalConflicts() int { return m.totalConflicts }

func (m *MinConflictsQueens) solution() []int {
	out := make([]int, m.n)
	copy(out, m.queens)
	return out
}

// initializeGreedy places each queen row by row in a column minimizing the
// conflicts with the queens already placed, then computes per-row conflict
// counts. Ties break uniformly at random.
func (m *MinConflictsQueens) initializeGreedy() {
	for i := range m.colCounts {
		m.colCounts[i] = 0
	}
	for i := range m.diag1Counts {
		m.diag1Counts[i] = 0
	}
	for i := range m.diag2Counts {
		m.diag2Counts[i] = 0
	}
	m.totalConflicts = 0

	for row := 0; row < m.n; row++ {
		bestCol := 0
		minConflicts := math.MaxInt
		ties := 0

		for col := 0; col < m.n; col++ {
			conflicts := m.colCounts[col] +
				m.diag1Counts[row+col] +
				m.diag2Counts[row-col+m.n-1]
			switch {
			case conflicts < minConflicts:
				minConflicts = conflicts
				bestCol = col
				ties = 1
			case conflicts == minConflicts:
				// Reservoir choice keeps each tied column equally likely.
				ties++
				if m.rng.Intn(ties) == 0 {
					bestCol = col
				}
			}
		}

		m.queens[row] = bestCol
		m.colCounts[bestCol]++
		m.diag1Counts[row+bestCol]++
		m.diag2Counts[row-bestCol+m.n-1]++
	}

	m.recomputeConflicts()
}

// recomputeConflicts refreshes per-row conflict counts and the halved total
// (each attacking pair is seen from both endpoints).
func (m *MinConflictsQueens) recomputeConflicts() {
	m.totalConflicts = 0
	for row := 0; row < m.n; row++ {
		col := m.queens[row]
		conflicts := (m.colCounts[col] - 1) +
			(m.diag1Counts[row+col] - 1) +
			(m.diag2Counts[row-col+m.n-1] - 1)
		m.rowConflicts[row] = conflicts
		m.totalConflicts += conflicts
	}
	m.totalConflicts /= 2
}

// pickConflictedRow returns a uniformly random row with conflicts, or -1
// when none remain.
func (m *MinConflictsQueens) pickConflictedRow() int {
	count := 0
	for row := 0; row < m.n; row++ {
		if m.rowConflicts[row] > 0 {
			count++
		}
	}
	if count == 0 {
		return -1
	}

	target := m.rng.Intn(count)
	for row := 0; row < m.n; row++ {
		if m.rowConflicts[row] > 0 {
			if target == 0 {
				return row
			}
			target--
		}
	}
	return -1
}

// findMinConflictColumn evaluates every column of the row; the current
// column discounts its own three counter contributions. Ties break uniformly
// at random.
func (m *MinConflictsQueens) findMinConflictColumn(row int) int {
	oldCol := m.queens[row]
	bestCol := oldCol
	minConflicts := math.MaxInt
	ties := 0

	for col := 0; col < m.n; col++ {
		conflicts := m.colCounts[col] +
			m.diag1Counts[row+col] +
			m.diag2Counts[row-col+m.n-1]
		if col == oldCol {
			conflicts -= 3
		}

		switch {
		case conflicts < minConflicts:
			minConflicts = conflicts
			bestCol = col
			ties = 1
		case conflicts == minConflicts:
			ties++
			if m.rng.Intn(ties) == 0 {
				bestCol = col
			}
		}
	}
	return bestCol
}

func (m *MinConflictsQueens) moveQueen(row, newCol int) {
	oldCol := m.queens[row]

	m.colCounts[oldCol]--
	m.diag1Counts[row+oldCol]--
	m.diag2Counts[row-oldCol+m.n-1]--

	m.queens[row] = newCol
	m.colCounts[newCol]++
	m.diag1Counts[row+newCol]++
	m.diag2Counts[row-newCol+m.n-1]++

	m.recomputeConflicts()
}
