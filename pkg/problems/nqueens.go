// Package problems provides curated CSP builders: N-Queens, Sudoku, graph
// and map coloring, and cryptarithmetic, together with solving helpers and
// benchmark hooks.
package problems

import (
	"fmt"
	"strings"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// N-Queens board size limits accepted by the builders.
const (
	MinQueens = 1
	MaxQueens = 10000
)

// NQueens models the N-Queens puzzle: place N queens on an N×N board so
// that no two share a row, column, or diagonal.
//
// One variable per row, Q0..Q(N-1), each holding the queen's column
// 0..N-1. Every pair of rows gets a NotEqual (columns) and a QueensDiagonal
// constraint.
type NQueens struct {
	n int
}

// NewNQueens creates an N-Queens builder. Returns an error unless
// MinQueens <= n <= MaxQueens.
func NewNQueens(n int) (*NQueens, error) {
	if n < MinQueens || n > MaxQueens {
		return nil, fmt.Errorf("n-queens: board size %d out of range [%d, %d]", n, MinQueens, MaxQueens)
	}
	return &NQueens{n: n}, nil
}

// N returns the board size.
func (q *NQueens) N() int { return q.n }

// CSP builds the constraint problem.
func (q *NQueens) CSP() (*csp.CSP[int], error) {
	b := csp.NewBuilder[int](fmt.Sprintf("N-Queens-%d", q.n))

	queens, err := csp.AddIntVariables(b, "Q", q.n, 0, q.n-1)
	if err != nil {
		return nil, err
	}

	for i := 0; i < q.n; i++ {
		for j := i + 1; j < q.n; j++ {
			if err := b.AddConstraint(csp.NewNotEqual(queens[i], queens[j])); err != nil {
				return nil, err
			}
			if err := b.AddConstraint(csp.NewQueensDiagonal(queens[i], queens[j], j-i)); err != nil {
				return nil, err
			}
		}
	}
	return b.Build()
}

// Name returns the problem's display name.
func (q *NQueens) Name() string { return fmt.Sprintf("%d-Queens", q.n) }

// Description returns a one-line description.
func (q *NQueens) Description() string {
	return fmt.Sprintf("Place %d queens on a %dx%d chessboard such that no two queens attack each other.", q.n, q.n, q.n)
}

// Columns extracts the queen column per row from a solution assignment.
func (q *NQueens) Columns(p *csp.CSP[int], solution *csp.Assignment[int]) ([]int, error) {
	columns := make([]int, q.n)
	for row := 0; row < q.n; row++ {
		v := p.Variable(fmt.Sprintf("Q%d", row))
		if v == nil {
			return nil, fmt.Errorf("n-queens: missing variable Q%d", row)
		}
		col, ok := solution.Value(v)
		if !ok {
			return nil, fmt.Errorf("n-queens: Q%d unassigned", row)
		}
		columns[row] = col
	}
	return columns, nil
}

// ValidateSolution checks a column placement: every column in range, no two
// queens sharing a column or diagonal.
func ValidateSolution(columns []int) bool {
	n := len(columns)
	for i := 0; i < n; i++ {
		if columns[i] < 0 || columns[i] >= n {
			return false
		}
		for j := i + 1; j < n; j++ {
			if columns[i] == columns[j] {
				return false
			}
			diff := columns[i] - columns[j]
			if diff < 0 {
				diff = -diff
			}
			if diff == j-i {
				return false
			}
		}
	}
	return true
}

// FormatBoard renders a placement as an ASCII board.
func FormatBoard(columns []int) string {
	n := len(columns)
	var b strings.Builder
	fmt.Fprintf(&b, "%d-Queens Solution:\n", n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if col == columns[row] {
				b.WriteString("Q ")
			} else {
				b.WriteString(". ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
