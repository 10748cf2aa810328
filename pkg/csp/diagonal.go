package csp

import "fmt"

// QueensDiagonal is the binary constraint |col1 - col2| != rowDiff, used to
// keep two queens that are rowDiff rows apart off a shared diagonal.
type QueensDiagonal struct {
	binary[int]
	rowDiff int
}

// NewQueensDiagonal creates a diagonal constraint between two queen-column
// variables separated by rowDiff rows.
func NewQueensDiagonal(var1, var2 *Variable[int], rowDiff int) *QueensDiagonal {
	c := &QueensDiagonal{rowDiff: rowDiff}
	c.binary = binary[int]{
		var1: var1,
		var2: var2,
		name: fmt.Sprintf("%s diag %s", var1.Name(), var2.Name()),
		check: func(col1, col2 int) bool {
			return abs(col1-col2) != rowDiff
		},
	}
	c.self = c
	return c
}

// RowDiff returns the row separation this constraint guards.
func (c *QueensDiagonal) RowDiff() int { return c.rowDiff }

// Revise prunes only when y's domain is a singleton column col: the two
// attacked columns col-rowDiff and col+rowDiff are removed from x.
func (c *QueensDiagonal) Revise(x, y *Variable[int], domains DomainMap[int]) bool {
	dx, dy := domains[x], domains[y]
	if dx == nil || dy == nil {
		return false
	}
	if !dy.IsSingleton() {
		return false
	}
	col, err := dy.First()
	if err != nil {
		return false
	}
	changed := dx.Remove(col - c.rowDiff)
	if dx.Remove(col + c.rowDiff) {
		changed = true
	}
	return changed
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
