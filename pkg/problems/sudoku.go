package problems

import (
	"fmt"
	"strings"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// Sudoku models the classic 9×9 puzzle: fill the grid with digits 1-9 so
// each row, column, and 3×3 box holds every digit exactly once.
//
// 81 variables C00..C88 named by row and column; blanks take the domain
// {1..9}, pre-filled cells a singleton. 27 AllDifferent constraints cover
// the 9 rows, 9 columns, and 9 boxes.
type Sudoku struct {
	initial [9][9]int
}

// NewSudoku creates a puzzle from a 9×9 grid; 0 marks a blank. Returns an
// error for wrong dimensions or cell values outside 0..9.
func NewSudoku(grid [][]int) (*Sudoku, error) {
	if len(grid) != 9 {
		return nil, fmt.Errorf("sudoku: grid must have 9 rows, got %d", len(grid))
	}
	s := &Sudoku{}
	for r, row := range grid {
		if len(row) != 9 {
			return nil, fmt.Errorf("sudoku: row %d must have 9 cells, got %d", r, len(row))
		}
		for c, cell := range row {
			if cell < 0 || cell > 9 {
				return nil, fmt.Errorf("sudoku: cell (%d,%d) value %d out of range", r, c, cell)
			}
			s.initial[r][c] = cell
		}
	}
	return s, nil
}

// SudokuFromString creates a puzzle from an 81-cell string. Characters other
// than digits and '.' are ignored; '.' and '0' mark blanks.
func SudokuFromString(puzzle string) (*Sudoku, error) {
	var cells []int
	for _, r := range puzzle {
		switch {
		case r == '.' || r == '0':
			cells = append(cells, 0)
		case r >= '1' && r <= '9':
			cells = append(cells, int(r-'0'))
		}
	}
	if len(cells) != 81 {
		return nil, fmt.Errorf("sudoku: puzzle must have exactly 81 cells, got %d", len(cells))
	}

	grid := make([][]int, 9)
	for r := range grid {
		grid[r] = cells[r*9 : r*9+9]
	}
	return NewSudoku(grid)
}

// Initial returns a copy of the initial grid.
func (s *Sudoku) Initial() [9][9]int { return s.initial }

// CSP builds the constraint problem.
func (s *Sudoku) CSP() (*csp.CSP[int], error) {
	b := csp.NewBuilder[int]("Sudoku")
	var cells [9][9]*csp.Variable[int]

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			var domain *csp.Domain[int]
			if s.initial[r][c] != 0 {
				domain = csp.Singleton(s.initial[r][c])
			} else {
				domain = csp.IntRange(1, 9)
			}
			v, err := b.AddVariable(fmt.Sprintf("C%d%d", r, c), domain)
			if err != nil {
				return nil, err
			}
			cells[r][c] = v
		}
	}

	for r := 0; r < 9; r++ {
		row := make([]*csp.Variable[int], 9)
		for c := 0; c < 9; c++ {
			row[c] = cells[r][c]
		}
		if err := addAllDifferent(b, row, fmt.Sprintf("Row%d", r)); err != nil {
			return nil, err
		}
	}

	for c := 0; c < 9; c++ {
		col := make([]*csp.Variable[int], 9)
		for r := 0; r < 9; r++ {
			col[r] = cells[r][c]
		}
		if err := addAllDifferent(b, col, fmt.Sprintf("Col%d", c)); err != nil {
			return nil, err
		}
	}

	for boxRow := 0; boxRow < 3; boxRow++ {
		for boxCol := 0; boxCol < 3; boxCol++ {
			box := make([]*csp.Variable[int], 0, 9)
			for r := 0; r < 3; r++ {
				for c := 0; c < 3; c++ {
					box = append(box, cells[boxRow*3+r][boxCol*3+c])
				}
			}
			if err := addAllDifferent(b, box, fmt.Sprintf("Box%d%d", boxRow, boxCol)); err != nil {
				return nil, err
			}
		}
	}

	return b.Build()
}

func addAllDifferent(b *csp.Builder[int], scope []*csp.Variable[int], name string) error {
	c, err := csp.NewAllDifferentNamed(scope, name)
	if err != nil {
		return err
	}
	return b.AddConstraint(c)
}

// Name returns the problem's display name.
func (s *Sudoku) Name() string { return "Sudoku" }

// Description returns a one-line description.
func (s *Sudoku) Description() string {
	return "Fill the 9x9 grid so each row, column, and 3x3 box contains 1-9 exactly once."
}

// Grid extracts the solved grid from a solution assignment.
func (s *Sudoku) Grid(p *csp.CSP[int], solution *csp.Assignment[int]) ([9][9]int, error) {
	var grid [9][9]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := p.Variable(fmt.Sprintf("C%d%d", r, c))
			if v == nil {
				return grid, fmt.Errorf("sudoku: missing variable C%d%d", r, c)
			}
			value, ok := solution.Value(v)
			if !ok {
				return grid, fmt.Errorf("sudoku: C%d%d unassigned", r, c)
			}
			grid[r][c] = value
		}
	}
	return grid, nil
}

// FormatGrid renders a solved grid with box separators.
func FormatGrid(grid [9][9]int) string {
	var b strings.Builder
	b.WriteString("+-------+-------+-------+\n")
	for r := 0; r < 9; r++ {
		b.WriteString("| ")
		for c := 0; c < 9; c++ {
			if grid[r][c] == 0 {
				b.WriteString(". ")
			} else {
				fmt.Fprintf(&b, "%d ", grid[r][c])
			}
			if c%3 == 2 {
				b.WriteString("| ")
			}
		}
		b.WriteString("\n")
		if r%3 == 2 {
			b.WriteString("+-------+-------+-------+\n")
		}
	}
	return b.String()
}

// EasySudoku returns the canonical easy example puzzle.
func EasySudoku() *Sudoku {
	s, _ := SudokuFromString(
		"530070000" +
			"600195000" +
			"098000060" +
			"800060003" +
			"400803001" +
			"700020006" +
			"060000280" +
			"000419005" +
			"000080079")
	return s
}

// MediumSudoku returns the medium example puzzle.
func MediumSudoku() *Sudoku {
	s, _ := SudokuFromString(
		"000000680" +
			"030080000" +
			"900007253" +
			"004000000" +
			"200500009" +
			"001074080" +
			"070001004" +
			"500040000" +
			"060000017")
	return s
}

// HardSudoku returns the hard example puzzle.
func HardSudoku() *Sudoku {
	s, _ := SudokuFromString(
		"800000000" +
			"003600000" +
			"070090200" +
			"050007000" +
			"000045700" +
			"000100030" +
			"001000068" +
			"008500010" +
			"090000400")
	return s
}
