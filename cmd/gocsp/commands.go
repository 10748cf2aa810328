package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gocsp/pkg/csp"
	"github.com/gitrdm/gocsp/pkg/problems"
)

func newQueensCmd(flags *solveFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "queens <n>",
		Short: "Solve the N-Queens puzzle",
		Long:  "Solve the N-Queens puzzle. Boards with 50 or more rows route to min-conflicts local search.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid board size %q: %w", args[0], err)
			}

			result, err := problems.SolveNQueens(n, flags.config())
			if err != nil {
				return err
			}

			fmt.Printf("%d-Queens: %s (%s)\n", n, result.Status, result.Method)
			if result.Status == csp.StatusSatisfiable && n <= 40 {
				fmt.Print(problems.FormatBoard(result.Queens))
			} else if result.Status == csp.StatusSatisfiable {
				fmt.Printf("queens=%v\n", result.Queens[:min(16, len(result.Queens))])
			}
			printMetrics(result.Metrics)
			return nil
		},
	}
}

func newSudokuCmd(flags *solveFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sudoku <puzzle|easy|medium|hard>",
		Short: "Solve a Sudoku puzzle",
		Long:  "Solve a Sudoku puzzle given as an 81-character string ('.' or '0' for blanks), or one of the named examples.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var puzzle *problems.Sudoku
			var err error
			switch strings.ToLower(args[0]) {
			case "easy":
				puzzle = problems.EasySudoku()
			case "medium":
				puzzle = problems.MediumSudoku()
			case "hard":
				puzzle = problems.HardSudoku()
			default:
				puzzle, err = problems.SudokuFromString(args[0])
				if err != nil {
					return err
				}
			}

			p, err := puzzle.CSP()
			if err != nil {
				return err
			}
			solver := csp.NewBacktrackingSolverWithConfig[int](flags.config())
			result := solver.Solve(p)

			fmt.Printf("Sudoku: %s\n", result.Status)
			if solution := result.Solution(); solution != nil {
				grid, err := puzzle.Grid(p, solution)
				if err != nil {
					return err
				}
				fmt.Print(problems.FormatGrid(grid))
			}
			printMetrics(result.Metrics)
			return nil
		},
	}
}

func newColorCmd(flags *solveFlags) *cobra.Command {
	var colors int
	cmd := &cobra.Command{
		Use:   "color <australia|usa|petersen|complete:N|cycle:N>",
		Short: "Solve a map or graph coloring problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(args[0])
			switch {
			case name == "australia":
				return runMapColoring(problems.AustraliaMap(), flags)
			case name == "usa":
				return runMapColoring(problems.USASampleMap(), flags)
			case name == "petersen":
				g, err := problems.PetersenGraph(colors)
				if err != nil {
					return err
				}
				return runGraphColoring(g, flags)
			case strings.HasPrefix(name, "complete:"):
				n, err := strconv.Atoi(strings.TrimPrefix(name, "complete:"))
				if err != nil {
					return fmt.Errorf("invalid graph size in %q: %w", args[0], err)
				}
				g, err := problems.CompleteGraph(n, colors)
				if err != nil {
					return err
				}
				return runGraphColoring(g, flags)
			case strings.HasPrefix(name, "cycle:"):
				n, err := strconv.Atoi(strings.TrimPrefix(name, "cycle:"))
				if err != nil {
					return fmt.Errorf("invalid graph size in %q: %w", args[0], err)
				}
				g, err := problems.CycleGraph(n, colors)
				if err != nil {
					return err
				}
				return runGraphColoring(g, flags)
			default:
				return fmt.Errorf("unknown coloring problem %q", args[0])
			}
		},
	}
	cmd.Flags().IntVar(&colors, "colors", 3, "number of colors for graph problems")
	return cmd
}

func runMapColoring(m *problems.MapColoring, flags *solveFlags) error {
	p, err := m.CSP()
	if err != nil {
		return err
	}
	solver := csp.NewBacktrackingSolverWithConfig[string](flags.config())
	result := solver.Solve(p)

	fmt.Printf("%s: %s\n", m.Name(), result.Status)
	if solution := result.Solution(); solution != nil {
		for _, region := range m.Regions() {
			color, _ := solution.Value(p.Variable(region))
			fmt.Printf("  %-4s %s\n", region, color)
		}
	}
	printMetrics(result.Metrics)
	return nil
}

func runGraphColoring(g *problems.GraphColoring, flags *solveFlags) error {
	p, err := g.CSP()
	if err != nil {
		return err
	}
	solver := csp.NewBacktrackingSolverWithConfig[int](flags.config())
	result := solver.Solve(p)

	fmt.Printf("%s: %s\n", g.Name(), result.Status)
	if solution := result.Solution(); solution != nil {
		for _, node := range g.Nodes() {
			color, _ := solution.Value(p.Variable(node))
			fmt.Printf("  %-6s color %d\n", node, color)
		}
	}
	printMetrics(result.Metrics)
	return nil
}

func newCryptCmd(flags *solveFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "crypt <word1> <word2> <result>",
		Short: "Solve a cryptarithmetic puzzle word1 + word2 = result",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			puzzle, err := problems.NewCryptarithmetic(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			p, err := puzzle.CSP()
			if err != nil {
				return err
			}
			solver := csp.NewBacktrackingSolverWithConfig[int](flags.config())
			result := solver.Solve(p)

			fmt.Printf("%s: %s\n", puzzle.Name(), result.Status)
			if solution := result.Solution(); solution != nil {
				n1, n2, nr, err := puzzle.Digits(p, solution)
				if err != nil {
					return err
				}
				fmt.Printf("  %d + %d = %d\n", n1, n2, nr)
				for name, value := range p.AssignmentMap(solution) {
					fmt.Printf("  %s = %d\n", name, value)
				}
			}
			printMetrics(result.Metrics)
			return nil
		},
	}
}

func newBenchCmd(flags *solveFlags) *cobra.Command {
	var sizes string
	var runs int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the N-Queens solver across board sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			var boardSizes []int
			for _, s := range strings.Split(sizes, ",") {
				n, err := strconv.Atoi(strings.TrimSpace(s))
				if err != nil {
					return fmt.Errorf("invalid size %q: %w", s, err)
				}
				boardSizes = append(boardSizes, n)
			}

			results, err := problems.BenchmarkNQueens(boardSizes, runs, flags.config())
			if err != nil {
				return err
			}

			fmt.Printf("%-8s %-14s %-8s %-12s %-12s %-10s\n",
				"N", "method", "solved", "avg", "max", "nodes")
			for _, r := range results {
				fmt.Printf("%-8d %-14s %d/%-6d %-12s %-12s %-10d\n",
					r.N, r.Method, r.Solved, r.Runs, r.AvgElapsed.Round(0), r.MaxElapsed.Round(0), r.AvgNodes)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sizes, "sizes", "4,8,16,32,64,100,200", "comma-separated board sizes")
	cmd.Flags().IntVar(&runs, "runs", 3, "runs per size for averaging")
	return cmd
}
