// Package main provides the gocsp command line: solve curated constraint
// problems (N-Queens, Sudoku, coloring, cryptarithmetic) and run benchmarks
// from the terminal.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
