// Package csp provides finite-domain constraint satisfaction infrastructure.
// This file defines the solver result: terminal status, solutions, metrics
// snapshot, and optional error message.
package csp

import "fmt"

// Status is the terminal state of a solve.
type Status string

// Solve statuses.
const (
	StatusSatisfiable   Status = "SATISFIABLE"
	StatusUnsatisfiable Status = "UNSATISFIABLE"
	StatusTimeout       Status = "TIMEOUT"
	StatusCancelled     Status = "CANCELLED"
	StatusError         Status = "ERROR"
)

// SolverResult is the outcome of a solve: a terminal status, zero or more
// solutions (independent assignment copies), a metrics snapshot, and an
// error message when Status is StatusError.
//
// Timeout and cancellation carry the solutions found so far.
type SolverResult[V comparable] struct {
	Status    Status
	Solutions []*Assignment[V]
	Metrics   MetricsSnapshot
	ErrorMsg  string
}

// Satisfiable creates a SATISFIABLE result.
func Satisfiable[V comparable](solutions []*Assignment[V], metrics MetricsSnapshot) *SolverResult[V] {
	return &SolverResult[V]{Status: StatusSatisfiable, Solutions: solutions, Metrics: metrics}
}

// Unsatisfiable creates an UNSATISFIABLE result.
func Unsatisfiable[V comparable](metrics MetricsSnapshot) *SolverResult[V] {
	return &SolverResult[V]{Status: StatusUnsatisfiable, Metrics: metrics}
}

// Timeout creates a TIMEOUT result carrying any partial solutions.
func Timeout[V comparable](solutions []*Assignment[V], metrics MetricsSnapshot) *SolverResult[V] {
	return &SolverResult[V]{Status: StatusTimeout, Solutions: solutions, Metrics: metrics}
}

// Cancelled creates a CANCELLED result carrying any partial solutions.
func Cancelled[V comparable](solutions []*Assignment[V], metrics MetricsSnapshot) *SolverResult[V] {
	return &SolverResult[V]{Status: StatusCancelled, Solutions: solutions, Metrics: metrics}
}

// Errored creates an ERROR result with the given message.
func Errored[V comparable](message string, metrics MetricsSnapshot) *SolverResult[V] {
	return &SolverResult[V]{Status: StatusError, Metrics: metrics, ErrorMsg: message}
}

// IsSatisfiable returns true if the status is SATISFIABLE. TIMEOUT and
// CANCELLED results report false even when they carry solutions.
func (r *SolverResult[V]) IsSatisfiable() bool { return r.Status == StatusSatisfiable }

// IsUnsatisfiable returns true if no solution exists.
func (r *SolverResult[V]) IsUnsatisfiable() bool { return r.Status == StatusUnsatisfiable }

// Solution returns the first solution, or nil if none was found.
func (r *SolverResult[V]) Solution() *Assignment[V] {
	if len(r.Solutions) == 0 {
		return nil
	}
	return r.Solutions[0]
}

// SolutionCount returns the number of solutions carried by the result.
func (r *SolverResult[V]) SolutionCount() int { return len(r.Solutions) }

// SolutionMaps renders every solution as a variable-name to value map.
func (r *SolverResult[V]) SolutionMaps(p *CSP[V]) []map[string]V {
	maps := make([]map[string]V, 0, len(r.Solutions))
	for _, s := range r.Solutions {
		maps = append(maps, p.AssignmentMap(s))
	}
	return maps
}

func (r *SolverResult[V]) String() string {
	if r.Status == StatusError {
		return fmt.Sprintf("SolverResult[%s: %s]", r.Status, r.ErrorMsg)
	}
	return fmt.Sprintf("SolverResult[%s: %d solutions, %s]", r.Status, len(r.Solutions), r.Metrics)
}
