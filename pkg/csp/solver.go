// Package csp provides finite-domain constraint satisfaction infrastructure.
// This file implements the backtracking solver: recursive depth-first search
// parameterized by variable ordering, value ordering, and propagation.
package csp

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Solver is the contract exposed to hosting layers.
type Solver[V comparable] interface {
	// Solve runs the search to completion and returns a terminal result.
	// It blocks; only one solve per instance may run at a time.
	Solve(p *CSP[V]) *SolverResult[V]

	// Cancel requests a running solve to unwind. Safe from any goroutine;
	// one-shot per solve.
	Cancel()

	// IsSolving reports whether a solve is in flight.
	IsSolving() bool

	// Configuration returns a snapshot of the solver's configuration.
	Configuration() SolverConfig
}

// BacktrackingSolver performs recursive backtracking search with
// configurable heuristics and propagation.
//
// The search itself is a single synchronous recursion; cancellation and the
// wall-clock deadline are checked at every recursion entry and before each
// candidate value. A solver instance must not run concurrent solves, but
// Cancel may be called from any goroutine.
type BacktrackingSolver[V comparable] struct {
	config  SolverConfig
	metrics *SolverMetrics

	cancelled atomic.Bool
	solving   atomic.Bool
	deadline  time.Time
}

// NewBacktrackingSolver creates a solver with the default configuration.
func NewBacktrackingSolver[V comparable]() *BacktrackingSolver[V] {
	return NewBacktrackingSolverWithConfig[V](DefaultSolverConfig())
}

// NewBacktrackingSolverWithConfig creates a solver with the given
// configuration.
func NewBacktrackingSolverWithConfig[V comparable](config SolverConfig) *BacktrackingSolver[V] {
	return &BacktrackingSolver[V]{
		config:  config,
		metrics: NewSolverMetrics(),
	}
}

// searchState bundles the per-solve collaborators threaded through the
// recursion.
type searchState[V comparable] struct {
	problem          *CSP[V]
	domains          DomainMap[V]
	assignment       *Assignment[V]
	solutions        []*Assignment[V]
	variableSelector VariableSelector[V]
	valueSelector    ValueSelector[V]
	propagator       PropagationEngine[V]
	publisher        SolverEventPublisher
}

// Solve implements Solver. Unexpected panics are converted to an ERROR
// result; the metrics snapshot is returned in every case.
func (s *BacktrackingSolver[V]) Solve(p *CSP[V]) (result *SolverResult[V]) {
	s.cancelled.Store(false)
	s.solving.Store(true)
	defer s.solving.Store(false)

	s.metrics.Reset()
	s.deadline = time.Now().Add(s.config.Timeout)

	defer func() {
		if r := recover(); r != nil {
			s.metrics.Stop()
			result = Errored[V](fmt.Sprintf("solver panic: %v", r), s.metrics.Snapshot())
		}
	}()

	state := &searchState[V]{
		problem:          p,
		variableSelector: newVariableSelector[V](s.config.VariableHeuristic),
		valueSelector:    newValueSelector[V](s.config),
		propagator:       newPropagator[V](s.config.Propagator),
		publisher:        s.config.EventPublisher,
	}
	state.variableSelector.Reset()

	if state.publisher != nil {
		state.publisher.OnSolveStarted(p.NumVariables(), p.NumConstraints())
	}

	state.domains = p.WorkingDomains()

	if s.config.AC3Preprocessing {
		preprocess := NewAC3Propagator[V]().Preprocess(p, state.domains)
		AddPropagation(s.metrics, preprocess)
		if preprocess.Contradiction {
			s.metrics.Stop()
			snapshot := s.metrics.Snapshot()
			if state.publisher != nil {
				state.publisher.OnSolveCompleted(false, snapshot)
			}
			return Unsatisfiable[V](snapshot)
		}
	}

	state.assignment = p.EmptyAssignment()
	s.backtrack(state, 0)

	s.metrics.Stop()
	snapshot := s.metrics.Snapshot()
	if state.publisher != nil {
		state.publisher.OnSolveCompleted(len(state.solutions) > 0, snapshot)
	}

	switch {
	case s.cancelled.Load():
		return Cancelled(state.solutions, snapshot)
	case s.timedOut():
		return Timeout(state.solutions, snapshot)
	case len(state.solutions) == 0:
		return Unsatisfiable[V](snapshot)
	default:
		return Satisfiable(state.solutions, snapshot)
	}
}

// backtrack returns true when the search should stop unwinding: enough
// solutions were found.
func (s *BacktrackingSolver[V]) backtrack(state *searchState[V], depth int) bool {
	if s.cancelled.Load() || s.timedOut() {
		return false
	}

	if state.assignment.IsComplete() {
		state.solutions = append(state.solutions, state.assignment.Copy())
		s.metrics.IncrementSolutionsFound()
		if state.publisher != nil {
			state.publisher.OnSolutionFound(len(state.solutions), s.metrics.Snapshot())
		}
		return !s.config.FindAllSolutions || len(state.solutions) >= s.config.MaxSolutions
	}

	unassigned := s.unassignedVariables(state)
	variable := state.variableSelector.Select(unassigned, state.domains, state.problem, state.assignment)
	if variable == nil {
		return false
	}
	domain := state.domains[variable]
	if domain == nil || domain.IsEmpty() {
		return false
	}

	if state.publisher != nil {
		state.publisher.OnVariableSelected(variable.Name(), domain.Size(), depth)
	}

	for _, value := range state.valueSelector.Order(variable, domain, state.problem, state.assignment, state.domains) {
		if s.cancelled.Load() || s.timedOut() {
			return false
		}
		s.metrics.IncrementNodesExplored()
		if state.publisher != nil && s.metrics.NodesExplored()%ProgressInterval == 0 {
			state.publisher.OnProgress(s.metrics.Snapshot())
		}

		saved := state.domains.Copy()
		state.assignment.Assign(variable, value)
		_ = state.domains[variable].ReduceTo(value)

		if state.publisher != nil {
			state.publisher.OnValueAssigned(variable.Name(), value, depth)
		}

		propagation := state.propagator.PropagateAfterAssignment(variable, value, state.problem, state.assignment, state.domains)
		AddPropagation(s.metrics, propagation)

		if propagation.OK() && s.backtrack(state, depth+1) {
			return true
		}

		// A backtrack is an abandoned candidate value, counted whether the
		// failure came from propagation or from the subtree beneath it.
		s.metrics.IncrementBacktracks()
		state.assignment.Unassign(variable)
		state.domains = saved

		if propagation.Contradiction && propagation.FailedConstraint != nil {
			state.variableSelector.RecordFailure(variable, propagation.FailedConstraint)
		}

		if state.publisher != nil {
			state.publisher.OnBacktrack(variable.Name(), depth)
		}
	}
	return false
}

func (s *BacktrackingSolver[V]) unassignedVariables(state *searchState[V]) []*Variable[V] {
	unassigned := make([]*Variable[V], 0, state.problem.NumVariables()-state.assignment.Size())
	for _, v := range state.problem.Variables() {
		if !state.assignment.IsAssigned(v) {
			unassigned = append(unassigned, v)
		}
	}
	return unassigned
}

func (s *BacktrackingSolver[V]) timedOut() bool {
	return time.Now().After(s.deadline)
}

// Cancel implements Solver.
func (s *BacktrackingSolver[V]) Cancel() {
	s.cancelled.Store(true)
}

// IsSolving implements Solver.
func (s *BacktrackingSolver[V]) IsSolving() bool {
	return s.solving.Load()
}

// Configuration implements Solver.
func (s *BacktrackingSolver[V]) Configuration() SolverConfig {
	return s.config
}

// Metrics returns the solver's metrics; counters are live while a solve is
// in flight.
func (s *BacktrackingSolver[V]) Metrics() *SolverMetrics {
	return s.metrics
}
