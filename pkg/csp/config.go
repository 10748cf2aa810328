// Package csp provides finite-domain constraint satisfaction infrastructure.
// This file defines the solver configuration: heuristic choices, propagation
// strategy, limits, and the optional event sink.
package csp

import (
	"fmt"
	"time"
)

// VariableHeuristic names a variable-ordering strategy.
type VariableHeuristic string

// Variable-ordering strategies.
const (
	HeuristicMRV       VariableHeuristic = "MRV"
	HeuristicDegree    VariableHeuristic = "DEGREE"
	HeuristicDomWDeg   VariableHeuristic = "DOM_WDEG"
	HeuristicMRVDegree VariableHeuristic = "MRV_DEGREE"
)

// ValueHeuristic names a value-ordering strategy.
type ValueHeuristic string

// Value-ordering strategies.
const (
	ValueDefault ValueHeuristic = "DEFAULT"
	ValueLCV     ValueHeuristic = "LCV"
)

// PropagatorKind names a propagation engine.
type PropagatorKind string

// Propagation engines.
const (
	PropagatorForwardChecking PropagatorKind = "FORWARD_CHECKING"
	PropagatorAC3             PropagatorKind = "AC3"
)

// Default limits.
const (
	DefaultTimeout             = 60 * time.Second
	DefaultMaxSolutions        = 1
	DefaultMinConflictsSeed    = 42
	DefaultMinConflictsPerSize = 50
)

// SolverConfig holds the options of a solve. The zero value is not useful;
// start from DefaultSolverConfig and adjust with the With* modifiers, which
// return updated copies so a config literal can be built fluently.
//
// A config value is an immutable snapshot once handed to a solver.
type SolverConfig struct {
	// VariableHeuristic selects the variable-ordering strategy.
	VariableHeuristic VariableHeuristic

	// ValueHeuristic selects the value-ordering strategy.
	ValueHeuristic ValueHeuristic

	// LCVMaxDomainSize bounds the domain size for which LCV is computed.
	LCVMaxDomainSize int

	// Propagator selects the engine run after each assignment.
	Propagator PropagatorKind

	// AC3Preprocessing enables the AC-3 pass before search.
	AC3Preprocessing bool

	// Timeout bounds the wall-clock time of a solve.
	Timeout time.Duration

	// FindAllSolutions keeps searching after the first solution, up to
	// MaxSolutions. MaxSolutions > 1 implies find-all behavior up to that
	// limit.
	FindAllSolutions bool
	MaxSolutions     int

	// EventPublisher receives search events; nil disables publishing.
	EventPublisher SolverEventPublisher

	// MinConflictsSeed seeds the min-conflicts random source.
	MinConflictsSeed int64

	// MinConflictsMaxIter caps min-conflicts iterations; 0 means 50*N.
	MinConflictsMaxIter int
}

// DefaultSolverConfig returns the defaults: MRV+Degree, domain-order values,
// forward checking with AC-3 preprocessing, a one-minute timeout, first
// solution only.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		VariableHeuristic: HeuristicMRVDegree,
		ValueHeuristic:    ValueDefault,
		LCVMaxDomainSize:  DefaultLCVMaxDomainSize,
		Propagator:        PropagatorForwardChecking,
		AC3Preprocessing:  true,
		Timeout:           DefaultTimeout,
		MaxSolutions:      DefaultMaxSolutions,
		MinConflictsSeed:  DefaultMinConflictsSeed,
	}
}

// WithVariableHeuristic returns a copy using the given variable heuristic.
func (c SolverConfig) WithVariableHeuristic(h VariableHeuristic) SolverConfig {
	c.VariableHeuristic = h
	return c
}

// WithValueHeuristic returns a copy using the given value heuristic.
func (c SolverConfig) WithValueHeuristic(h ValueHeuristic) SolverConfig {
	c.ValueHeuristic = h
	return c
}

// WithLCV returns a copy using LCV value ordering with the given activation
// bound.
func (c SolverConfig) WithLCV(maxDomainSize int) SolverConfig {
	c.ValueHeuristic = ValueLCV
	c.LCVMaxDomainSize = maxDomainSize
	return c
}

// WithPropagator returns a copy using the given propagation engine.
func (c SolverConfig) WithPropagator(p PropagatorKind) SolverConfig {
	c.Propagator = p
	return c
}

// WithAC3Preprocessing returns a copy with the preprocessing pass toggled.
func (c SolverConfig) WithAC3Preprocessing(enabled bool) SolverConfig {
	c.AC3Preprocessing = enabled
	return c
}

// WithTimeout returns a copy with the given wall-clock budget.
func (c SolverConfig) WithTimeout(timeout time.Duration) SolverConfig {
	c.Timeout = timeout
	return c
}

// WithMaxSolutions returns a copy searching for up to max solutions.
func (c SolverConfig) WithMaxSolutions(max int) SolverConfig {
	c.MaxSolutions = max
	if max > 1 {
		c.FindAllSolutions = true
	}
	return c
}

// WithFindAllSolutions returns a copy with find-all behavior toggled.
func (c SolverConfig) WithFindAllSolutions(all bool) SolverConfig {
	c.FindAllSolutions = all
	return c
}

// WithEventPublisher returns a copy publishing events to the given sink.
func (c SolverConfig) WithEventPublisher(publisher SolverEventPublisher) SolverConfig {
	c.EventPublisher = publisher
	return c
}

// WithMinConflictsSeed returns a copy seeding min-conflicts randomness.
func (c SolverConfig) WithMinConflictsSeed(seed int64) SolverConfig {
	c.MinConflictsSeed = seed
	return c
}

// WithMinConflictsMaxIter returns a copy capping min-conflicts iterations.
func (c SolverConfig) WithMinConflictsMaxIter(maxIter int) SolverConfig {
	c.MinConflictsMaxIter = maxIter
	return c
}

func (c SolverConfig) String() string {
	return fmt.Sprintf("SolverConfig[var=%s, val=%s, prop=%s, ac3=%t, timeout=%s, findAll=%t, max=%d]",
		c.VariableHeuristic, c.ValueHeuristic, c.Propagator, c.AC3Preprocessing,
		c.Timeout, c.FindAllSolutions, c.MaxSolutions)
}

// newVariableSelector builds a fresh selector instance for one solve.
// Learning selectors hold per-solve state, so instances are never shared.
func newVariableSelector[V comparable](h VariableHeuristic) VariableSelector[V] {
	switch h {
	case HeuristicMRV:
		return NewMRVSelector[V]()
	case HeuristicDegree:
		return NewDegreeSelector[V]()
	case HeuristicDomWDeg:
		return NewDomWDegSelector[V]()
	default:
		return NewMRVDegreeSelector[V]()
	}
}

// newValueSelector builds a fresh value selector for one solve.
func newValueSelector[V comparable](c SolverConfig) ValueSelector[V] {
	if c.ValueHeuristic == ValueLCV {
		s := NewLCVSelector[V]()
		if c.LCVMaxDomainSize > 0 {
			s.MaxDomainSize = c.LCVMaxDomainSize
		}
		return s
	}
	return NewDefaultValueSelector[V]()
}

// newPropagator builds a fresh propagation engine for one solve.
func newPropagator[V comparable](kind PropagatorKind) PropagationEngine[V] {
	if kind == PropagatorAC3 {
		return NewAC3Propagator[V]()
	}
	return NewForwardChecker[V]()
}
