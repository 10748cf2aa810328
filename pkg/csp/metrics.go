// Package csp provides finite-domain constraint satisfaction infrastructure.
// This file defines the solver metrics: atomic counters accumulated during a
// solve and the immutable snapshot published to callers and event sinks.
package csp

import (
	"fmt"
	"sync/atomic"
	"time"
)

// SolverMetrics accumulates search statistics. Counters use atomic
// increments so a concurrent observer (for example a progress publisher on
// another goroutine) reads a monotonic, if momentarily stale, snapshot.
type SolverMetrics struct {
	nodesExplored    atomic.Int64
	backtracks       atomic.Int64
	constraintChecks atomic.Int64
	arcRevisions     atomic.Int64
	domainReductions atomic.Int64
	solutionsFound   atomic.Int64

	startNanos atomic.Int64
	endNanos   atomic.Int64
}

// NewSolverMetrics creates metrics with the clock started.
func NewSolverMetrics() *SolverMetrics {
	m := &SolverMetrics{}
	m.Start()
	return m
}

// Start stamps the solve start time.
func (m *SolverMetrics) Start() {
	m.startNanos.Store(time.Now().UnixNano())
	m.endNanos.Store(0)
}

// Stop stamps the solve end time.
func (m *SolverMetrics) Stop() {
	m.endNanos.Store(time.Now().UnixNano())
}

// IncrementNodesExplored counts one explored search node.
func (m *SolverMetrics) IncrementNodesExplored() { m.nodesExplored.Add(1) }

// IncrementBacktracks counts one abandoned candidate value.
func (m *SolverMetrics) IncrementBacktracks() { m.backtracks.Add(1) }

// IncrementSolutionsFound counts one published solution.
func (m *SolverMetrics) IncrementSolutionsFound() { m.solutionsFound.Add(1) }

// AddConstraintChecks accumulates constraint checks from a propagation call.
func (m *SolverMetrics) AddConstraintChecks(n int) { m.constraintChecks.Add(int64(n)) }

// AddArcRevisions accumulates arc revisions from a propagation call.
func (m *SolverMetrics) AddArcRevisions(n int) { m.arcRevisions.Add(int64(n)) }

// AddDomainReductions accumulates removed values from a propagation call.
func (m *SolverMetrics) AddDomainReductions(n int) { m.domainReductions.Add(int64(n)) }

// NodesExplored returns the explored node count.
func (m *SolverMetrics) NodesExplored() int64 { return m.nodesExplored.Load() }

// Backtracks returns the backtrack count.
func (m *SolverMetrics) Backtracks() int64 { return m.backtracks.Load() }

// Elapsed returns the wall time since Start (until Stop, if stopped).
func (m *SolverMetrics) Elapsed() time.Duration {
	end := m.endNanos.Load()
	if end == 0 {
		end = time.Now().UnixNano()
	}
	return time.Duration(end - m.startNanos.Load())
}

// Reset clears all counters and restarts the clock.
func (m *SolverMetrics) Reset() {
	m.nodesExplored.Store(0)
	m.backtracks.Store(0)
	m.constraintChecks.Store(0)
	m.arcRevisions.Store(0)
	m.domainReductions.Store(0)
	m.solutionsFound.Store(0)
	m.Start()
}

// AddPropagation folds one propagation result's counters into the metrics.
func AddPropagation[V comparable](m *SolverMetrics, r PropagationResult[V]) {
	m.AddConstraintChecks(r.ConstraintChecks)
	m.AddArcRevisions(r.ArcRevisions)
	m.AddDomainReductions(r.DomainReductions)
}

// Snapshot returns an immutable view of the current counters.
func (m *SolverMetrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		NodesExplored:    m.nodesExplored.Load(),
		Backtracks:       m.backtracks.Load(),
		ConstraintChecks: m.constraintChecks.Load(),
		ArcRevisions:     m.arcRevisions.Load(),
		DomainReductions: m.domainReductions.Load(),
		SolutionsFound:   m.solutionsFound.Load(),
		ElapsedMs:        m.Elapsed().Milliseconds(),
	}
}

func (m *SolverMetrics) String() string {
	return m.Snapshot().String()
}

// MetricsSnapshot is an immutable view of solver metrics at a point in time.
type MetricsSnapshot struct {
	NodesExplored    int64 `json:"nodesExplored"`
	Backtracks       int64 `json:"backtracks"`
	ConstraintChecks int64 `json:"constraintChecks"`
	ArcRevisions     int64 `json:"arcRevisions"`
	DomainReductions int64 `json:"domainReductions"`
	SolutionsFound   int64 `json:"solutionsFound"`
	ElapsedMs        int64 `json:"elapsedMs"`
}

func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("Metrics[nodes=%d, backtracks=%d, checks=%d, revisions=%d, time=%dms]",
		s.NodesExplored, s.Backtracks, s.ConstraintChecks, s.ArcRevisions, s.ElapsedMs)
}
