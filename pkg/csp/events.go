// Package csp provides finite-domain constraint satisfaction infrastructure.
// This file defines the solver event sink: callbacks invoked synchronously
// on the search goroutine, with a no-op sink and a logrus-backed sink.
package csp

import (
	"github.com/sirupsen/logrus"
)

// ProgressInterval is the node-count period of OnProgress callbacks.
const ProgressInterval = 1000

// SolverEventPublisher receives search events. Callbacks run synchronously
// on the search goroutine, so implementations must be non-blocking on the
// fast path and handle their own fan-out.
type SolverEventPublisher interface {
	// OnSolveStarted fires once when a solve begins.
	OnSolveStarted(numVariables, numConstraints int)

	// OnVariableSelected fires when the search picks a variable to branch on.
	OnVariableSelected(variable string, domainSize, depth int)

	// OnValueAssigned fires when a candidate value is bound.
	OnValueAssigned(variable string, value any, depth int)

	// OnBacktrack fires when a candidate value is abandoned.
	OnBacktrack(variable string, depth int)

	// OnSolutionFound fires for each published solution.
	OnSolutionFound(solutionNumber int, metrics MetricsSnapshot)

	// OnProgress fires every ProgressInterval explored nodes.
	OnProgress(metrics MetricsSnapshot)

	// OnSolveCompleted fires once when the solve terminates.
	OnSolveCompleted(satisfiable bool, metrics MetricsSnapshot)
}

// NopEventPublisher discards all events.
type NopEventPublisher struct{}

// OnSolveStarted implements SolverEventPublisher.
func (NopEventPublisher) OnSolveStarted(int, int) {}

// OnVariableSelected implements SolverEventPublisher.
func (NopEventPublisher) OnVariableSelected(string, int, int) {}

// OnValueAssigned implements SolverEventPublisher.
func (NopEventPublisher) OnValueAssigned(string, any, int) {}

// OnBacktrack implements SolverEventPublisher.
func (NopEventPublisher) OnBacktrack(string, int) {}

// OnSolutionFound implements SolverEventPublisher.
func (NopEventPublisher) OnSolutionFound(int, MetricsSnapshot) {}

// OnProgress implements SolverEventPublisher.
func (NopEventPublisher) OnProgress(MetricsSnapshot) {}

// OnSolveCompleted implements SolverEventPublisher.
func (NopEventPublisher) OnSolveCompleted(bool, MetricsSnapshot) {}

// LoggingEventPublisher writes solver events as structured logrus entries.
// Per-node events (selection, assignment, backtrack) log at trace level so
// they stay cheap unless explicitly enabled; lifecycle events log at info
// and progress at debug.
type LoggingEventPublisher struct {
	log logrus.FieldLogger
}

// NewLoggingEventPublisher creates a publisher writing to the given logger.
// A nil logger falls back to the logrus standard logger.
func NewLoggingEventPublisher(log logrus.FieldLogger) *LoggingEventPublisher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LoggingEventPublisher{log: log}
}

// OnSolveStarted implements SolverEventPublisher.
func (p *LoggingEventPublisher) OnSolveStarted(numVariables, numConstraints int) {
	p.log.WithFields(logrus.Fields{
		"variables":   numVariables,
		"constraints": numConstraints,
	}).Info("solve started")
}

// OnVariableSelected implements SolverEventPublisher.
func (p *LoggingEventPublisher) OnVariableSelected(variable string, domainSize, depth int) {
	p.log.WithFields(logrus.Fields{
		"variable":   variable,
		"domainSize": domainSize,
		"depth":      depth,
	}).Trace("variable selected")
}

// OnValueAssigned implements SolverEventPublisher.
func (p *LoggingEventPublisher) OnValueAssigned(variable string, value any, depth int) {
	p.log.WithFields(logrus.Fields{
		"variable": variable,
		"value":    value,
		"depth":    depth,
	}).Trace("value assigned")
}

// OnBacktrack implements SolverEventPublisher.
func (p *LoggingEventPublisher) OnBacktrack(variable string, depth int) {
	p.log.WithFields(logrus.Fields{
		"variable": variable,
		"depth":    depth,
	}).Trace("backtrack")
}

// OnSolutionFound implements SolverEventPublisher.
func (p *LoggingEventPublisher) OnSolutionFound(solutionNumber int, metrics MetricsSnapshot) {
	p.log.WithFields(logrus.Fields{
		"solution": solutionNumber,
		"nodes":    metrics.NodesExplored,
		"elapsed":  metrics.ElapsedMs,
	}).Info("solution found")
}

// OnProgress implements SolverEventPublisher.
func (p *LoggingEventPublisher) OnProgress(metrics MetricsSnapshot) {
	p.log.WithFields(logrus.Fields{
		"nodes":      metrics.NodesExplored,
		"backtracks": metrics.Backtracks,
		"elapsed":    metrics.ElapsedMs,
	}).Debug("search progress")
}

// OnSolveCompleted implements SolverEventPublisher.
func (p *LoggingEventPublisher) OnSolveCompleted(satisfiable bool, metrics MetricsSnapshot) {
	p.log.WithFields(logrus.Fields{
		"satisfiable": satisfiable,
		"nodes":       metrics.NodesExplored,
		"backtracks":  metrics.Backtracks,
		"elapsed":     metrics.ElapsedMs,
	}).Info("solve completed")
}
