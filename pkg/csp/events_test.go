package csp

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingEventPublisher(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	publisher := NewLoggingEventPublisher(logger)

	publisher.OnSolveStarted(7, 9)
	publisher.OnVariableSelected("x", 3, 0)
	publisher.OnValueAssigned("x", 2, 0)
	publisher.OnBacktrack("x", 0)
	publisher.OnSolutionFound(1, MetricsSnapshot{NodesExplored: 5})
	publisher.OnProgress(MetricsSnapshot{NodesExplored: 1000})
	publisher.OnSolveCompleted(true, MetricsSnapshot{NodesExplored: 5})

	entries := hook.AllEntries()
	require.Len(t, entries, 7)

	assert.Equal(t, "solve started", entries[0].Message)
	assert.Equal(t, 7, entries[0].Data["variables"])
	assert.Equal(t, logrus.InfoLevel, entries[0].Level)

	assert.Equal(t, logrus.TraceLevel, entries[1].Level, "per-node events stay at trace")
	assert.Equal(t, logrus.DebugLevel, entries[5].Level, "progress logs at debug")

	assert.Equal(t, "solve completed", entries[6].Message)
	assert.Equal(t, true, entries[6].Data["satisfiable"])
}

func TestLoggingEventPublisherDefaultsToStandardLogger(t *testing.T) {
	publisher := NewLoggingEventPublisher(nil)
	assert.NotNil(t, publisher)
	// Must not panic with the fallback logger.
	publisher.OnProgress(MetricsSnapshot{})
}

func TestNopEventPublisher(t *testing.T) {
	var publisher SolverEventPublisher = NopEventPublisher{}
	publisher.OnSolveStarted(1, 1)
	publisher.OnSolveCompleted(false, MetricsSnapshot{})
}
