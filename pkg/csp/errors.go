package csp

import "errors"

// Sentinel errors shared across the package. Callers can match these with
// errors.Is even when they arrive wrapped with additional context.
var (
	// ErrEmptyDomain is returned when an operation requires at least one
	// active value but the domain has none.
	ErrEmptyDomain = errors.New("domain is empty")

	// ErrUnknownValue is returned when a value is not part of a domain's
	// universe of candidate values.
	ErrUnknownValue = errors.New("value not in domain universe")

	// ErrNoCheckpoint is returned by Rollback when no checkpoint was saved.
	ErrNoCheckpoint = errors.New("no checkpoint to roll back to")

	// ErrDuplicateVariable is returned by the builder when a variable name
	// is added twice.
	ErrDuplicateVariable = errors.New("variable already exists")

	// ErrUnknownVariable is returned when a constraint references a variable
	// that was never added to the problem.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrNoVariables is returned by Build for a problem with no variables.
	ErrNoVariables = errors.New("problem must have at least one variable")
)
