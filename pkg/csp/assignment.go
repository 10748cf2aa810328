// Package csp provides finite-domain constraint satisfaction infrastructure.
// This file defines the Assignment type: a partial mapping from variable
// index to value, with dense array storage for O(1) access.
package csp

import (
	"fmt"
	"strings"
)

// Assignment holds a partial or complete assignment of values to variables.
// Storage is dense: value slots and an assigned mask sized to the problem's
// variable count, with a cached count of assigned variables.
//
// The search owns exactly one working assignment; solutions published in a
// SolverResult are independent copies.
type Assignment[V comparable] struct {
	values   []V
	assigned []bool
	size     int
}

// NewAssignment creates an empty assignment for a problem with the given
// number of variables.
func NewAssignment[V comparable](numVariables int) *Assignment[V] {
	return &Assignment[V]{
		values:   make([]V, numVariables),
		assigned: make([]bool, numVariables),
	}
}

// Assign binds a value to a variable, overwriting any previous binding.
func (a *Assignment[V]) Assign(variable *Variable[V], value V) {
	i := variable.index
	if !a.assigned[i] {
		a.size++
		a.assigned[i] = true
	}
	a.values[i] = value
}

// Unassign removes the binding for a variable, if any.
func (a *Assignment[V]) Unassign(variable *Variable[V]) {
	i := variable.index
	if a.assigned[i] {
		var zero V
		a.values[i] = zero
		a.assigned[i] = false
		a.size--
	}
}

// IsAssigned returns true if the variable has a bound value.
func (a *Assignment[V]) IsAssigned(variable *Variable[V]) bool {
	return a.assigned[variable.index]
}

// Value returns the bound value for a variable and whether one exists.
func (a *Assignment[V]) Value(variable *Variable[V]) (V, bool) {
	i := variable.index
	return a.values[i], a.assigned[i]
}

// Size returns the number of assigned variables.
func (a *Assignment[V]) Size() int { return a.size }

// TotalVariables returns the problem's variable count.
func (a *Assignment[V]) TotalVariables() int { return len(a.values) }

// IsComplete returns true if every variable is assigned.
func (a *Assignment[V]) IsComplete() bool { return a.size == len(a.values) }

// IsEmpty returns true if no variable is assigned.
func (a *Assignment[V]) IsEmpty() bool { return a.size == 0 }

// Copy returns an independent deep copy.
func (a *Assignment[V]) Copy() *Assignment[V] {
	values := make([]V, len(a.values))
	copy(values, a.values)
	assigned := make([]bool, len(a.assigned))
	copy(assigned, a.assigned)
	return &Assignment[V]{values: values, assigned: assigned, size: a.size}
}

// String renders the assignment by variable index, e.g. "{0=1, 2=3}".
func (a *Assignment[V]) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	for i, ok := range a.assigned {
		if !ok {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d=%v", i, a.values[i])
		first = false
	}
	b.WriteString("}")
	return b.String()
}
