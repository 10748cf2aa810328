// Package csp provides finite-domain constraint satisfaction infrastructure.
// This file defines TableConstraint: an extensional constraint given by an
// explicit list of allowed (or disallowed) value tuples.
package csp

import "fmt"

// TableConstraint restricts its scope to (or away from) an explicit set of
// tuples. For allowed tuples a per-position support index maps each value to
// the tuples containing it, so consistency checks scan only candidate
// supports instead of the whole table.
//
// Disallowed-tuple tables are checked exactly on complete scopes and
// conservatively accepted otherwise; they yield no arcs, and propagation
// only drops a candidate that would complete a forbidden tuple.
type TableConstraint[V comparable] struct {
	scope   []*Variable[V]
	tuples  [][]V
	allowed bool
	name    string

	// supports[i][v] lists indices into tuples whose i-th entry is v.
	// Only built for allowed-tuple tables.
	supports []map[V][]int
}

// NewTableConstraint creates an extensional constraint. Returns an error if
// the scope is empty or any tuple's length differs from the scope's.
func NewTableConstraint[V comparable](scope []*Variable[V], tuples [][]V, allowed bool) (*TableConstraint[V], error) {
	if len(scope) == 0 {
		return nil, fmt.Errorf("TableConstraint: scope cannot be empty")
	}
	tuplesCopy := make([][]V, 0, len(tuples))
	for _, tuple := range tuples {
		if len(tuple) != len(scope) {
			return nil, fmt.Errorf("TableConstraint: tuple has %d values for %d variables", len(tuple), len(scope))
		}
		t := make([]V, len(tuple))
		copy(t, tuple)
		tuplesCopy = append(tuplesCopy, t)
	}
	scopeCopy := make([]*Variable[V], len(scope))
	copy(scopeCopy, scope)

	c := &TableConstraint[V]{
		scope:   scopeCopy,
		tuples:  tuplesCopy,
		allowed: allowed,
	}
	if allowed {
		c.supports = make([]map[V][]int, len(scopeCopy))
		for i := range c.supports {
			c.supports[i] = make(map[V][]int)
		}
		for t, tuple := range tuplesCopy {
			for i, value := range tuple {
				c.supports[i][value] = append(c.supports[i][value], t)
			}
		}
	}
	return c, nil
}

// AllowedTuples creates a table constraint accepting exactly the given
// tuples.
func AllowedTuples[V comparable](scope []*Variable[V], tuples ...[]V) (*TableConstraint[V], error) {
	return NewTableConstraint(scope, tuples, true)
}

// DisallowedTuples creates a table constraint rejecting exactly the given
// tuples.
func DisallowedTuples[V comparable](scope []*Variable[V], tuples ...[]V) (*TableConstraint[V], error) {
	return NewTableConstraint(scope, tuples, false)
}

// Scope implements Constraint.
func (c *TableConstraint[V]) Scope() []*Variable[V] { return c.scope }

// Name implements Constraint.
func (c *TableConstraint[V]) Name() string {
	if c.name != "" {
		return c.name
	}
	sign := "+"
	if !c.allowed {
		sign = "-"
	}
	return fmt.Sprintf("Table%s[%d tuples]", sign, len(c.tuples))
}

// Allowed reports whether the tuples are interpreted as allowed.
func (c *TableConstraint[V]) Allowed() bool { return c.allowed }

// IsSatisfied implements Constraint.
func (c *TableConstraint[V]) IsSatisfied(a *Assignment[V]) bool {
	tuple := make([]V, len(c.scope))
	for i, v := range c.scope {
		value, ok := a.Value(v)
		if !ok {
			return false
		}
		tuple[i] = value
	}
	return c.inTable(tuple) == c.allowed
}

// IsConsistent implements Constraint. For allowed tuples, some tuple must
// agree with every bound scope variable; disallowed tuples reject only
// complete scopes.
func (c *TableConstraint[V]) IsConsistent(a *Assignment[V]) bool {
	bound := 0
	for _, v := range c.scope {
		if a.IsAssigned(v) {
			bound++
		}
	}
	if bound == len(c.scope) {
		return c.IsSatisfied(a)
	}
	if !c.allowed {
		return true
	}

	for _, tuple := range c.tuples {
		if c.tupleMatches(tuple, a, nil) {
			return true
		}
	}
	return false
}

// IsConsistentWith implements Constraint by scanning the supports of the
// proposed value for a tuple agreeing with every bound scope variable.
func (c *TableConstraint[V]) IsConsistentWith(variable *Variable[V], value V, a *Assignment[V]) bool {
	varIndex := c.scopeIndex(variable)
	if varIndex < 0 {
		return true
	}

	if !c.allowed {
		// Reject only when the whole scope is (or becomes) bound and the
		// resulting tuple is in the table.
		tuple := make([]V, len(c.scope))
		for i, v := range c.scope {
			if i == varIndex {
				tuple[i] = value
				continue
			}
			bound, ok := a.Value(v)
			if !ok {
				return true
			}
			tuple[i] = bound
		}
		return !c.inTable(tuple)
	}

	skip := map[int]struct{}{varIndex: {}}
	for _, t := range c.supports[varIndex][value] {
		if c.tupleMatches(c.tuples[t], a, skip) {
			return true
		}
	}
	return false
}

// Propagate implements Constraint: each candidate of each unassigned scope
// variable must pass the consistency check. For allowed tuples that means
// retaining a support; for disallowed tuples only a candidate completing a
// forbidden tuple is dropped.
func (c *TableConstraint[V]) Propagate(assigned *Variable[V], domains DomainMap[V], a *Assignment[V]) bool {
	changed := false
	for _, v := range c.scope {
		if a.IsAssigned(v) {
			continue
		}
		domain := domains[v]
		if domain == nil {
			continue
		}
		domain.ForEach(func(value V) {
			if !c.IsConsistentWith(v, value, a) {
				domain.Remove(value)
				changed = true
			}
		})
	}
	return changed
}

// Arcs implements Constraint with the pairwise decomposition; disallowed
// tables yield none.
func (c *TableConstraint[V]) Arcs() []Arc[V] {
	if !c.allowed {
		return nil
	}
	arcs := make([]Arc[V], 0, len(c.scope)*(len(c.scope)-1))
	for i, x := range c.scope {
		for j, y := range c.scope {
			if i != j {
				arcs = append(arcs, Arc[V]{X: x, Y: y, Constraint: c})
			}
		}
	}
	return arcs
}

// Revise implements Constraint: a value of x survives iff some supporting
// tuple places an active value of y at y's position.
func (c *TableConstraint[V]) Revise(x, y *Variable[V], domains DomainMap[V]) bool {
	if !c.allowed {
		return false
	}
	xIndex, yIndex := c.scopeIndex(x), c.scopeIndex(y)
	if xIndex < 0 || yIndex < 0 {
		return false
	}
	dx, dy := domains[x], domains[y]
	if dx == nil || dy == nil {
		return false
	}

	revised := false
	dx.ForEach(func(xValue V) {
		hasSupport := false
		for _, t := range c.supports[xIndex][xValue] {
			if dy.Contains(c.tuples[t][yIndex]) {
				hasSupport = true
				break
			}
		}
		if !hasSupport {
			dx.Remove(xValue)
			revised = true
		}
	})
	return revised
}

func (c *TableConstraint[V]) String() string { return c.Name() }

func (c *TableConstraint[V]) scopeIndex(variable *Variable[V]) int {
	for i, v := range c.scope {
		if v == variable {
			return i
		}
	}
	return -1
}

func (c *TableConstraint[V]) inTable(tuple []V) bool {
	for _, t := range c.tuples {
		match := true
		for i := range t {
			if t[i] != tuple[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// tupleMatches reports whether the tuple agrees with every scope variable
// bound in the assignment, ignoring positions in skip.
func (c *TableConstraint[V]) tupleMatches(tuple []V, a *Assignment[V], skip map[int]struct{}) bool {
	for i, v := range c.scope {
		if skip != nil {
			if _, ok := skip[i]; ok {
				continue
			}
		}
		if bound, ok := a.Value(v); ok && bound != tuple[i] {
			return false
		}
	}
	return true
}
