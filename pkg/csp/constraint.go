// Package csp provides finite-domain constraint satisfaction infrastructure.
// This file defines the Constraint contract shared by every constraint type,
// the directed Arc used by AC-3, and the reusable binary-constraint core.
package csp

// DomainMap holds the current working domains of a solve, keyed by variable.
type DomainMap[V comparable] map[*Variable[V]]*Domain[V]

// Copy returns a map with an independent copy of every domain.
func (m DomainMap[V]) Copy() DomainMap[V] {
	saved := make(DomainMap[V], len(m))
	for v, d := range m {
		saved[v] = d.Copy()
	}
	return saved
}

// Constraint is the contract every constraint satisfies. A constraint
// restricts the combinations of values its scope variables may take
// simultaneously.
//
// The consistency methods obey one rule: IsConsistent on a partial
// assignment never rejects a state that could still be extended to a
// satisfying complete assignment (it may over-approve); IsSatisfied on a
// complete assignment is exact.
type Constraint[V comparable] interface {
	// Scope returns the variables this constraint ranges over, in order.
	Scope() []*Variable[V]

	// Name returns a descriptive name for diagnostics and logging.
	Name() string

	// IsSatisfied checks a complete assignment of the scope. Returns false
	// if any scope variable is unassigned.
	IsSatisfied(a *Assignment[V]) bool

	// IsConsistent checks whether a partial assignment violates the
	// constraint. An unviolated partial assignment is consistent.
	IsConsistent(a *Assignment[V]) bool

	// IsConsistentWith checks whether assigning value to variable would be
	// consistent given the current partial assignment. The assignment must
	// not already bind variable.
	IsConsistentWith(variable *Variable[V], value V, a *Assignment[V]) bool

	// Propagate removes values inconsistent with the just-assigned variable
	// from the domains of unassigned scope variables. Returns true if any
	// domain shrank.
	Propagate(assigned *Variable[V], domains DomainMap[V], a *Assignment[V]) bool

	// Arcs returns the directed arcs of this constraint for AC-3.
	Arcs() []Arc[V]

	// Revise removes from x's domain every value lacking support in y's
	// domain under this constraint. Returns true if x's domain shrank.
	Revise(x, y *Variable[V], domains DomainMap[V]) bool
}

// Arc is a directed pair (X, Y) under a constraint: "make X consistent
// against Y". Arcs compare equal when all three components are equal, which
// lets AC-3 deduplicate its queue.
type Arc[V comparable] struct {
	X          *Variable[V]
	Y          *Variable[V]
	Constraint Constraint[V]
}

// Arity returns the number of variables in a constraint's scope.
func Arity[V comparable](c Constraint[V]) int { return len(c.Scope()) }

// Involves returns true if the constraint's scope contains the variable.
func Involves[V comparable](c Constraint[V], variable *Variable[V]) bool {
	for _, v := range c.Scope() {
		if v == variable {
			return true
		}
	}
	return false
}

// binary is the shared core of two-variable constraints, implemented in
// terms of a pairwise check predicate. Concrete types embed it and may
// override Revise with a specialized pruning rule; the self reference keeps
// arcs and dispatch pointing at the outer type.
type binary[V comparable] struct {
	var1, var2 *Variable[V]
	name       string
	self       Constraint[V]
	check      func(value1, value2 V) bool
}

func (b *binary[V]) Scope() []*Variable[V] { return []*Variable[V]{b.var1, b.var2} }

func (b *binary[V]) Name() string { return b.name }

// Other returns the scope variable that is not v.
func (b *binary[V]) Other(v *Variable[V]) *Variable[V] {
	if v == b.var1 {
		return b.var2
	}
	return b.var1
}

func (b *binary[V]) IsSatisfied(a *Assignment[V]) bool {
	v1, ok1 := a.Value(b.var1)
	v2, ok2 := a.Value(b.var2)
	if !ok1 || !ok2 {
		return false
	}
	return b.check(v1, v2)
}

func (b *binary[V]) IsConsistent(a *Assignment[V]) bool {
	v1, ok1 := a.Value(b.var1)
	v2, ok2 := a.Value(b.var2)
	if ok1 && ok2 {
		return b.check(v1, v2)
	}
	// With at most one variable bound the constraint cannot be violated yet.
	return true
}

func (b *binary[V]) IsConsistentWith(variable *Variable[V], value V, a *Assignment[V]) bool {
	switch variable {
	case b.var1:
		if v2, ok := a.Value(b.var2); ok {
			return b.check(value, v2)
		}
	case b.var2:
		if v1, ok := a.Value(b.var1); ok {
			return b.check(v1, value)
		}
	}
	return true
}

func (b *binary[V]) Propagate(assigned *Variable[V], domains DomainMap[V], a *Assignment[V]) bool {
	if assigned != b.var1 && assigned != b.var2 {
		return false
	}
	other := b.Other(assigned)
	if a.IsAssigned(other) {
		return false
	}
	assignedValue, ok := a.Value(assigned)
	if !ok {
		return false
	}
	otherDomain := domains[other]
	if otherDomain == nil {
		return false
	}

	changed := false
	otherDomain.ForEach(func(otherValue V) {
		consistent := b.check(assignedValue, otherValue)
		if assigned == b.var2 {
			consistent = b.check(otherValue, assignedValue)
		}
		if !consistent {
			otherDomain.Remove(otherValue)
			changed = true
		}
	})
	return changed
}

func (b *binary[V]) Arcs() []Arc[V] {
	return []Arc[V]{
		{X: b.var1, Y: b.var2, Constraint: b.self},
		{X: b.var2, Y: b.var1, Constraint: b.self},
	}
}

// Revise performs generic support-based revision: every value of x must have
// at least one compatible value in y's domain.
func (b *binary[V]) Revise(x, y *Variable[V], domains DomainMap[V]) bool {
	if (x != b.var1 && x != b.var2) || (y != b.var1 && y != b.var2) {
		return false
	}
	dx, dy := domains[x], domains[y]
	if dx == nil || dy == nil {
		return false
	}

	revised := false
	dx.ForEach(func(xValue V) {
		hasSupport := false
		dy.ForEach(func(yValue V) {
			if hasSupport {
				return
			}
			if x == b.var1 {
				hasSupport = b.check(xValue, yValue)
			} else {
				hasSupport = b.check(yValue, xValue)
			}
		})
		if !hasSupport {
			dx.Remove(xValue)
			revised = true
		}
	})
	return revised
}

func (b *binary[V]) String() string { return b.Name() }
