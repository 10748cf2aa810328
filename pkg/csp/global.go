// Package csp provides finite-domain constraint satisfaction infrastructure.
// This file defines the shared core of n-ary (global) constraints.
package csp

import (
	"fmt"
	"strings"
)

// global is the shared core of constraints over n variables, implemented in
// terms of a partial-values predicate: checkPartial receives the values of
// the currently assigned scope variables and reports whether they can still
// be extended to a satisfying assignment.
type global[V comparable] struct {
	scope []*Variable[V]
	name  string
	self  Constraint[V]

	checkPartial func(assignedValues []V) bool
	checkPair    func(x *Variable[V], xValue V, y *Variable[V], yValue V) bool
}

func (g *global[V]) Scope() []*Variable[V] { return g.scope }

func (g *global[V]) Name() string { return g.name }

func (g *global[V]) IsSatisfied(a *Assignment[V]) bool {
	values := make([]V, 0, len(g.scope))
	for _, v := range g.scope {
		value, ok := a.Value(v)
		if !ok {
			return false
		}
		values = append(values, value)
	}
	return g.checkPartial(values)
}

func (g *global[V]) IsConsistent(a *Assignment[V]) bool {
	values := make([]V, 0, len(g.scope))
	for _, v := range g.scope {
		if value, ok := a.Value(v); ok {
			values = append(values, value)
		}
	}
	return g.checkPartial(values)
}

func (g *global[V]) IsConsistentWith(variable *Variable[V], value V, a *Assignment[V]) bool {
	if !Involves[V](g.self, variable) {
		return true
	}
	values := make([]V, 0, len(g.scope))
	values = append(values, value)
	for _, v := range g.scope {
		if v == variable {
			continue
		}
		if bound, ok := a.Value(v); ok {
			values = append(values, bound)
		}
	}
	return g.checkPartial(values)
}

func (g *global[V]) Propagate(assigned *Variable[V], domains DomainMap[V], a *Assignment[V]) bool {
	if !Involves[V](g.self, assigned) {
		return false
	}
	changed := false
	for _, v := range g.scope {
		if v == assigned || a.IsAssigned(v) {
			continue
		}
		domain := domains[v]
		if domain == nil {
			continue
		}
		domain.ForEach(func(value V) {
			if !g.self.IsConsistentWith(v, value, a) {
				domain.Remove(value)
				changed = true
			}
		})
	}
	return changed
}

// Arcs decomposes the scope into all ordered pairs.
func (g *global[V]) Arcs() []Arc[V] {
	arcs := make([]Arc[V], 0, len(g.scope)*(len(g.scope)-1))
	for i, x := range g.scope {
		for j, y := range g.scope {
			if i != j {
				arcs = append(arcs, Arc[V]{X: x, Y: y, Constraint: g.self})
			}
		}
	}
	return arcs
}

// Revise performs support-based revision over the binary decomposition.
func (g *global[V]) Revise(x, y *Variable[V], domains DomainMap[V]) bool {
	dx, dy := domains[x], domains[y]
	if dx == nil || dy == nil {
		return false
	}

	revised := false
	dx.ForEach(func(xValue V) {
		hasSupport := false
		dy.ForEach(func(yValue V) {
			if !hasSupport && g.checkPair(x, xValue, y, yValue) {
				hasSupport = true
			}
		})
		if !hasSupport {
			dx.Remove(xValue)
			revised = true
		}
	})
	return revised
}

func (g *global[V]) String() string { return g.Name() }

func globalName[V comparable](kind string, scope []*Variable[V]) string {
	if len(scope) > 4 {
		return fmt.Sprintf("%s[%d vars]", kind, len(scope))
	}
	names := make([]string, len(scope))
	for i, v := range scope {
		names[i] = v.Name()
	}
	return kind + "(" + strings.Join(names, ", ") + ")"
}
