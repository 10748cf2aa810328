package csp

import "fmt"

// AllDifferent is the global constraint that all scope variables take
// pairwise distinct values.
type AllDifferent[V comparable] struct {
	global[V]
}

// NewAllDifferent creates an AllDifferent constraint over the given
// variables. Returns an error if the scope is empty.
func NewAllDifferent[V comparable](scope []*Variable[V]) (*AllDifferent[V], error) {
	return NewAllDifferentNamed(scope, "")
}

// NewAllDifferentNamed creates an AllDifferent constraint with an explicit
// name for diagnostics.
func NewAllDifferentNamed[V comparable](scope []*Variable[V], name string) (*AllDifferent[V], error) {
	if len(scope) == 0 {
		return nil, fmt.Errorf("AllDifferent requires at least one variable")
	}
	scopeCopy := make([]*Variable[V], len(scope))
	copy(scopeCopy, scope)

	c := &AllDifferent[V]{}
	if name == "" {
		name = globalName("AllDifferent", scopeCopy)
	}
	c.global = global[V]{
		scope:        scopeCopy,
		name:         name,
		checkPartial: allDistinct[V],
		checkPair: func(_ *Variable[V], xValue V, _ *Variable[V], yValue V) bool {
			return xValue != yValue
		},
	}
	c.self = c
	return c, nil
}

// Propagate removes the just-assigned value from every other unassigned
// scope variable's domain.
func (c *AllDifferent[V]) Propagate(assigned *Variable[V], domains DomainMap[V], a *Assignment[V]) bool {
	if !Involves[V](c, assigned) {
		return false
	}
	assignedValue, ok := a.Value(assigned)
	if !ok {
		return false
	}

	changed := false
	for _, other := range c.scope {
		if other == assigned || a.IsAssigned(other) {
			continue
		}
		if domain := domains[other]; domain != nil && domain.Remove(assignedValue) {
			changed = true
		}
	}
	return changed
}

// Revise prunes x only when y's domain is a singleton: the bound value
// cannot appear anywhere else in the scope.
func (c *AllDifferent[V]) Revise(x, y *Variable[V], domains DomainMap[V]) bool {
	dx, dy := domains[x], domains[y]
	if dx == nil || dy == nil {
		return false
	}
	if dy.IsSingleton() {
		yValue, err := dy.First()
		if err != nil {
			return false
		}
		return dx.Remove(yValue)
	}
	return false
}

// allDistinct reports whether the values are duplicate-free.
func allDistinct[V comparable](values []V) bool {
	seen := make(map[V]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}
