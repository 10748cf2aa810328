// Package csp provides finite-domain constraint satisfaction infrastructure.
// This file defines the ConstraintNetwork: precomputed adjacency indexes for
// constraint lookups during propagation and heuristic scoring.
package csp

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// ConstraintNetwork precomputes, once at problem construction:
//   - constraints indexed per variable,
//   - binary constraints indexed per unordered variable pair,
//   - neighbor sets (variables sharing a constraint),
//   - variable degrees.
//
// The network holds only references; it is immutable after construction and
// safe for concurrent reads.
type ConstraintNetwork[V comparable] struct {
	constraints   []Constraint[V]
	byVariable    map[*Variable[V]][]Constraint[V]
	byPair        map[pairKey][]Constraint[V]
	neighborOf    map[*Variable[V]]mapset.Set[*Variable[V]]
	emptyNeighbor mapset.Set[*Variable[V]]
}

// pairKey identifies an unordered variable pair by dense indices.
type pairKey struct {
	lo, hi int
}

func newPairKey[V comparable](v1, v2 *Variable[V]) pairKey {
	if v1.Index() <= v2.Index() {
		return pairKey{lo: v1.Index(), hi: v2.Index()}
	}
	return pairKey{lo: v2.Index(), hi: v1.Index()}
}

// NewConstraintNetwork indexes the given constraints over the given
// variables.
func NewConstraintNetwork[V comparable](variables []*Variable[V], constraints []Constraint[V]) *ConstraintNetwork[V] {
	n := &ConstraintNetwork[V]{
		constraints:   constraints,
		byVariable:    make(map[*Variable[V]][]Constraint[V], len(variables)),
		byPair:        make(map[pairKey][]Constraint[V]),
		neighborOf:    make(map[*Variable[V]]mapset.Set[*Variable[V]], len(variables)),
		emptyNeighbor: mapset.NewThreadUnsafeSet[*Variable[V]](),
	}

	for _, v := range variables {
		n.byVariable[v] = nil
		n.neighborOf[v] = mapset.NewThreadUnsafeSet[*Variable[V]]()
	}

	for _, c := range constraints {
		scope := c.Scope()
		for _, v := range scope {
			n.byVariable[v] = append(n.byVariable[v], c)
		}
		for i := 0; i < len(scope); i++ {
			for j := i + 1; j < len(scope); j++ {
				v1, v2 := scope[i], scope[j]
				n.neighborOf[v1].Add(v2)
				n.neighborOf[v2].Add(v1)
				if len(scope) == 2 {
					key := newPairKey(v1, v2)
					n.byPair[key] = append(n.byPair[key], c)
				}
			}
		}
	}
	return n
}

// ConstraintsOn returns all constraints whose scope contains the variable.
func (n *ConstraintNetwork[V]) ConstraintsOn(variable *Variable[V]) []Constraint[V] {
	return n.byVariable[variable]
}

// ConstraintsBetween returns the binary constraints linking the unordered
// pair (v1, v2).
func (n *ConstraintNetwork[V]) ConstraintsBetween(v1, v2 *Variable[V]) []Constraint[V] {
	return n.byPair[newPairKey(v1, v2)]
}

// Neighbors returns the set of variables sharing at least one constraint
// with the given variable. The returned set must not be modified.
func (n *ConstraintNetwork[V]) Neighbors(variable *Variable[V]) mapset.Set[*Variable[V]] {
	if s, ok := n.neighborOf[variable]; ok {
		return s
	}
	return n.emptyNeighbor
}

// Degree returns the number of constraints the variable participates in.
func (n *ConstraintNetwork[V]) Degree(variable *Variable[V]) int {
	return len(n.byVariable[variable])
}

// NeighborCount returns the number of distinct neighbor variables.
func (n *ConstraintNetwork[V]) NeighborCount(variable *Variable[V]) int {
	return n.Neighbors(variable).Cardinality()
}

// Constraints returns all constraints in the network.
func (n *ConstraintNetwork[V]) Constraints() []Constraint[V] {
	return n.constraints
}

// AllArcs returns the concatenated arcs of every constraint.
func (n *ConstraintNetwork[V]) AllArcs() []Arc[V] {
	var arcs []Arc[V]
	for _, c := range n.constraints {
		arcs = append(arcs, c.Arcs()...)
	}
	return arcs
}
