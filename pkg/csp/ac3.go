// Package csp provides finite-domain constraint satisfaction infrastructure.
// This file implements the AC-3 propagation engine: arc-consistency by
// worklist revision, used for preprocessing and optionally between
// assignments.
package csp

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// AC3Propagator enforces arc consistency: for every value of D(x) there is a
// supporting value in D(y) under each arc (x, y, c). Revising an arc that
// shrinks D(x) re-enqueues every arc (k, x, c') with k another scope
// variable of a constraint on x, until the worklist drains or a domain wipes
// out.
//
// It is the default preprocessing engine; running it between assignments
// (maintaining arc consistency) is supported but not the default.
type AC3Propagator[V comparable] struct{}

// NewAC3Propagator creates an AC-3 engine.
func NewAC3Propagator[V comparable]() *AC3Propagator[V] {
	return &AC3Propagator[V]{}
}

// Name implements PropagationEngine.
func (ac *AC3Propagator[V]) Name() string { return "AC-3" }

// Preprocess implements PropagationEngine: the worklist is seeded with every
// arc of every constraint, deduplicated.
func (ac *AC3Propagator[V]) Preprocess(p *CSP[V], domains DomainMap[V]) PropagationResult[V] {
	queue := make([]Arc[V], 0, p.NumConstraints()*2)
	inQueue := mapset.NewThreadUnsafeSet[Arc[V]]()

	for _, c := range p.Constraints() {
		for _, arc := range c.Arcs() {
			if inQueue.Add(arc) {
				queue = append(queue, arc)
			}
		}
	}
	return ac.processQueue(queue, inQueue, p, domains)
}

// PropagateAfterAssignment implements PropagationEngine: the worklist is
// seeded with the arcs pointing at the assigned variable from its unassigned
// scope partners.
func (ac *AC3Propagator[V]) PropagateAfterAssignment(variable *Variable[V], value V, p *CSP[V], a *Assignment[V], domains DomainMap[V]) PropagationResult[V] {
	if d := domains[variable]; d != nil && d.Size() > 1 {
		_ = d.ReduceTo(value)
	}

	queue := make([]Arc[V], 0, 16)
	inQueue := mapset.NewThreadUnsafeSet[Arc[V]]()

	for _, c := range p.Network().ConstraintsOn(variable) {
		for _, arc := range c.Arcs() {
			if arc.Y != variable {
				continue
			}
			if a.IsAssigned(arc.X) {
				continue
			}
			if inQueue.Add(arc) {
				queue = append(queue, arc)
			}
		}
	}
	return ac.processQueue(queue, inQueue, p, domains)
}

func (ac *AC3Propagator[V]) processQueue(queue []Arc[V], inQueue mapset.Set[Arc[V]], p *CSP[V], domains DomainMap[V]) PropagationResult[V] {
	result := PropagationResult[V]{}

	for len(queue) > 0 {
		arc := queue[0]
		queue = queue[1:]
		inQueue.Remove(arc)
		result.ArcRevisions++

		dx := domains[arc.X]
		if dx == nil {
			continue
		}
		sizeBefore := dx.Size()

		if !arc.Constraint.Revise(arc.X, arc.Y, domains) {
			continue
		}
		result.DomainReductions += sizeBefore - dx.Size()

		if dx.IsEmpty() {
			result.Contradiction = true
			result.FailedConstraint = arc.Constraint
			return result
		}

		// D(x) shrank: revisit every arc (k, x) with k a scope partner of a
		// constraint on x, except the support y we just used.
		for _, c := range p.Network().ConstraintsOn(arc.X) {
			for _, back := range c.Arcs() {
				if back.Y != arc.X || back.X == arc.X || back.X == arc.Y {
					continue
				}
				if inQueue.Add(back) {
					queue = append(queue, back)
				}
			}
		}
	}
	return result
}
