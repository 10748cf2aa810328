// Package csp provides finite-domain constraint satisfaction infrastructure.
// This file defines the value-ordering heuristics: domain order (default)
// and least constraining value.
package csp

import "sort"

// ValueSelector orders the candidate values to try for a variable.
type ValueSelector[V comparable] interface {
	// Order returns the values of domain in the order they should be tried.
	Order(variable *Variable[V], domain *Domain[V], p *CSP[V], a *Assignment[V], domains DomainMap[V]) []V

	// Name returns the selector's name.
	Name() string
}

// DefaultValueSelector yields values in universe order. Cheap, and the right
// choice when domains are large.
type DefaultValueSelector[V comparable] struct{}

// NewDefaultValueSelector creates a domain-order value selector.
func NewDefaultValueSelector[V comparable]() *DefaultValueSelector[V] {
	return &DefaultValueSelector[V]{}
}

// Order implements ValueSelector.
func (s *DefaultValueSelector[V]) Order(variable *Variable[V], domain *Domain[V], p *CSP[V], a *Assignment[V], domains DomainMap[V]) []V {
	return domain.Values()
}

// Name implements ValueSelector.
func (s *DefaultValueSelector[V]) Name() string { return "Default" }

// DefaultLCVMaxDomainSize bounds the domain size for which LCV ordering is
// computed; larger domains fall back to universe order.
const DefaultLCVMaxDomainSize = 20

// LCVSelector implements least constraining value: candidates are sorted by
// how many values they would rule out across the domains of unassigned
// neighbors, fewest first. The count is quadratic in domain size, so the
// heuristic only activates for domains up to MaxDomainSize values.
type LCVSelector[V comparable] struct {
	// MaxDomainSize is the largest domain for which LCV is computed.
	MaxDomainSize int
}

// NewLCVSelector creates an LCV selector with the default activation bound.
func NewLCVSelector[V comparable]() *LCVSelector[V] {
	return &LCVSelector[V]{MaxDomainSize: DefaultLCVMaxDomainSize}
}

// Order implements ValueSelector.
func (s *LCVSelector[V]) Order(variable *Variable[V], domain *Domain[V], p *CSP[V], a *Assignment[V], domains DomainMap[V]) []V {
	values := domain.Values()
	if len(values) > s.MaxDomainSize {
		return values
	}

	ruledOut := make(map[int]int, len(values))
	trial := a.Copy()
	for i, value := range values {
		trial.Assign(variable, value)
		ruledOut[i] = countRuledOut(variable, trial, p, a, domains)
		trial.Unassign(variable)
	}

	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return ruledOut[order[i]] < ruledOut[order[j]]
	})

	ordered := make([]V, len(values))
	for i, idx := range order {
		ordered[i] = values[idx]
	}
	return ordered
}

// countRuledOut counts, over every constraint on the variable, the values in
// unassigned neighbor domains that the trial binding makes inconsistent.
func countRuledOut[V comparable](variable *Variable[V], trial *Assignment[V], p *CSP[V], a *Assignment[V], domains DomainMap[V]) int {
	ruledOut := 0
	for _, c := range p.Network().ConstraintsOn(variable) {
		for _, neighbor := range c.Scope() {
			if neighbor == variable || a.IsAssigned(neighbor) {
				continue
			}
			neighborDomain := domains[neighbor]
			if neighborDomain == nil {
				continue
			}
			neighborDomain.ForEach(func(neighborValue V) {
				if !c.IsConsistentWith(neighbor, neighborValue, trial) {
					ruledOut++
				}
			})
		}
	}
	return ruledOut
}

// Name implements ValueSelector.
func (s *LCVSelector[V]) Name() string { return "LCV" }
