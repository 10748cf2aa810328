// Package csp provides finite-domain constraint satisfaction infrastructure.
// This file defines the variable-ordering heuristics: MRV, Degree, Dom/WDeg,
// and the MRV+Degree composite used by default.
package csp

import "math"

// VariableSelector picks the next unassigned variable to branch on.
//
// Selectors may learn from failures (Dom/WDeg); learning selectors hold
// mutable state and must not be shared across concurrent solves. Reset is
// called at the start of every solve.
type VariableSelector[V comparable] interface {
	// Select returns the next variable to assign, or nil when unassigned is
	// empty.
	Select(unassigned []*Variable[V], domains DomainMap[V], p *CSP[V], a *Assignment[V]) *Variable[V]

	// Name returns the selector's name.
	Name() string

	// RecordFailure is invoked when propagation attributes a domain wipeout
	// to a constraint after assigning variable.
	RecordFailure(variable *Variable[V], c Constraint[V])

	// Reset clears any learned state.
	Reset()
}

// MRVSelector implements minimum remaining values: the unassigned variable
// with the smallest current domain is chosen (fail-first). Ties break by
// iteration order.
type MRVSelector[V comparable] struct{}

// NewMRVSelector creates an MRV selector.
func NewMRVSelector[V comparable]() *MRVSelector[V] { return &MRVSelector[V]{} }

// Select implements VariableSelector.
func (s *MRVSelector[V]) Select(unassigned []*Variable[V], domains DomainMap[V], p *CSP[V], a *Assignment[V]) *Variable[V] {
	var best *Variable[V]
	minSize := math.MaxInt

	for _, v := range unassigned {
		size := 0
		if d := domains[v]; d != nil {
			size = d.Size()
		}
		if size < minSize {
			minSize = size
			best = v
		}
	}
	return best
}

// Name implements VariableSelector.
func (s *MRVSelector[V]) Name() string { return "MRV" }

// RecordFailure implements VariableSelector as a no-op.
func (s *MRVSelector[V]) RecordFailure(*Variable[V], Constraint[V]) {}

// Reset implements VariableSelector as a no-op.
func (s *MRVSelector[V]) Reset() {}

// DegreeSelector picks the variable involved in the most constraints that
// still link it to another unassigned variable.
type DegreeSelector[V comparable] struct{}

// NewDegreeSelector creates a Degree selector.
func NewDegreeSelector[V comparable]() *DegreeSelector[V] { return &DegreeSelector[V]{} }

// Select implements VariableSelector.
func (s *DegreeSelector[V]) Select(unassigned []*Variable[V], domains DomainMap[V], p *CSP[V], a *Assignment[V]) *Variable[V] {
	var best *Variable[V]
	maxDegree := -1

	for _, v := range unassigned {
		degree := activeDegree(v, p, a)
		if degree > maxDegree {
			maxDegree = degree
			best = v
		}
	}
	return best
}

// Name implements VariableSelector.
func (s *DegreeSelector[V]) Name() string { return "Degree" }

// RecordFailure implements VariableSelector as a no-op.
func (s *DegreeSelector[V]) RecordFailure(*Variable[V], Constraint[V]) {}

// Reset implements VariableSelector as a no-op.
func (s *DegreeSelector[V]) Reset() {}

// activeDegree counts constraints on v whose scope holds another unassigned
// variable.
func activeDegree[V comparable](v *Variable[V], p *CSP[V], a *Assignment[V]) int {
	count := 0
	for _, c := range p.Network().ConstraintsOn(v) {
		for _, other := range c.Scope() {
			if other != v && !a.IsAssigned(other) {
				count++
				break
			}
		}
	}
	return count
}

// domWDegEpsilon guards the Dom/WDeg ratio against a zero weighted degree.
const domWDegEpsilon = 0.0001

// DomWDegSelector implements domain-size over weighted degree. Every
// constraint starts at weight 1.0; each contradiction attributed to a
// constraint adds 1.0. The variable minimizing |D| / max(epsilon, sum of
// weights of its constraints linking to unassigned variables) is chosen.
//
// The weight map is selector-local state; Reset clears it at solve start.
type DomWDegSelector[V comparable] struct {
	weights map[Constraint[V]]float64
}

// NewDomWDegSelector creates a Dom/WDeg selector with an empty weight map.
func NewDomWDegSelector[V comparable]() *DomWDegSelector[V] {
	return &DomWDegSelector[V]{weights: make(map[Constraint[V]]float64)}
}

// Select implements VariableSelector.
func (s *DomWDegSelector[V]) Select(unassigned []*Variable[V], domains DomainMap[V], p *CSP[V], a *Assignment[V]) *Variable[V] {
	var best *Variable[V]
	minRatio := math.MaxFloat64

	for _, v := range unassigned {
		size := 0
		if d := domains[v]; d != nil {
			size = d.Size()
		}
		if size == 0 {
			// Wiped domain: propagation should have caught this, but selecting
			// it fails fast.
			return v
		}

		ratio := float64(size) / math.Max(s.weightedDegree(v, p, a), domWDegEpsilon)
		if ratio < minRatio {
			minRatio = ratio
			best = v
		}
	}
	return best
}

func (s *DomWDegSelector[V]) weightedDegree(v *Variable[V], p *CSP[V], a *Assignment[V]) float64 {
	wdeg := 0.0
	for _, c := range p.Network().ConstraintsOn(v) {
		for _, other := range c.Scope() {
			if other != v && !a.IsAssigned(other) {
				wdeg += s.Weight(c)
				break
			}
		}
	}
	return wdeg
}

// Weight returns the current weight of a constraint (1.0 if never failed).
func (s *DomWDegSelector[V]) Weight(c Constraint[V]) float64 {
	if w, ok := s.weights[c]; ok {
		return w
	}
	return 1.0
}

// Name implements VariableSelector.
func (s *DomWDegSelector[V]) Name() string { return "Dom/WDeg" }

// RecordFailure implements VariableSelector: the failing constraint's weight
// grows by 1.0.
func (s *DomWDegSelector[V]) RecordFailure(_ *Variable[V], c Constraint[V]) {
	if c != nil {
		s.weights[c] = s.Weight(c) + 1.0
	}
}

// Reset implements VariableSelector: all learned weights are discarded.
func (s *DomWDegSelector[V]) Reset() {
	s.weights = make(map[Constraint[V]]float64)
}

// CompositeSelector applies a primary heuristic, then breaks its ties with a
// secondary one. Tie detection understands MRV (equal domain size) and
// Degree (equal network degree) primaries; other primaries pass their pick
// through.
type CompositeSelector[V comparable] struct {
	primary    VariableSelector[V]
	tieBreaker VariableSelector[V]
}

// NewCompositeSelector creates a composite from a primary selector and a
// tie-breaker.
func NewCompositeSelector[V comparable](primary, tieBreaker VariableSelector[V]) *CompositeSelector[V] {
	return &CompositeSelector[V]{primary: primary, tieBreaker: tieBreaker}
}

// NewMRVDegreeSelector creates the default composite: MRV with Degree
// tie-breaking.
func NewMRVDegreeSelector[V comparable]() *CompositeSelector[V] {
	return NewCompositeSelector[V](NewMRVSelector[V](), NewDegreeSelector[V]())
}

// Select implements VariableSelector.
func (s *CompositeSelector[V]) Select(unassigned []*Variable[V], domains DomainMap[V], p *CSP[V], a *Assignment[V]) *Variable[V] {
	if len(unassigned) == 0 {
		return nil
	}
	if len(unassigned) == 1 {
		return unassigned[0]
	}

	best := s.primary.Select(unassigned, domains, p, a)
	if best == nil {
		return nil
	}

	ties := s.findTies(best, unassigned, domains, p)
	if len(ties) == 1 {
		return ties[0]
	}
	return s.tieBreaker.Select(ties, domains, p, a)
}

func (s *CompositeSelector[V]) findTies(best *Variable[V], unassigned []*Variable[V], domains DomainMap[V], p *CSP[V]) []*Variable[V] {
	switch s.primary.(type) {
	case *MRVSelector[V]:
		bestSize := domains[best].Size()
		var ties []*Variable[V]
		for _, v := range unassigned {
			if d := domains[v]; d != nil && d.Size() == bestSize {
				ties = append(ties, v)
			}
		}
		return ties
	case *DegreeSelector[V]:
		bestDegree := p.Network().Degree(best)
		var ties []*Variable[V]
		for _, v := range unassigned {
			if p.Network().Degree(v) == bestDegree {
				ties = append(ties, v)
			}
		}
		return ties
	default:
		return []*Variable[V]{best}
	}
}

// Name implements VariableSelector.
func (s *CompositeSelector[V]) Name() string {
	return s.primary.Name() + "+" + s.tieBreaker.Name()
}

// RecordFailure implements VariableSelector, forwarding to both parts.
func (s *CompositeSelector[V]) RecordFailure(variable *Variable[V], c Constraint[V]) {
	s.primary.RecordFailure(variable, c)
	s.tieBreaker.RecordFailure(variable, c)
}

// Reset implements VariableSelector, forwarding to both parts.
func (s *CompositeSelector[V]) Reset() {
	s.primary.Reset()
	s.tieBreaker.Reset()
}
