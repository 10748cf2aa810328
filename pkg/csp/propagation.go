// Package csp provides finite-domain constraint satisfaction infrastructure.
// This file defines the propagation engine contract, the propagation result,
// and the forward-checking engine used after each assignment during search.
package csp

// PropagationResult reports the outcome of one propagation call: whether a
// contradiction (domain wipeout) occurred, per-call counters, and on failure
// the constraint that forced the empty domain (best effort, for Dom/WDeg
// learning).
type PropagationResult[V comparable] struct {
	Contradiction    bool
	DomainReductions int
	ConstraintChecks int
	ArcRevisions     int
	FailedConstraint Constraint[V]
}

// OK returns true if propagation finished without contradiction.
func (r PropagationResult[V]) OK() bool { return !r.Contradiction }

// PropagationEngine is the contract shared by the propagation strategies.
type PropagationEngine[V comparable] interface {
	// Name returns the engine's name for diagnostics.
	Name() string

	// Preprocess runs the engine over the whole problem before search.
	Preprocess(p *CSP[V], domains DomainMap[V]) PropagationResult[V]

	// PropagateAfterAssignment runs the engine after value was assigned to
	// variable, pruning the domains of unassigned variables.
	PropagateAfterAssignment(variable *Variable[V], value V, p *CSP[V], a *Assignment[V], domains DomainMap[V]) PropagationResult[V]
}

// ForwardChecker prunes, after each assignment, every value of every
// unassigned neighbor that is inconsistent with the new binding. It is the
// default engine during search; preprocessing is a no-op.
type ForwardChecker[V comparable] struct{}

// NewForwardChecker creates a forward-checking engine.
func NewForwardChecker[V comparable]() *ForwardChecker[V] {
	return &ForwardChecker[V]{}
}

// Name implements PropagationEngine.
func (f *ForwardChecker[V]) Name() string { return "Forward Checking" }

// Preprocess implements PropagationEngine as a no-op.
func (f *ForwardChecker[V]) Preprocess(p *CSP[V], domains DomainMap[V]) PropagationResult[V] {
	return PropagationResult[V]{}
}

// PropagateAfterAssignment implements PropagationEngine. The assigned
// variable's domain is reduced to the singleton, then each constraint on it
// runs its own Propagate filter (AllDifferent's assigned-value sweep, the
// generic candidate test elsewhere); an emptied scope domain is a
// contradiction attributed to that constraint.
func (f *ForwardChecker[V]) PropagateAfterAssignment(variable *Variable[V], value V, p *CSP[V], a *Assignment[V], domains DomainMap[V]) PropagationResult[V] {
	result := PropagationResult[V]{}

	if d := domains[variable]; d != nil && d.Size() > 1 {
		// Reducing the assigned variable itself is not counted as pruning.
		_ = d.ReduceTo(value)
	}

	for _, c := range p.Network().ConstraintsOn(variable) {
		// Every active value of an unassigned scope variable is a candidate
		// the constraint must vet, whichever filter it uses internally.
		before := f.futureSize(c, variable, a, domains)
		result.ConstraintChecks += before

		if c.Propagate(variable, domains, a) {
			result.DomainReductions += before - f.futureSize(c, variable, a, domains)
		}

		for _, future := range c.Scope() {
			if future == variable || a.IsAssigned(future) {
				continue
			}
			if d := domains[future]; d != nil && d.IsEmpty() {
				result.Contradiction = true
				result.FailedConstraint = c
				return result
			}
		}
	}
	return result
}

// futureSize sums the active domain sizes of the constraint's unassigned
// scope variables other than the assigned one.
func (f *ForwardChecker[V]) futureSize(c Constraint[V], variable *Variable[V], a *Assignment[V], domains DomainMap[V]) int {
	size := 0
	for _, future := range c.Scope() {
		if future == variable || a.IsAssigned(future) {
			continue
		}
		if d := domains[future]; d != nil {
			size += d.Size()
		}
	}
	return size
}
