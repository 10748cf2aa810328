// Package csp provides finite-domain constraint satisfaction infrastructure.
// This file defines the CSP container and its Builder.
package csp

import "fmt"

// CSP is an immutable constraint satisfaction problem: variables with their
// initial domains, constraints over them, the derived constraint network,
// and a by-name variable index.
//
// A CSP is read-only during solving; multiple solves may share one instance.
type CSP[V comparable] struct {
	name        string
	variables   []*Variable[V]
	constraints []Constraint[V]
	network     *ConstraintNetwork[V]
	byName      map[string]*Variable[V]
}

// Name returns the problem's name.
func (p *CSP[V]) Name() string { return p.name }

// Variables returns the problem's variables in index order. Callers must
// not modify the returned slice.
func (p *CSP[V]) Variables() []*Variable[V] { return p.variables }

// NumVariables returns the variable count.
func (p *CSP[V]) NumVariables() int { return len(p.variables) }

// Constraints returns the problem's constraints. Callers must not modify
// the returned slice.
func (p *CSP[V]) Constraints() []Constraint[V] { return p.constraints }

// NumConstraints returns the constraint count.
func (p *CSP[V]) NumConstraints() int { return len(p.constraints) }

// Network returns the precomputed constraint network.
func (p *CSP[V]) Network() *ConstraintNetwork[V] { return p.network }

// Variable returns the variable with the given name, or nil.
func (p *CSP[V]) Variable(name string) *Variable[V] { return p.byName[name] }

// VariableAt returns the variable with the given dense index.
func (p *CSP[V]) VariableAt(index int) *Variable[V] { return p.variables[index] }

// WorkingDomains creates fresh working domains: an independent copy of each
// variable's initial domain.
func (p *CSP[V]) WorkingDomains() DomainMap[V] {
	domains := make(DomainMap[V], len(p.variables))
	for _, v := range p.variables {
		domains[v] = v.WorkingDomain()
	}
	return domains
}

// EmptyAssignment creates an empty assignment sized to this problem.
func (p *CSP[V]) EmptyAssignment() *Assignment[V] {
	return NewAssignment[V](len(p.variables))
}

// AssignmentMap renders an assignment as a variable-name to value map.
// Unassigned variables are omitted.
func (p *CSP[V]) AssignmentMap(a *Assignment[V]) map[string]V {
	m := make(map[string]V, a.Size())
	for _, v := range p.variables {
		if value, ok := a.Value(v); ok {
			m[v.Name()] = value
		}
	}
	return m
}

func (p *CSP[V]) String() string {
	return fmt.Sprintf("CSP[%s: %d variables, %d constraints]",
		p.name, len(p.variables), len(p.constraints))
}

// Builder constructs a CSP incrementally. Variables receive dense indexes
// in order of addition; constraints are validated against the variables
// added so far.
type Builder[V comparable] struct {
	name        string
	variables   []*Variable[V]
	constraints []Constraint[V]
	byName      map[string]*Variable[V]
}

// NewBuilder creates a builder for a problem with the given name.
func NewBuilder[V comparable](name string) *Builder[V] {
	if name == "" {
		name = "CSP"
	}
	return &Builder[V]{
		name:   name,
		byName: make(map[string]*Variable[V]),
	}
}

// AddVariable adds a variable with the given name and initial domain and
// returns it. Returns ErrDuplicateVariable if the name is taken.
func (b *Builder[V]) AddVariable(name string, domain *Domain[V]) (*Variable[V], error) {
	if _, exists := b.byName[name]; exists {
		return nil, fmt.Errorf("add variable %q: %w", name, ErrDuplicateVariable)
	}
	v := &Variable[V]{
		name:          name,
		initialDomain: domain,
		index:         len(b.variables),
	}
	b.variables = append(b.variables, v)
	b.byName[name] = v
	return v, nil
}

// AddIntVariables adds count variables named prefix0..prefix(count-1) to an
// int-valued builder, each with the integer range domain [min, max].
func AddIntVariables(b *Builder[int], prefix string, count, min, max int) ([]*Variable[int], error) {
	variables := make([]*Variable[int], 0, count)
	for i := 0; i < count; i++ {
		v, err := b.AddVariable(fmt.Sprintf("%s%d", prefix, i), IntRange(min, max))
		if err != nil {
			return nil, err
		}
		variables = append(variables, v)
	}
	return variables, nil
}

// AddConstraint adds a constraint. Returns ErrUnknownVariable if its scope
// references a variable this builder never added.
func (b *Builder[V]) AddConstraint(c Constraint[V]) error {
	for _, v := range c.Scope() {
		if b.byName[v.Name()] != v {
			return fmt.Errorf("constraint %s references %q: %w", c.Name(), v.Name(), ErrUnknownVariable)
		}
	}
	b.constraints = append(b.constraints, c)
	return nil
}

// Variable returns a previously added variable by name, or nil.
func (b *Builder[V]) Variable(name string) *Variable[V] { return b.byName[name] }

// Variables returns all variables added so far.
func (b *Builder[V]) Variables() []*Variable[V] { return b.variables }

// Build finalizes the problem and computes the constraint network.
// Returns ErrNoVariables for an empty problem.
func (b *Builder[V]) Build() (*CSP[V], error) {
	if len(b.variables) == 0 {
		return nil, ErrNoVariables
	}
	variables := make([]*Variable[V], len(b.variables))
	copy(variables, b.variables)
	constraints := make([]Constraint[V], len(b.constraints))
	copy(constraints, b.constraints)

	byName := make(map[string]*Variable[V], len(variables))
	for _, v := range variables {
		byName[v.Name()] = v
	}

	return &CSP[V]{
		name:        b.name,
		variables:   variables,
		constraints: constraints,
		network:     NewConstraintNetwork(variables, constraints),
		byName:      byName,
	}, nil
}
