// Package csp provides finite-domain constraint satisfaction infrastructure.
// This file defines LinearConstraint: sum(coefficients[i]*scope[i]) op rhs,
// evaluated by bounds analysis over the free variables.
package csp

import (
	"fmt"
	"strings"
)

// LinearOperator is the comparison relating a weighted sum to its
// right-hand side.
type LinearOperator string

// Supported linear operators.
const (
	OpEQ LinearOperator = "="
	OpLE LinearOperator = "<="
	OpGE LinearOperator = ">="
	OpLT LinearOperator = "<"
	OpGT LinearOperator = ">"
)

// LinearConstraint enforces sum(coefficients[i] * scope[i]) op rhs over
// integer variables.
//
// Partial assignments are checked by interval reasoning: free variables
// contribute their initial-domain extremes (paired with the coefficient
// sign), and the constraint is consistent iff the resulting feasible sum
// interval intersects the half-plane given by the operator. The constraint
// does not decompose into binary arcs; propagation tests each candidate of
// each unassigned scope variable with IsConsistentWith.
type LinearConstraint struct {
	scope        []*Variable[int]
	coefficients []int
	operator     LinearOperator
	rhs          int
	name         string
}

// NewLinearConstraint creates a linear constraint. Returns an error if the
// scope is empty, the coefficient count does not match the scope, or the
// operator is unknown.
func NewLinearConstraint(scope []*Variable[int], coefficients []int, operator LinearOperator, rhs int) (*LinearConstraint, error) {
	return NewLinearConstraintNamed(scope, coefficients, operator, rhs, "")
}

// NewLinearConstraintNamed creates a linear constraint with an explicit name.
func NewLinearConstraintNamed(scope []*Variable[int], coefficients []int, operator LinearOperator, rhs int, name string) (*LinearConstraint, error) {
	if len(scope) == 0 {
		return nil, fmt.Errorf("LinearConstraint: scope cannot be empty")
	}
	if len(coefficients) != len(scope) {
		return nil, fmt.Errorf("LinearConstraint: %d coefficients for %d variables", len(coefficients), len(scope))
	}
	switch operator {
	case OpEQ, OpLE, OpGE, OpLT, OpGT:
	default:
		return nil, fmt.Errorf("LinearConstraint: unknown operator %q", operator)
	}

	scopeCopy := make([]*Variable[int], len(scope))
	copy(scopeCopy, scope)
	coeffCopy := make([]int, len(coefficients))
	copy(coeffCopy, coefficients)

	return &LinearConstraint{
		scope:        scopeCopy,
		coefficients: coeffCopy,
		operator:     operator,
		rhs:          rhs,
		name:         name,
	}, nil
}

// Sum creates sum(scope) op rhs with unit coefficients.
func Sum(scope []*Variable[int], operator LinearOperator, rhs int) (*LinearConstraint, error) {
	coefficients := make([]int, len(scope))
	for i := range coefficients {
		coefficients[i] = 1
	}
	return NewLinearConstraint(scope, coefficients, operator, rhs)
}

// Scope implements Constraint.
func (c *LinearConstraint) Scope() []*Variable[int] { return c.scope }

// Name implements Constraint.
func (c *LinearConstraint) Name() string {
	if c.name != "" {
		return c.name
	}
	var b strings.Builder
	for i, v := range c.scope {
		coef := c.coefficients[i]
		if i > 0 && coef >= 0 {
			b.WriteString("+")
		}
		switch coef {
		case 1:
			b.WriteString(v.Name())
		case -1:
			b.WriteString("-" + v.Name())
		default:
			fmt.Fprintf(&b, "%d*%s", coef, v.Name())
		}
	}
	fmt.Fprintf(&b, " %s %d", c.operator, c.rhs)
	return b.String()
}

// IsSatisfied implements Constraint.
func (c *LinearConstraint) IsSatisfied(a *Assignment[int]) bool {
	sum := 0
	for i, v := range c.scope {
		value, ok := a.Value(v)
		if !ok {
			return false
		}
		sum += c.coefficients[i] * value
	}
	return c.evaluate(sum)
}

// IsConsistent implements Constraint by bounds analysis over the free
// variables.
func (c *LinearConstraint) IsConsistent(a *Assignment[int]) bool {
	minTotal, maxTotal, complete := c.sumBounds(a, nil, 0)
	if complete {
		return c.evaluate(minTotal)
	}
	return c.intervalFeasible(minTotal, maxTotal)
}

// IsConsistentWith implements Constraint: the proposed binding joins the
// fixed part of the sum, the remaining free variables contribute bounds.
func (c *LinearConstraint) IsConsistentWith(variable *Variable[int], value int, a *Assignment[int]) bool {
	if !Involves[int](c, variable) {
		return true
	}
	minTotal, maxTotal, complete := c.sumBounds(a, variable, value)
	if complete {
		return c.evaluate(minTotal)
	}
	return c.intervalFeasible(minTotal, maxTotal)
}

// Propagate implements Constraint: every candidate of every unassigned
// scope variable is tested against the sum interval.
func (c *LinearConstraint) Propagate(assigned *Variable[int], domains DomainMap[int], a *Assignment[int]) bool {
	changed := false
	for _, v := range c.scope {
		if a.IsAssigned(v) {
			continue
		}
		domain := domains[v]
		if domain == nil {
			continue
		}
		domain.ForEach(func(value int) {
			if !c.IsConsistentWith(v, value, a) {
				domain.Remove(value)
				changed = true
			}
		})
	}
	return changed
}

// Arcs implements Constraint. Linear constraints do not decompose into
// binary arcs; Propagate carries all the filtering.
func (c *LinearConstraint) Arcs() []Arc[int] { return nil }

// Revise implements Constraint as a no-op; see Arcs.
func (c *LinearConstraint) Revise(x, y *Variable[int], domains DomainMap[int]) bool {
	return false
}

// Operator returns the comparison operator.
func (c *LinearConstraint) Operator() LinearOperator { return c.operator }

// RHS returns the right-hand side.
func (c *LinearConstraint) RHS() int { return c.rhs }

func (c *LinearConstraint) String() string { return c.Name() }

// sumBounds computes the feasible [min, max] of the weighted sum given the
// assignment, optionally treating proposedVar as bound to proposedValue.
// complete is true when no variable was free.
func (c *LinearConstraint) sumBounds(a *Assignment[int], proposedVar *Variable[int], proposedValue int) (minTotal, maxTotal int, complete bool) {
	fixed := 0
	minFree, maxFree := 0, 0
	free := 0

	for i, v := range c.scope {
		coef := c.coefficients[i]
		if v == proposedVar {
			fixed += coef * proposedValue
			continue
		}
		if value, ok := a.Value(v); ok {
			fixed += coef * value
			continue
		}
		free++
		lo, okLo := domainMin(v.InitialDomain())
		hi, okHi := domainMax(v.InitialDomain())
		if !okLo || !okHi {
			continue
		}
		if coef > 0 {
			minFree += coef * lo
			maxFree += coef * hi
		} else {
			minFree += coef * hi
			maxFree += coef * lo
		}
	}
	return fixed + minFree, fixed + maxFree, free == 0
}

func (c *LinearConstraint) intervalFeasible(minTotal, maxTotal int) bool {
	switch c.operator {
	case OpEQ:
		return minTotal <= c.rhs && c.rhs <= maxTotal
	case OpLE:
		return minTotal <= c.rhs
	case OpLT:
		return minTotal < c.rhs
	case OpGE:
		return maxTotal >= c.rhs
	case OpGT:
		return maxTotal > c.rhs
	}
	return false
}

func (c *LinearConstraint) evaluate(sum int) bool {
	switch c.operator {
	case OpEQ:
		return sum == c.rhs
	case OpLE:
		return sum <= c.rhs
	case OpGE:
		return sum >= c.rhs
	case OpLT:
		return sum < c.rhs
	case OpGT:
		return sum > c.rhs
	}
	return false
}
