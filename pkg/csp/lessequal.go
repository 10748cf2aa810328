package csp

import "cmp"

// LessThanOrEqual is the binary constraint var1 <= var2 over totally ordered
// values.
type LessThanOrEqual[V cmp.Ordered] struct {
	binary[V]
}

// NewLessThanOrEqual creates a LessThanOrEqual constraint over two variables.
func NewLessThanOrEqual[V cmp.Ordered](var1, var2 *Variable[V]) *LessThanOrEqual[V] {
	c := &LessThanOrEqual[V]{}
	c.binary = binary[V]{
		var1:  var1,
		var2:  var2,
		name:  var1.Name() + " <= " + var2.Name(),
		check: func(v1, v2 V) bool { return v1 <= v2 },
	}
	c.self = c
	return c
}

// Revise prunes by bounds. Revising var1 against var2 removes values above
// max(D(var2)); revising var2 against var1 removes values below min(D(var1)).
func (c *LessThanOrEqual[V]) Revise(x, y *Variable[V], domains DomainMap[V]) bool {
	dx, dy := domains[x], domains[y]
	if dx == nil || dy == nil || dy.IsEmpty() {
		return false
	}

	revised := false
	if x == c.var1 {
		maxY, ok := domainMax(dy)
		if !ok {
			return false
		}
		dx.ForEach(func(v V) {
			if v > maxY {
				dx.Remove(v)
				revised = true
			}
		})
	} else {
		minY, ok := domainMin(dy)
		if !ok {
			return false
		}
		dx.ForEach(func(v V) {
			if v < minY {
				dx.Remove(v)
				revised = true
			}
		})
	}
	return revised
}

// domainMin returns the smallest active value of an ordered domain.
func domainMin[V cmp.Ordered](d *Domain[V]) (V, bool) {
	var min V
	found := false
	d.ForEach(func(v V) {
		if !found || v < min {
			min = v
			found = true
		}
	})
	return min, found
}

// domainMax returns the largest active value of an ordered domain.
func domainMax[V cmp.Ordered](d *Domain[V]) (V, bool) {
	var max V
	found := false
	d.ForEach(func(v V) {
		if !found || v > max {
			max = v
			found = true
		}
	})
	return max, found
}
