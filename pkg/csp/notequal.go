package csp

// NotEqual is the binary constraint var1 != var2.
type NotEqual[V comparable] struct {
	binary[V]
}

// NewNotEqual creates a NotEqual constraint over two variables.
func NewNotEqual[V comparable](var1, var2 *Variable[V]) *NotEqual[V] {
	c := &NotEqual[V]{}
	c.binary = binary[V]{
		var1:  var1,
		var2:  var2,
		name:  var1.Name() + " != " + var2.Name(),
		check: func(v1, v2 V) bool { return v1 != v2 },
	}
	c.self = c
	return c
}

// Revise prunes x only when y's domain is a singleton {v}: any other domain
// of y supports every value of x.
func (c *NotEqual[V]) Revise(x, y *Variable[V], domains DomainMap[V]) bool {
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
