// Package sortable provides the ordering bound used by sorted containers and
// ready-made element types for the common primitives.
package sortable

// Sortable is implemented by types that carry their own natural ordering.
// LessThan must define a strict total order, and Equals must agree with it:
// for any a and b exactly one of a.LessThan(b), b.LessThan(a) or a.Equals(b)
// holds.
type Sortable[T any] interface {
	Equals(other T) bool
	LessThan(other T) bool
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to,
// or after b.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}
