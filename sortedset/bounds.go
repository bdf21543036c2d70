package sortedset

import "github.com/amp-labs/amp-collections/sortable"

// Bounds selects whether the endpoints of a value range are part of it.
type Bounds int

const (
	// Inclusive keeps elements equal to either endpoint: lower <= x <= upper.
	Inclusive Bounds = iota
	// Exclusive drops elements equal to either endpoint: lower < x < upper.
	Exclusive
)

// String returns "inclusive" or "exclusive".
func (b Bounds) String() string {
	switch b {
	case Inclusive:
		return "inclusive"
	case Exclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// aboveLower reports whether elem is on the upper side of the lower bound.
func aboveLower[T sortable.Sortable[T]](b Bounds, elem, lower T) bool {
	if b == Exclusive {
		return lower.LessThan(elem)
	}

	return !elem.LessThan(lower)
}

// belowUpper reports whether elem is on the lower side of the upper bound.
func belowUpper[T sortable.Sortable[T]](b Bounds, elem, upper T) bool {
	if b == Exclusive {
		return elem.LessThan(upper)
	}

	return !upper.LessThan(elem)
}
