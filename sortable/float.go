package sortable

// Float64 is a sortable wrapper type for the built-in float64 type.
// NaN values break the total order and must not be used as elements.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

// Equals returns true if both values are numerically equal.
func (f Float64) Equals(other Float64) bool {
	return f == other
}

// LessThan returns true if this Float64 is numerically less than the other.
func (f Float64) LessThan(other Float64) bool {
	return f < other
}
