// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as elements of sorted containers.
//
// # Overview
//
// The [Sortable] interface couples equality with ordering. A sorted container
// is parametrized over it once, and the same ordering is then applied during
// construction, insertion and range scans:
//
//	s := sortedset.New(sortable.Int(5), sortable.Int(3), sortable.Int(1))
//	s.String() // "1,3,5"
//
// Ready-made implementations are provided for [Int], [Int64], [Float64],
// [Byte], [String] and [NaturalString].
//
// # Creating Custom Sortable Types
//
// Containers in this module also key a presence index by value, so custom
// element types must be comparable with == in addition to implementing
// Sortable:
//
//	type Version struct {
//	    Major, Minor int
//	}
//
//	func (v Version) Equals(other Version) bool {
//	    return v == other
//	}
//
//	func (v Version) LessThan(other Version) bool {
//	    if v.Major != other.Major {
//	        return v.Major < other.Major
//	    }
//	    return v.Minor < other.Minor
//	}
//
// # Floating point
//
// [Float64] orders by the < operator, so NaN is neither less than nor equal
// to any value (itself included). Do not store NaN in a sorted container.
package sortable
