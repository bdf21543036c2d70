// Package sortedset provides an in-memory ordered set: unique elements kept
// in ascending order, with positional access, value-range queries and
// in-place mutation.
//
// # Representation
//
// Every set owns two views of the same data: an ascending slice used for
// positional and range access, and a presence index (a Go map keyed by the
// element value) used for constant-time membership tests. Every mutating
// operation updates both views before it returns, so callers never observe
// them out of sync.
//
// Element types supply their ordering through [sortable.Sortable] and must be
// comparable with ==. The ready-made types in the sortable package cover the
// usual primitives:
//
//	s := sortedset.New[sortable.Int](5, 3, 3, 1, 5)
//	s.Entries()                                // [1 3 5]
//	s.GetBetween(1, 3, sortedset.Exclusive)    // []
//	s.RemoveAt(1)                              // Some(3)
//	s.At(10)                                   // None
//
// # Absent results
//
// Operations that can legitimately find nothing (an out-of-range index, a
// value that is not a member) return an [optional.Value] or an empty slice.
// Errors are reserved for misuse, such as passing a nil callback to ForEach.
//
// # Concurrency
//
// A set returned by [New] is not safe for concurrent use. Wrap it with
// [NewThreadSafe] when it must be shared between goroutines. [NewObserved]
// adds Prometheus metrics and debug logging around any set.
//
// Returned slices are always copies. Iteration (ForEach, Seq, ForEachAsync)
// walks a snapshot taken when it starts, so the set may be modified from
// inside a callback without affecting the running iteration.
package sortedset
