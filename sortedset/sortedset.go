package sortedset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-collections/optional"
	"github.com/amp-labs/amp-collections/sortable"
	"gopkg.in/yaml.v3"
)

// ErrNilCallback is returned when an iteration method is called without a
// callback. Nothing is read or modified in that case.
var ErrNilCallback = errors.New("callback must not be nil")

// Element is the constraint for set members: a naturally ordered type whose
// values can also key the presence index.
type Element[T any] interface {
	comparable
	sortable.Sortable[T]
}

// SortedSet is a collection of unique elements kept in ascending order.
//
// A SortedSet encodes to JSON and YAML as an ascending array. It does not
// decode in place; use FromJSON or FromYAML instead.
type SortedSet[T Element[T]] interface {
	fmt.Stringer
	json.Marshaler
	yaml.Marshaler

	// Len returns the number of elements in the set.
	Len() int

	// At returns the element at the given ordinal position, or None if the
	// index is outside [0, Len()).
	At(index int) optional.Value[T]

	// Get is an alias of At.
	Get(index int) optional.Value[T]

	// GetRange returns a copy of the elements at positions start through end,
	// inclusive. Positions are clamped to the set. If start > end the result
	// is empty.
	GetRange(start, end int) []T

	// GetBetween returns the elements whose values fall between lower and
	// upper, in ascending order. If upper sorts before lower the result is
	// empty.
	GetBetween(lower, upper T, bounds Bounds) []T

	// Contains reports whether element is a member of the set.
	Contains(element T) bool

	// IndexOf returns the ordinal position of element, or None if it is not
	// a member.
	IndexOf(element T) optional.Value[int]

	// First returns the smallest element, or None if the set is empty.
	First() optional.Value[T]

	// Last returns the largest element, or None if the set is empty.
	Last() optional.Value[T]

	// Entries returns a copy of all elements in ascending order. The result
	// is never nil.
	Entries() []T

	// ForEach calls callback with each element and its position, in
	// ascending order, over a snapshot taken when the call starts. It
	// returns ErrNilCallback if callback is nil.
	ForEach(callback func(element T, index int)) error

	// ForEachAsync runs ForEach on a background worker over a snapshot taken
	// before it returns. The walk stops early when ctx is done, and the
	// task's Wait then reports the context error.
	ForEachAsync(ctx context.Context, callback func(element T, index int)) (pond.Task, error)

	// Seq returns an iterator over (position, element) pairs in ascending
	// order, backed by a snapshot taken when Seq is called.
	Seq() iter.Seq2[int, T]

	// SeqContext is like Seq but stops yielding once ctx is done.
	SeqContext(ctx context.Context) iter.Seq2[int, T]

	// Add inserts element if it is not already present. It returns true if
	// the set changed.
	Add(element T) bool

	// AddAll adds every element and returns how many were new.
	AddAll(elements ...T) int

	// Remove deletes element and returns it, or returns None if it was not a
	// member.
	Remove(element T) optional.Value[T]

	// RemoveAt deletes the element at the given position and returns it, or
	// returns None (leaving the set untouched) if the index is out of range.
	RemoveAt(index int) optional.Value[T]

	// RemoveBetween deletes the elements GetBetween would return and returns
	// them in ascending order.
	RemoveBetween(lower, upper T, bounds Bounds) []T

	// Clear removes all elements.
	Clear()

	// Clone returns an independent copy of the set.
	Clone() SortedSet[T]

	// Union returns a new set holding the elements of both sets.
	Union(other SortedSet[T]) SortedSet[T]

	// Intersection returns a new set holding the elements present in both
	// sets.
	Intersection(other SortedSet[T]) SortedSet[T]

	// Difference returns a new set holding the elements of this set that are
	// not in other.
	Difference(other SortedSet[T]) SortedSet[T]
}

type sortedSet[T Element[T]] struct {
	sequence []T            // ascending, no duplicates
	presence map[T]struct{} // exactly the members of sequence
}

var _ SortedSet[sortable.Int] = (*sortedSet[sortable.Int])(nil)

// New creates a set holding the given elements. The input may be unordered
// and contain duplicates; it is not modified.
func New[T Element[T]](initial ...T) SortedSet[T] {
	return newSortedSet(initial)
}

// FromSlice creates a set from the elements of a slice. The slice is not
// modified.
func FromSlice[T Element[T]](elements []T) SortedSet[T] {
	return newSortedSet(elements)
}

func newSortedSet[T Element[T]](initial []T) *sortedSet[T] {
	s := &sortedSet[T]{}
	s.reset(initial)

	return s
}

// newFromSorted wraps a slice that is already ascending and duplicate-free.
// The set takes ownership of sequence.
func newFromSorted[T Element[T]](sequence []T) *sortedSet[T] {
	presence := make(map[T]struct{}, len(sequence))
	for _, elem := range sequence {
		presence[elem] = struct{}{}
	}

	return &sortedSet[T]{
		sequence: sequence,
		presence: presence,
	}
}

// reset replaces the contents with the sorted, deduplicated initial values.
func (s *sortedSet[T]) reset(initial []T) {
	work := slices.Clone(initial)
	slices.SortFunc(work, sortable.Compare[T])

	s.sequence = make([]T, 0, len(work))
	s.presence = make(map[T]struct{}, len(work))

	for i, elem := range work {
		if i > 0 && elem.Equals(work[i-1]) {
			continue
		}

		s.sequence = append(s.sequence, elem)
		s.presence[elem] = struct{}{}
	}
}

// Len returns the number of elements.
func (s *sortedSet[T]) Len() int {
	return len(s.sequence)
}

// At returns the element at index, or None outside [0, Len()).
func (s *sortedSet[T]) At(index int) optional.Value[T] {
	if index < 0 || index >= len(s.sequence) {
		return optional.None[T]()
	}

	return optional.Some(s.sequence[index])
}

// Get is the same as At.
func (s *sortedSet[T]) Get(index int) optional.Value[T] {
	return s.At(index)
}

// GetRange clamps start and end to the sequence before copying.
func (s *sortedSet[T]) GetRange(start, end int) []T {
	start = max(start, 0)
	end = min(end, len(s.sequence)-1)

	if start > end {
		return []T{}
	}

	return snapshot(s.sequence[start : end+1])
}

// GetBetween copies the contiguous run found by between.
func (s *sortedSet[T]) GetBetween(lower, upper T, bounds Bounds) []T {
	lo, hi := s.between(lower, upper, bounds)

	return snapshot(s.sequence[lo:hi])
}

// between returns the half-open index range [lo, hi) of the elements that
// lie between lower and upper. Because the sequence is ascending the
// qualifying elements are always contiguous.
func (s *sortedSet[T]) between(lower, upper T, bounds Bounds) (int, int) {
	if upper.LessThan(lower) {
		return 0, 0
	}

	lo := sort.Search(len(s.sequence), func(i int) bool {
		return aboveLower(bounds, s.sequence[i], lower)
	})

	hi := lo
	for hi < len(s.sequence) && belowUpper(bounds, s.sequence[hi], upper) {
		hi++
	}

	return lo, hi
}

// Contains consults only the presence index.
func (s *sortedSet[T]) Contains(element T) bool {
	_, ok := s.presence[element]

	return ok
}

// IndexOf binary-searches the sequence once the presence index confirms
// membership.
func (s *sortedSet[T]) IndexOf(element T) optional.Value[int] {
	return optional.Map(s.lookup(element), s.search)
}

// lookup returns element if it is a member.
func (s *sortedSet[T]) lookup(element T) optional.Value[T] {
	if !s.Contains(element) {
		return optional.None[T]()
	}

	return optional.Some(element)
}

// search returns the position of the first element that does not sort
// before element.
func (s *sortedSet[T]) search(element T) int {
	return sort.Search(len(s.sequence), func(i int) bool {
		return !s.sequence[i].LessThan(element)
	})
}

// First returns the smallest element.
func (s *sortedSet[T]) First() optional.Value[T] {
	return s.At(0)
}

// Last returns the largest element.
func (s *sortedSet[T]) Last() optional.Value[T] {
	return s.At(len(s.sequence) - 1)
}

// Entries returns a copy of the sequence.
func (s *sortedSet[T]) Entries() []T {
	return snapshot(s.sequence)
}

// String joins the elements with commas, e.g. "1,3,5".
func (s *sortedSet[T]) String() string {
	var sb strings.Builder

	for i, elem := range s.sequence {
		if i > 0 {
			sb.WriteByte(',')
		}

		fmt.Fprint(&sb, elem)
	}

	return sb.String()
}

// ForEach walks a snapshot, so callback may modify the set.
func (s *sortedSet[T]) ForEach(callback func(element T, index int)) error {
	if callback == nil {
		return ErrNilCallback
	}

	for i, elem := range s.Seq() {
		callback(elem, i)
	}

	return nil
}

// ForEachAsync snapshots the set and hands the walk to the shared pool.
func (s *sortedSet[T]) ForEachAsync(ctx context.Context, callback func(element T, index int)) (pond.Task, error) {
	return forEachAsync(ctx, s.Entries(), callback)
}

// Seq iterates over a snapshot.
func (s *sortedSet[T]) Seq() iter.Seq2[int, T] {
	return seqOf(s.Entries())
}

// SeqContext iterates over a snapshot until ctx is done.
func (s *sortedSet[T]) SeqContext(ctx context.Context) iter.Seq2[int, T] {
	return seqContextOf(ctx, s.Entries())
}

// Add inserts element at its ordered position, keeping both views in step.
func (s *sortedSet[T]) Add(element T) bool {
	if s.Contains(element) {
		return false
	}

	// First position holding a larger element; equal elements cannot exist.
	idx := sort.Search(len(s.sequence), func(i int) bool {
		return element.LessThan(s.sequence[i])
	})

	s.sequence = slices.Insert(s.sequence, idx, element)
	s.presence[element] = struct{}{}

	return true
}

// AddAll adds each element in turn and counts the insertions.
func (s *sortedSet[T]) AddAll(elements ...T) int {
	added := 0

	for _, elem := range elements {
		if s.Add(elem) {
			added++
		}
	}

	return added
}

// Remove drops element from both the sequence and the presence index.
func (s *sortedSet[T]) Remove(element T) optional.Value[T] {
	idx, ok := s.IndexOf(element).Get()
	if !ok {
		return optional.None[T]()
	}

	removed := s.sequence[idx]

	s.sequence = slices.Delete(s.sequence, idx, idx+1)
	delete(s.presence, element)

	return optional.Some(removed)
}

// RemoveAt resolves index to an element and removes it.
func (s *sortedSet[T]) RemoveAt(index int) optional.Value[T] {
	elem, ok := s.At(index).Get()
	if !ok {
		return optional.None[T]()
	}

	return s.Remove(elem)
}

// RemoveBetween excises the range in a single slices.Delete.
func (s *sortedSet[T]) RemoveBetween(lower, upper T, bounds Bounds) []T {
	lo, hi := s.between(lower, upper, bounds)
	removed := snapshot(s.sequence[lo:hi])

	s.sequence = slices.Delete(s.sequence, lo, hi)

	for _, elem := range removed {
		delete(s.presence, elem)
	}

	return removed
}

// Clear drops every element.
func (s *sortedSet[T]) Clear() {
	s.sequence = nil
	s.presence = make(map[T]struct{})
}

// Clone copies the sequence; the copy shares nothing with s.
func (s *sortedSet[T]) Clone() SortedSet[T] {
	return newFromSorted(snapshot(s.sequence))
}

// Union merges both ascending sequences in one pass. A nil other is empty.
func (s *sortedSet[T]) Union(other SortedSet[T]) SortedSet[T] {
	return newFromSorted(mergeUnion(s.sequence, entriesOf(other)))
}

// Intersection keeps the elements of s that other contains.
func (s *sortedSet[T]) Intersection(other SortedSet[T]) SortedSet[T] {
	out := make([]T, 0, min(len(s.sequence), lenOf(other)))

	for _, elem := range s.sequence {
		if other != nil && other.Contains(elem) {
			out = append(out, elem)
		}
	}

	return newFromSorted(out)
}

// Difference keeps the elements of s that other lacks. A nil other is empty.
func (s *sortedSet[T]) Difference(other SortedSet[T]) SortedSet[T] {
	out := make([]T, 0, len(s.sequence))

	for _, elem := range s.sequence {
		if other == nil || !other.Contains(elem) {
			out = append(out, elem)
		}
	}

	return newFromSorted(out)
}

// snapshot copies elems into a new, non-nil slice.
func snapshot[T any](elems []T) []T {
	out := make([]T, len(elems))
	copy(out, elems)

	return out
}

func entriesOf[T Element[T]](s SortedSet[T]) []T {
	if s == nil {
		return nil
	}

	return s.Entries()
}

func lenOf[T Element[T]](s SortedSet[T]) int {
	if s == nil {
		return 0
	}

	return s.Len()
}

// mergeUnion merges two ascending, duplicate-free slices into a new one.
func mergeUnion[T Element[T]](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].LessThan(b[j]):
			out = append(out, a[i])
			i++
		case b[j].LessThan(a[i]):
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
