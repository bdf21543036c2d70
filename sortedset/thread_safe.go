package sortedset

import (
	"context"
	"iter"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-collections/optional"
)

// NewThreadSafe wraps a set so it can be shared between goroutines.
// Mutations take an exclusive lock and reads take a shared lock.
//
// Iteration (ForEach, Seq, SeqContext, ForEachAsync) copies the contents under
// the read lock and then runs without holding it, so callbacks may modify the
// set.
//
// Wrapping an already thread-safe set returns it unchanged. A nil set yields
// nil.
//
// Example usage:
//
//	safe := sortedset.NewThreadSafe(sortedset.New[sortable.Int]())
//	go safe.Add(1)
//	go safe.Add(2)
func NewThreadSafe[T Element[T]](s SortedSet[T]) SortedSet[T] {
	if s == nil {
		return nil
	}

	if tss, ok := s.(*threadSafe[T]); ok {
		return tss
	}

	return &threadSafe[T]{
		internal: s,
	}
}

type threadSafe[T Element[T]] struct {
	mutex    sync.RWMutex // Protects access to internal
	internal SortedSet[T]
}

// Len returns the size under the read lock.
func (t *threadSafe[T]) Len() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Len()
}

// At reads under the read lock.
func (t *threadSafe[T]) At(index int) optional.Value[T] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.At(index)
}

// Get is the same as At.
func (t *threadSafe[T]) Get(index int) optional.Value[T] {
	return t.At(index)
}

// GetRange copies the range under the read lock.
func (t *threadSafe[T]) GetRange(start, end int) []T {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.GetRange(start, end)
}

// GetBetween copies the range under the read lock.
func (t *threadSafe[T]) GetBetween(lower, upper T, bounds Bounds) []T {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.GetBetween(lower, upper, bounds)
}

// Contains checks membership under the read lock.
func (t *threadSafe[T]) Contains(element T) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Contains(element)
}

// IndexOf searches under the read lock.
func (t *threadSafe[T]) IndexOf(element T) optional.Value[int] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.IndexOf(element)
}

// First reads under the read lock.
func (t *threadSafe[T]) First() optional.Value[T] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.First()
}

// Last reads under the read lock.
func (t *threadSafe[T]) Last() optional.Value[T] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Last()
}

// Entries copies the elements under the read lock.
func (t *threadSafe[T]) Entries() []T {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Entries()
}

// String formats the set under the read lock.
func (t *threadSafe[T]) String() string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.String()
}

// MarshalJSON encodes the set under the read lock.
func (t *threadSafe[T]) MarshalJSON() ([]byte, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.MarshalJSON()
}

// MarshalYAML snapshots the set under the read lock.
func (t *threadSafe[T]) MarshalYAML() (any, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.MarshalYAML()
}

// ForEach takes a snapshot under the read lock and runs callback without
// holding any lock, so callback may modify the set.
func (t *threadSafe[T]) ForEach(callback func(element T, index int)) error {
	if callback == nil {
		return ErrNilCallback
	}

	for i, elem := range t.Seq() {
		callback(elem, i)
	}

	return nil
}

// ForEachAsync takes a snapshot under the read lock and walks it on the
// shared pool without holding any lock.
func (t *threadSafe[T]) ForEachAsync(ctx context.Context, callback func(element T, index int)) (pond.Task, error) {
	if callback == nil {
		return nil, ErrNilCallback
	}

	return forEachAsync(ctx, t.Entries(), callback)
}

// Seq snapshots the set under the read lock; the lock is not held while the
// caller ranges over the result.
func (t *threadSafe[T]) Seq() iter.Seq2[int, T] {
	return seqOf(t.Entries())
}

// SeqContext snapshots like Seq and stops once ctx is done.
func (t *threadSafe[T]) SeqContext(ctx context.Context) iter.Seq2[int, T] {
	return seqContextOf(ctx, t.Entries())
}

// Add inserts under the write lock.
func (t *threadSafe[T]) Add(element T) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Add(element)
}

// AddAll inserts every element under a single write lock.
func (t *threadSafe[T]) AddAll(elements ...T) int {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.AddAll(elements...)
}

// Remove deletes under the write lock.
func (t *threadSafe[T]) Remove(element T) optional.Value[T] {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Remove(element)
}

// RemoveAt deletes under the write lock.
func (t *threadSafe[T]) RemoveAt(index int) optional.Value[T] {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.RemoveAt(index)
}

// RemoveBetween excises the range under a single write lock.
func (t *threadSafe[T]) RemoveBetween(lower, upper T, bounds Bounds) []T {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.RemoveBetween(lower, upper, bounds)
}

// Clear empties the set under the write lock.
func (t *threadSafe[T]) Clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.Clear()
}

// Clone copies the set under the read lock and returns a thread-safe copy.
func (t *threadSafe[T]) Clone() SortedSet[T] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return &threadSafe[T]{internal: t.internal.Clone()}
}

// Union copies other before taking this set's read lock, so combining a set
// with itself cannot re-enter the lock. The result is thread-safe.
func (t *threadSafe[T]) Union(other SortedSet[T]) SortedSet[T] {
	theirs := cloneOf(other)

	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return &threadSafe[T]{internal: t.internal.Union(theirs)}
}

// Intersection copies other first, like Union. The result is thread-safe.
func (t *threadSafe[T]) Intersection(other SortedSet[T]) SortedSet[T] {
	theirs := cloneOf(other)

	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return &threadSafe[T]{internal: t.internal.Intersection(theirs)}
}

// Difference copies other first, like Union. The result is thread-safe.
func (t *threadSafe[T]) Difference(other SortedSet[T]) SortedSet[T] {
	theirs := cloneOf(other)

	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return &threadSafe[T]{internal: t.internal.Difference(theirs)}
}

func cloneOf[T Element[T]](s SortedSet[T]) SortedSet[T] {
	if s == nil {
		return nil
	}

	return s.Clone()
}
