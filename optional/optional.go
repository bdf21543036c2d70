// Package optional provides a typed "maybe absent" result. Lookups that can
// legitimately find nothing (an out-of-range index, a value that is not a
// member) return a Value instead of a zero value and a separate flag.
package optional

import (
	"fmt"
	"iter"
)

// Value holds either exactly one T or nothing.
// The zero Value is empty.
type Value[T any] struct {
	value T
	isSet bool
}

// Some wraps value in a non-empty Value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None returns an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// All yields the held value once, or nothing when empty, so a Value can be
// used in a range loop.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// NonEmpty reports whether a value is held.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty reports whether no value is held.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the held value and true, or the zero value and false.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrPanic returns the held value and panics when empty.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("called GetOrPanic on None")
	}

	return o.value
}

// GetOrElse returns the held value, or defaultValue when empty.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// Size returns 1 when a value is held and 0 otherwise.
func (o Value[T]) Size() int {
	if o.isSet {
		return 1
	}

	return 0
}

// String renders "Some(value)" or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map applies f to the held value. An empty Value maps to an empty Value.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if !o.isSet {
		return None[U]()
	}

	return Some(f(o.value))
}
