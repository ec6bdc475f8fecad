// Package option provides a generic container for a value that may be absent.
// It consolidates construction, inspection, transformation, combination and
// in-place mutation of optional values behind a single tagged type, replacing
// nil pointers and ad-hoc sentinel values.
package option

import (
	"fmt"
	"iter"
)

// Option represents an optional value that may or may not be present.
// Presence is tracked by a dedicated tag next to the value slot, so Options
// nest without ambiguity even when T has its own notion of absence.
// The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{present: false}
}

// FromPtr creates an Option from a pointer.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// IsSomeAnd returns true if the Option contains a value matching the
// predicate. The predicate is invoked at most once, only when present.
func (o Option[T]) IsSomeAnd(predicate func(T) bool) bool {
	return o.present && predicate(o.value)
}

// Get returns the contained value and a presence flag.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Match executes one of two functions based on Option state.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.present {
		onSome(o.value)
	} else {
		onNone()
	}
}

// ToSlice converts Option to a slice (empty or single element).
func (o Option[T]) ToSlice() []T {
	if o.present {
		return []T{o.value}
	}
	return []T{}
}

// All returns a Go 1.23+ iterator over the Option (0 or 1 element).
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

// ToPtr converts Option to a pointer.
func (o Option[T]) ToPtr() *T {
	if o.present {
		return &o.value
	}
	return nil
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
