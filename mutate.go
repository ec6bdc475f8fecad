package option

// The mutating operations below require exclusive access to the receiver.
// The Option performs no internal synchronization; racing mutators are a
// caller error.

// Insert sets the Option to Some(value) and returns the stored value.
// Any previous state is overwritten.
func (o *Option[T]) Insert(value T) T {
	o.value = value
	o.present = true
	return o.value
}

// GetOrInsert returns the contained value, inserting the given value first
// if the Option is empty.
func (o *Option[T]) GetOrInsert(value T) T {
	if !o.present {
		o.value = value
		o.present = true
	}
	return o.value
}

// GetOrInsertWith returns the contained value, inserting the result of fn
// first if the Option is empty. fn is invoked exactly once when empty and
// never when a value is present.
func (o *Option[T]) GetOrInsertWith(fn func() T) T {
	if !o.present {
		o.value = fn()
		o.present = true
	}
	return o.value
}

// Take moves the value out of the Option, leaving None in its place, and
// returns the previous state. The vacated slot is zeroed so no stale value
// is retained. Taking from an empty Option returns None.
func (o *Option[T]) Take() Option[T] {
	previous := *o
	var zero T
	o.value = zero
	o.present = false
	return previous
}

// Replace sets the Option to Some(value) and returns the previous state.
func (o *Option[T]) Replace(value T) Option[T] {
	previous := *o
	o.value = value
	o.present = true
	return previous
}
