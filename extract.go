package option

// unwrapMsg is the fixed assertion message used by Unwrap.
const unwrapMsg = "called Unwrap on None"

// Expect returns the contained value or panics with an *AbsentError carrying
// the given message. Asserting presence is the only failing operation on an
// Option; every other operation models absence as a normal return value.
func (o Option[T]) Expect(msg string) T {
	if !o.present {
		panic(NewAbsentError(msg))
	}
	return o.value
}

// Unwrap returns the contained value or panics if empty.
func (o Option[T]) Unwrap() T {
	return o.Expect(unwrapMsg)
}

// UnwrapOr returns the contained value or a default.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// UnwrapOrElse returns the contained value or computes a default.
// The function is invoked at most once, only when the Option is empty.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// UnwrapOrDefault returns the contained value or the zero value of T.
func (o Option[T]) UnwrapOrDefault() T {
	if o.present {
		return o.value
	}
	var zero T
	return zero
}
