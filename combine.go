package option

// And returns other if this Option is present, otherwise None.
// other is evaluated eagerly by the caller; use AndThen for a lazy variant.
func And[T, U any](o Option[T], other Option[U]) Option[U] {
	if o.present {
		return other
	}
	return None[U]()
}

// AndThen applies a function that returns an Option (monadic bind).
// The function is invoked at most once, only when a value is present.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.present {
		return fn(o.value)
	}
	return None[U]()
}

// Filter returns None if the predicate returns false.
// The predicate is invoked at most once, only when a value is present.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Or returns the Option if present, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.present {
		return o
	}
	return other
}

// OrElse returns the Option if present, otherwise the result of fn.
// fn is invoked at most once, only when the Option is empty.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.present {
		return o
	}
	return fn()
}

// Xor returns whichever Option is present when exactly one of the two is;
// it returns None when both are present or both are empty.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.present && !other.present:
		return o
	case !o.present && other.present:
		return other
	default:
		return None[T]()
	}
}

// Flatten removes one level of nesting from an Option of Options.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if o.present {
		return o.value
	}
	return None[T]()
}

// Collect combines a slice of Options into an Option of a slice.
// It returns None if any element is empty.
func Collect[T any](opts []Option[T]) Option[[]T] {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if !o.present {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}
