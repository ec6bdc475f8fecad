package option

// Map applies a function to the contained value if present.
// The function is invoked at most once.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.present {
		return Some(fn(o.value))
	}
	return None[U]()
}

// Inspect invokes fn with the contained value for its side effect and returns
// the Option unchanged. fn is never invoked on an empty Option.
func (o Option[T]) Inspect(fn func(T)) Option[T] {
	if o.present {
		fn(o.value)
	}
	return o
}

// MapOr applies a function to the contained value or returns a default.
func MapOr[T, U any](o Option[T], defaultValue U, fn func(T) U) U {
	if o.present {
		return fn(o.value)
	}
	return defaultValue
}

// MapOrElse applies a function to the contained value or computes a default.
// Exactly one of the two functions is invoked per call.
func MapOrElse[T, U any](o Option[T], defaultFn func() U, fn func(T) U) U {
	if o.present {
		return fn(o.value)
	}
	return defaultFn()
}
