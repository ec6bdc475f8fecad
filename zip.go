package option

// Zip combines two Options into an Option of a Pair.
// It returns None if either Option is empty.
func Zip[T, U any](a Option[T], b Option[U]) Option[Pair[T, U]] {
	if a.present && b.present {
		return Some(NewPair(a.value, b.value))
	}
	return None[Pair[T, U]]()
}

// ZipWith combines two Options using a function.
// The function is invoked at most once, only when both values are present.
func ZipWith[T, U, R any](a Option[T], b Option[U], fn func(T, U) R) Option[R] {
	if a.present && b.present {
		return Some(fn(a.value, b.value))
	}
	return None[R]()
}

// Unzip splits an Option of a Pair into two Options.
func Unzip[A, B any](o Option[Pair[A, B]]) (Option[A], Option[B]) {
	if o.present {
		return Some(o.value.First), Some(o.value.Second)
	}
	return None[A](), None[B]()
}
