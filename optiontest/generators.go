// Package optiontest provides rapid generators for Option values.
package optiontest

import (
	"github.com/fnkit/option"

	"pgregory.net/rapid"
)

// OptionGen generates Option[T] values.
func OptionGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[option.Option[T]] {
	return rapid.Custom(func(t *rapid.T) option.Option[T] {
		if rapid.Bool().Draw(t, "isSome") {
			return option.Some(valueGen.Draw(t, "value"))
		}
		return option.None[T]()
	})
}

// SomeGen generates present Options only.
func SomeGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[option.Option[T]] {
	return rapid.Custom(func(t *rapid.T) option.Option[T] {
		return option.Some(valueGen.Draw(t, "value"))
	})
}

// NoneGen generates empty Options only.
func NoneGen[T any]() *rapid.Generator[option.Option[T]] {
	return rapid.Just(option.None[T]())
}

// PairGen generates Pair[A, B] values.
func PairGen[A, B any](firstGen *rapid.Generator[A], secondGen *rapid.Generator[B]) *rapid.Generator[option.Pair[A, B]] {
	return rapid.Custom(func(t *rapid.T) option.Pair[A, B] {
		return option.NewPair(
			firstGen.Draw(t, "first"),
			secondGen.Draw(t, "second"),
		)
	})
}
