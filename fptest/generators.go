// Package fptest provides rapid generators for the containers of this module
// and reusable checks for the laws their instances must satisfy.
package fptest

import (
	"github.com/authcorp/libs/go/fp/array/nonempty"
	"github.com/authcorp/libs/go/fp/either"
	"github.com/authcorp/libs/go/fp/option"
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

// SomeGen generates Some[T] values only.
func SomeGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[option.Option[T]] {
	return rapid.Custom(func(t *rapid.T) option.Option[T] {
		return option.Some(valueGen.Draw(t, "value"))
	})
}

// NoneGen generates None[T] values only.
func NoneGen[T any]() *rapid.Generator[option.Option[T]] {
	return rapid.Just(option.None[T]())
}

// EitherGen generates Either[L, R] values.
func EitherGen[L, R any](leftGen *rapid.Generator[L], rightGen *rapid.Generator[R]) *rapid.Generator[either.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) either.Either[L, R] {
		if rapid.Bool().Draw(t, "isRight") {
			return either.Right[L](rightGen.Draw(t, "right"))
		}
		return either.Left[R](leftGen.Draw(t, "left"))
	})
}

// LeftGen generates Left[L, R] values only.
func LeftGen[L, R any](leftGen *rapid.Generator[L]) *rapid.Generator[either.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) either.Either[L, R] {
		return either.Left[R](leftGen.Draw(t, "left"))
	})
}

// RightGen generates Right[L, R] values only.
func RightGen[L, R any](rightGen *rapid.Generator[R]) *rapid.Generator[either.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) either.Either[L, R] {
		return either.Right[L](rightGen.Draw(t, "right"))
	})
}

// SliceGen generates slices with a length in [minSize, maxSize].
func SliceGen[T any](elemGen *rapid.Generator[T], minSize, maxSize int) *rapid.Generator[[]T] {
	return rapid.SliceOfN(elemGen, minSize, maxSize)
}

// NonEmptyGen generates non-empty arrays of at most maxSize elements.
func NonEmptyGen[T any](elemGen *rapid.Generator[T], maxSize int) *rapid.Generator[nonempty.NonEmptyArray[T]] {
	return rapid.Custom(func(t *rapid.T) nonempty.NonEmptyArray[T] {
		head := elemGen.Draw(t, "head")
		tail := rapid.SliceOfN(elemGen, 0, maxSize-1).Draw(t, "tail")
		return nonempty.Of(head, tail...)
	})
}

// SmallIntGen generates integers small enough to keep arithmetic in tests
// free of overflow.
func SmallIntGen() *rapid.Generator[int] {
	return rapid.IntRange(-10000, 10000)
}

// AlphanumericGen generates alphanumeric strings.
func AlphanumericGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-zA-Z0-9]*`)
}
