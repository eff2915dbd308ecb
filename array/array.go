// Package array provides data-last combinators and type-class instances for
// plain Go slices.
//
// No function in this package mutates its input: every slice it returns is
// freshly allocated. Empty results are empty non-nil slices.
package array

import (
	"github.com/authcorp/libs/go/fp/either"
	"github.com/authcorp/libs/go/fp/option"
	"github.com/authcorp/libs/go/fp/tuple"
)

// Of creates a slice holding a single element.
func Of[A any](a A) []A {
	return []A{a}
}

// Zero returns an empty slice.
func Zero[A any]() []A {
	return []A{}
}

// Empty is an alias of Zero.
func Empty[A any]() []A {
	return Zero[A]()
}

// MakeBy creates a slice of length n whose i-th element is f(i).
// A negative n yields an empty slice.
func MakeBy[A any](n int, f func(int) A) []A {
	if n <= 0 {
		return Zero[A]()
	}
	out := make([]A, n)
	for i := range out {
		out[i] = f(i)
	}
	return out
}

// Replicate creates a slice holding n copies of a.
func Replicate[A any](n int, a A) []A {
	return MakeBy(n, func(int) A { return a })
}

// Range returns the integers from start to end inclusive. When start is
// greater than end the result is [start].
func Range(start, end int) []int {
	if start > end {
		return Of(start)
	}
	return MakeBy(end-start+1, func(i int) int { return start + i })
}

// FromPredicate wraps a in a slice when it satisfies predicate.
func FromPredicate[A any](predicate func(A) bool) func(A) []A {
	return func(a A) []A {
		if predicate(a) {
			return Of(a)
		}
		return Zero[A]()
	}
}

// FromOption converts None to an empty slice and Some(a) to [a].
func FromOption[A any](o option.Option[A]) []A {
	if a, ok := o.Unpack(); ok {
		return Of(a)
	}
	return Zero[A]()
}

// FromEither converts a Left to an empty slice and Right(a) to [a].
func FromEither[E, A any](e either.Either[E, A]) []A {
	if _, a, ok := e.Unpack(); ok {
		return Of(a)
	}
	return Zero[A]()
}

// Unfold builds a slice from a seed. f returns the next element and seed, or
// None to stop.
func Unfold[A, B any](seed B, f func(B) option.Option[tuple.Pair[A, B]]) []A {
	out := Zero[A]()
	for {
		next, ok := f(seed).Unpack()
		if !ok {
			return out
		}
		out = append(out, next.First)
		seed = next.Second
	}
}

// Match calls onEmpty for an empty slice and onNonEmpty otherwise.
func Match[A, B any](onEmpty func() B, onNonEmpty func([]A) B) func([]A) B {
	return func(as []A) B {
		if len(as) == 0 {
			return onEmpty()
		}
		return onNonEmpty(as)
	}
}

// MatchLeft destructures a non-empty slice into its head and tail.
func MatchLeft[A, B any](onEmpty func() B, onNonEmpty func(head A, tail []A) B) func([]A) B {
	return func(as []A) B {
		if len(as) == 0 {
			return onEmpty()
		}
		return onNonEmpty(as[0], clone(as[1:]))
	}
}

// MatchRight destructures a non-empty slice into its init and last element.
func MatchRight[A, B any](onEmpty func() B, onNonEmpty func(prefix []A, last A) B) func([]A) B {
	return func(as []A) B {
		if len(as) == 0 {
			return onEmpty()
		}
		n := len(as) - 1
		return onNonEmpty(clone(as[:n]), as[n])
	}
}

// MatchW is Match with independent result types, returned as an Either:
// Left for the empty branch, Right for the non-empty one.
func MatchW[A, B, C any](onEmpty func() B, onNonEmpty func([]A) C) func([]A) either.Either[B, C] {
	return Match(
		func() either.Either[B, C] { return either.Left[C](onEmpty()) },
		func(as []A) either.Either[B, C] { return either.Right[B](onNonEmpty(as)) },
	)
}

// MatchLeftW is MatchLeft with independent result types.
func MatchLeftW[A, B, C any](onEmpty func() B, onNonEmpty func(head A, tail []A) C) func([]A) either.Either[B, C] {
	return MatchLeft(
		func() either.Either[B, C] { return either.Left[C](onEmpty()) },
		func(head A, tail []A) either.Either[B, C] { return either.Right[B](onNonEmpty(head, tail)) },
	)
}

// MatchRightW is MatchRight with independent result types.
func MatchRightW[A, B, C any](onEmpty func() B, onNonEmpty func(prefix []A, last A) C) func([]A) either.Either[B, C] {
	return MatchRight(
		func() either.Either[B, C] { return either.Left[C](onEmpty()) },
		func(prefix []A, last A) either.Either[B, C] { return either.Right[B](onNonEmpty(prefix, last)) },
	)
}

// IsEmpty reports whether as has no elements.
func IsEmpty[A any](as []A) bool {
	return len(as) == 0
}

// IsNonEmpty reports whether as has at least one element.
func IsNonEmpty[A any](as []A) bool {
	return len(as) > 0
}

// Size returns the number of elements.
func Size[A any](as []A) int {
	return len(as)
}

func clone[A any](as []A) []A {
	out := make([]A, len(as))
	copy(out, as)
	return out
}
