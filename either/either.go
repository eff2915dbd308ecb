// Package either provides Either, a value holding one of two possible types.
// By convention Left carries a failure and Right a success.
package either

import "fmt"

// Either represents a value of one of two possible types.
// The zero value is a Left holding the zero E.
type Either[E, A any] struct {
	left    E
	right   A
	isRight bool
}

// Left creates an Either with a left value.
func Left[A, E any](value E) Either[E, A] {
	return Either[E, A]{left: value}
}

// Right creates an Either with a right value.
func Right[E, A any](value A) Either[E, A] {
	return Either[E, A]{right: value, isRight: true}
}

// Of is an alias of Right.
func Of[E, A any](value A) Either[E, A] {
	return Right[E](value)
}

// IsLeft returns true if Either contains a left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if Either contains a right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// Unpack returns both slots and whether the right one is set.
func (e Either[E, A]) Unpack() (E, A, bool) {
	return e.left, e.right, e.isRight
}

// LeftOr returns the left value or a default.
func (e Either[E, A]) LeftOr(defaultValue E) E {
	if !e.isRight {
		return e.left
	}
	return defaultValue
}

// RightOr returns the right value or a default.
func (e Either[E, A]) RightOr(defaultValue A) A {
	if e.isRight {
		return e.right
	}
	return defaultValue
}

// String implements fmt.Stringer.
func (e Either[E, A]) String() string {
	if e.isRight {
		return fmt.Sprintf("right(%v)", e.right)
	}
	return fmt.Sprintf("left(%v)", e.left)
}

// IsLeft reports whether e holds a left value.
func IsLeft[E, A any](e Either[E, A]) bool {
	return !e.isRight
}

// IsRight reports whether e holds a right value.
func IsRight[E, A any](e Either[E, A]) bool {
	return e.isRight
}

// Match eliminates an Either with one function per branch.
func Match[E, A, B any](onLeft func(E) B, onRight func(A) B) func(Either[E, A]) B {
	return func(e Either[E, A]) B {
		if e.isRight {
			return onRight(e.right)
		}
		return onLeft(e.left)
	}
}

// GetOrElse returns the right value or computes one from the left value.
func GetOrElse[E, A any](onLeft func(E) A) func(Either[E, A]) A {
	return func(e Either[E, A]) A {
		if e.isRight {
			return e.right
		}
		return onLeft(e.left)
	}
}

// FromPredicate returns Right(a) when the predicate holds, else Left(onFalse(a)).
func FromPredicate[E, A any](predicate func(A) bool, onFalse func(A) E) func(A) Either[E, A] {
	return func(a A) Either[E, A] {
		if predicate(a) {
			return Right[E](a)
		}
		return Left[A](onFalse(a))
	}
}

// Swap exchanges left and right values.
func Swap[E, A any](e Either[E, A]) Either[A, E] {
	if e.isRight {
		return Left[E](e.right)
	}
	return Right[A](e.left)
}

// Map applies a function to the right value.
func Map[E, A, B any](f func(A) B) func(Either[E, A]) Either[E, B] {
	return func(e Either[E, A]) Either[E, B] {
		if e.isRight {
			return Right[E](f(e.right))
		}
		return Left[B](e.left)
	}
}

// MapLeft applies a function to the left value.
func MapLeft[A, E, F any](f func(E) F) func(Either[E, A]) Either[F, A] {
	return func(e Either[E, A]) Either[F, A] {
		if e.isRight {
			return Right[F](e.right)
		}
		return Left[A](f(e.left))
	}
}

// Bimap maps both branches.
func Bimap[E, F, A, B any](f func(E) F, g func(A) B) func(Either[E, A]) Either[F, B] {
	return func(e Either[E, A]) Either[F, B] {
		if e.isRight {
			return Right[F](g(e.right))
		}
		return Left[B](f(e.left))
	}
}

// Chain applies a function that returns an Either.
func Chain[E, A, B any](f func(A) Either[E, B]) func(Either[E, A]) Either[E, B] {
	return func(e Either[E, A]) Either[E, B] {
		if e.isRight {
			return f(e.right)
		}
		return Left[B](e.left)
	}
}

// Flatten removes one level of nesting.
func Flatten[E, A any](mma Either[E, Either[E, A]]) Either[E, A] {
	if mma.isRight {
		return mma.right
	}
	return Left[A](mma.left)
}

// Ap applies a contained function to a contained value. The first Left wins,
// checking the function first.
func Ap[B, E, A any](fa Either[E, A]) func(Either[E, func(A) B]) Either[E, B] {
	return func(fab Either[E, func(A) B]) Either[E, B] {
		if !fab.isRight {
			return Left[B](fab.left)
		}
		if !fa.isRight {
			return Left[B](fa.left)
		}
		return Right[E](fab.right(fa.right))
	}
}

// Alt returns e when it is a Right, otherwise the lazily computed fallback.
func Alt[E, A any](that func() Either[E, A]) func(Either[E, A]) Either[E, A] {
	return func(e Either[E, A]) Either[E, A] {
		if e.isRight {
			return e
		}
		return that()
	}
}

// Exists reports whether e is a Right satisfying the predicate.
func Exists[E, A any](predicate func(A) bool) func(Either[E, A]) bool {
	return func(e Either[E, A]) bool {
		return e.isRight && predicate(e.right)
	}
}
