package either

import "github.com/authcorp/libs/go/fp/typeclass"

type eitherMonad[E, A, B any] struct{}

func (eitherMonad[E, A, B]) Of(b B) Either[E, B] {
	return Right[E](b)
}

func (eitherMonad[E, A, B]) Map(f func(A) B) func(Either[E, A]) Either[E, B] {
	return Map[E](f)
}

func (eitherMonad[E, A, B]) Ap(fa Either[E, A]) func(Either[E, func(A) B]) Either[E, B] {
	return Ap[B](fa)
}

func (eitherMonad[E, A, B]) Chain(f func(A) Either[E, B]) func(Either[E, A]) Either[E, B] {
	return Chain(f)
}

// Functor returns the Functor instance of Either.
func Functor[E, A, B any]() typeclass.Functor[A, B, Either[E, A], Either[E, B]] {
	return eitherMonad[E, A, B]{}
}

// Pointed returns the Pointed instance of Either.
func Pointed[E, A any]() typeclass.Pointed[A, Either[E, A]] {
	return eitherMonad[E, A, A]{}
}

// Apply returns the Apply instance of Either.
func Apply[E, A, B any]() typeclass.Apply[A, B, Either[E, A], Either[E, B], Either[E, func(A) B]] {
	return eitherMonad[E, A, B]{}
}

// Applicative returns the Applicative instance of Either.
func Applicative[E, A, B any]() typeclass.Applicative[A, B, Either[E, A], Either[E, B], Either[E, func(A) B]] {
	return eitherMonad[E, A, B]{}
}

// ChainInstance returns the Chain instance of Either.
func ChainInstance[E, A, B any]() typeclass.Chain[A, B, Either[E, A], Either[E, B], Either[E, func(A) B]] {
	return eitherMonad[E, A, B]{}
}

// Monad returns the Monad instance of Either.
func Monad[E, A, B any]() typeclass.Monad[A, B, Either[E, A], Either[E, B], Either[E, func(A) B]] {
	return eitherMonad[E, A, B]{}
}

// GetEq compares two Eithers branch by branch.
func GetEq[E, A any](ee typeclass.Eq[E], ea typeclass.Eq[A]) typeclass.Eq[Either[E, A]] {
	return typeclass.FromEquals(func(x, y Either[E, A]) bool {
		if x.isRight != y.isRight {
			return false
		}
		if x.isRight {
			return ea.Equals(x.right, y.right)
		}
		return ee.Equals(x.left, y.left)
	})
}

// GetShow renders an Either with one Show per branch.
func GetShow[E, A any](se typeclass.Show[E], sa typeclass.Show[A]) typeclass.Show[Either[E, A]] {
	return typeclass.FromShow(func(e Either[E, A]) string {
		if e.isRight {
			return "right(" + sa.Show(e.right) + ")"
		}
		return "left(" + se.Show(e.left) + ")"
	})
}
