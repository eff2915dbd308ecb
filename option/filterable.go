package option

import (
	"github.com/authcorp/libs/go/fp/either"
	"github.com/authcorp/libs/go/fp/separated"
)

// Filter keeps a Some only when its value satisfies the predicate.
func Filter[A any](predicate func(A) bool) func(Option[A]) Option[A] {
	return func(o Option[A]) Option[A] {
		if o.isSome && predicate(o.value) {
			return o
		}
		return None[A]()
	}
}

// FilterRefinement narrows the element type, dropping values that do not refine.
func FilterRefinement[A, B any](refine func(A) (B, bool)) func(Option[A]) Option[B] {
	return Chain(FromRefinement(refine))
}

// FilterMap maps and filters in one step.
func FilterMap[A, B any](f func(A) Option[B]) func(Option[A]) Option[B] {
	return Chain(f)
}

// Partition splits o by a predicate. Right holds the value when the predicate
// holds, Left when it does not; a None input yields None on both sides.
func Partition[A any](predicate func(A) bool) func(Option[A]) separated.Separated[Option[A], Option[A]] {
	return func(o Option[A]) separated.Separated[Option[A], Option[A]] {
		if !o.isSome {
			return separated.Make(None[A](), None[A]())
		}
		if predicate(o.value) {
			return separated.Make(None[A](), o)
		}
		return separated.Make(o, None[A]())
	}
}

// PartitionMap splits o with a function returning an Either.
func PartitionMap[A, E, B any](f func(A) either.Either[E, B]) func(Option[A]) separated.Separated[Option[E], Option[B]] {
	return func(o Option[A]) separated.Separated[Option[E], Option[B]] {
		return Separate(Map(f)(o))
	}
}

// Compact flattens an Option of Option.
func Compact[A any](o Option[Option[A]]) Option[A] {
	return Flatten(o)
}

// Separate splits an Option of Either into its left and right parts.
func Separate[E, A any](o Option[either.Either[E, A]]) separated.Separated[Option[E], Option[A]] {
	if !o.isSome {
		return separated.Make(None[E](), None[A]())
	}
	return separated.Make(GetLeft(o.value), GetRight(o.value))
}
