package option

import (
	"cmp"

	"github.com/authcorp/libs/go/fp/either"
	"github.com/authcorp/libs/go/fp/separated"
	"github.com/authcorp/libs/go/fp/typeclass"
)

// GetEq compares Options: two Nones are equal, two Somes are equal when
// their values are equal under e.
func GetEq[A any](e typeclass.Eq[A]) typeclass.Eq[Option[A]] {
	return typeclass.FromEquals(func(x, y Option[A]) bool {
		if x.isSome && y.isSome {
			return e.Equals(x.value, y.value)
		}
		return x.isSome == y.isSome
	})
}

// GetEqStrict compares Options of comparable values with ==.
func GetEqStrict[A comparable]() typeclass.Eq[Option[A]] {
	return GetEq(typeclass.EqStrict[A]())
}

// GetOrd orders Options with None below every Some; Somes compare by o.
func GetOrd[A any](o typeclass.Ord[A]) typeclass.Ord[Option[A]] {
	return typeclass.FromCompare(func(x, y Option[A]) int {
		switch {
		case x.isSome && y.isSome:
			return o.Compare(x.value, y.value)
		case x.isSome:
			return 1
		case y.isSome:
			return -1
		default:
			return 0
		}
	})
}

// GetOrdOrdered orders Options of ordered values.
func GetOrdOrdered[A cmp.Ordered]() typeclass.Ord[Option[A]] {
	return GetOrd(typeclass.OrdOrdered[A]())
}

// GetMonoid returns the monoid whose identity is None and whose concat keeps
// the left-most Some, combining the values with s when both sides are Some.
//
//	| x       | y       | concat(x, y)       |
//	| ------- | ------- | ------------------ |
//	| none    | none    | none               |
//	| some(a) | none    | some(a)            |
//	| none    | some(b) | some(b)            |
//	| some(a) | some(b) | some(concat(a, b)) |
func GetMonoid[A any](s typeclass.Semigroup[A]) typeclass.Monoid[Option[A]] {
	return typeclass.MakeMonoid(func(x, y Option[A]) Option[A] {
		switch {
		case x.isSome && y.isSome:
			return Some(s.Concat(x.value, y.value))
		case x.isSome:
			return x
		default:
			return y
		}
	}, None[A]())
}

// GetFirstMonoid keeps the left-most Some.
func GetFirstMonoid[A any]() typeclass.Monoid[Option[A]] {
	return GetMonoid(typeclass.FirstSemigroup[A]())
}

// GetLastMonoid keeps the right-most Some.
func GetLastMonoid[A any]() typeclass.Monoid[Option[A]] {
	return GetMonoid(typeclass.LastSemigroup[A]())
}

// GetApplySemigroup combines two Somes with s; any None makes the result None.
func GetApplySemigroup[A any](s typeclass.Semigroup[A]) typeclass.Semigroup[Option[A]] {
	return typeclass.MakeSemigroup(func(x, y Option[A]) Option[A] {
		if x.isSome && y.isSome {
			return Some(s.Concat(x.value, y.value))
		}
		return None[A]()
	})
}

// GetApplicativeMonoid is GetApplySemigroup with identity Some(m.Empty()).
func GetApplicativeMonoid[A any](m typeclass.Monoid[A]) typeclass.Monoid[Option[A]] {
	return typeclass.MakeMonoid(GetApplySemigroup[A](m).Concat, Some(m.Empty()))
}

// GetShow renders None as "none" and Some(a) as "some(<s.Show(a)>)".
func GetShow[A any](s typeclass.Show[A]) typeclass.Show[Option[A]] {
	return typeclass.FromShow(func(o Option[A]) string {
		if o.isSome {
			return "some(" + s.Show(o.value) + ")"
		}
		return "none"
	})
}

type instance[A, B any] struct{}

func (instance[A, B]) Of(b B) Option[B] {
	return Some(b)
}

func (instance[A, B]) Map(f func(A) B) func(Option[A]) Option[B] {
	return Map(f)
}

func (instance[A, B]) Ap(fa Option[A]) func(Option[func(A) B]) Option[B] {
	return Ap[B](fa)
}

func (instance[A, B]) Chain(f func(A) Option[B]) func(Option[A]) Option[B] {
	return Chain(f)
}

func (instance[A, B]) Reduce(b B, f func(B, A) B) func(Option[A]) B {
	return Reduce(b, f)
}

func (instance[A, B]) ReduceRight(b B, f func(A, B) B) func(Option[A]) B {
	return ReduceRight(b, f)
}

func (instance[A, B]) FoldMap(m typeclass.Monoid[B]) func(func(A) B) func(Option[A]) B {
	return FoldMap[A](m)
}

func (instance[A, B]) Alt(that func() Option[A]) func(Option[A]) Option[A] {
	return Alt(that)
}

func (instance[A, B]) Zero() Option[A] {
	return None[A]()
}

func (instance[A, B]) Extend(f func(Option[A]) B) func(Option[A]) Option[B] {
	return Extend(f)
}

func (instance[A, B]) Filter(predicate func(A) bool) func(Option[A]) Option[A] {
	return Filter(predicate)
}

func (instance[A, B]) FilterMap(f func(A) (B, bool)) func(Option[A]) Option[B] {
	return FilterRefinement(f)
}

func (instance[A, B]) Partition(predicate func(A) bool) func(Option[A]) separated.Separated[Option[A], Option[A]] {
	return Partition(predicate)
}

type compactable[E, A any] struct{}

func (compactable[E, A]) Compact(fa Option[Option[A]]) Option[A] {
	return Compact(fa)
}

func (compactable[E, A]) Separate(fa Option[either.Either[E, A]]) separated.Separated[Option[E], Option[A]] {
	return Separate(fa)
}

// Functor returns the Functor instance of Option.
func Functor[A, B any]() typeclass.Functor[A, B, Option[A], Option[B]] {
	return instance[A, B]{}
}

// Pointed returns the Pointed instance of Option.
func Pointed[A any]() typeclass.Pointed[A, Option[A]] {
	return instance[A, A]{}
}

// Apply returns the Apply instance of Option.
func Apply[A, B any]() typeclass.Apply[A, B, Option[A], Option[B], Option[func(A) B]] {
	return instance[A, B]{}
}

// Applicative returns the Applicative instance of Option.
func Applicative[A, B any]() typeclass.Applicative[A, B, Option[A], Option[B], Option[func(A) B]] {
	return instance[A, B]{}
}

// ChainInstance returns the Chain instance of Option.
func ChainInstance[A, B any]() typeclass.Chain[A, B, Option[A], Option[B], Option[func(A) B]] {
	return instance[A, B]{}
}

// Monad returns the Monad instance of Option.
func Monad[A, B any]() typeclass.Monad[A, B, Option[A], Option[B], Option[func(A) B]] {
	return instance[A, B]{}
}

// Foldable returns the Foldable instance of Option.
func Foldable[A, B any]() typeclass.Foldable[A, B, Option[A]] {
	return instance[A, B]{}
}

// AltInstance returns the Alt instance of Option.
func AltInstance[A any]() typeclass.Alt[Option[A]] {
	return instance[A, A]{}
}

// Alternative returns the Alternative instance of Option.
func Alternative[A, B any]() typeclass.Alternative[A, B, Option[A], Option[B], Option[func(A) B]] {
	return instance[A, B]{}
}

// ExtendInstance returns the Extend instance of Option.
func ExtendInstance[A, B any]() typeclass.Extend[A, B, Option[A], Option[B]] {
	return instance[A, B]{}
}

// Filterable returns the Filterable instance of Option.
func Filterable[A, B any]() typeclass.Filterable[A, B, Option[A], Option[B]] {
	return instance[A, B]{}
}

// Compactable returns the Compactable instance of Option.
func Compactable[E, A any]() typeclass.Compactable[Option[A], Option[Option[A]], Option[E], Option[either.Either[E, A]]] {
	return compactable[E, A]{}
}
