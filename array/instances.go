package array

import (
	"strings"

	"github.com/authcorp/libs/go/fp/either"
	"github.com/authcorp/libs/go/fp/option"
	"github.com/authcorp/libs/go/fp/separated"
	"github.com/authcorp/libs/go/fp/typeclass"
)

// GetEq compares slices element-wise.
func GetEq[A any](e typeclass.Eq[A]) typeclass.Eq[[]A] {
	return typeclass.FromEquals(func(xs, ys []A) bool {
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !e.Equals(xs[i], ys[i]) {
				return false
			}
		}
		return true
	})
}

// GetOrd orders slices lexicographically; a proper prefix sorts first.
func GetOrd[A any](o typeclass.Ord[A]) typeclass.Ord[[]A] {
	return typeclass.FromCompare(func(xs, ys []A) int {
		for i := range min(len(xs), len(ys)) {
			if c := o.Compare(xs[i], ys[i]); c != 0 {
				return c
			}
		}
		return len(xs) - len(ys)
	})
}

// GetSemigroup concatenates slices.
func GetSemigroup[A any]() typeclass.Semigroup[[]A] {
	return GetMonoid[A]()
}

// GetMonoid concatenates slices; the identity is the empty slice.
func GetMonoid[A any]() typeclass.Monoid[[]A] {
	return typeclass.MakeMonoid(func(xs, ys []A) []A {
		return Alt(func() []A { return ys })(xs)
	}, Zero[A]())
}

// GetUnionSemigroup combines slices with Union.
func GetUnionSemigroup[A any](e typeclass.Eq[A]) typeclass.Semigroup[[]A] {
	return GetUnionMonoid(e)
}

// GetUnionMonoid combines slices with Union; the identity is the empty slice.
func GetUnionMonoid[A any](e typeclass.Eq[A]) typeclass.Monoid[[]A] {
	union := Union(e)
	return typeclass.MakeMonoid(func(xs, ys []A) []A {
		return union(ys)(xs)
	}, Zero[A]())
}

// GetIntersectionSemigroup combines slices with Intersection.
func GetIntersectionSemigroup[A any](e typeclass.Eq[A]) typeclass.Semigroup[[]A] {
	intersection := Intersection(e)
	return typeclass.MakeSemigroup(func(xs, ys []A) []A {
		return intersection(ys)(xs)
	})
}

// GetDifferenceMagma combines slices with Difference. It is not associative.
func GetDifferenceMagma[A any](e typeclass.Eq[A]) typeclass.Magma[[]A] {
	difference := Difference(e)
	return typeclass.MakeMagma(func(xs, ys []A) []A {
		return difference(ys)(xs)
	})
}

// GetShow renders a slice as "[a, b, c]".
func GetShow[A any](s typeclass.Show[A]) typeclass.Show[[]A] {
	return typeclass.FromShow(func(as []A) string {
		return "[" + strings.Join(Map(s.Show)(as), ", ") + "]"
	})
}

type instance[A, B any] struct{}

func (instance[A, B]) Of(b B) []B {
	return Of(b)
}

func (instance[A, B]) Map(f func(A) B) func([]A) []B {
	return Map(f)
}

func (instance[A, B]) Ap(fa []A) func([]func(A) B) []B {
	return Ap[B](fa)
}

func (instance[A, B]) Chain(f func(A) []B) func([]A) []B {
	return Chain(f)
}

func (instance[A, B]) Reduce(b B, f func(B, A) B) func([]A) B {
	return Reduce(b, f)
}

func (instance[A, B]) ReduceRight(b B, f func(A, B) B) func([]A) B {
	return ReduceRight(b, f)
}

func (instance[A, B]) FoldMap(m typeclass.Monoid[B]) func(func(A) B) func([]A) B {
	return FoldMap[A](m)
}

func (instance[A, B]) Alt(that func() []A) func([]A) []A {
	return Alt(that)
}

func (instance[A, B]) Zero() []A {
	return Zero[A]()
}

func (instance[A, B]) Extend(f func([]A) B) func([]A) []B {
	return Extend(f)
}

func (instance[A, B]) Filter(predicate func(A) bool) func([]A) []A {
	return Filter(predicate)
}

func (instance[A, B]) FilterMap(f func(A) (B, bool)) func([]A) []B {
	return FilterMap(option.FromRefinement(f))
}

func (instance[A, B]) Partition(predicate func(A) bool) func([]A) separated.Separated[[]A, []A] {
	return Partition(predicate)
}

type compactable[E, A any] struct{}

func (compactable[E, A]) Compact(fa []option.Option[A]) []A {
	return Compact(fa)
}

func (compactable[E, A]) Separate(fa []either.Either[E, A]) separated.Separated[[]E, []A] {
	return Separate(fa)
}

// Functor returns the Functor instance of slices.
func Functor[A, B any]() typeclass.Functor[A, B, []A, []B] {
	return instance[A, B]{}
}

// Pointed returns the Pointed instance of slices.
func Pointed[A any]() typeclass.Pointed[A, []A] {
	return instance[A, A]{}
}

// Apply returns the Apply instance of slices.
func Apply[A, B any]() typeclass.Apply[A, B, []A, []B, []func(A) B] {
	return instance[A, B]{}
}

// Applicative returns the Applicative instance of slices.
func Applicative[A, B any]() typeclass.Applicative[A, B, []A, []B, []func(A) B] {
	return instance[A, B]{}
}

// ChainInstance returns the Chain instance of slices.
func ChainInstance[A, B any]() typeclass.Chain[A, B, []A, []B, []func(A) B] {
	return instance[A, B]{}
}

// Monad returns the Monad instance of slices.
func Monad[A, B any]() typeclass.Monad[A, B, []A, []B, []func(A) B] {
	return instance[A, B]{}
}

// Foldable returns the Foldable instance of slices.
func Foldable[A, B any]() typeclass.Foldable[A, B, []A] {
	return instance[A, B]{}
}

// AltInstance returns the Alt instance of slices.
func AltInstance[A any]() typeclass.Alt[[]A] {
	return instance[A, A]{}
}

// Alternative returns the Alternative instance of slices.
func Alternative[A, B any]() typeclass.Alternative[A, B, []A, []B, []func(A) B] {
	return instance[A, B]{}
}

// ExtendInstance returns the Extend instance of slices.
func ExtendInstance[A, B any]() typeclass.Extend[A, B, []A, []B] {
	return instance[A, B]{}
}

// Filterable returns the Filterable instance of slices.
func Filterable[A, B any]() typeclass.Filterable[A, B, []A, []B] {
	return instance[A, B]{}
}

// Compactable returns the Compactable instance of slices.
func Compactable[E, A any]() typeclass.Compactable[[]A, []option.Option[A], []E, []either.Either[E, A]] {
	return compactable[E, A]{}
}
