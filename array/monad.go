package array

import (
	"github.com/authcorp/libs/go/fp/either"
	"github.com/authcorp/libs/go/fp/option"
	"github.com/authcorp/libs/go/fp/separated"
	"github.com/authcorp/libs/go/fp/typeclass"
)

// Map applies f to every element.
func Map[A, B any](f func(A) B) func([]A) []B {
	return MapWithIndex(func(_ int, a A) B { return f(a) })
}

// MapWithIndex applies f to every element and its index.
func MapWithIndex[A, B any](f func(int, A) B) func([]A) []B {
	return func(as []A) []B {
		out := make([]B, len(as))
		for i, a := range as {
			out[i] = f(i, a)
		}
		return out
	}
}

// Ap applies every function of the receiving slice to every element of fa.
func Ap[B, A any](fa []A) func([]func(A) B) []B {
	return Chain(func(f func(A) B) []B {
		return Map(f)(fa)
	})
}

// Flap applies every function of the slice to a.
func Flap[B, A any](a A) func([]func(A) B) []B {
	return Map(func(f func(A) B) B { return f(a) })
}

// ApFirst pairs every element with every element of second and keeps the
// first component: each element is repeated len(second) times.
func ApFirst[A, B any](second []B) func([]A) []A {
	return Chain(func(a A) []A {
		return Map(func(B) A { return a })(second)
	})
}

// ApSecond pairs every element with every element of second and keeps the
// second component.
func ApSecond[A, B any](second []B) func([]A) []B {
	return Chain(func(A) []B { return second })
}

// Chain maps every element to a slice and concatenates the results.
func Chain[A, B any](f func(A) []B) func([]A) []B {
	return ChainWithIndex(func(_ int, a A) []B { return f(a) })
}

// ChainWithIndex is Chain with the element index.
func ChainWithIndex[A, B any](f func(int, A) []B) func([]A) []B {
	return func(as []A) []B {
		out := Zero[B]()
		for i, a := range as {
			out = append(out, f(i, a)...)
		}
		return out
	}
}

// ChainFirst runs f for every element and keeps the element once per
// result of f.
func ChainFirst[A, B any](f func(A) []B) func([]A) []A {
	return Chain(func(a A) []A {
		return Map(func(B) A { return a })(f(a))
	})
}

// Concat appends second to the slice.
func Concat[A any](second []A) func([]A) []A {
	return Alt(func() []A { return second })
}

// Flatten concatenates a slice of slices.
func Flatten[A any](mma [][]A) []A {
	return Chain(func(as []A) []A { return as })(mma)
}

// Alt concatenates the slice produced by that.
func Alt[A any](that func() []A) func([]A) []A {
	return func(as []A) []A {
		rest := that()
		out := make([]A, 0, len(as)+len(rest))
		out = append(out, as...)
		return append(out, rest...)
	}
}

// Extend applies f to every suffix of the slice.
func Extend[A, B any](f func([]A) B) func([]A) []B {
	return func(as []A) []B {
		return MapWithIndex(func(i int, _ A) B { return f(clone(as[i:])) })(as)
	}
}

// Duplicate returns every suffix of the slice.
func Duplicate[A any](as []A) [][]A {
	return Extend(func(suffix []A) []A { return suffix })(as)
}

// Filter keeps the elements that satisfy predicate.
func Filter[A any](predicate func(A) bool) func([]A) []A {
	return FilterWithIndex(func(_ int, a A) bool { return predicate(a) })
}

// FilterWithIndex keeps the elements that satisfy predicate with their index.
func FilterWithIndex[A any](predicate func(int, A) bool) func([]A) []A {
	return func(as []A) []A {
		out := make([]A, 0, len(as))
		for i, a := range as {
			if predicate(i, a) {
				out = append(out, a)
			}
		}
		return out
	}
}

// FilterMap maps every element and keeps the Somes.
func FilterMap[A, B any](f func(A) option.Option[B]) func([]A) []B {
	return FilterMapWithIndex(func(_ int, a A) option.Option[B] { return f(a) })
}

// FilterMapWithIndex is FilterMap with the element index.
func FilterMapWithIndex[A, B any](f func(int, A) option.Option[B]) func([]A) []B {
	return func(as []A) []B {
		out := make([]B, 0, len(as))
		for i, a := range as {
			if b, ok := f(i, a).Unpack(); ok {
				out = append(out, b)
			}
		}
		return out
	}
}

// Compact keeps the values of the Some elements.
func Compact[A any](as []option.Option[A]) []A {
	return FilterMap(func(o option.Option[A]) option.Option[A] { return o })(as)
}

// Separate splits Eithers into their left and right values.
func Separate[E, A any](es []either.Either[E, A]) separated.Separated[[]E, []A] {
	return PartitionMap(func(e either.Either[E, A]) either.Either[E, A] { return e })(es)
}

// Partition splits the slice by predicate: Right holds the elements that
// satisfy it, Left the others.
func Partition[A any](predicate func(A) bool) func([]A) separated.Separated[[]A, []A] {
	return PartitionWithIndex(func(_ int, a A) bool { return predicate(a) })
}

// PartitionWithIndex is Partition with the element index.
func PartitionWithIndex[A any](predicate func(int, A) bool) func([]A) separated.Separated[[]A, []A] {
	return func(as []A) separated.Separated[[]A, []A] {
		left, right := Zero[A](), Zero[A]()
		for i, a := range as {
			if predicate(i, a) {
				right = append(right, a)
			} else {
				left = append(left, a)
			}
		}
		return separated.Make(left, right)
	}
}

// PartitionMap maps every element to an Either and splits the results.
func PartitionMap[A, E, B any](f func(A) either.Either[E, B]) func([]A) separated.Separated[[]E, []B] {
	return PartitionMapWithIndex(func(_ int, a A) either.Either[E, B] { return f(a) })
}

// PartitionMapWithIndex is PartitionMap with the element index.
func PartitionMapWithIndex[A, E, B any](f func(int, A) either.Either[E, B]) func([]A) separated.Separated[[]E, []B] {
	return func(as []A) separated.Separated[[]E, []B] {
		left, right := Zero[E](), Zero[B]()
		for i, a := range as {
			e, b, isRight := f(i, a).Unpack()
			if isRight {
				right = append(right, b)
			} else {
				left = append(left, e)
			}
		}
		return separated.Make(left, right)
	}
}

// Reduce folds the slice from the left.
func Reduce[A, B any](seed B, f func(B, A) B) func([]A) B {
	return ReduceWithIndex(seed, func(_ int, b B, a A) B { return f(b, a) })
}

// ReduceWithIndex is Reduce with the element index.
func ReduceWithIndex[A, B any](seed B, f func(int, B, A) B) func([]A) B {
	return func(as []A) B {
		acc := seed
		for i, a := range as {
			acc = f(i, acc, a)
		}
		return acc
	}
}

// ReduceRight folds the slice from the right.
func ReduceRight[A, B any](seed B, f func(A, B) B) func([]A) B {
	return ReduceRightWithIndex(seed, func(_ int, a A, b B) B { return f(a, b) })
}

// ReduceRightWithIndex is ReduceRight with the element index.
func ReduceRightWithIndex[A, B any](seed B, f func(int, A, B) B) func([]A) B {
	return func(as []A) B {
		acc := seed
		for i := len(as) - 1; i >= 0; i-- {
			acc = f(i, as[i], acc)
		}
		return acc
	}
}

// FoldMap maps every element into m and combines the results.
func FoldMap[A, M any](m typeclass.Monoid[M]) func(func(A) M) func([]A) M {
	return func(f func(A) M) func([]A) M {
		return FoldMapWithIndex[A](m)(func(_ int, a A) M { return f(a) })
	}
}

// FoldMapWithIndex is FoldMap with the element index.
func FoldMapWithIndex[A, M any](m typeclass.Monoid[M]) func(func(int, A) M) func([]A) M {
	return func(f func(int, A) M) func([]A) M {
		return ReduceWithIndex(m.Empty(), func(i int, acc M, a A) M { return m.Concat(acc, f(i, a)) })
	}
}
