// Package nonempty provides NonEmptyArray, a slice that always holds at
// least one element.
package nonempty

import (
	"fmt"

	"github.com/authcorp/libs/go/fp/array"
	"github.com/authcorp/libs/go/fp/option"
	"github.com/authcorp/libs/go/fp/typeclass"
)

// NonEmptyArray is a sequence with at least one element. The zero value holds
// a single zero element.
type NonEmptyArray[A any] struct {
	head A
	tail []A
}

// Of creates a NonEmptyArray from a head and any number of further elements.
func Of[A any](head A, tail ...A) NonEmptyArray[A] {
	return NonEmptyArray[A]{head: head, tail: append([]A(nil), tail...)}
}

// FromSlice returns None for an empty slice.
func FromSlice[A any](as []A) option.Option[NonEmptyArray[A]] {
	if len(as) == 0 {
		return option.None[NonEmptyArray[A]]()
	}
	return option.Some(Of(as[0], as[1:]...))
}

// ToSlice returns the elements as a fresh slice.
func ToSlice[A any](nea NonEmptyArray[A]) []A {
	out := make([]A, 0, 1+len(nea.tail))
	out = append(out, nea.head)
	return append(out, nea.tail...)
}

// Size returns the number of elements, always at least 1.
func (nea NonEmptyArray[A]) Size() int {
	return 1 + len(nea.tail)
}

func (nea NonEmptyArray[A]) String() string {
	return fmt.Sprint(ToSlice(nea))
}

// Head returns the first element.
func Head[A any](nea NonEmptyArray[A]) A {
	return nea.head
}

// Last returns the last element.
func Last[A any](nea NonEmptyArray[A]) A {
	if len(nea.tail) == 0 {
		return nea.head
	}
	return nea.tail[len(nea.tail)-1]
}

// Tail returns every element but the first.
func Tail[A any](nea NonEmptyArray[A]) []A {
	return array.DropLeft[A](1)(ToSlice(nea))
}

// Init returns every element but the last.
func Init[A any](nea NonEmptyArray[A]) []A {
	return array.DropRight[A](1)(ToSlice(nea))
}

// Map applies f to every element.
func Map[A, B any](f func(A) B) func(NonEmptyArray[A]) NonEmptyArray[B] {
	return func(nea NonEmptyArray[A]) NonEmptyArray[B] {
		return Of(f(nea.head), array.Map(f)(nea.tail)...)
	}
}

// Chain maps every element to a NonEmptyArray and concatenates the results.
func Chain[A, B any](f func(A) NonEmptyArray[B]) func(NonEmptyArray[A]) NonEmptyArray[B] {
	return func(nea NonEmptyArray[A]) NonEmptyArray[B] {
		all := append(ToSlice(f(nea.head)), array.Chain(func(a A) []B { return ToSlice(f(a)) })(nea.tail)...)
		return Of(all[0], all[1:]...)
	}
}

// Reduce folds the elements from the left.
func Reduce[A, B any](seed B, f func(B, A) B) func(NonEmptyArray[A]) B {
	return func(nea NonEmptyArray[A]) B {
		return array.Reduce(f(seed, nea.head), f)(nea.tail)
	}
}

// Concat appends the elements of second to first.
func Concat[A any](first, second NonEmptyArray[A]) NonEmptyArray[A] {
	return Of(first.head, append(append([]A(nil), first.tail...), ToSlice(second)...)...)
}

// Reverse returns the elements in reverse order.
func Reverse[A any](nea NonEmptyArray[A]) NonEmptyArray[A] {
	reversed := array.Reverse(ToSlice(nea))
	return Of(reversed[0], reversed[1:]...)
}

// Sort orders the elements with o. The sort is stable.
func Sort[A any](o typeclass.Ord[A]) func(NonEmptyArray[A]) NonEmptyArray[A] {
	return func(nea NonEmptyArray[A]) NonEmptyArray[A] {
		sorted := array.Sort(o)(ToSlice(nea))
		return Of(sorted[0], sorted[1:]...)
	}
}

// Max returns the greatest element under o.
func Max[A any](o typeclass.Ord[A]) func(NonEmptyArray[A]) A {
	return Fold(typeclass.MaxSemigroup(o))
}

// Min returns the least element under o.
func Min[A any](o typeclass.Ord[A]) func(NonEmptyArray[A]) A {
	return Fold(typeclass.MinSemigroup(o))
}

// Fold combines every element with s. No identity is needed since the array
// is never empty.
func Fold[A any](s typeclass.Semigroup[A]) func(NonEmptyArray[A]) A {
	return func(nea NonEmptyArray[A]) A {
		return array.Reduce(nea.head, s.Concat)(nea.tail)
	}
}

// Group splits as into runs of consecutive elements equal under e.
func Group[A any](e typeclass.Eq[A]) func([]A) []NonEmptyArray[A] {
	return array.Chop(func(as []A) (NonEmptyArray[A], []A) {
		run, rest := array.SpanLeft(func(a A) bool { return e.Equals(a, as[0]) })(as[1:])
		return Of(as[0], run...), rest
	})
}

// GroupBy collects the elements of as under the key computed by f, keeping
// their relative order.
func GroupBy[A any, K comparable](f func(A) K) func([]A) map[K]NonEmptyArray[A] {
	return func(as []A) map[K]NonEmptyArray[A] {
		out := make(map[K]NonEmptyArray[A])
		for _, a := range as {
			k := f(a)
			if group, ok := out[k]; ok {
				group.tail = append(group.tail, a)
				out[k] = group
			} else {
				out[k] = Of(a)
			}
		}
		return out
	}
}
