package array

import (
	"slices"

	"github.com/authcorp/libs/go/fp/either"
	"github.com/authcorp/libs/go/fp/tuple"
	"github.com/authcorp/libs/go/fp/typeclass"
)

// Prepend adds a to the front.
func Prepend[A any](a A) func([]A) []A {
	return func(as []A) []A {
		out := make([]A, 0, len(as)+1)
		out = append(out, a)
		return append(out, as...)
	}
}

// Append adds a to the back.
func Append[A any](a A) func([]A) []A {
	return func(as []A) []A {
		out := make([]A, 0, len(as)+1)
		out = append(out, as...)
		return append(out, a)
	}
}

// Reverse returns the elements in reverse order.
func Reverse[A any](as []A) []A {
	out := clone(as)
	slices.Reverse(out)
	return out
}

// Rotate shifts the elements n positions to the right; a negative n rotates
// to the left.
func Rotate[A any](n int) func([]A) []A {
	return func(as []A) []A {
		size := len(as)
		if size == 0 {
			return Zero[A]()
		}
		shift := ((n % size) + size) % size
		out := make([]A, 0, size)
		out = append(out, as[size-shift:]...)
		return append(out, as[:size-shift]...)
	}
}

// Intersperse places sep between every pair of elements.
func Intersperse[A any](sep A) func([]A) []A {
	return func(as []A) []A {
		if len(as) == 0 {
			return Zero[A]()
		}
		out := make([]A, 0, 2*len(as)-1)
		for i, a := range as {
			if i > 0 {
				out = append(out, sep)
			}
			out = append(out, a)
		}
		return out
	}
}

// PrependAll places sep before every element.
func PrependAll[A any](sep A) func([]A) []A {
	return func(as []A) []A {
		out := make([]A, 0, 2*len(as))
		for _, a := range as {
			out = append(out, sep, a)
		}
		return out
	}
}

// Sort returns the elements ordered by o. The sort is stable.
func Sort[A any](o typeclass.Ord[A]) func([]A) []A {
	return func(as []A) []A {
		out := clone(as)
		slices.SortStableFunc(out, o.Compare)
		return out
	}
}

// SortBy sorts by the first Ord, breaking ties with the following ones.
func SortBy[A any](ords ...typeclass.Ord[A]) func([]A) []A {
	return Sort(typeclass.FromCompare(func(x, y A) int {
		for _, o := range ords {
			if c := o.Compare(x, y); c != 0 {
				return c
			}
		}
		return 0
	}))
}

// Uniq removes duplicates under e, keeping first occurrences.
func Uniq[A any](e typeclass.Eq[A]) func([]A) []A {
	return func(as []A) []A {
		out := make([]A, 0, len(as))
		for _, a := range as {
			if !Elem(e)(a)(out) {
				out = append(out, a)
			}
		}
		return out
	}
}

// Union keeps the distinct elements of both slices, in order of first
// occurrence: the slice's own elements first, then those of that.
func Union[A any](e typeclass.Eq[A]) func(that []A) func([]A) []A {
	return func(that []A) func([]A) []A {
		return func(as []A) []A {
			return Uniq(e)(Concat(that)(as))
		}
	}
}

// Intersection keeps the elements that also appear in that.
func Intersection[A any](e typeclass.Eq[A]) func(that []A) func([]A) []A {
	return func(that []A) func([]A) []A {
		return Filter(func(a A) bool { return Elem(e)(a)(that) })
	}
}

// Difference keeps the elements that do not appear in that.
func Difference[A any](e typeclass.Eq[A]) func(that []A) func([]A) []A {
	return func(that []A) func([]A) []A {
		return Filter(func(a A) bool { return !Elem(e)(a)(that) })
	}
}

// Zip pairs elements by index, truncating to the shorter input.
func Zip[A, B any](bs []B) func([]A) []tuple.Pair[A, B] {
	return func(as []A) []tuple.Pair[A, B] {
		return ZipWith(as, bs, tuple.Make[A, B])
	}
}

// ZipWith combines elements by index with f, truncating to the shorter input.
func ZipWith[A, B, C any](as []A, bs []B, f func(A, B) C) []C {
	n := min(len(as), len(bs))
	out := make([]C, n)
	for i := range n {
		out[i] = f(as[i], bs[i])
	}
	return out
}

// Unzip splits a slice of pairs.
func Unzip[A, B any](ps []tuple.Pair[A, B]) tuple.Pair[[]A, []B] {
	as, bs := make([]A, len(ps)), make([]B, len(ps))
	for i, p := range ps {
		as[i], bs[i] = p.Unpack()
	}
	return tuple.Make(as, bs)
}

// ScanLeft returns every intermediate result of a left fold, seed included.
func ScanLeft[A, B any](seed B, f func(B, A) B) func([]A) []B {
	return func(as []A) []B {
		out := make([]B, 0, len(as)+1)
		out = append(out, seed)
		for _, a := range as {
			seed = f(seed, a)
			out = append(out, seed)
		}
		return out
	}
}

// ScanRight returns every intermediate result of a right fold, seed last.
func ScanRight[A, B any](seed B, f func(A, B) B) func([]A) []B {
	return func(as []A) []B {
		out := make([]B, len(as)+1)
		out[len(as)] = seed
		for i := len(as) - 1; i >= 0; i-- {
			out[i] = f(as[i], out[i+1])
		}
		return out
	}
}

// Rights keeps the values of the Right elements.
func Rights[E, A any](es []either.Either[E, A]) []A {
	return Separate(es).Right
}

// Lefts keeps the values of the Left elements.
func Lefts[E, A any](es []either.Either[E, A]) []E {
	return Separate(es).Left
}

// Elem reports whether a occurs in the slice under e.
func Elem[A any](e typeclass.Eq[A]) func(a A) func([]A) bool {
	return func(a A) func([]A) bool {
		return Exists(func(x A) bool { return e.Equals(a, x) })
	}
}

// Every reports whether every element satisfies predicate.
func Every[A any](predicate func(A) bool) func([]A) bool {
	return func(as []A) bool {
		for _, a := range as {
			if !predicate(a) {
				return false
			}
		}
		return true
	}
}

// Exists reports whether some element satisfies predicate.
func Exists[A any](predicate func(A) bool) func([]A) bool {
	return func(as []A) bool {
		for _, a := range as {
			if predicate(a) {
				return true
			}
		}
		return false
	}
}
