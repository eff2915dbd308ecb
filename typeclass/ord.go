package typeclass

import "cmp"

// Ord is a total order on A. Compare returns -1, 0 or 1.
type Ord[A any] interface {
	Eq[A]
	Compare(x, y A) int
}

type ord[A any] struct {
	compare func(x, y A) int
}

func (o ord[A]) Equals(x, y A) bool {
	return o.compare(x, y) == 0
}

func (o ord[A]) Compare(x, y A) int {
	return sign(o.compare(x, y))
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// FromCompare builds an Ord from a comparison function. Any negative result
// means "less", any positive result means "greater".
func FromCompare[A any](compare func(x, y A) int) Ord[A] {
	return ord[A]{compare: compare}
}

// OrdOrdered orders values with cmp.Compare.
func OrdOrdered[A cmp.Ordered]() Ord[A] {
	return FromCompare(cmp.Compare[A])
}

// ContramapOrd derives an Ord for B by projecting B onto A.
func ContramapOrd[A, B any](f func(B) A) func(Ord[A]) Ord[B] {
	return func(o Ord[A]) Ord[B] {
		return FromCompare(func(x, y B) int {
			return o.Compare(f(x), f(y))
		})
	}
}

// ReverseOrd inverts an order.
func ReverseOrd[A any](o Ord[A]) Ord[A] {
	return FromCompare(func(x, y A) int {
		return o.Compare(y, x)
	})
}

// Lt reports whether x < y.
func Lt[A any](o Ord[A]) func(x, y A) bool {
	return func(x, y A) bool {
		return o.Compare(x, y) < 0
	}
}

// Gt reports whether x > y.
func Gt[A any](o Ord[A]) func(x, y A) bool {
	return func(x, y A) bool {
		return o.Compare(x, y) > 0
	}
}

// Leq reports whether x <= y.
func Leq[A any](o Ord[A]) func(x, y A) bool {
	return func(x, y A) bool {
		return o.Compare(x, y) <= 0
	}
}

// Geq reports whether x >= y.
func Geq[A any](o Ord[A]) func(x, y A) bool {
	return func(x, y A) bool {
		return o.Compare(x, y) >= 0
	}
}

// Min returns the smaller of two values, preferring x on ties.
func Min[A any](o Ord[A]) func(x, y A) A {
	return func(x, y A) A {
		if o.Compare(x, y) <= 0 {
			return x
		}
		return y
	}
}

// Max returns the larger of two values, preferring x on ties.
func Max[A any](o Ord[A]) func(x, y A) A {
	return func(x, y A) A {
		if o.Compare(x, y) >= 0 {
			return x
		}
		return y
	}
}

// Clamp limits a value to the closed interval [low, high].
func Clamp[A any](o Ord[A]) func(low, high A) func(A) A {
	minOf, maxOf := Min(o), Max(o)
	return func(low, high A) func(A) A {
		return func(a A) A {
			return minOf(maxOf(a, low), high)
		}
	}
}

// Between reports whether a lies in the closed interval [low, high].
func Between[A any](o Ord[A]) func(low, high A) func(A) bool {
	return func(low, high A) func(A) bool {
		return func(a A) bool {
			return o.Compare(a, low) >= 0 && o.Compare(a, high) <= 0
		}
	}
}
