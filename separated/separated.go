// Package separated holds the result of splitting a container in two, as
// produced by partition and separate operations.
package separated

import "fmt"

// Separated pairs the rejected (Left) and accepted (Right) halves of a split.
type Separated[L, R any] struct {
	Left  L
	Right R
}

// Make creates a Separated.
func Make[L, R any](left L, right R) Separated[L, R] {
	return Separated[L, R]{Left: left, Right: right}
}

// Unpack returns both halves.
func (s Separated[L, R]) Unpack() (L, R) {
	return s.Left, s.Right
}

// String implements fmt.Stringer.
func (s Separated[L, R]) String() string {
	return fmt.Sprintf("separated(%v, %v)", s.Left, s.Right)
}

// Map applies a function to the right half.
func Map[L, A, B any](f func(A) B) func(Separated[L, A]) Separated[L, B] {
	return func(s Separated[L, A]) Separated[L, B] {
		return Separated[L, B]{Left: s.Left, Right: f(s.Right)}
	}
}

// MapLeft applies a function to the left half.
func MapLeft[A, L, M any](f func(L) M) func(Separated[L, A]) Separated[M, A] {
	return func(s Separated[L, A]) Separated[M, A] {
		return Separated[M, A]{Left: f(s.Left), Right: s.Right}
	}
}

// Bimap applies one function per half.
func Bimap[L, M, A, B any](f func(L) M, g func(A) B) func(Separated[L, A]) Separated[M, B] {
	return func(s Separated[L, A]) Separated[M, B] {
		return Separated[M, B]{Left: f(s.Left), Right: g(s.Right)}
	}
}
