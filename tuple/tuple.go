// Package tuple provides Pair, the product of two values used by zipping and
// unfolding operations.
package tuple

import "fmt"

// Pair holds two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Make creates a Pair.
func Make[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns the pair's values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap returns a Pair with the elements exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// MapFirst applies f to the first element.
func MapFirst[B, A, C any](f func(A) C) func(Pair[A, B]) Pair[C, B] {
	return func(p Pair[A, B]) Pair[C, B] {
		return Pair[C, B]{First: f(p.First), Second: p.Second}
	}
}

// MapSecond applies f to the second element.
func MapSecond[A, B, C any](f func(B) C) func(Pair[A, B]) Pair[A, C] {
	return func(p Pair[A, B]) Pair[A, C] {
		return Pair[A, C]{First: p.First, Second: f(p.Second)}
	}
}

// Bimap applies f to the first element and g to the second.
func Bimap[A, B, C, D any](f func(A) C, g func(B) D) func(Pair[A, B]) Pair[C, D] {
	return func(p Pair[A, B]) Pair[C, D] {
		return Pair[C, D]{First: f(p.First), Second: g(p.Second)}
	}
}
