package option

import (
	"iter"

	"github.com/authcorp/libs/go/fp/typeclass"
)

// Reduce folds the Option from the left: seed for None, f(seed, a) for Some.
func Reduce[A, B any](seed B, f func(B, A) B) func(Option[A]) B {
	return func(o Option[A]) B {
		if o.isSome {
			return f(seed, o.value)
		}
		return seed
	}
}

// ReduceRight folds the Option from the right.
func ReduceRight[A, B any](seed B, f func(A, B) B) func(Option[A]) B {
	return func(o Option[A]) B {
		if o.isSome {
			return f(o.value, seed)
		}
		return seed
	}
}

// FoldMap maps the value into a Monoid, returning its identity for None.
func FoldMap[A, M any](m typeclass.Monoid[M]) func(func(A) M) func(Option[A]) M {
	return func(f func(A) M) func(Option[A]) M {
		return func(o Option[A]) M {
			if o.isSome {
				return f(o.value)
			}
			return m.Empty()
		}
	}
}

// Exists reports whether o is a Some whose value satisfies the predicate.
func Exists[A any](predicate func(A) bool) func(Option[A]) bool {
	return func(o Option[A]) bool {
		return o.isSome && predicate(o.value)
	}
}

// Elem reports whether o contains a value equal to a under e.
func Elem[A any](e typeclass.Eq[A]) func(a A) func(Option[A]) bool {
	return func(a A) func(Option[A]) bool {
		return func(o Option[A]) bool {
			return o.isSome && e.Equals(a, o.value)
		}
	}
}

// All returns an iterator over the Option (0 or 1 element).
func (o Option[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		if o.isSome {
			yield(o.value)
		}
	}
}

// ToSlice converts the Option to a slice of zero or one element.
func ToSlice[A any](o Option[A]) []A {
	if o.isSome {
		return []A{o.value}
	}
	return []A{}
}
