package typeclass

// Eq decides equality for values of A.
//
// Instances must be reflexive, symmetric and transitive.
type Eq[A any] interface {
	Equals(x, y A) bool
}

type eq[A any] struct {
	equals func(x, y A) bool
}

func (e eq[A]) Equals(x, y A) bool {
	return e.equals(x, y)
}

// FromEquals builds an Eq from an equality function.
func FromEquals[A any](equals func(x, y A) bool) Eq[A] {
	return eq[A]{equals: equals}
}

// EqStrict uses Go's == operator.
func EqStrict[A comparable]() Eq[A] {
	return FromEquals(func(x, y A) bool {
		return x == y
	})
}

// ContramapEq derives an Eq for B by projecting B onto A.
func ContramapEq[A, B any](f func(B) A) func(Eq[A]) Eq[B] {
	return func(e Eq[A]) Eq[B] {
		return FromEquals(func(x, y B) bool {
			return e.Equals(f(x), f(y))
		})
	}
}
