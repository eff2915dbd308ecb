package typeclass

// Magma combines two values with no law attached.
type Magma[A any] interface {
	Concat(x, y A) A
}

// Semigroup combines two values associatively.
type Semigroup[A any] interface {
	Concat(x, y A) A
}

// Monoid is a Semigroup with an identity element.
type Monoid[A any] interface {
	Semigroup[A]
	Empty() A
}

// Number covers the built-in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

type semigroup[A any] struct {
	concat func(x, y A) A
}

func (s semigroup[A]) Concat(x, y A) A {
	return s.concat(x, y)
}

type monoid[A any] struct {
	semigroup[A]
	empty A
}

func (m monoid[A]) Empty() A {
	return m.empty
}

// MakeMagma builds a Magma from a binary operation.
func MakeMagma[A any](concat func(x, y A) A) Magma[A] {
	return semigroup[A]{concat: concat}
}

// MakeSemigroup builds a Semigroup from a binary operation.
func MakeSemigroup[A any](concat func(x, y A) A) Semigroup[A] {
	return semigroup[A]{concat: concat}
}

// MakeMonoid builds a Monoid from a binary operation and its identity.
func MakeMonoid[A any](concat func(x, y A) A, empty A) Monoid[A] {
	return monoid[A]{semigroup: semigroup[A]{concat: concat}, empty: empty}
}

// FirstSemigroup keeps the left operand.
func FirstSemigroup[A any]() Semigroup[A] {
	return MakeSemigroup(func(x, _ A) A { return x })
}

// LastSemigroup keeps the right operand.
func LastSemigroup[A any]() Semigroup[A] {
	return MakeSemigroup(func(_, y A) A { return y })
}

// MinSemigroup keeps the smaller operand.
func MinSemigroup[A any](o Ord[A]) Semigroup[A] {
	return MakeSemigroup(Min(o))
}

// MaxSemigroup keeps the larger operand.
func MaxSemigroup[A any](o Ord[A]) Semigroup[A] {
	return MakeSemigroup(Max(o))
}

// ReverseSemigroup swaps the operands.
func ReverseSemigroup[A any](s Semigroup[A]) Semigroup[A] {
	return MakeSemigroup(func(x, y A) A { return s.Concat(y, x) })
}

// SumMonoid adds numbers.
func SumMonoid[A Number]() Monoid[A] {
	return MakeMonoid(func(x, y A) A { return x + y }, 0)
}

// ProductMonoid multiplies numbers.
func ProductMonoid[A Number]() Monoid[A] {
	return MakeMonoid(func(x, y A) A { return x * y }, 1)
}

// StringMonoid concatenates strings.
func StringMonoid() Monoid[string] {
	return MakeMonoid(func(x, y string) string { return x + y }, "")
}

// AllMonoid is boolean conjunction.
func AllMonoid() Monoid[bool] {
	return MakeMonoid(func(x, y bool) bool { return x && y }, true)
}

// AnyMonoid is boolean disjunction.
func AnyMonoid() Monoid[bool] {
	return MakeMonoid(func(x, y bool) bool { return x || y }, false)
}

// ConcatAll folds a slice with a Monoid, starting from its identity.
func ConcatAll[A any](m Monoid[A]) func([]A) A {
	return func(as []A) A {
		acc := m.Empty()
		for _, a := range as {
			acc = m.Concat(acc, a)
		}
		return acc
	}
}
