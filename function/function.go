// Package function provides the plumbing used by every other package:
// left-to-right application (Pipe), composition (Flow) and a handful of
// small combinators.
package function

// Lazy is a deferred computation of a value.
type Lazy[A any] = func() A

// Predicate tests a value.
type Predicate[A any] = func(A) bool

// Endomorphism maps a type onto itself.
type Endomorphism[A any] = func(A) A

// Identity returns its input unchanged.
func Identity[A any](a A) A {
	return a
}

// Constant returns a thunk that always yields the given value.
func Constant[A any](a A) Lazy[A] {
	return func() A {
		return a
	}
}

// Constant1 returns a function that ignores its argument and returns the given value.
func Constant1[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Not negates a predicate.
func Not[A any](predicate Predicate[A]) Predicate[A] {
	return func(a A) bool {
		return !predicate(a)
	}
}

// Compose creates a function that applies g after f.
func Compose[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Flip swaps the arguments of a two-argument function.
func Flip[A, B, C any](fn func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return fn(a, b)
	}
}

// Curry converts a two-argument function to curried form.
func Curry[A, B, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Uncurry converts a curried function to two-argument form.
func Uncurry[A, B, C any](fn func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return fn(a)(b)
	}
}

// Apply returns a function that feeds a to its argument.
func Apply[A, B any](a A) func(func(A) B) B {
	return func(f func(A) B) B {
		return f(a)
	}
}

// Chain composes endomorphisms left-to-right.
func Chain[A any](fns ...Endomorphism[A]) Endomorphism[A] {
	return func(value A) A {
		result := value
		for _, fn := range fns {
			result = fn(result)
		}
		return result
	}
}
