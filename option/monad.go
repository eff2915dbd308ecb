package option

// Map applies f to the value of a Some.
func Map[A, B any](f func(A) B) func(Option[A]) Option[B] {
	return func(o Option[A]) Option[B] {
		if o.isSome {
			return Some(f(o.value))
		}
		return None[B]()
	}
}

// Ap applies the function held by fab to the value held by fa.
// The result is None if either side is None.
func Ap[B, A any](fa Option[A]) func(Option[func(A) B]) Option[B] {
	return func(fab Option[func(A) B]) Option[B] {
		if fab.isSome && fa.isSome {
			return Some(fab.value(fa.value))
		}
		return None[B]()
	}
}

// Flap applies a contained function to a bare value.
func Flap[B, A any](a A) func(Option[func(A) B]) Option[B] {
	return Map(func(f func(A) B) B {
		return f(a)
	})
}

// ApFirst combines two Options keeping the value of the first.
func ApFirst[A, B any](second Option[B]) func(Option[A]) Option[A] {
	return func(first Option[A]) Option[A] {
		if first.isSome && second.isSome {
			return first
		}
		return None[A]()
	}
}

// ApSecond combines two Options keeping the value of the second.
func ApSecond[A, B any](second Option[B]) func(Option[A]) Option[B] {
	return func(first Option[A]) Option[B] {
		if first.isSome && second.isSome {
			return second
		}
		return None[B]()
	}
}

// Chain applies a function returning an Option, flattening the result.
func Chain[A, B any](f func(A) Option[B]) func(Option[A]) Option[B] {
	return func(o Option[A]) Option[B] {
		if o.isSome {
			return f(o.value)
		}
		return None[B]()
	}
}

// ChainFirst runs f for its effect on presence and keeps the original value.
func ChainFirst[A, B any](f func(A) Option[B]) func(Option[A]) Option[A] {
	return func(o Option[A]) Option[A] {
		if o.isSome && f(o.value).isSome {
			return o
		}
		return None[A]()
	}
}

// Flatten removes one level of nesting.
func Flatten[A any](mma Option[Option[A]]) Option[A] {
	if mma.isSome {
		return mma.value
	}
	return None[A]()
}

// Alt returns o when it is a Some and evaluates the fallback otherwise.
func Alt[A any](that func() Option[A]) func(Option[A]) Option[A] {
	return func(o Option[A]) Option[A] {
		if o.isSome {
			return o
		}
		return that()
	}
}

// Zero returns None.
func Zero[A any]() Option[A] {
	return None[A]()
}

// Guard returns Some(struct{}{}) when b holds.
func Guard(b bool) Option[struct{}] {
	return FromComma(struct{}{}, b)
}

// Extend applies f to the whole Option when it is a Some.
func Extend[A, B any](f func(Option[A]) B) func(Option[A]) Option[B] {
	return func(o Option[A]) Option[B] {
		if o.isSome {
			return Some(f(o))
		}
		return None[B]()
	}
}

// Duplicate wraps a Some in another Some.
func Duplicate[A any](o Option[A]) Option[Option[A]] {
	return Extend(func(x Option[A]) Option[A] { return x })(o)
}
