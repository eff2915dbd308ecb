package option

// Do starts a do-notation pipeline with an empty state.
//
//	type point struct{ X, Y int }
//
//	p := function.Pipe3(
//		option.Do(point{}),
//		option.Bind(func(x int) func(point) point {
//			return func(p point) point { p.X = x; return p }
//		}, func(point) option.Option[int] { return option.Some(1) }),
//		option.ApS(func(y int) func(point) point {
//			return func(p point) point { p.Y = y; return p }
//		}, option.Some(2)),
//		option.GetOrElse(function.Constant(point{})),
//	)
func Do[S any](empty S) Option[S] {
	return Some(empty)
}

// BindTo starts a do-notation pipeline from an existing Option.
func BindTo[S, A any](setter func(A) S) func(Option[A]) Option[S] {
	return Map(setter)
}

// Bind runs f against the current state and stores its result with setter.
func Bind[S1, S2, T any](setter func(T) func(S1) S2, f func(S1) Option[T]) func(Option[S1]) Option[S2] {
	return Chain(func(s1 S1) Option[S2] {
		return Map(func(t T) S2 {
			return setter(t)(s1)
		})(f(s1))
	})
}

// Let stores the result of a pure computation with setter.
func Let[S1, S2, T any](setter func(T) func(S1) S2, f func(S1) T) func(Option[S1]) Option[S2] {
	return Map(func(s1 S1) S2 {
		return setter(f(s1))(s1)
	})
}

// ApS stores the value of an independent Option with setter.
func ApS[S1, S2, T any](setter func(T) func(S1) S2, fb Option[T]) func(Option[S1]) Option[S2] {
	return func(fa Option[S1]) Option[S2] {
		if fa.isSome && fb.isSome {
			return Some(setter(fb.value)(fa.value))
		}
		return None[S2]()
	}
}
