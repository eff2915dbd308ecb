package array

// Do starts a do-notation pipeline holding a single empty state. Every Bind
// fans the states out over the slice f returns, like nested loops.
func Do[S any](empty S) []S {
	return Of(empty)
}

// BindTo starts a do-notation pipeline from an existing slice.
func BindTo[S, A any](setter func(A) S) func([]A) []S {
	return Map(setter)
}

// Bind runs f against every state and stores each of its results with setter.
func Bind[S1, S2, T any](setter func(T) func(S1) S2, f func(S1) []T) func([]S1) []S2 {
	return Chain(func(s1 S1) []S2 {
		return Map(func(t T) S2 {
			return setter(t)(s1)
		})(f(s1))
	})
}

// Let stores the result of a pure computation with setter.
func Let[S1, S2, T any](setter func(T) func(S1) S2, f func(S1) T) func([]S1) []S2 {
	return Map(func(s1 S1) S2 {
		return setter(f(s1))(s1)
	})
}

// ApS combines every state with every element of fb.
func ApS[S1, S2, T any](setter func(T) func(S1) S2, fb []T) func([]S1) []S2 {
	return Bind(setter, func(S1) []T { return fb })
}
