package array

// TakeLeft keeps the first n elements.
func TakeLeft[A any](n int) func([]A) []A {
	return func(as []A) []A {
		return clone(as[:bound(n, len(as))])
	}
}

// TakeRight keeps the last n elements.
func TakeRight[A any](n int) func([]A) []A {
	return func(as []A) []A {
		return clone(as[len(as)-bound(n, len(as)):])
	}
}

// TakeLeftWhile keeps the longest prefix whose elements satisfy predicate.
func TakeLeftWhile[A any](predicate func(A) bool) func([]A) []A {
	return func(as []A) []A {
		return clone(as[:spanIndex(as, predicate)])
	}
}

// DropLeft removes the first n elements.
func DropLeft[A any](n int) func([]A) []A {
	return func(as []A) []A {
		return clone(as[bound(n, len(as)):])
	}
}

// DropRight removes the last n elements.
func DropRight[A any](n int) func([]A) []A {
	return func(as []A) []A {
		return clone(as[:len(as)-bound(n, len(as))])
	}
}

// DropLeftWhile removes the longest prefix whose elements satisfy predicate.
func DropLeftWhile[A any](predicate func(A) bool) func([]A) []A {
	return func(as []A) []A {
		return clone(as[spanIndex(as, predicate):])
	}
}

// SpanLeft splits as into the longest prefix satisfying predicate and the rest.
func SpanLeft[A any](predicate func(A) bool) func([]A) (prefix, rest []A) {
	return func(as []A) ([]A, []A) {
		i := spanIndex(as, predicate)
		return clone(as[:i]), clone(as[i:])
	}
}

// SplitAt splits as before index n. A non-positive n puts every element on
// the right.
func SplitAt[A any](n int) func([]A) (before, after []A) {
	return func(as []A) ([]A, []A) {
		i := bound(n, len(as))
		return clone(as[:i]), clone(as[i:])
	}
}

// ChunksOf splits as into chunks of n elements; the last one may be shorter.
// n is raised to 1 when smaller.
func ChunksOf[A any](n int) func([]A) [][]A {
	n = max(n, 1)
	return Chop(SplitAt[A](n))
}

// Chop repeatedly applies f to the remaining elements. f must consume at
// least one element of the non-empty slice it receives.
func Chop[A, B any](f func([]A) (B, []A)) func([]A) []B {
	return func(as []A) []B {
		out := Zero[B]()
		rest := as
		for len(rest) > 0 {
			var b B
			b, rest = f(rest)
			out = append(out, b)
		}
		return out
	}
}

func bound(n, length int) int {
	return min(max(n, 0), length)
}

func spanIndex[A any](as []A, predicate func(A) bool) int {
	for i, a := range as {
		if !predicate(a) {
			return i
		}
	}
	return len(as)
}
