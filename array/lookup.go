package array

import "github.com/authcorp/libs/go/fp/option"

// IsOutOfBound reports whether i is not a valid index of as.
func IsOutOfBound[A any](i int, as []A) bool {
	return i < 0 || i >= len(as)
}

// Lookup returns the element at index i, or None when i is out of bounds.
func Lookup[A any](i int) func([]A) option.Option[A] {
	return func(as []A) option.Option[A] {
		if IsOutOfBound(i, as) {
			return option.None[A]()
		}
		return option.Some(as[i])
	}
}

// Head returns the first element.
func Head[A any](as []A) option.Option[A] {
	return Lookup[A](0)(as)
}

// Last returns the last element.
func Last[A any](as []A) option.Option[A] {
	return Lookup[A](len(as) - 1)(as)
}

// Tail returns every element but the first, or None for an empty slice.
func Tail[A any](as []A) option.Option[[]A] {
	if len(as) == 0 {
		return option.None[[]A]()
	}
	return option.Some(clone(as[1:]))
}

// Init returns every element but the last, or None for an empty slice.
func Init[A any](as []A) option.Option[[]A] {
	if len(as) == 0 {
		return option.None[[]A]()
	}
	return option.Some(clone(as[:len(as)-1]))
}

// FindIndex returns the index of the first element satisfying predicate.
func FindIndex[A any](predicate func(A) bool) func([]A) option.Option[int] {
	return func(as []A) option.Option[int] {
		for i, a := range as {
			if predicate(a) {
				return option.Some(i)
			}
		}
		return option.None[int]()
	}
}

// FindLastIndex returns the index of the last element satisfying predicate.
func FindLastIndex[A any](predicate func(A) bool) func([]A) option.Option[int] {
	return func(as []A) option.Option[int] {
		for i := len(as) - 1; i >= 0; i-- {
			if predicate(as[i]) {
				return option.Some(i)
			}
		}
		return option.None[int]()
	}
}

// FindFirst returns the first element satisfying predicate.
func FindFirst[A any](predicate func(A) bool) func([]A) option.Option[A] {
	return FindFirstMap(option.FromPredicate(predicate))
}

// FindFirstMap returns the first Some produced by f.
func FindFirstMap[A, B any](f func(A) option.Option[B]) func([]A) option.Option[B] {
	return func(as []A) option.Option[B] {
		for _, a := range as {
			if b := f(a); b.IsSome() {
				return b
			}
		}
		return option.None[B]()
	}
}

// FindLast returns the last element satisfying predicate.
func FindLast[A any](predicate func(A) bool) func([]A) option.Option[A] {
	return FindLastMap(option.FromPredicate(predicate))
}

// FindLastMap returns the last Some produced by f.
func FindLastMap[A, B any](f func(A) option.Option[B]) func([]A) option.Option[B] {
	return func(as []A) option.Option[B] {
		for i := len(as) - 1; i >= 0; i-- {
			if b := f(as[i]); b.IsSome() {
				return b
			}
		}
		return option.None[B]()
	}
}

// InsertAt inserts a before index i. i may equal the length of the slice.
func InsertAt[A any](i int, a A) func([]A) option.Option[[]A] {
	return func(as []A) option.Option[[]A] {
		if i < 0 || i > len(as) {
			return option.None[[]A]()
		}
		out := make([]A, 0, len(as)+1)
		out = append(out, as[:i]...)
		out = append(out, a)
		out = append(out, as[i:]...)
		return option.Some(out)
	}
}

// UpdateAt replaces the element at index i.
func UpdateAt[A any](i int, a A) func([]A) option.Option[[]A] {
	return ModifyAt(i, func(A) A { return a })
}

// ModifyAt applies f to the element at index i.
func ModifyAt[A any](i int, f func(A) A) func([]A) option.Option[[]A] {
	return func(as []A) option.Option[[]A] {
		if IsOutOfBound(i, as) {
			return option.None[[]A]()
		}
		out := clone(as)
		out[i] = f(out[i])
		return option.Some(out)
	}
}

// DeleteAt removes the element at index i.
func DeleteAt[A any](i int) func([]A) option.Option[[]A] {
	return func(as []A) option.Option[[]A] {
		if IsOutOfBound(i, as) {
			return option.None[[]A]()
		}
		out := make([]A, 0, len(as)-1)
		out = append(out, as[:i]...)
		out = append(out, as[i+1:]...)
		return option.Some(out)
	}
}
