package option

import (
	"github.com/authcorp/libs/go/fp/either"
	"github.com/authcorp/libs/go/fp/separated"
	"github.com/authcorp/libs/go/fp/typeclass"
)

// Traverse runs an effectful function over the Option and swaps the layers:
// None becomes F.Of(None) and Some(a) becomes F.Map(Some)(f(a)).
//
// F is the Applicative of the target container, instantiated so that it maps
// B to Option[B]; only its Of and Map are used.
func Traverse[A, B, HKTB, HKTOB, HKTFAB any](
	F typeclass.Applicative[B, Option[B], HKTB, HKTOB, HKTFAB],
) func(func(A) HKTB) func(Option[A]) HKTOB {
	return func(f func(A) HKTB) func(Option[A]) HKTOB {
		some := F.Map(Some[B])
		return func(o Option[A]) HKTOB {
			if o.isSome {
				return some(f(o.value))
			}
			return F.Of(None[B]())
		}
	}
}

// Sequence swaps an Option of a container into a container of Option.
func Sequence[A, HKTA, HKTOA, HKTFAB any](
	F typeclass.Applicative[A, Option[A], HKTA, HKTOA, HKTFAB],
) func(Option[HKTA]) HKTOA {
	return Traverse[HKTA](F)(func(fa HKTA) HKTA { return fa })
}

// Wither is Traverse followed by Compact.
func Wither[A, B, HKTOB any](
	F typeclass.Pointed[Option[B], HKTOB],
) func(func(A) HKTOB) func(Option[A]) HKTOB {
	return func(f func(A) HKTOB) func(Option[A]) HKTOB {
		return func(o Option[A]) HKTOB {
			if o.isSome {
				return f(o.value)
			}
			return F.Of(None[B]())
		}
	}
}

// Wilt is Traverse followed by Separate.
func Wilt[A, E, B, HKTEB, HKTS, HKTF any](
	F typeclass.Applicative[either.Either[E, B], separated.Separated[Option[E], Option[B]], HKTEB, HKTS, HKTF],
) func(func(A) HKTEB) func(Option[A]) HKTS {
	return func(f func(A) HKTEB) func(Option[A]) HKTS {
		split := F.Map(func(e either.Either[E, B]) separated.Separated[Option[E], Option[B]] {
			return separated.Make(GetLeft(e), GetRight(e))
		})
		return func(o Option[A]) HKTS {
			if o.isSome {
				return split(f(o.value))
			}
			return F.Of(separated.Make(None[E](), None[B]()))
		}
	}
}

// TraverseArrayWithIndex applies f to every element and collects the results.
// It stops at the first None.
func TraverseArrayWithIndex[A, B any](f func(int, A) Option[B]) func([]A) Option[[]B] {
	return func(as []A) Option[[]B] {
		out := make([]B, 0, len(as))
		for i, a := range as {
			b := f(i, a)
			if !b.isSome {
				return None[[]B]()
			}
			out = append(out, b.value)
		}
		return Some(out)
	}
}

// TraverseArray applies f to every element and collects the results.
// It stops at the first None.
func TraverseArray[A, B any](f func(A) Option[B]) func([]A) Option[[]B] {
	return TraverseArrayWithIndex(func(_ int, a A) Option[B] {
		return f(a)
	})
}

// SequenceArray turns a slice of Options into an Option of slice.
func SequenceArray[A any](as []Option[A]) Option[[]A] {
	return TraverseArray(func(o Option[A]) Option[A] { return o })(as)
}

type traversable[A, HKTB, HKTOB any] struct {
	traverse func(func(A) HKTB) func(Option[A]) HKTOB
}

func (t traversable[A, HKTB, HKTOB]) Traverse(f func(A) HKTB) func(Option[A]) HKTOB {
	return t.traverse(f)
}

type witherable[A, HKTOB any] struct {
	wither func(func(A) HKTOB) func(Option[A]) HKTOB
}

func (w witherable[A, HKTOB]) Wither(f func(A) HKTOB) func(Option[A]) HKTOB {
	return w.wither(f)
}

// Traversable returns the Traversable instance of Option bound to the
// target applicative F.
func Traversable[A, B, HKTB, HKTOB, HKTFAB any](
	F typeclass.Applicative[B, Option[B], HKTB, HKTOB, HKTFAB],
) typeclass.Traversable[A, Option[A], HKTB, HKTOB] {
	return traversable[A, HKTB, HKTOB]{traverse: Traverse[A](F)}
}

// Witherable returns the Witherable instance of Option bound to the target
// P.
func Witherable[A, B, HKTOB any](
	P typeclass.Pointed[Option[B], HKTOB],
) typeclass.Witherable[A, Option[A], HKTOB, HKTOB] {
	return witherable[A, HKTOB]{wither: Wither[A](P)}
}
