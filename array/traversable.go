package array

import (
	"github.com/authcorp/libs/go/fp/either"
	"github.com/authcorp/libs/go/fp/option"
	"github.com/authcorp/libs/go/fp/separated"
	"github.com/authcorp/libs/go/fp/typeclass"
)

// accumulate folds effectful results into R from left to right: P lifts the
// empty accumulator, F turns an accumulator into a "take one more" function
// and AP feeds it the next effect.
func accumulate[A, X, R, HKTX, HKTR, HKTF any](
	P typeclass.Pointed[R, HKTR],
	F typeclass.Functor[R, func(X) R, HKTR, HKTF],
	AP typeclass.Apply[X, R, HKTX, HKTR, HKTF],
	empty func() R,
	step func(R, X) R,
) func(func(int, A) HKTX) func([]A) HKTR {
	next := F.Map(func(r R) func(X) R {
		return func(x X) R { return step(r, x) }
	})
	return func(f func(int, A) HKTX) func([]A) HKTR {
		return func(as []A) HKTR {
			acc := P.Of(empty())
			for i, a := range as {
				acc = AP.Ap(f(i, a))(next(acc))
			}
			return acc
		}
	}
}

// snoc appends without touching the backing array of bs.
func snoc[B any](bs []B, b B) []B {
	// cap == len: append copies, branches never share a backing array.
	return append(bs[:len(bs):len(bs)], b)
}

// Traverse runs an effectful function over every element and collects the
// results inside the target container, left to right.
//
// The target is described by three instances: P lifts the empty result, F
// maps a partial result to an "append one more" function and AP applies that
// function to the next effect. For Option as the target:
//
//	array.Traverse[string](
//		option.Pointed[[]int](),
//		option.Functor[[]int, func(int) []int](),
//		option.Apply[int, []int](),
//	)(parse)
func Traverse[A, B, HKTB, HKTRB, HKTF any](
	P typeclass.Pointed[[]B, HKTRB],
	F typeclass.Functor[[]B, func(B) []B, HKTRB, HKTF],
	AP typeclass.Apply[B, []B, HKTB, HKTRB, HKTF],
) func(func(A) HKTB) func([]A) HKTRB {
	traverse := TraverseWithIndex[A](P, F, AP)
	return func(f func(A) HKTB) func([]A) HKTRB {
		return traverse(func(_ int, a A) HKTB { return f(a) })
	}
}

// TraverseWithIndex is Traverse with the element index.
func TraverseWithIndex[A, B, HKTB, HKTRB, HKTF any](
	P typeclass.Pointed[[]B, HKTRB],
	F typeclass.Functor[[]B, func(B) []B, HKTRB, HKTF],
	AP typeclass.Apply[B, []B, HKTB, HKTRB, HKTF],
) func(func(int, A) HKTB) func([]A) HKTRB {
	return accumulate[A](P, F, AP, Zero[B], snoc[B])
}

// Sequence turns a slice of containers into a container of slice.
func Sequence[A, HKTA, HKTRA, HKTF any](
	P typeclass.Pointed[[]A, HKTRA],
	F typeclass.Functor[[]A, func(A) []A, HKTRA, HKTF],
	AP typeclass.Apply[A, []A, HKTA, HKTRA, HKTF],
) func([]HKTA) HKTRA {
	return Traverse[HKTA](P, F, AP)(func(fa HKTA) HKTA { return fa })
}

// Wither is Traverse followed by Compact: None results are dropped.
func Wither[A, B, HKTOB, HKTRB, HKTF any](
	P typeclass.Pointed[[]B, HKTRB],
	F typeclass.Functor[[]B, func(option.Option[B]) []B, HKTRB, HKTF],
	AP typeclass.Apply[option.Option[B], []B, HKTOB, HKTRB, HKTF],
) func(func(A) HKTOB) func([]A) HKTRB {
	wither := accumulate[A](P, F, AP, Zero[B], func(bs []B, ob option.Option[B]) []B {
		if b, ok := ob.Unpack(); ok {
			return snoc(bs, b)
		}
		return bs
	})
	return func(f func(A) HKTOB) func([]A) HKTRB {
		return wither(func(_ int, a A) HKTOB { return f(a) })
	}
}

// Wilt is Traverse followed by Separate.
func Wilt[A, E, B, HKTEB, HKTS, HKTF any](
	P typeclass.Pointed[separated.Separated[[]E, []B], HKTS],
	F typeclass.Functor[separated.Separated[[]E, []B], func(either.Either[E, B]) separated.Separated[[]E, []B], HKTS, HKTF],
	AP typeclass.Apply[either.Either[E, B], separated.Separated[[]E, []B], HKTEB, HKTS, HKTF],
) func(func(A) HKTEB) func([]A) HKTS {
	empty := func() separated.Separated[[]E, []B] {
		return separated.Make(Zero[E](), Zero[B]())
	}
	wilt := accumulate[A](P, F, AP, empty, func(s separated.Separated[[]E, []B], eb either.Either[E, B]) separated.Separated[[]E, []B] {
		e, b, isRight := eb.Unpack()
		if isRight {
			return separated.Make(s.Left, snoc(s.Right, b))
		}
		return separated.Make(snoc(s.Left, e), s.Right)
	})
	return func(f func(A) HKTEB) func([]A) HKTS {
		return wilt(func(_ int, a A) HKTEB { return f(a) })
	}
}

type traversable[A, HKTB, HKTRB any] struct {
	traverse func(func(A) HKTB) func([]A) HKTRB
}

func (t traversable[A, HKTB, HKTRB]) Traverse(f func(A) HKTB) func([]A) HKTRB {
	return t.traverse(f)
}

type witherable[A, HKTOB, HKTRB any] struct {
	wither func(func(A) HKTOB) func([]A) HKTRB
}

func (w witherable[A, HKTOB, HKTRB]) Wither(f func(A) HKTOB) func([]A) HKTRB {
	return w.wither(f)
}

// Traversable returns the Traversable instance of slices bound to the target
// described by P, F and AP (see Traverse).
func Traversable[A, B, HKTB, HKTRB, HKTF any](
	P typeclass.Pointed[[]B, HKTRB],
	F typeclass.Functor[[]B, func(B) []B, HKTRB, HKTF],
	AP typeclass.Apply[B, []B, HKTB, HKTRB, HKTF],
) typeclass.Traversable[A, []A, HKTB, HKTRB] {
	return traversable[A, HKTB, HKTRB]{traverse: Traverse[A](P, F, AP)}
}

// Witherable returns the Witherable instance of slices bound to the target
// described by P, F and AP (see Wither).
func Witherable[A, B, HKTOB, HKTRB, HKTF any](
	P typeclass.Pointed[[]B, HKTRB],
	F typeclass.Functor[[]B, func(option.Option[B]) []B, HKTRB, HKTF],
	AP typeclass.Apply[option.Option[B], []B, HKTOB, HKTRB, HKTF],
) typeclass.Witherable[A, []A, HKTOB, HKTRB] {
	return witherable[A, HKTOB, HKTRB]{wither: Wither[A](P, F, AP)}
}
