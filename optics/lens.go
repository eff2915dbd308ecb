// Package optics focuses on parts of immutable values. Partial focuses
// (Optional, Prism) report absence with option.Option.
package optics

import (
	"maps"

	"github.com/authcorp/libs/go/fp/array"
	"github.com/authcorp/libs/go/fp/function"
	"github.com/authcorp/libs/go/fp/option"
)

// Lens focuses on a part A that is always present in S.
type Lens[S, A any] struct {
	Get func(S) A
	Set func(A) func(S) S
}

// MakeLens creates a Lens from a getter and an uncurried setter.
func MakeLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{
		Get: get,
		Set: func(a A) func(S) S {
			return func(s S) S { return set(s, a) }
		},
	}
}

// Modify applies f to the focus.
func (l Lens[S, A]) Modify(f func(A) A) func(S) S {
	return func(s S) S {
		return l.Set(f(l.Get(s)))(s)
	}
}

// AsOptional views the lens as an Optional that always matches.
func (l Lens[S, A]) AsOptional() Optional[S, A] {
	return Optional[S, A]{
		GetOption: function.Compose(option.Some[A], l.Get),
		Set:       l.Set,
	}
}

// ComposeLens focuses ab inside the lens it is applied to.
func ComposeLens[S, A, B any](ab Lens[A, B]) func(Lens[S, A]) Lens[S, B] {
	return func(sa Lens[S, A]) Lens[S, B] {
		return MakeLens(
			function.Compose(ab.Get, sa.Get),
			func(s S, b B) S {
				return sa.Set(ab.Set(b)(sa.Get(s)))(s)
			},
		)
	}
}

// Optional focuses on a part A that may be missing from S. Set is a no-op
// when the focus is missing.
type Optional[S, A any] struct {
	GetOption func(S) option.Option[A]
	Set       func(A) func(S) S
}

// MakeOptional creates an Optional. set is only called when getOption matches.
func MakeOptional[S, A any](getOption func(S) option.Option[A], set func(S, A) S) Optional[S, A] {
	return Optional[S, A]{
		GetOption: getOption,
		Set: func(a A) func(S) S {
			return func(s S) S {
				if getOption(s).IsNone() {
					return s
				}
				return set(s, a)
			}
		},
	}
}

// Modify applies f to the focus when present.
func (o Optional[S, A]) Modify(f func(A) A) func(S) S {
	return func(s S) S {
		return option.Match(
			function.Constant(s),
			func(a A) S { return o.Set(f(a))(s) },
		)(o.GetOption(s))
	}
}

// ModifyOption is Modify that reports a missing focus as None.
func (o Optional[S, A]) ModifyOption(f func(A) A) func(S) option.Option[S] {
	return func(s S) option.Option[S] {
		return option.Map(func(a A) S { return o.Set(f(a))(s) })(o.GetOption(s))
	}
}

// ComposeOptional focuses ab inside the optional it is applied to.
func ComposeOptional[S, A, B any](ab Optional[A, B]) func(Optional[S, A]) Optional[S, B] {
	return func(sa Optional[S, A]) Optional[S, B] {
		return MakeOptional(
			function.Flow2(sa.GetOption, option.Chain(ab.GetOption)),
			func(s S, b B) S {
				return sa.Modify(ab.Set(b))(s)
			},
		)
	}
}

// At focuses on the entry of a map under key. Setting None removes the entry.
// The map passed to Set is never mutated.
func At[K comparable, V any](key K) Lens[map[K]V, option.Option[V]] {
	return MakeLens(
		func(m map[K]V) option.Option[V] {
			v, ok := m[key]
			return option.FromComma(v, ok)
		},
		func(m map[K]V, v option.Option[V]) map[K]V {
			next := maps.Clone(m)
			if next == nil {
				next = make(map[K]V)
			}
			if value, ok := v.Unpack(); ok {
				next[key] = value
			} else {
				delete(next, key)
			}
			return next
		},
	)
}

// Index focuses on the i-th element of a slice.
func Index[A any](i int) Optional[[]A, A] {
	return MakeOptional(
		array.Lookup[A](i),
		func(as []A, a A) []A {
			return option.GetOrElse(function.Constant(as))(array.UpdateAt(i, a)(as))
		},
	)
}
