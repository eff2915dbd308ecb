package optics

import (
	"strconv"

	"github.com/authcorp/libs/go/fp/either"
	"github.com/authcorp/libs/go/fp/function"
	"github.com/authcorp/libs/go/fp/option"
)

// Prism focuses on one variant A of a sum type S.
type Prism[S, A any] struct {
	GetOption  func(S) option.Option[A]
	ReverseGet func(A) S
}

// MakePrism creates a Prism.
func MakePrism[S, A any](getOption func(S) option.Option[A], reverseGet func(A) S) Prism[S, A] {
	return Prism[S, A]{GetOption: getOption, ReverseGet: reverseGet}
}

// Set replaces the focus when the prism matches and leaves s untouched otherwise.
func (p Prism[S, A]) Set(a A) func(S) S {
	return p.Modify(function.Constant1[A](a))
}

// Modify applies f to the focus when the prism matches.
func (p Prism[S, A]) Modify(f func(A) A) func(S) S {
	return func(s S) S {
		return option.GetOrElse(function.Constant(s))(p.ModifyOption(f)(s))
	}
}

// ModifyOption is Modify that reports a non-matching source as None.
func (p Prism[S, A]) ModifyOption(f func(A) A) func(S) option.Option[S] {
	return function.Flow2(p.GetOption, option.Map(function.Flow2(f, p.ReverseGet)))
}

// AsOptional views the prism as an Optional.
func (p Prism[S, A]) AsOptional() Optional[S, A] {
	return Optional[S, A]{GetOption: p.GetOption, Set: p.Set}
}

// ComposePrism focuses ab inside the prism it is applied to.
func ComposePrism[S, A, B any](ab Prism[A, B]) func(Prism[S, A]) Prism[S, B] {
	return func(sa Prism[S, A]) Prism[S, B] {
		return MakePrism(
			function.Flow2(sa.GetOption, option.Chain(ab.GetOption)),
			function.Flow2(ab.ReverseGet, sa.ReverseGet),
		)
	}
}

// FromPredicate matches the values satisfying predicate.
func FromPredicate[A any](predicate func(A) bool) Prism[A, A] {
	return MakePrism(option.FromPredicate(predicate), function.Identity[A])
}

// SomePrism focuses on the value inside a Some.
func SomePrism[A any]() Prism[option.Option[A], A] {
	return MakePrism(function.Identity[option.Option[A]], option.Some[A])
}

// RightPrism focuses on the Right branch of an Either.
func RightPrism[E, A any]() Prism[either.Either[E, A], A] {
	return MakePrism(option.GetRight[E, A], either.Right[E, A])
}

// LeftPrism focuses on the Left branch of an Either.
func LeftPrism[E, A any]() Prism[either.Either[E, A], E] {
	return MakePrism(option.GetLeft[E, A], either.Left[A, E])
}

// ParseInt matches the canonical decimal form of an int, the one
// strconv.Itoa produces. "+5" and "007" do not match.
func ParseInt() Prism[string, int] {
	canonical := func(s string) func(int) bool {
		return func(n int) bool { return strconv.Itoa(n) == s }
	}
	return MakePrism(
		func(s string) option.Option[int] {
			return option.Filter(canonical(s))(option.TryCatchK(strconv.Atoi)(s))
		},
		strconv.Itoa,
	)
}

// Iso is a lossless conversion between S and A.
type Iso[S, A any] struct {
	Get        func(S) A
	ReverseGet func(A) S
}

// MakeIso creates an Iso.
func MakeIso[S, A any](get func(S) A, reverseGet func(A) S) Iso[S, A] {
	return Iso[S, A]{Get: get, ReverseGet: reverseGet}
}

// Reverse swaps the directions of the conversion.
func (i Iso[S, A]) Reverse() Iso[A, S] {
	return Iso[A, S]{Get: i.ReverseGet, ReverseGet: i.Get}
}

// Modify applies f on the A side.
func (i Iso[S, A]) Modify(f func(A) A) func(S) S {
	return function.Flow3(i.Get, f, i.ReverseGet)
}

// AsLens views the iso as a Lens.
func (i Iso[S, A]) AsLens() Lens[S, A] {
	return MakeLens(i.Get, func(_ S, a A) S { return i.ReverseGet(a) })
}

// AsPrism views the iso as a Prism that always matches.
func (i Iso[S, A]) AsPrism() Prism[S, A] {
	return MakePrism(function.Flow2(i.Get, option.Some[A]), i.ReverseGet)
}

// ComposeIso chains ab after the iso it is applied to.
func ComposeIso[S, A, B any](ab Iso[A, B]) func(Iso[S, A]) Iso[S, B] {
	return func(sa Iso[S, A]) Iso[S, B] {
		return MakeIso(function.Flow2(sa.Get, ab.Get), function.Flow2(ab.ReverseGet, sa.ReverseGet))
	}
}
