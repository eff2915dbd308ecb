// Package typeclass defines the capabilities shared by the containers of this
// module.
//
// Go has no higher-kinded types, so each capability takes the concrete
// container types as extra type parameters: HKTA is "the container holding an
// A", HKTB "the container holding a B" and HKTFAB "the container holding a
// func(A) B". A container package (option, array, either) exports one
// constructor per capability, e.g. option.Functor[A, B]() implements
// Functor[A, B, option.Option[A], option.Option[B]].
//
// Methods in Go cannot introduce type parameters, so operations that are
// polymorphic in a second container (traverse, sequence, wither) are free
// functions in the container packages that accept one of these interfaces
// for the target container. Traversable and Witherable instances close over
// that target when they are built.
package typeclass

import "github.com/authcorp/libs/go/fp/separated"

// Functor maps over the contents of a container.
//
//	Map(Identity) == Identity
//	Map(g ∘ f) == Map(g) ∘ Map(f)
type Functor[A, B, HKTA, HKTB any] interface {
	Map(f func(A) B) func(HKTA) HKTB
}

// Pointed lifts a bare value into a container.
type Pointed[A, HKTA any] interface {
	Of(a A) HKTA
}

// Apply applies a contained function to a contained value.
type Apply[A, B, HKTA, HKTB, HKTFAB any] interface {
	Functor[A, B, HKTA, HKTB]
	Ap(fa HKTA) func(HKTFAB) HKTB
}

// Applicative is an Apply that can lift values of the result type.
//
//	Identity:     Ap(fa)(Of(id)) == fa
//	Homomorphism: Ap(Of(a))(Of(f)) == Of(f(a))
//	Interchange:  Ap(Of(a))(fab) == Ap(fab)(Of(func(f) f(a)))
type Applicative[A, B, HKTA, HKTB, HKTFAB any] interface {
	Apply[A, B, HKTA, HKTB, HKTFAB]
	Pointed[B, HKTB]
}

// Chain sequences dependent computations, flattening one level of nesting.
type Chain[A, B, HKTA, HKTB, HKTFAB any] interface {
	Apply[A, B, HKTA, HKTB, HKTFAB]
	Chain(f func(A) HKTB) func(HKTA) HKTB
}

// Monad combines Applicative and Chain.
//
//	Left identity:  Chain(f)(Of(a)) == f(a)
//	Right identity: Chain(Of)(m) == m
//	Associativity:  Chain(g)(Chain(f)(m)) == Chain(func(a) Chain(g)(f(a)))(m)
type Monad[A, B, HKTA, HKTB, HKTFAB any] interface {
	Applicative[A, B, HKTA, HKTB, HKTFAB]
	Chain(f func(A) HKTB) func(HKTA) HKTB
}

// Foldable reduces a container to a summary value.
type Foldable[A, B, HKTA any] interface {
	Reduce(b B, f func(B, A) B) func(HKTA) B
	ReduceRight(b B, f func(A, B) B) func(HKTA) B
	FoldMap(m Monoid[B]) func(func(A) B) func(HKTA) B
}

// Alt is a left-biased choice between two containers.
type Alt[HKTA any] interface {
	Alt(that func() HKTA) func(HKTA) HKTA
}

// Zero provides the empty container.
type Zero[HKTA any] interface {
	Zero() HKTA
}

// Alternative is an Applicative with a monoidal choice.
type Alternative[A, B, HKTA, HKTB, HKTFAB any] interface {
	Applicative[A, B, HKTA, HKTB, HKTFAB]
	Alt[HKTA]
	Zero[HKTA]
}

// Extend is the dual of Chain: it applies a function to the whole container.
type Extend[A, B, HKTA, HKTB any] interface {
	Functor[A, B, HKTA, HKTB]
	Extend(f func(HKTA) B) func(HKTA) HKTB
}

// Compactable removes absent values and splits two-branch values.
//
// HKTOA is the container of optional A, HKTEA the container of
// either-E-or-A and HKTE the container of E.
type Compactable[HKTA, HKTOA, HKTE, HKTEA any] interface {
	Compact(fa HKTOA) HKTA
	Separate(fa HKTEA) separated.Separated[HKTE, HKTA]
}

// Filterable narrows a container with predicates.
//
// FilterMap uses Go's comma-ok convention to express the optional result so
// this package stays independent from the option package.
type Filterable[A, B, HKTA, HKTB any] interface {
	Filter(predicate func(A) bool) func(HKTA) HKTA
	FilterMap(f func(A) (B, bool)) func(HKTA) HKTB
	Partition(predicate func(A) bool) func(HKTA) separated.Separated[HKTA, HKTA]
}

// Traversable runs an effect over every element of HKTA and collects the
// results inside the effect. The effect is fixed by the instance: HKTB is
// the effect holding a B and HKTTB the effect holding the traversed
// container of B.
type Traversable[A, HKTA, HKTB, HKTTB any] interface {
	Traverse(f func(A) HKTB) func(HKTA) HKTTB
}

// Witherable traverses and drops absent results in one pass. HKTOB is the
// effect holding an optional B and HKTWB the effect holding the filtered
// container.
type Witherable[A, HKTA, HKTOB, HKTWB any] interface {
	Wither(f func(A) HKTOB) func(HKTA) HKTWB
}
