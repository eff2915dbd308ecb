package fptest

import "github.com/authcorp/libs/go/fp/typeclass"

// Each law is returned as a predicate over generated inputs so that callers
// can drive it from rapid.Check with their own generators.

// FunctorIdentity checks Map(id)(fa) == fa.
func FunctorIdentity[A, HKTA any](F typeclass.Functor[A, A, HKTA, HKTA], eq typeclass.Eq[HKTA]) func(HKTA) bool {
	mapID := F.Map(func(a A) A { return a })
	return func(fa HKTA) bool {
		return eq.Equals(mapID(fa), fa)
	}
}

// FunctorComposition checks Map(g ∘ f) == Map(g) ∘ Map(f).
func FunctorComposition[A, B, C, HKTA, HKTB, HKTC any](
	fab typeclass.Functor[A, B, HKTA, HKTB],
	fbc typeclass.Functor[B, C, HKTB, HKTC],
	fac typeclass.Functor[A, C, HKTA, HKTC],
	eq typeclass.Eq[HKTC],
	f func(A) B,
	g func(B) C,
) func(HKTA) bool {
	composed := fac.Map(func(a A) C { return g(f(a)) })
	mapF, mapG := fab.Map(f), fbc.Map(g)
	return func(fa HKTA) bool {
		return eq.Equals(composed(fa), mapG(mapF(fa)))
	}
}

// ApplicativeIdentity checks Ap(fa)(Of(id)) == fa.
func ApplicativeIdentity[A, HKTA, HKTFAA any](
	F typeclass.Apply[A, A, HKTA, HKTA, HKTFAA],
	pf typeclass.Pointed[func(A) A, HKTFAA],
	eq typeclass.Eq[HKTA],
) func(HKTA) bool {
	id := pf.Of(func(a A) A { return a })
	return func(fa HKTA) bool {
		return eq.Equals(F.Ap(fa)(id), fa)
	}
}

// ApplicativeHomomorphism checks Ap(Of(a))(Of(f)) == Of(f(a)).
func ApplicativeHomomorphism[A, B, HKTA, HKTB, HKTFAB any](
	F typeclass.Applicative[A, B, HKTA, HKTB, HKTFAB],
	pa typeclass.Pointed[A, HKTA],
	pf typeclass.Pointed[func(A) B, HKTFAB],
	eq typeclass.Eq[HKTB],
	f func(A) B,
) func(A) bool {
	return func(a A) bool {
		return eq.Equals(F.Ap(pa.Of(a))(pf.Of(f)), F.Of(f(a)))
	}
}

// ApplicativeInterchange checks Ap(Of(a))(fab) == Ap(fab)(Of(func(f) f(a))).
func ApplicativeInterchange[A, B, HKTA, HKTB, HKTFAB, HKTFFB any](
	F typeclass.Apply[A, B, HKTA, HKTB, HKTFAB],
	G typeclass.Apply[func(A) B, B, HKTFAB, HKTB, HKTFFB],
	pa typeclass.Pointed[A, HKTA],
	pff typeclass.Pointed[func(func(A) B) B, HKTFFB],
	eq typeclass.Eq[HKTB],
	a A,
) func(HKTFAB) bool {
	applyTo := pff.Of(func(f func(A) B) B { return f(a) })
	return func(fab HKTFAB) bool {
		return eq.Equals(F.Ap(pa.Of(a))(fab), G.Ap(fab)(applyTo))
	}
}

// MonadLeftIdentity checks Chain(f)(Of(a)) == f(a).
func MonadLeftIdentity[A, B, HKTA, HKTB, HKTFAB any](
	M typeclass.Monad[A, B, HKTA, HKTB, HKTFAB],
	pa typeclass.Pointed[A, HKTA],
	eq typeclass.Eq[HKTB],
	f func(A) HKTB,
) func(A) bool {
	chained := M.Chain(f)
	return func(a A) bool {
		return eq.Equals(chained(pa.Of(a)), f(a))
	}
}

// MonadRightIdentity checks Chain(Of)(m) == m.
func MonadRightIdentity[A, HKTA, HKTFAA any](
	M typeclass.Monad[A, A, HKTA, HKTA, HKTFAA],
	eq typeclass.Eq[HKTA],
) func(HKTA) bool {
	chained := M.Chain(M.Of)
	return func(m HKTA) bool {
		return eq.Equals(chained(m), m)
	}
}

// MonadAssociativity checks Chain(g)(Chain(f)(m)) == Chain(a => Chain(g)(f(a)))(m).
func MonadAssociativity[A, B, C, HKTA, HKTB, HKTC, HKTFAB, HKTFBC, HKTFAC any](
	mab typeclass.Chain[A, B, HKTA, HKTB, HKTFAB],
	mbc typeclass.Chain[B, C, HKTB, HKTC, HKTFBC],
	mac typeclass.Chain[A, C, HKTA, HKTC, HKTFAC],
	eq typeclass.Eq[HKTC],
	f func(A) HKTB,
	g func(B) HKTC,
) func(HKTA) bool {
	chainG := mbc.Chain(g)
	lhs := func(m HKTA) HKTC { return chainG(mab.Chain(f)(m)) }
	rhs := mac.Chain(func(a A) HKTC { return chainG(f(a)) })
	return func(m HKTA) bool {
		return eq.Equals(lhs(m), rhs(m))
	}
}

// AltAssociativity checks Alt(c)(Alt(b)(a)) == Alt(Alt(c)(b))(a).
func AltAssociativity[HKTA any](A typeclass.Alt[HKTA], eq typeclass.Eq[HKTA]) func(a, b, c HKTA) bool {
	return func(a, b, c HKTA) bool {
		lhs := A.Alt(func() HKTA { return c })(A.Alt(func() HKTA { return b })(a))
		rhs := A.Alt(func() HKTA { return A.Alt(func() HKTA { return c })(b) })(a)
		return eq.Equals(lhs, rhs)
	}
}

// EqReflexivity checks Equals(a, a).
func EqReflexivity[A any](E typeclass.Eq[A]) func(A) bool {
	return func(a A) bool {
		return E.Equals(a, a)
	}
}

// EqSymmetry checks Equals(a, b) == Equals(b, a).
func EqSymmetry[A any](E typeclass.Eq[A]) func(a, b A) bool {
	return func(a, b A) bool {
		return E.Equals(a, b) == E.Equals(b, a)
	}
}

// EqTransitivity checks Equals(a, b) && Equals(b, c) implies Equals(a, c).
func EqTransitivity[A any](E typeclass.Eq[A]) func(a, b, c A) bool {
	return func(a, b, c A) bool {
		return !(E.Equals(a, b) && E.Equals(b, c)) || E.Equals(a, c)
	}
}

// OrdTotality checks a <= b or b <= a.
func OrdTotality[A any](O typeclass.Ord[A]) func(a, b A) bool {
	leq := typeclass.Leq(O)
	return func(a, b A) bool {
		return leq(a, b) || leq(b, a)
	}
}

// OrdAntisymmetry checks Compare(a, b) == -Compare(b, a).
func OrdAntisymmetry[A any](O typeclass.Ord[A]) func(a, b A) bool {
	return func(a, b A) bool {
		return O.Compare(a, b) == -O.Compare(b, a)
	}
}

// OrdTransitivity checks a <= b && b <= c implies a <= c.
func OrdTransitivity[A any](O typeclass.Ord[A]) func(a, b, c A) bool {
	leq := typeclass.Leq(O)
	return func(a, b, c A) bool {
		return !(leq(a, b) && leq(b, c)) || leq(a, c)
	}
}

// SemigroupAssociativity checks Concat(Concat(a, b), c) == Concat(a, Concat(b, c)).
func SemigroupAssociativity[A any](S typeclass.Semigroup[A], eq typeclass.Eq[A]) func(a, b, c A) bool {
	return func(a, b, c A) bool {
		return eq.Equals(S.Concat(S.Concat(a, b), c), S.Concat(a, S.Concat(b, c)))
	}
}

// MonoidIdentity checks Concat(Empty, a) == a == Concat(a, Empty).
func MonoidIdentity[A any](M typeclass.Monoid[A], eq typeclass.Eq[A]) func(A) bool {
	return func(a A) bool {
		return eq.Equals(M.Concat(M.Empty(), a), a) && eq.Equals(M.Concat(a, M.Empty()), a)
	}
}
