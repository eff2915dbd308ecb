// Package option provides Option, a container for a value that may be absent.
//
// An Option is either None, holding nothing, or Some, holding exactly one
// value. It can be seen as a collection of zero or one element, or as the
// result of a computation that may fail without saying why.
//
// Operations are data-last and curried so they compose with the Pipe and
// Flow helpers of the function package:
//
//	n := function.Pipe3(
//		option.Some(1),
//		option.Map(func(n int) int { return n * 2 }),
//		option.Filter(func(n int) bool { return n > 1 }),
//		option.GetOrElse(function.Constant(0)),
//	) // 2
//
// None absorbs every transformation: once a pipeline yields None it stays
// None. No operation in this package panics.
package option

import (
	"errors"
	"reflect"

	"github.com/authcorp/libs/go/fp/either"
)

// ErrNotPresent is returned by ToError for None.
var ErrNotPresent = errors.New("option: value not present")

// Option represents an optional value. The zero value is None.
type Option[A any] struct {
	value  A
	isSome bool
}

// Some creates an Option containing a value.
func Some[A any](value A) Option[A] {
	return Option[A]{value: value, isSome: true}
}

// None creates an empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// Of is the pointed constructor, an alias of Some.
func Of[A any](value A) Option[A] {
	return Some(value)
}

// IsSome returns true if the Option contains a value.
func (o Option[A]) IsSome() bool {
	return o.isSome
}

// IsNone returns true if the Option is empty.
func (o Option[A]) IsNone() bool {
	return !o.isSome
}

// IsZero reports whether o is None. It lets encoders honour "omitzero" and
// "omitempty" for Option fields.
func (o Option[A]) IsZero() bool {
	return !o.isSome
}

// Unpack returns the value and whether it is present.
func (o Option[A]) Unpack() (A, bool) {
	return o.value, o.isSome
}

// IsSome reports whether o holds a value.
func IsSome[A any](o Option[A]) bool {
	return o.isSome
}

// IsNone reports whether o is empty.
func IsNone[A any](o Option[A]) bool {
	return !o.isSome
}

// FromPredicate returns a smart constructor yielding Some(a) when the
// predicate holds and None otherwise.
func FromPredicate[A any](predicate func(A) bool) func(A) Option[A] {
	return func(a A) Option[A] {
		if predicate(a) {
			return Some(a)
		}
		return None[A]()
	}
}

// FromRefinement returns a smart constructor that narrows A to B.
// The refinement reports success through Go's comma-ok convention.
func FromRefinement[A, B any](refine func(A) (B, bool)) func(A) Option[B] {
	return func(a A) Option[B] {
		return FromComma(refine(a))
	}
}

// InstanceOf narrows a dynamically typed value to B.
func InstanceOf[B any](a any) Option[B] {
	b, ok := a.(B)
	return FromComma(b, ok)
}

// FromComma converts a comma-ok pair into an Option.
func FromComma[A any](value A, ok bool) Option[A] {
	if ok {
		return Some(value)
	}
	return None[A]()
}

// FromNullable creates an Option from a pointer: nil becomes None, anything
// else Some of the pointed-to value.
func FromNullable[A any](ptr *A) Option[A] {
	if ptr == nil {
		return None[A]()
	}
	return Some(*ptr)
}

// FromNillable returns None when a is nil for its kind (interface, pointer,
// map, slice, channel or function) and Some(a) otherwise.
func FromNillable[A any](a A) Option[A] {
	if isNil(a) {
		return None[A]()
	}
	return Some(a)
}

func isNil(a any) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// FromNullableK lifts a pointer-returning function into one returning Option.
func FromNullableK[A, B any](f func(A) *B) func(A) Option[B] {
	return func(a A) Option[B] {
		return FromNullable(f(a))
	}
}

// ChainNullableK chains a pointer-returning function, useful for walking
// optional fields.
func ChainNullableK[A, B any](f func(A) *B) func(Option[A]) Option[B] {
	return Chain(FromNullableK(f))
}

// TryCatch runs f and returns Some of its result. A non-nil error or a panic
// yields None; the cause is discarded. Use either.TryCatch to keep it.
func TryCatch[A any](f func() (A, error)) (result Option[A]) {
	defer func() {
		if r := recover(); r != nil {
			result = None[A]()
		}
	}()
	value, err := f()
	if err != nil {
		return None[A]()
	}
	return Some(value)
}

// TryCatchK lifts a fallible function into one returning Option.
func TryCatchK[A, B any](f func(A) (B, error)) func(A) Option[B] {
	return func(a A) Option[B] {
		return TryCatch(func() (B, error) {
			return f(a)
		})
	}
}

// FromEither keeps the right value of an Either, discarding the left one.
func FromEither[E, A any](e either.Either[E, A]) Option[A] {
	_, a, ok := e.Unpack()
	return FromComma(a, ok)
}

// GetRight is an alias of FromEither.
func GetRight[E, A any](e either.Either[E, A]) Option[A] {
	return FromEither(e)
}

// GetLeft keeps the left value of an Either.
func GetLeft[E, A any](e either.Either[E, A]) Option[E] {
	l, _, isRight := e.Unpack()
	return FromComma(l, !isRight)
}

// FromEitherK lifts an Either-returning function into one returning Option.
func FromEitherK[E, A, B any](f func(A) either.Either[E, B]) func(A) Option[B] {
	return func(a A) Option[B] {
		return FromEither(f(a))
	}
}

// ChainEitherK chains an Either-returning function.
func ChainEitherK[E, A, B any](f func(A) either.Either[E, B]) func(Option[A]) Option[B] {
	return Chain(FromEitherK(f))
}

// ToEither converts None into Left(onNone()) and Some(a) into Right(a).
func ToEither[A, E any](onNone func() E) func(Option[A]) either.Either[E, A] {
	return func(o Option[A]) either.Either[E, A] {
		if o.isSome {
			return either.Right[E](o.value)
		}
		return either.Left[A](onNone())
	}
}

// Match invokes onNone for None and onSome with the value for Some.
func Match[A, B any](onNone func() B, onSome func(A) B) func(Option[A]) B {
	return func(o Option[A]) B {
		if o.isSome {
			return onSome(o.value)
		}
		return onNone()
	}
}

// MatchW is Match with independent result types. The union of the two
// results is returned as an Either: Left for the None branch, Right for the
// Some branch.
func MatchW[A, B, C any](onNone func() B, onSome func(A) C) func(Option[A]) either.Either[B, C] {
	return func(o Option[A]) either.Either[B, C] {
		if o.isSome {
			return either.Right[B](onSome(o.value))
		}
		return either.Left[C](onNone())
	}
}

// GetOrElse returns the value or the lazily computed default.
func GetOrElse[A any](onNone func() A) func(Option[A]) A {
	return func(o Option[A]) A {
		if o.isSome {
			return o.value
		}
		return onNone()
	}
}

// ToNullable returns nil for None and a pointer to a copy of the value for Some.
func ToNullable[A any](o Option[A]) *A {
	if o.isSome {
		v := o.value
		return &v
	}
	return nil
}

// ToUndefined returns the value and true for Some, the zero value and false
// for None.
func ToUndefined[A any](o Option[A]) (A, bool) {
	return o.value, o.isSome
}

// ToError returns the value, or ErrNotPresent for None.
func ToError[A any](o Option[A]) (A, error) {
	if o.isSome {
		return o.value, nil
	}
	var zero A
	return zero, ErrNotPresent
}
