package either

import (
	"errors"
	"fmt"
)

// ErrPanic marks errors produced from a recovered panic.
var ErrPanic = errors.New("either: recovered panic")

// TryCatch runs f and captures its outcome. A panic inside f is recovered and
// reported as an error wrapping ErrPanic.
func TryCatch[A any](f func() (A, error)) (result Either[error, A]) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				result = Left[A](fmt.Errorf("%w: %w", ErrPanic, err))
				return
			}
			result = Left[A](fmt.Errorf("%w: %v", ErrPanic, r))
		}
	}()
	value, err := f()
	if err != nil {
		return Left[A](err)
	}
	return Right[error](value)
}

// TryCatchK lifts a fallible function into one returning Either.
func TryCatchK[A, B any](f func(A) (B, error)) func(A) Either[error, B] {
	return func(a A) Either[error, B] {
		return TryCatch(func() (B, error) {
			return f(a)
		})
	}
}

// FromError pairs a value with an error the Go way: a nil error yields Right.
func FromError[A any](value A, err error) Either[error, A] {
	if err != nil {
		return Left[A](err)
	}
	return Right[error](value)
}

// ToError unpacks an Either[error, A] into Go's (value, error) convention.
func ToError[A any](e Either[error, A]) (A, error) {
	if e.isRight {
		return e.right, nil
	}
	var zero A
	return zero, e.left
}
