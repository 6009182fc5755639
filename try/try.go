// Package try provides a Try type that holds the outcome of a fallible
// computation: either a value or an error, never meaningfully both.
package try

// Try holds the result of an operation that can fail. Exactly one of Value
// and Error is meaningful: Error == nil means success.
type Try[A any] struct {
	Value A
	Error error
}

// Of wraps a conventional (value, error) return pair into a Try.
// It is designed to be called directly on a function invocation:
//
//	outcome := try.Of(fetchUser(id))
func Of[A any](value A, err error) Try[A] {
	return Try[A]{Value: value, Error: err}
}

// IsSuccess reports whether the operation succeeded.
func (t Try[A]) IsSuccess() bool {
	return t.Error == nil
}

// IsFailure reports whether the operation failed.
func (t Try[A]) IsFailure() bool {
	return t.Error != nil
}

// Get unwraps the Try back into a (value, error) pair.
// On failure the returned value is the zero value of A.
func (t Try[A]) Get() (A, error) { //nolint:ireturn
	if t.IsFailure() {
		var zero A

		return zero, t.Error
	}

	return t.Value, nil
}

// GetOrElse returns the value on success, or defaultValue on failure.
func (t Try[A]) GetOrElse(defaultValue A) A { //nolint:ireturn
	if t.IsSuccess() {
		return t.Value
	}

	return defaultValue
}

// Map applies f to a successful Try's value, producing a new Try.
// A failed Try passes through unchanged.
func Map[A, B any](t Try[A], f func(A) (B, error)) Try[B] {
	if t.IsFailure() {
		return Try[B]{Error: t.Error}
	}

	val, err := f(t.Value)

	return Try[B]{Value: val, Error: err}
}
