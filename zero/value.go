// Package zero provides helpers for producing and recognizing zero values
// of generic type parameters.
package zero

import "reflect"

// Value returns the zero value for type T. Generic code that must return
// "nothing" alongside an error can use this instead of declaring a throwaway
// variable.
//
// Example:
//
//	func fetch[T any]() (T, error) {
//	    return zero.Value[T](), errNotFound
//	}
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value equals the zero value of T, using
// reflect.DeepEqual for the comparison.
func IsZero[T any](value T) bool {
	var zeroVal T

	return reflect.DeepEqual(value, zeroVal)
}
