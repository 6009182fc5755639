// Package optional provides a small Optional type for values that may or may
// not be present. It models presence explicitly instead of overloading zero
// values or nil pointers with meaning.
package optional

// Value represents a value of type T that may be absent.
// Use Some to construct a present value and None for an absent one.
// The zero Value is absent.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value holding the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) { //nolint:ireturn
	return o.value, o.isSet
}

// GetOrElse returns the value if present, or defaultValue otherwise.
func (o Value[T]) GetOrElse(defaultValue T) T { //nolint:ireturn
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// NonEmpty reports whether a value is present.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty reports whether the Value is absent.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// ForEach applies f to the value if one is present.
func (o Value[T]) ForEach(f func(T)) {
	if o.isSet {
		f(o.value)
	}
}
