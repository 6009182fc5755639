// Package lazy provides a value that is computed at most once, on first use.
package lazy

import (
	"sync"
	"sync/atomic"
)

// Of is a lazily-initialized value. The create callback runs at most once,
// on the first call to Get.
type Of[T any] struct {
	create      func() T
	once        sync.Once
	value       T
	initialized atomic.Bool
}

// New creates a lazy value. The callback is invoked later, when the value is
// first accessed through Get.
func New[T any](f func() T) *Of[T] {
	return &Of[T]{create: f}
}

// Get returns the value, initializing it first if necessary.
// If the create callback panics, the once state is reset so a later Get can
// retry initialization.
func (t *Of[T]) Get() T { //nolint:ireturn
	defer func() {
		if err := recover(); err != nil {
			t.once = sync.Once{}

			panic(err)
		}
	}()

	t.once.Do(func() {
		if t.create != nil {
			t.value = t.create()
			t.initialized.Store(true)
			t.create = nil
		}
	})

	return t.value
}

// Set overrides the value, bypassing the create callback.
func (t *Of[T]) Set(value T) {
	t.create = nil
	t.value = value
	t.initialized.Store(true)
}

// Initialized reports whether the value has been computed or set. Intended
// for tests and diagnostics rather than normal control flow.
func (t *Of[T]) Initialized() bool {
	return t.initialized.Load()
}
