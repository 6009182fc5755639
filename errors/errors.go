// Package errors provides error utilities shared across the module, chiefly
// an ordered Collection for accumulating failures from repeated or grouped
// operations.
package errors

import "errors"

// ErrPanicRecovery is the sentinel wrapped around errors produced by
// recovering from a panic.
var ErrPanicRecovery = errors.New("recovered from panic")

// Collection accumulates errors in the order they were added. It is not safe
// for concurrent use; callers running concurrently must synchronize access.
type Collection struct {
	errors []error
}

// NewCollection creates a Collection whose backing storage is pre-sized for
// the expected number of errors. A zero-value Collection is also usable.
func NewCollection(capacity int) *Collection {
	return &Collection{errors: make([]error, 0, capacity)}
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear resets the collection to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError reports whether the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// Errors returns the collected errors in insertion order. The returned slice
// is the collection's own backing storage; callers must not mutate it while
// continuing to Add.
func (c *Collection) Errors() []error {
	return c.errors
}

// GetError folds the collection into a single error: nil when empty, the
// error itself when there is exactly one, or errors.Join of all of them.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
