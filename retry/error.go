package retry

import "fmt"

// Error is the aggregate failure returned when every attempt failed. Retries
// holds one entry per failed attempt, in attempt order; position in the
// slice is the only record of when a failure occurred. The value is built
// once, when the budget is exhausted, and never mutated afterwards.
type Error struct {
	Retries []error
}

// Error implements the error interface with a short summary. The individual
// attempt errors are reachable through Unwrap (and so through errors.Is and
// errors.As).
func (e *Error) Error() string {
	switch len(e.Retries) {
	case 0:
		return "retry: no attempts were made"
	case 1:
		return "retry: 1 attempt failed"
	default:
		return fmt.Sprintf("retry: all %d attempts failed", len(e.Retries))
	}
}

// Unwrap exposes the per-attempt errors to the errors package, the same way
// errors.Join does.
func (e *Error) Unwrap() []error {
	return e.Retries
}
