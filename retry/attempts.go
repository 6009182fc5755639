package retry

import "context"

// Attempts is the maximum number of times an operation may be invoked by a
// single retry call. Zero means no attempt is ever made.
type Attempts uint

// ctxKey is the type for context keys used internally to avoid collisions.
type ctxKey string

// attemptKey is the context key holding the current attempt index.
const attemptKey ctxKey = "attempt"

// withAttempt annotates the context with the zero-based attempt index so the
// operation being retried can know which attempt it is on.
func withAttempt(ctx context.Context, attempt uint) context.Context {
	return context.WithValue(ctx, attemptKey, attempt)
}

// Attempt returns the zero-based index of the current attempt, or 0 when the
// context does not come from a retry loop.
//
// Example:
//
//	result, err := retry.DoContext(ctx, 5, func(ctx context.Context) (int, error) {
//	    log.Printf("attempt %d", retry.Attempt(ctx))
//	    return fetch(ctx)
//	})
func Attempt(ctx context.Context) uint {
	i := ctx.Value(attemptKey)
	if i == nil {
		return 0
	}

	attemptNum, ok := i.(uint)
	if !ok {
		return 0
	}

	return attemptNum
}
