package retry

import (
	"context"

	"github.com/bwintertkb/retry-macro/future"
)

// Async runs the retry loop on a background goroutine and returns a future
// for its outcome. The attempt chain itself stays strictly sequential — only
// the chain as a whole moves off the caller's goroutine, so the caller can
// await the result without blocking:
//
//	fut := retry.Async(ctx, fetch, retry.WithAttempts(5), retry.WithDelay(100*time.Millisecond))
//	// ... other work ...
//	result, err := fut.Await(ctx)
//
// Cancelling ctx cuts the chain short; the future then fails with the
// context's error.
func Async[T any](ctx context.Context, f ContextOperation[T], opts ...Option) *future.Future[T] {
	return future.GoContext(ctx, func(ctx context.Context) (T, error) {
		return NewRunner[T](opts...).Do(ctx, f)
	})
}
