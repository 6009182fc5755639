// Package retry executes fallible operations repeatedly until they succeed
// or the attempt budget runs out. Every failure along the way is preserved:
// when the budget is exhausted the caller receives an *Error holding each
// attempt's error in the order it occurred, never just the last one.
//
// Operations are zero-argument closures. Because the closure is invoked once
// per attempt, the closure body is the natural place to produce a fresh,
// independent set of inputs for each attempt — capture cloneable values and
// clone them inside the closure, or capture a factory:
//
//	payload := []byte("request body")
//	result, err := retry.Do(3, func() (int, error) {
//	    return send(slices.Clone(payload)) // each attempt gets its own copy
//	})
//
// Four call shapes are provided: Do and DoSleep block the calling goroutine,
// DoContext and DoContextSleep honor context cancellation at both the
// invocation point and the delay point. The Sleep variants wait a fixed
// duration after each failed attempt; there is no backoff or jitter at this
// layer, and no error classification — every failure is retried until the
// budget runs out. Callers needing selective retry should filter before
// invoking or inspect the collected errors afterwards.
//
// For a reusable, option-configured form:
//
//	runner := retry.NewRunner[string](
//	    retry.WithAttempts(5),
//	    retry.WithDelay(100*time.Millisecond),
//	)
//	result, err := runner.Do(ctx, fetch)
package retry

import (
	"context"
	"time"

	"github.com/bwintertkb/retry-macro/errors"
	"github.com/bwintertkb/retry-macro/try"
	"github.com/bwintertkb/retry-macro/utils"
	"github.com/bwintertkb/retry-macro/zero"
)

const defaultAttempts = 3

// Operation is a fallible computation with no parameters. The caller binds
// its arguments into the closure; invoking the closure again is what
// re-supplies them for the next attempt.
type Operation[T any] func() (T, error)

// ContextOperation is an Operation that observes context cancellation and
// can read its attempt index via Attempt(ctx).
type ContextOperation[T any] func(ctx context.Context) (T, error)

// Runner executes operations with a fixed retry configuration. Create one
// with NewRunner when several call sites share the same policy.
type Runner[T any] interface {
	Do(ctx context.Context, f ContextOperation[T]) (T, error)
}

// NewRunner creates a Runner with the specified options. Defaults are
// 3 attempts and no inter-attempt delay.
func NewRunner[T any](opts ...Option) Runner[T] {
	intOpts := &options{
		attempts: defaultAttempts,
		sleep:    utils.SleepCtx,
	}

	for _, option := range opts {
		option(intOpts)
	}

	return &runnerImpl[T]{opts: intOpts}
}

// runnerImpl is the concrete implementation of the Runner interface.
type runnerImpl[T any] struct {
	opts *options
}

// Do executes f with retry logic according to the runner's configuration.
func (r *runnerImpl[T]) Do(ctx context.Context, f ContextOperation[T]) (T, error) { //nolint:ireturn
	return do(ctx, r.opts, f)
}

// Do invokes f up to attempts times on the calling goroutine, returning the
// first success. If every attempt fails, it returns an *Error carrying each
// attempt's error in order. With attempts == 0 the operation is never
// invoked and the returned *Error has an empty Retries slice.
func Do[T any](attempts uint, f Operation[T]) (T, error) { //nolint:ireturn
	opts := &options{attempts: Attempts(attempts), sleep: blockingSleep}

	return do(context.Background(), opts, dropContext(f))
}

// DoSleep is Do with a fixed pause between attempts. The calling goroutine
// blocks for delay after every failed attempt, including the last one, so
// with n failures the total wait is n*delay.
func DoSleep[T any](attempts uint, delay time.Duration, f Operation[T]) (T, error) { //nolint:ireturn
	opts := &options{
		attempts: Attempts(attempts),
		delay:    someDelay(delay),
		sleep:    blockingSleep,
	}

	return do(context.Background(), opts, dropContext(f))
}

// DoContext invokes f up to attempts times, passing the context through to
// each attempt. If ctx is cancelled the call returns the context's error
// immediately; errors collected from earlier attempts are discarded.
func DoContext[T any](ctx context.Context, attempts uint, f ContextOperation[T]) (T, error) { //nolint:ireturn
	opts := &options{attempts: Attempts(attempts), sleep: utils.SleepCtx}

	return do(ctx, opts, f)
}

// DoContextSleep is DoContext with a fixed pause between attempts. The wait
// is context-aware: it yields rather than blocking a thread, and it is cut
// short if ctx is cancelled.
func DoContextSleep[T any](
	ctx context.Context,
	attempts uint,
	delay time.Duration,
	f ContextOperation[T],
) (T, error) { //nolint:ireturn
	opts := &options{
		attempts: Attempts(attempts),
		delay:    someDelay(delay),
		sleep:    utils.SleepCtx,
	}

	return do(ctx, opts, f)
}

// do is the core attempt loop shared by every call shape. Attempts are
// strictly sequential: attempt i+1 never starts before attempt i (and its
// post-failure delay) has finished.
func do[T any](ctx context.Context, opts *options, f ContextOperation[T]) (T, error) { //nolint:ireturn
	retries := errors.NewCollection(int(opts.attempts))

	for attemptIndex := uint(0); Attempts(attemptIndex) < opts.attempts; attemptIndex++ {
		if err := ctx.Err(); err != nil {
			return zero.Value[T](), err
		}

		outcome := try.Of(f(withAttempt(ctx, attemptIndex)))
		if outcome.IsSuccess() {
			return outcome.Value, nil
		}

		retries.Add(outcome.Error)

		if delay, ok := opts.delay.Get(); ok {
			// The reference behavior sleeps after every failure, including
			// the final one. WithoutFinalDelay opts out.
			if opts.skipFinalDelay && Attempts(attemptIndex+1) == opts.attempts {
				continue
			}

			if err := opts.sleep(ctx, delay); err != nil {
				return zero.Value[T](), err
			}
		}
	}

	return zero.Value[T](), &Error{Retries: retries.Errors()}
}

// blockingSleep is the wait capability for the synchronous call shapes: it
// parks the calling goroutine unconditionally.
func blockingSleep(_ context.Context, dur time.Duration) error {
	time.Sleep(dur)

	return nil
}

// dropContext adapts a plain Operation to the context-aware loop.
func dropContext[T any](f Operation[T]) ContextOperation[T] {
	return func(context.Context) (T, error) {
		return f()
	}
}
