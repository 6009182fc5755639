package retry

import (
	"context"
	"time"

	"github.com/bwintertkb/retry-macro/optional"
)

// Option configures a Runner created with NewRunner.
type Option func(*options)

// options holds the internal configuration for retry behavior. The sleep
// function is the injected wait capability: context-aware for runners and
// the context call shapes, plain blocking for the synchronous ones.
type options struct {
	attempts       Attempts
	delay          optional.Value[time.Duration]
	skipFinalDelay bool
	sleep          func(ctx context.Context, dur time.Duration) error
}

// WithAttempts sets the maximum number of attempts. An attempts value of 0
// means the operation is never invoked and the call fails immediately with
// an *Error whose Retries slice is empty.
func WithAttempts(a Attempts) Option {
	return func(o *options) {
		o.attempts = a
	}
}

// WithDelay sets a fixed pause applied after each failed attempt. Without
// this option there is no pause between attempts.
func WithDelay(d time.Duration) Option {
	return func(o *options) {
		o.delay = optional.Some(d)
	}
}

// WithoutFinalDelay skips the pause after the last failed attempt. By
// default the delay is applied after every failure, including the final one
// where no further attempt follows; that matches the reference behavior this
// package preserves. Enabling this option deviates from it by returning the
// aggregate error without the trailing wait.
func WithoutFinalDelay() Option {
	return func(o *options) {
		o.skipFinalDelay = true
	}
}

// someDelay wraps a duration for the internal optional delay field.
func someDelay(d time.Duration) optional.Value[time.Duration] {
	return optional.Some(d)
}
