// Package simultaneously runs independent fallible callbacks concurrently on
// a bounded worker pool and reports every failure, not just the first. Each
// callback commonly wraps its own retry chain; the chains run side by side
// while the attempts inside each one stay strictly sequential.
package simultaneously

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/bwintertkb/retry-macro/errors"
	"github.com/bwintertkb/retry-macro/utils"
)

// Do runs the callbacks concurrently, at most limit at a time, and waits for
// all of them to finish. A limit <= 0 means no cap beyond one worker per
// callback. The returned error folds every callback failure together
// (errors.Join order follows completion, not submission); nil means every
// callback succeeded. Panics inside callbacks are recovered and reported as
// failures.
func Do(ctx context.Context, limit int, callbacks ...func(ctx context.Context) error) error {
	if len(callbacks) == 0 {
		return nil
	}

	if limit <= 0 || limit > len(callbacks) {
		limit = len(callbacks)
	}

	pool := pond.NewPool(limit)

	var mu sync.Mutex

	errs := errors.NewCollection(len(callbacks))

	for _, callback := range callbacks {
		callback := callback
		pool.Submit(func() {
			if err := safeCall(ctx, callback); err != nil {
				mu.Lock()
				errs.Add(err)
				mu.Unlock()
			}
		})
	}

	pool.StopAndWait()

	return errs.GetError()
}

// safeCall invokes a callback with panic recovery.
func safeCall(ctx context.Context, callback func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = utils.GetPanicRecoveryError(r, debug.Stack())
		}
	}()

	return callback(ctx)
}
