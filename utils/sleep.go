package utils

import (
	"context"
	"time"
)

// SleepCtx waits for the given duration or until the context is done,
// whichever comes first. Unlike time.Sleep it never blocks past
// cancellation; it returns the context's error if the wait was interrupted.
// Non-positive durations return immediately.
func SleepCtx(ctx context.Context, dur time.Duration) error {
	if dur <= 0 {
		return nil
	}

	timer := time.NewTimer(dur)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
