package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSleepCtx(t *testing.T) {
	t.Parallel()

	t.Run("sleeps for specified duration", func(t *testing.T) {
		t.Parallel()

		start := time.Now()
		err := SleepCtx(context.Background(), 50*time.Millisecond)
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	})

	t.Run("returns immediately for zero duration", func(t *testing.T) {
		t.Parallel()

		start := time.Now()
		err := SleepCtx(context.Background(), 0)
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 10*time.Millisecond)
	})

	t.Run("returns immediately for negative duration", func(t *testing.T) {
		t.Parallel()

		err := SleepCtx(context.Background(), -time.Second)

		require.NoError(t, err)
	})

	t.Run("returns error when context is cancelled mid-sleep", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())

		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		start := time.Now()
		err := SleepCtx(ctx, 5*time.Second)
		elapsed := time.Since(start)

		require.ErrorIs(t, err, context.Canceled)
		assert.Less(t, elapsed, time.Second, "should not sleep the full duration")
	})

	t.Run("returns error for already-cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := SleepCtx(ctx, 50*time.Millisecond)

		require.ErrorIs(t, err, context.Canceled)
	})
}
