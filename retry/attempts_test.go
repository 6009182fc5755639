package retry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttempt_NoRetryContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint(0), Attempt(context.Background()))
}

func TestAttempt_InsideLoop(t *testing.T) {
	t.Parallel()

	var indices []uint

	_, err := DoContext(context.Background(), 4, func(ctx context.Context) (int, error) {
		indices = append(indices, Attempt(ctx))

		if Attempt(ctx) < 3 {
			return 0, errAlways
		}

		return 1, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []uint{0, 1, 2, 3}, indices, "attempt indices are zero-based and sequential")
}

func TestWithAttempt_ContextsAreIndependent(t *testing.T) {
	t.Parallel()

	ctx1 := withAttempt(context.Background(), 0)
	ctx2 := withAttempt(context.Background(), 1)

	assert.Equal(t, uint(0), Attempt(ctx1))
	assert.Equal(t, uint(1), Attempt(ctx2))
}
