package future_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bwintertkb/retry-macro/future"
	"github.com/bwintertkb/retry-macro/logger"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
)

var errAsync = errors.New("async test error")

//nolint:paralleltest // installs a test logger globally
func TestAsync_RunsFunction(t *testing.T) {
	logger.Set(slogt.New(t))

	var wg sync.WaitGroup

	wg.Add(1)

	future.Async(func() {
		wg.Done()
	})

	wg.Wait()
}

//nolint:paralleltest // installs a test logger globally
func TestAsyncWithError_LogsError(t *testing.T) {
	logger.Set(slogt.New(t))

	var wg sync.WaitGroup

	wg.Add(1)

	future.AsyncWithError(func() error {
		defer wg.Done()

		return errAsync
	})

	wg.Wait()

	// The error handler runs on its own goroutine; allow it to fire.
	time.Sleep(20 * time.Millisecond)
}

//nolint:paralleltest // installs a test logger globally
func TestAsync_PanicDoesNotCrash(t *testing.T) {
	logger.Set(slogt.New(t))

	future.Async(func() {
		panic("background panic")
	})

	// Reaching this point without crashing is the assertion; give the
	// recovery path a moment to log.
	time.Sleep(20 * time.Millisecond)
	assert.True(t, true)
}
