package future

import "github.com/bwintertkb/retry-macro/logger"

// Async runs the given function in the background without blocking. This is
// a fire-and-forget operation: the caller does not wait for completion or
// receive a result. Panics during execution are recovered and logged through
// the default logger.
func Async(f func()) {
	fut := Go(func() (struct{}, error) {
		f()

		return struct{}{}, nil
	})

	fut.OnError(func(err error) {
		logger.Get().Error("future.Async", "error", err)
	})
}

// AsyncWithError runs the given function in the background without blocking,
// allowing it to return an error. Errors and recovered panics are logged
// through the default logger.
func AsyncWithError(f func() error) {
	fut := Go(func() (struct{}, error) {
		return struct{}{}, f()
	})

	fut.OnError(func(err error) {
		logger.Get().Error("future.Async", "error", err)
	})
}
