// Package future provides a minimal Future/Promise pair for awaiting the
// result of work running in another goroutine.
//
// A Future is the read side: callers block on Get or Await, or register
// callbacks. A Promise is the write side: exactly one fulfillment wins, and
// later fulfillments are ignored. Go and GoContext cover the common case of
// running a function in the background with panic recovery.
package future

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/bwintertkb/retry-macro/try"
	"github.com/bwintertkb/retry-macro/utils"
	"github.com/bwintertkb/retry-macro/zero"
	"go.uber.org/atomic"
)

// Future represents the eventual result of an asynchronous computation.
type Future[T any] struct {
	once        sync.Once
	result      try.Try[T]
	resultReady chan struct{}
	completed   *atomic.Bool

	// mu guards callback registration against concurrent fulfillment.
	mu               sync.Mutex
	successCallbacks []func(T)
	errorCallbacks   []func(error)
}

// Promise is the write-only side of a Future. It holds a reference to the
// future rather than the other way around, so futures can be handed out
// without exposing the ability to complete them.
type Promise[T any] struct {
	future *Future[T]
}

// New creates an unfulfilled Future together with its Promise.
func New[T any]() (*Future[T], *Promise[T]) {
	fut := &Future[T]{
		resultReady: make(chan struct{}),
		completed:   atomic.NewBool(false),
	}

	return fut, &Promise[T]{future: fut}
}

// Success fulfills the promise with a value. Only the first fulfillment of a
// promise has any effect.
func (p *Promise[T]) Success(value T) {
	p.fulfill(try.Try[T]{Value: value})
}

// Failure fulfills the promise with an error. Only the first fulfillment of
// a promise has any effect.
func (p *Promise[T]) Failure(err error) {
	p.fulfill(try.Try[T]{Error: err})
}

// Complete fulfills the promise from a conventional (value, error) pair.
func (p *Promise[T]) Complete(value T, err error) {
	p.fulfill(try.Of(value, err))
}

// fulfill stores the result, broadcasts completion by closing resultReady,
// and invokes any registered callbacks. sync.Once guarantees only the first
// fulfillment wins.
func (p *Promise[T]) fulfill(result try.Try[T]) {
	p.future.once.Do(func() {
		p.future.result = result

		// Hold the lock while closing the channel so callback registration
		// cannot race with callback collection.
		p.future.mu.Lock()

		close(p.future.resultReady)
		p.future.completed.Store(true)

		successCallbacks := p.future.successCallbacks
		errorCallbacks := p.future.errorCallbacks
		p.future.successCallbacks = nil
		p.future.errorCallbacks = nil

		p.future.mu.Unlock()

		if result.IsSuccess() {
			for _, callback := range successCallbacks {
				invokeCallback("OnSuccess", callback, result.Value)
			}
		} else {
			for _, callback := range errorCallbacks {
				invokeCallback("OnError", callback, result.Error)
			}
		}
	})
}

// Get blocks until the future is fulfilled and returns its result.
func (f *Future[T]) Get() (T, error) { //nolint:ireturn
	<-f.resultReady

	return f.result.Get()
}

// Await blocks until the future is fulfilled or the context is done. If the
// context wins, the context's error is returned and the computation keeps
// running in the background.
func (f *Future[T]) Await(ctx context.Context) (T, error) { //nolint:ireturn
	select {
	case <-ctx.Done():
		return zero.Value[T](), ctx.Err()
	case <-f.resultReady:
		return f.result.Get()
	}
}

// IsCompleted reports whether the future has been fulfilled.
func (f *Future[T]) IsCompleted() bool {
	return f.completed.Load()
}

// OnSuccess registers a callback invoked with the value when the future
// succeeds. If the future is already fulfilled, the callback fires
// immediately. Callbacks run on their own goroutines.
func (f *Future[T]) OnSuccess(callback func(T)) {
	f.mu.Lock()

	if !f.completed.Load() {
		f.successCallbacks = append(f.successCallbacks, callback)
		f.mu.Unlock()

		return
	}

	f.mu.Unlock()

	if f.result.IsSuccess() {
		invokeCallback("OnSuccess", callback, f.result.Value)
	}
}

// OnError registers a callback invoked with the error when the future fails.
// If the future is already fulfilled, the callback fires immediately.
// Callbacks run on their own goroutines.
func (f *Future[T]) OnError(callback func(error)) {
	f.mu.Lock()

	if !f.completed.Load() {
		f.errorCallbacks = append(f.errorCallbacks, callback)
		f.mu.Unlock()

		return
	}

	f.mu.Unlock()

	if f.result.IsFailure() {
		invokeCallback("OnError", callback, f.result.Error)
	}
}

// Go runs f in a new goroutine and returns a future for its result. Panics
// in f are recovered and surface as errors on the future.
func Go[T any](f func() (T, error)) *Future[T] {
	fut, promise := New[T]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				promise.Failure(utils.GetPanicRecoveryError(r, debug.Stack()))
			}
		}()

		promise.Complete(f())
	}()

	return fut
}

// GoContext runs f in a new goroutine with the given context and returns a
// future for its result. If the context is already done, f is never invoked
// and the future fails with the context's error. Panics in f are recovered
// and surface as errors on the future.
func GoContext[T any](ctx context.Context, f func(ctx context.Context) (T, error)) *Future[T] {
	fut, promise := New[T]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				promise.Failure(utils.GetPanicRecoveryError(r, debug.Stack()))
			}
		}()

		if err := ctx.Err(); err != nil {
			promise.Failure(err)

			return
		}

		promise.Complete(f(ctx))
	}()

	return fut
}
