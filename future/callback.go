package future

import (
	"runtime/debug"

	"github.com/bwintertkb/retry-macro/logger"
	"github.com/bwintertkb/retry-macro/utils"
)

// invokeCallback runs a user-provided callback on its own goroutine with
// panic recovery, so a misbehaving callback can neither block promise
// fulfillment nor crash the process. Nil callbacks are ignored. The kind
// parameter names the callback type in the log line when a panic occurs.
func invokeCallback[T any](kind string, callback func(T), value T) {
	if callback == nil {
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				if err := utils.GetPanicRecoveryError(r, debug.Stack()); err != nil {
					logger.Get().Error("panic encountered in future."+kind+" callback", "error", err)
				}
			}
		}()

		callback(value)
	}()
}
