package utils //nolint:revive // utils is an appropriate package name for utility functions

import (
	"fmt"

	"github.com/bwintertkb/retry-macro/errors"
)

// GetPanicRecoveryError converts a recovered panic value and optional stack
// trace into an error wrapped with errors.ErrPanicRecovery. A nil panic
// value yields nil.
func GetPanicRecoveryError(recovered any, stack []byte) error {
	if recovered == nil {
		return nil
	}

	if err, ok := recovered.(error); ok {
		if stack != nil {
			return fmt.Errorf("%w: %w\nstack trace:\n%s", errors.ErrPanicRecovery, err, string(stack))
		}

		return fmt.Errorf("%w: %w", errors.ErrPanicRecovery, err)
	}

	if stack != nil {
		return fmt.Errorf("%w: %v\nstack trace:\n%s", errors.ErrPanicRecovery, recovered, string(stack))
	}

	return fmt.Errorf("%w: %v", errors.ErrPanicRecovery, recovered)
}
