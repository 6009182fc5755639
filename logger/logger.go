// Package logger provides slog-based logging for the module. The library's
// core retry paths never log; only fire-and-forget asynchronous paths report
// errors here, so the package stays small: a configurable default logger and
// a context-aware accessor.
package logger

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"

	"github.com/bwintertkb/retry-macro/lazy"
)

// It's considered good practice to use unexported custom types for context
// keys. This avoids collisions with other packages that might be using the
// same string values for their own keys.
type contextKey string

const subsystemKey contextKey = "subsystem"

// configMutex serializes calls to ConfigureLoggingWithOptions, which mutate
// global state (the default slog and log loggers).
var configMutex sync.Mutex //nolint:gochecknoglobals

// current holds the logger returned by Get. Until configured it falls back
// to a plain text handler on stdout.
var current = lazy.New(func() *slog.Logger { //nolint:gochecknoglobals
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
})

// Options is used to configure logging.
type Options struct {
	Subsystem string
	JSON      bool
	MinLevel  slog.Level
	Output    io.Writer
}

// ConfigureLoggingWithOptions configures logging for the application and
// returns the resulting logger. It is thread-safe but modifies global state,
// so concurrent calls are serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	var handler slog.Handler

	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	} else {
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	logger := slog.New(handler)
	if opts.Subsystem != "" {
		logger = logger.With("subsystem", opts.Subsystem)
	}

	slog.SetDefault(logger)

	// Redirect the legacy log package as well, since 3rd party packages
	// might still use it.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.MinLevel)

	current.Set(logger)

	return logger
}

// Set overrides the logger returned by Get. Useful in tests to capture
// output (for example with slogt.New(t)).
func Set(l *slog.Logger) {
	current.Set(l)
}

// Get returns the configured logger. An optional context can be passed; if
// it carries a subsystem (see WithSubsystem), the returned logger is
// annotated with it.
func Get(ctxs ...context.Context) *slog.Logger {
	logger := current.Get()

	if len(ctxs) > 0 && ctxs[0] != nil {
		if name, ok := ctxs[0].Value(subsystemKey).(string); ok && name != "" {
			return logger.With("subsystem", name)
		}
	}

	return logger
}

// WithSubsystem annotates the context with a subsystem name that Get will
// attach to loggers derived from it.
func WithSubsystem(ctx context.Context, name string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, subsystemKey, name)
}
