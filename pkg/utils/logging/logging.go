package logging

import (
	"context"
	"log/slog"
	"os"
)

type ctxLoggerKey struct{}

var defaultLogger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Default returns the process-wide logger
func Default() *slog.Logger {
	return defaultLogger
}

// SetDefault replaces the process-wide logger. It is intended to be called
// once at startup, after the logger flags are resolved.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
}

// With attaches a logger to the context
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From extracts the logger from the context, falling back to the default
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return defaultLogger
}
