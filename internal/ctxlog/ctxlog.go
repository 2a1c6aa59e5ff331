// Package ctxlog carries the run's slog.Logger through context.Context so
// every stage of a run logs through the same handler.
package ctxlog

import (
	"context"
	"log/slog"
)

type key struct{}

var loggerKey = key{}

// WithLogger returns a copy of ctx that carries logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored by WithLogger. A missing logger is a
// wiring bug and panics.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	panic("ctxlog: logger missing from context")
}

// Stage returns the context logger tagged with the pipeline stage name.
func Stage(ctx context.Context, name string) *slog.Logger {
	return FromContext(ctx).With("stage", name)
}
