package logger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// With attaches a logger carrying fields to the context. Later calls
// accumulate fields on top of whatever logger is already stored.
func With(ctx context.Context, fields ...any) context.Context {
	l := From(ctx).With(fields...)
	return context.WithValue(ctx, ctxKey{}, l)
}

// From returns the context logger, falling back to the process default.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return LoggerWrapper()
}
