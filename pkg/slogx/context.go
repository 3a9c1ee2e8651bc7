package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// WithContext attaches logger to ctx so downstream code logs with the
// request's accumulated attributes.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the contextual logger, falling back to slog.Default
// when none was attached (e.g. background workers).
func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}
