// Package logging defines the structured logging interface the rest of the
// code logs through, keeping the concrete backend swappable.
package logging

import "context"

// Logger is a leveled, context-aware logger. Variadic args are key-value
// pairs, as in log.Info(ctx, "server started", "addr", addr).
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger whose records always carry the given
	// key-value pairs.
	With(args ...any) Logger
}
