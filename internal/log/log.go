// Package log carries the process zap logger through contexts. The CLI
// installs one with Init and NewContext; library code retrieves it with
// L, which falls back to the zap global (a nop until ReplaceGlobals),
// so packages never need a logger wired explicitly to stay quiet.
package log

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

// Init builds the process logger. Verbose selects the development
// config (console encoder, debug level); otherwise production JSON at
// info level.
func Init(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// NewContext returns a context carrying the logger.
func NewContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// L returns the logger carried by the context, or the zap global when
// the context carries none.
func L(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
			return l
		}
	}
	return zap.L()
}
