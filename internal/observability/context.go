package observability

import "context"

type loggerContextKey struct{}

// WithLogger returns a context carrying a request-scoped logger, typically
// one enriched with the request id and trace identifiers.
func WithLogger(ctx context.Context, l Logger) context.Context {
	if ctx == nil || l == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerContextKey{}, l)
}

// Log returns the request-scoped logger, or fallback when the context does
// not carry one.
func Log(ctx context.Context, fallback Logger) Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerContextKey{}).(Logger); ok && l != nil {
			return l
		}
	}
	return fallback
}
