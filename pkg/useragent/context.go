package useragent

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/uaparse/pkg/logger"
)

type contextKey struct{}

// WithContext stores a classification result in the context.
func WithContext(ctx context.Context, res Result) context.Context {
	return context.WithValue(ctx, contextKey{}, res)
}

// FromContext returns the result stored by Middleware. The boolean is false
// when the request carried no User-Agent header.
func FromContext(ctx context.Context) (Result, bool) {
	if ctx == nil {
		return Result{}, false
	}
	res, ok := ctx.Value(contextKey{}).(Result)
	return res, ok
}

// LoggerExtractor adds the classified client group to every log record
// written with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if res, ok := FromContext(ctx); ok && !res.IsZero() {
			return logger.Client(res.Platform, res.Browser, res.Version), true
		}
		return slog.Attr{}, false
	}
}
