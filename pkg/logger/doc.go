// Package logger builds context-aware slog loggers with functional options.
//
// New returns a *slog.Logger whose handler is wrapped by LogHandlerDecorator.
// The decorator runs every registered ContextExtractor on each record, so
// request-scoped values (request id, classified client) end up in the log
// line without being passed around explicitly.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "uaparse"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        useragent.LoggerExtractor(),
//	    ),
//	)
//	log.InfoContext(ctx, "classified", logger.Client(res.Platform, res.Browser, res.Version))
//
// Error and RequestID return an empty attribute for nil or empty input, which
// slog drops, so call sites need no nil checks.
package logger
