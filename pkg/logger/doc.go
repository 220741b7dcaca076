// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
// Build picks a JSON or text handler, optionally fans records out to extra
// handlers (slog-multi) and to Sentry (slog-sentry), attaches static
// attributes and, when context extractors are configured, wraps everything
// with LogHandlerDecorator, which pulls request-scoped attributes out of the
// context on every Handle call. New is Build for startup code: it panics
// instead of returning an error.
//
// # Usage
//
//	log, err := logger.Build(
//	    logger.WithLevel(logger.ParseLevel("debug")),
//	    logger.WithTextFormatter(),
//	    logger.WithContextExtractors(logger.AttrsFromContext),
//	)
//	if err != nil {
//	    return err
//	}
//
//	ctx = logger.ContextWithAttrs(ctx, slog.String("request_id", rid))
//	log.ErrorContext(ctx, "validation fault",
//	    logger.Component("validator"),
//	    logger.Field("email"),
//	    logger.Error(err),
//	)
//
// # Sentry
//
// WithSentry gives the logger its own Sentry client and hub, so the global
// hub is left untouched, and forwards records at or above the given level.
// An empty DSN is a no-op, so the option can be wired unconditionally from
// configuration.
package logger
