// Package logger builds slog loggers for validext tools and exposes attribute
// helpers that keep key names consistent (code, operator, field, lang, ...).
//
// New applies Option functions, picks a text or JSON handler and wraps it with
// LogHandlerDecorator, which adds attributes pulled from the logging context:
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithContextValue(logger.KeyDocument, documentKey{}),
//	)
//	log.WarnContext(ctx, "validation failed", logger.Field("user.age"), logger.Code("notGreaterThan"))
//
// Error returns an empty attribute for a nil error, so it can be passed
// without a nil check.
package logger
