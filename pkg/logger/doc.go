// Package logger provides a context-aware wrapper around Go's slog
// package: a single factory - New - configured with functional options,
// plus attribute helpers keeping field names consistent across the
// library.
//
// The minimum level set with WithLevel filters records natively through
// slog; registered ContextExtractor callbacks inject request-scoped
// attributes (e.g. a request id) into every record at Handle time.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelWarn),
//	    logger.WithJSONFormatter(),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "client token rejected", logger.Reason("forged"))
package logger
