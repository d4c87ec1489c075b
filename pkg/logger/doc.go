// Package logger provides slog attribute constructors for the SDK's
// instrumentation.
//
// The helpers return commonly-used slog.Attr instances so attribute naming
// stays consistent across every call site that logs request metadata:
//
//	log.DebugContext(ctx, "request completed",
//	    logger.Endpoint("/contracts"),
//	    logger.StatusCode(resp.StatusCode),
//	    logger.Duration(time.Since(start)),
//	)
//
// Error produces an attribute only when the supplied error is non-nil,
// allowing calls like log.Debug("done", logger.Error(err)) without an
// additional nil check.
package logger
