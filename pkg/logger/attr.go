package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers so SDK call sites attach consistent keys to their
// slog records.

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the external user identifier under the key "user_id".
func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

// Service records the contracted service name under the key "service".
func Service(name string) slog.Attr {
	return slog.String("service", name)
}

// Feature records the evaluated feature name under the key "feature".
func Feature(name string) slog.Attr {
	return slog.String("feature", name)
}

// Endpoint records the API endpoint path under the key "endpoint".
func Endpoint(path string) slog.Attr {
	return slog.String("endpoint", path)
}

// Method records the HTTP method under the key "method".
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// StatusCode records the HTTP response status under the key "status_code".
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// RequestID records the outbound request identifier under the key
// "request_id".
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
