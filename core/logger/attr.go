package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors, enabling safe usage without checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Status creates an attribute for an HTTP status code.
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Method creates an attribute for an HTTP method.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Route creates an attribute for a normalized request route.
func Route(route string) slog.Attr {
	return slog.String("route", route)
}

// RequestID creates an attribute for a request correlation id.
// Returns an empty Attr for empty ids.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}
