// Package logger provides slog attribute helpers shared by the routing
// pipeline. The helpers use the empty Attr pattern for nil safety, so calls
// like log.Warn("msg", logger.Error(err)) need no explicit nil checks.
package logger
