// Package logger configures the process-wide structured logger.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// RequestKey is the context key type for request-scoped values.
type RequestKey string

// RequestIDKey carries the request identifier through handler contexts.
const RequestIDKey RequestKey = "requestID"

// Setup installs a text slog handler as the default logger and returns it.
// The level string is one of debug, info, warn, error; anything else means
// info.
func Setup(level string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID stores a request identifier on the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID returns the request identifier from the context, if any.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
