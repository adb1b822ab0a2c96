// Package context carries per-request values (request id, signed-in user,
// request-scoped logger) from the HTTP layer down to the pipeline and clients.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	userIDKey
	loggerKey
)

// HeaderXRequestID is echoed to clients and forwarded to the bot service.
const HeaderXRequestID = "X-Request-Id"

// echoRequestIDKey stores the id on echo.Context for the response envelope.
const echoRequestIDKey = "request_id"

// GetRequestID returns the id assigned by the request id middleware, or "" outside it.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

// SetRequestID records the request id on both the echo context and the request context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), requestID)))
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithIdentity marks ctx as acting for a Discord user. The request-scoped
// logger (or fallback) gains a user_id attribute so pipeline warnings name
// the identity they degraded.
func WithIdentity(ctx context.Context, userID string, fallback *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	if logger := GetLoggerOrDefault(ctx, fallback); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID)))
	}

	return ctx
}

// UserIDFromContext returns the Discord user id set by WithIdentity.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)

	return id, ok && id != ""
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when there is none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
