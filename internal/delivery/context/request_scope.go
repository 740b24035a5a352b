// Package context carries what a request accumulates on its way through the
// delivery layer: its id, its logger and, on gated routes, the session claims.
package context

import (
	"context"
	"log/slog"

	"collegeblog/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyClaims    ContextKey = "claims"

	// HeaderXRequestID is read from the request and echoed on the response.
	HeaderXRequestID = "X-Request-Id"
)

// BindRequestScope attaches the request id and its logger to the request
// context and echoes the id back to the client.
func BindRequestScope(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(string(KeyRequestID), requestID)
	c.Response().Header().Set(HeaderXRequestID, requestID)

	ctx := WithRequestID(c.Request().Context(), requestID)
	ctx = WithLogger(ctx, logger)
	c.SetRequest(c.Request().WithContext(ctx))
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFrom returns "" outside an HTTP request, e.g. in use case tests.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// LoggerFrom returns the request-scoped logger, or fallback when none is bound.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetClaims stores verified claims where both handlers (echo context) and use
// cases (request context) can reach them.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(string(KeyClaims), claims)
	c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), KeyClaims, claims)))
}

// GetClaims returns nil on routes the auth gate does not guard.
func GetClaims(c echo.Context) *service.Claims {
	claims, _ := c.Get(string(KeyClaims)).(*service.Claims)

	return claims
}

func ClaimsFrom(ctx context.Context) *service.Claims {
	claims, _ := ctx.Value(KeyClaims).(*service.Claims)

	return claims
}
