package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"collegeblog/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestBindRequestScope(t *testing.T) {
	c, rec := newEchoContext()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	BindRequestScope(c, "req-1", logger)

	ctx := c.Request().Context()
	assert.Equal(t, "req-1", RequestIDFrom(ctx))
	assert.Same(t, logger, LoggerFrom(ctx, nil))
	assert.Equal(t, "req-1", c.Get(string(KeyRequestID)))
	assert.Equal(t, "req-1", rec.Header().Get(HeaderXRequestID))
}

func TestRequestIDFrom_Unbound(t *testing.T) {
	assert.Empty(t, RequestIDFrom(context.Background()))
	assert.Equal(t, "req-2", RequestIDFrom(WithRequestID(context.Background(), "req-2")))
}

func TestLoggerFrom(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-3"))

	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))
	assert.Same(t, scoped, LoggerFrom(WithLogger(context.Background(), scoped), fallback))
}

func TestClaims(t *testing.T) {
	c, _ := newEchoContext()
	assert.Nil(t, GetClaims(c))
	assert.Nil(t, ClaimsFrom(c.Request().Context()))

	claims := &service.Claims{UserID: 9, Email: "ada@college.edu"}
	SetClaims(c, claims)

	require.NotNil(t, GetClaims(c))
	assert.Same(t, claims, GetClaims(c))
	assert.Same(t, claims, ClaimsFrom(c.Request().Context()))
}
