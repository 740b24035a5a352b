package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	deliverycontext "collegeblog/internal/delivery/context"
	"collegeblog/internal/delivery/http/middleware"
	"collegeblog/internal/delivery/http/validator"
	"collegeblog/internal/domain/service"

	"github.com/labstack/echo/v4"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

// withClaims stands in for the auth gate.
func withClaims(claims *service.Claims) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetClaims(c, claims)

			return next(c)
		}
	}
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}
