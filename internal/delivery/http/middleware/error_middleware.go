package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "collegeblog/internal/delivery/context"
	"collegeblog/internal/delivery/http/response"
	domainerrors "collegeblog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is echo's HTTPErrorHandler. Every failure leaves as
// {"error": "<message>"}; causes are logged and never sent.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := m.classify(err, c)

	if status >= http.StatusInternalServerError {
		m.log(c).Error("Request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.Int("status", status),
			slog.String("error", err.Error()),
		)
	}

	if writeErr := response.Error(c, status, message); writeErr != nil {
		m.log(c).Error("Failed to write error response", slog.Any("error", writeErr))
	}
}

func (m *ErrorMiddleware) classify(err error, c echo.Context) (int, string) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode(), appErr.Message()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusNotFound {
			return domainerrors.ErrNotFound.HTTPCode(), domainerrors.ErrNotFound.Message()
		}
		if message, ok := httpErr.Message.(string); ok {
			return httpErr.Code, message
		}

		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	m.log(c).Warn("Unclassified error", slog.String("error", err.Error()))

	return http.StatusInternalServerError, domainerrors.ErrInternalError.Message()
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(c.Request().Context(), m.logger)
}
