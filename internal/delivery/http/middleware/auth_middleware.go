package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "collegeblog/internal/delivery/context"
	domainerrors "collegeblog/internal/domain/errors"
	"collegeblog/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware gates routes behind a valid session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate rejects requests without a token (401) or with one that fails
// verification (403). On success the claims are available through
// deliverycontext.GetClaims and deliverycontext.ClaimsFrom.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := tokenFromHeader(c.Request().Header.Get(echo.HeaderAuthorization))
		if tokenString == "" {
			return domainerrors.ErrMissingToken
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			deliverycontext.LoggerFrom(c.Request().Context(), m.logger).
				Debug("Rejected session token", slog.Any("reason", err))

			return domainerrors.ErrInvalidToken
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// tokenFromHeader returns the second space-separated word of an Authorization
// header. The scheme word is not checked, so "Token abc" is verified as "abc".
func tokenFromHeader(header string) string {
	_, rest, found := strings.Cut(header, " ")
	if !found {
		return ""
	}
	token, _, _ := strings.Cut(rest, " ")

	return token
}
