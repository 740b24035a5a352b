package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenTTL is the fixed lifetime of a session token.
const SessionTokenTTL = 24 * time.Hour

// Reasons a session token fails verification. Callers treat all of them as an invalid token.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
)

// Claims is the identity carried by a session token.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited bearer tokens.
type TokenService interface {
	// Issue signs a token for the user that expires SessionTokenTTL after issuance.
	Issue(userID int64, email string) (string, error)

	// Verify checks signature and expiry and returns the decoded claims.
	Verify(token string) (*Claims, error)
}
