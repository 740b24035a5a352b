package auth

import (
	"time"

	"collegeblog/config"
	"collegeblog/internal/domain/service"
	"collegeblog/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// The signing secret is read once here and never rotated.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return newJWTService(cfg.SecretKey.Access, time.Now), nil
}

func newJWTService(secret string, now func() time.Time) *jwtService {
	return &jwtService{
		secret: []byte(secret),
		ttl:    service.SessionTokenTTL,
		now:    now,
	}
}

// Issue creates a signed token carrying the user's id and email.
func (s *jwtService) Issue(userID int64, email string) (string, error) {
	issuedAt := s.now()
	claims := &service.Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(), // tokens issued within the same second still differ
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify parses the token, checks the HMAC signature and the expiry, and returns its claims.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, classifyTokenError(err)
	}

	if claims.UserID <= 0 {
		return nil, errors.Wrap(service.ErrTokenMalformed, "token has no user id")
	}

	return claims, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return errors.Wrap(service.ErrTokenSignatureInvalid, err.Error())
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	default:
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	}
}
