package auth

import (
	"strings"
	"testing"
	"time"

	"collegeblog/config"
	"collegeblog/internal/domain/service"
	"collegeblog/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

var issuedAt = time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newJWTService(testSecret, fixedClock(issuedAt))

	token, err := svc.Issue(42, "a@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.True(t, issuedAt.Equal(claims.IssuedAt.Time))
	assert.True(t, issuedAt.Add(24*time.Hour).Equal(claims.ExpiresAt.Time))
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_TokensDifferForSameUser(t *testing.T) {
	svc := newJWTService(testSecret, fixedClock(issuedAt))

	first, err := svc.Issue(1, "a@x.com")
	require.NoError(t, err)
	second, err := svc.Issue(1, "a@x.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_Expiry(t *testing.T) {
	token, err := newJWTService(testSecret, fixedClock(issuedAt)).Issue(1, "a@x.com")
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{name: "just issued", at: issuedAt},
		{name: "one second before expiry", at: issuedAt.Add(24*time.Hour - time.Second)},
		{name: "exactly at expiry", at: issuedAt.Add(24 * time.Hour), wantErr: service.ErrTokenExpired},
		{name: "a day later", at: issuedAt.Add(48 * time.Hour), wantErr: service.ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := newJWTService(testSecret, fixedClock(tt.at)).Verify(token)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, claims)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), claims.UserID)
		})
	}
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	ours := newJWTService(testSecret, fixedClock(issuedAt))
	theirs := newJWTService("some-other-secret", fixedClock(issuedAt))

	forged, err := theirs.Issue(1, "a@x.com")
	require.NoError(t, err)

	claims, err := ours.Verify(forged)
	assert.True(t, errors.Is(err, service.ErrTokenSignatureInvalid), "got %v", err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsTamperedPayload(t *testing.T) {
	svc := newJWTService(testSecret, fixedClock(issuedAt))

	victim, err := svc.Issue(1, "victim@x.com")
	require.NoError(t, err)
	attacker, err := svc.Issue(2, "attacker@x.com")
	require.NoError(t, err)

	victimParts := strings.Split(victim, ".")
	attackerParts := strings.Split(attacker, ".")
	require.Len(t, victimParts, 3)
	require.Len(t, attackerParts, 3)

	spliced := attackerParts[0] + "." + victimParts[1] + "." + attackerParts[2]

	_, err = svc.Verify(spliced)
	assert.True(t, errors.Is(err, service.ErrTokenSignatureInvalid), "got %v", err)
}

func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	svc := newJWTService(testSecret, fixedClock(issuedAt))

	claims := &service.Claims{
		UserID: 1,
		Email:  "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.True(t, errors.Is(err, service.ErrTokenSignatureInvalid), "got %v", err)
}

func TestJWTService_RejectsMalformed(t *testing.T) {
	svc := newJWTService(testSecret, fixedClock(issuedAt))

	for _, token := range []string{"", "clearly-not-a-jwt-token-format", "a.b.c"} {
		claims, err := svc.Verify(token)
		assert.True(t, errors.Is(err, service.ErrTokenMalformed), "token %q: got %v", token, err)
		assert.Nil(t, claims)
	}
}

func TestJWTService_RejectsMissingExpiry(t *testing.T) {
	svc := newJWTService(testSecret, fixedClock(issuedAt))

	claims := &service.Claims{UserID: 1, Email: "a@x.com"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed), "got %v", err)
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestNewJWTService_FromConfig(t *testing.T) {
	svc, err := NewJWTService(&config.Config{SecretKey: config.SecretKeyConfig{Access: testSecret}})
	require.NoError(t, err)

	token, err := svc.Issue(5, "b@x.com")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.UserID)
}
