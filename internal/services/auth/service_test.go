package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/killallgit/labeler-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(Config{
		AdminCode:     "admin123",
		AdminPassword: "password123",
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
	})
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	service := newTestService()

	token, err := service.Login("admin123", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, service.Verify(token))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name     string
		code     string
		password string
	}{
		{"wrong code", "nope", "password123"},
		{"wrong password", "admin123", "nope"},
		{"both wrong", "nope", "nope"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(tt.code, tt.password)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrCodeUnauthorized))
		})
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	service := newTestService()

	assert.Error(t, service.Verify(""))
	assert.Error(t, service.Verify("not.a.token"))
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	service := newTestService()

	other := NewService(Config{
		AdminCode:     "admin123",
		AdminPassword: "password123",
		JWTSecret:     "different-secret",
		TokenTTL:      time.Hour,
	})

	token, err := other.Login("admin123", "password123")
	require.NoError(t, err)

	assert.Error(t, service.Verify(token))
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	// Built directly since NewService corrects non-positive TTLs
	service := &Service{
		adminCode:     "admin123",
		adminPassword: "password123",
		secret:        []byte("test-secret"),
		ttl:           -time.Minute,
	}

	token, err := service.Login("admin123", "password123")
	require.NoError(t, err)

	assert.Error(t, service.Verify(token))
}

func TestVerifyRejectsUnsignedAlgorithm(t *testing.T) {
	service := newTestService()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.Error(t, service.Verify(token))
}

func TestTokenClaims(t *testing.T) {
	service := newTestService()

	token, err := service.Login("admin123", "password123")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["sub"])
	assert.NotEmpty(t, claims["jti"])
}
