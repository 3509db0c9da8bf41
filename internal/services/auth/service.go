package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	apperrors "github.com/killallgit/labeler-api/pkg/errors"
)

// DefaultTokenTTL is how long an issued admin token stays valid.
const DefaultTokenTTL = 24 * time.Hour

// Service issues and verifies admin tokens. There is a single admin
// identity (code + password pair from configuration); tokens are signed
// HS256 JWTs.
type Service struct {
	adminCode     string
	adminPassword string
	secret        []byte
	ttl           time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	AdminCode     string
	AdminPassword string
	JWTSecret     string
	TokenTTL      time.Duration
}

// NewService creates a new auth service
func NewService(cfg Config) *Service {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	return &Service{
		adminCode:     cfg.AdminCode,
		adminPassword: cfg.AdminPassword,
		secret:        []byte(cfg.JWTSecret),
		ttl:           cfg.TokenTTL,
	}
}

// Login checks the admin credentials and returns a signed token.
func (s *Service) Login(code, password string) (string, error) {
	if code != s.adminCode || password != s.adminPassword {
		return "", apperrors.Unauthorized("invalid credentials")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"jti": uuid.New().String(),
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "signing token")
	}
	return signed, nil
}

// Verify checks that token is a valid, unexpired admin token.
func (s *Service) Verify(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return apperrors.Unauthorized("invalid token")
	}
	if !token.Valid {
		return apperrors.Unauthorized("invalid token")
	}
	return nil
}
