// Package auth provides the JWT implementation of the operator token service.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pushrelay/config"
	"pushrelay/internal/domain/service"
	"pushrelay/internal/errors"
)

const tokenIssuer = "pushrelay"

// jwtService signs and validates HS256 operator tokens.
type jwtService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// A secret is mandatory only when API authentication is enabled.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	var secret string
	if cfg.Auth != nil {
		secret = cfg.Auth.Secret
		if cfg.Auth.Enabled && secret == "" {
			return nil, errors.New("auth secret must be provided when auth is enabled")
		}
	}

	return &jwtService{secret: []byte(secret), now: time.Now}, nil
}

// GenerateToken issues a signed token for subject carrying roles.
func (s *jwtService) GenerateToken(subject string, roles []string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("auth secret is not configured")
	}

	now := s.now()
	claims := &service.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken parses tokenString and checks its signature, issuer and expiry.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	if len(s.secret) == 0 {
		return nil, errors.New("auth secret is not configured")
	}

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	return claims, nil
}
