package auth

import (
	"testing"
	"time"

	"pushrelay/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{Enabled: true, Secret: "test_operator_secret_key_very_long_for_testing"},
	})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.GenerateToken("ops@example.com", []string{"operator"}, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
	assert.Equal(t, tokenIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.HasRole("operator"))
	assert.False(t, claims.HasRole("admin"))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestService(t)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.GenerateToken("ops", []string{"operator"}, time.Hour)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)

	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestService(t)
	token, err := svc.GenerateToken("ops", nil, time.Hour)
	require.NoError(t, err)

	other := &jwtService{secret: []byte("another_secret"), now: time.Now}
	_, err = other.ValidateToken(token)

	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc := newTestService(t)
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Issuer: tokenIssuer})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(unsigned)

	assert.Error(t, err)
}

func TestJWTService_Malformed(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ValidateToken("not.a.jwt")

	assert.Error(t, err)
}

func TestNewJWTService_Config(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{Enabled: true}})
	assert.Error(t, err)

	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{Enabled: false}})
	require.NoError(t, err)

	_, err = svc.GenerateToken("ops", nil, time.Minute)
	assert.Error(t, err)
	_, err = svc.ValidateToken("anything")
	assert.Error(t, err)
}
