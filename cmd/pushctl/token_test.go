package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"pushrelay/config"
	"pushrelay/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueToken(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{Enabled: true, Secret: "ctl-secret", RequiredRole: "operator"}}
	var out bytes.Buffer

	require.NoError(t, issueToken(&out, cfg, "ops@example.com", "", time.Hour))

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	claims, err := tokenSvc.ValidateToken(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
	assert.True(t, claims.HasRole("operator"))
}

func TestIssueToken_NoSecret(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{}}

	err := issueToken(&bytes.Buffer{}, cfg, "ops", "operator", time.Hour)

	assert.Error(t, err)
}
