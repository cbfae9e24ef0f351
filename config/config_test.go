package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pushrelay/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: pushrelay
http:
  port: 3000
database:
  driver: sqlite
  sqlite:
    path: /tmp/push.db
    busyTimeout: 2s
dispatch:
  batchLimit: 100
  strictTokenValidation: false
`

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("DISPATCH_STRICTTOKENVALIDATION", "true")
	t.Setenv("DATABASE_SQLITE_BUSYTIMEOUT", "7s")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, "pushrelay", cfg.Env.ServiceName)
	require.NotNil(t, cfg.Dispatch)
	assert.True(t, cfg.Dispatch.StrictTokenValidation)
	assert.Equal(t, 100, cfg.Dispatch.BatchLimit)
	require.NotNil(t, cfg.Database)
	assert.Equal(t, "/tmp/push.db", cfg.Database.SQLite.Path)
	assert.Equal(t, 7*time.Second, cfg.Database.SQLite.BusyTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Dispatch = &DispatchConfig{BatchLimit: 5000}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultVersion, cfg.Env.Version)
	assert.Equal(t, constants.DatabaseDriverSQLite, cfg.Database.Driver)
	assert.Equal(t, defaultSQLitePath, cfg.Database.SQLite.Path)
	assert.NotNil(t, cfg.Database.Postgres)
	assert.Equal(t, constants.DefaultBatchLimit, cfg.Dispatch.BatchLimit)
	assert.Equal(t, defaultRequiredRole, cfg.Auth.RequiredRole)
	assert.Nil(t, cfg.Events)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("DATABASE_POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("DATABASE_POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("DATABASE_POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("DATABASE_POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()
	require.Len(t, replicas, 1)
	assert.Equal(t, ConnectionConfig{Host: "replica-0", Port: "5432", UserName: "reader"}, replicas[0])
}
