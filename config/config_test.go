package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFileYAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := []byte(`
server:
  port: 8080
  env: staging
database:
  dsn: postgres://library@localhost/library
session:
  secret: yaml-secret
cors:
  trusted_origins:
    - http://localhost:3000
`)
	require.NoError(t, os.WriteFile(path, yaml, 0o600))
	t.Setenv("SESSIONSECRET", "env-secret")

	cfg, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "staging", cfg.Server.Env)
	assert.Equal(t, "env-secret", cfg.Session.Secret)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "15m", cfg.Database.MaxIdleTime)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Cors.TrustedOrigins)
}

func TestDecodeFileEnvOnly(t *testing.T) {
	t.Setenv("DSN", "postgres://library@localhost/library")
	t.Setenv("SESSIONSECRET", "secret")
	t.Setenv("PORT", "9000")

	cfg, err := DecodeFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.True(t, cfg.Limiter.Enabled)
}

func TestDecodeFileRequiresDSN(t *testing.T) {
	t.Setenv("DSN", "")
	require.NoError(t, os.Unsetenv("DSN"))
	t.Setenv("SESSIONSECRET", "secret")
	_, err := DecodeFile("")
	assert.Error(t, err)
}
