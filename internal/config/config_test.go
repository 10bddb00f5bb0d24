package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.NoError(t, err)

	assert.Equal(t, 2333, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "admin@example.com", cfg.Admin.Email)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
port: 8080
env: Production
jwt_secret: super-secret
allowed_origins:
  - "https://blog.example.com"
  - "  "
admin:
  email: owner@example.com
  password: hunter2
site:
  url: https://blog.example.com/
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "super-secret", cfg.JWTSecret)
	assert.Equal(t, []string{"https://blog.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "owner@example.com", cfg.Admin.Email)
	assert.Equal(t, "https://blog.example.com", cfg.Site.URL)

	// Unset site fields keep their defaults.
	assert.NotEmpty(t, cfg.Site.Title)
}

func TestLoadRejectsUnknownFieldsAndBadPort(t *testing.T) {
	dir := t.TempDir()

	unknown := filepath.Join(dir, "unknown.yml")
	require.NoError(t, os.WriteFile(unknown, []byte("nope: true\n"), 0o600))
	_, err := Load(unknown)
	assert.Error(t, err)

	badPort := filepath.Join(dir, "badport.yml")
	require.NoError(t, os.WriteFile(badPort, []byte("port: 99999\n"), 0o600))
	_, err = Load(badPort)
	assert.Error(t, err)
}
