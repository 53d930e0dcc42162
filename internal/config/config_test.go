package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testJWTSecret = "0123456789abcdef0123456789abcdef"
	testNonceKey  = "fedcba9876543210fedcba9876543210"
)

func setSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("AUTH_JWT_SECRET", testJWTSecret)
	t.Setenv("AUTH_NONCE_KEY", testNonceKey)
}

func TestLoadDefaults(t *testing.T) {
	setSecrets(t)
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "localhost:8080", cfg.HTTP.SiteURL.Host)
	assert.Equal(t, 10*time.Second, cfg.Banner.RotationInterval)
	assert.Equal(t, 24*time.Hour, cfg.Auth.NonceLifetime)
	assert.False(t, cfg.Psql.RunMigrations)
}

func TestLoadOverrides(t *testing.T) {
	setSecrets(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_SITE_URL", "https://www.example.org")
	t.Setenv("BANNER_ROTATION_INTERVAL", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PSQL_RUN_MIGRATIONS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "www.example.org", cfg.HTTP.SiteURL.Host)
	assert.Equal(t, 3*time.Second, cfg.Banner.RotationInterval)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.True(t, cfg.Psql.RunMigrations)
}

func TestLoadRejectsShortNonceKey(t *testing.T) {
	setSecrets(t)
	t.Setenv("AUTH_NONCE_KEY", "short")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("AUTH_NONCE_KEY", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsWeakJWTSecret(t *testing.T) {
	cases := map[string]string{
		"short":       "secret",
		"placeholder": "change-me-jwt-secret-0123456789abcdef",
		"same as key": testNonceKey,
	}
	for name, secret := range cases {
		t.Run(name, func(t *testing.T) {
			setSecrets(t)
			t.Setenv("AUTH_JWT_SECRET", secret)

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoggerFormat(t *testing.T) {
	setSecrets(t)
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	cfg.Log.New(&buf).Info("hello", slog.String("k", "v"))
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
