package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "session", cfg.Session.CookieName)
	assert.Equal(t, 60*time.Second, cfg.PublicProfileCacheTTL)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "abc")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("SMTP_HOST", "smtp.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "smtp.test", cfg.Mail.Host)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Run("development falls back", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("JWT_SECRET", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.NotEmpty(t, cfg.Session.Secret)
	})

	t.Run("production fails", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "")

		_, err := Load()
		assert.Error(t, err)
	})
}
