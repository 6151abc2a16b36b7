package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "APP_ENV", "LOG_LEVEL", "DATABASE_URL", "SQLALCHEMY_DATABASE_URI",
	"JWT_SECRET_KEY", "ACCESS_TOKEN_TTL", "REFRESH_TOKEN_TTL", "ADMIN_SESSION_TTL",
	"MAIL_SERVER", "MAIL_PORT", "MAIL_USERNAME", "MAIL_PASSWORD", "MAIL_DEFAULT_SENDER",
	"ADMIN_CREDENTIALS", "ADMIN_USERNAME", "ADMIN_PASSWORD_HASH",
	"CORS_ORIGINS", "REDIS_URL", "REQUIRE_API_AUTH",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "sqlite:///database.db", cfg.DatabaseURL)
	assert.Equal(t, BackendSQLite, cfg.Backend())
	assert.Equal(t, "database.db", cfg.SQLitePath())
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 720*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, 12*time.Hour, cfg.AdminSessionTTL)
	assert.Equal(t, "smtp.gmail.com", cfg.MailServer)
	assert.Equal(t, 587, cfg.MailPort)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.RequireAPIAuth)
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.AdminCredentials)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SQLALCHEMY_DATABASE_URI", "postgresql://u:p@db:5432/chillar")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ACCESS_TOKEN_TTL", "1h")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("REQUIRE_API_AUTH", "true")
	t.Setenv("MAIL_PORT", "2525")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, BackendPostgres, cfg.Backend())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.True(t, cfg.RequireAPIAuth)
	assert.Equal(t, 2525, cfg.MailPort)
}

func TestFromEnvErrors(t *testing.T) {
	cases := map[string]string{
		"ACCESS_TOKEN_TTL":  "soon",
		"MAIL_PORT":         "smtp",
		"REQUIRE_API_AUTH":  "maybe",
		"ADMIN_CREDENTIALS": "{not json",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestParseAdminCredentials(t *testing.T) {
	t.Run("should decode JSON map", func(t *testing.T) {
		admins, err := ParseAdminCredentials(`{"root":"h1","ops":"h2"}`, "legacy", "h3")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"root": "h1", "ops": "h2"}, admins)
	})

	t.Run("should fall back to legacy pair", func(t *testing.T) {
		admins, err := ParseAdminCredentials("", "legacy", "h3")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"legacy": "h3"}, admins)
	})

	t.Run("should ignore half a legacy pair", func(t *testing.T) {
		admins, err := ParseAdminCredentials("", "legacy", "")
		require.NoError(t, err)
		assert.Empty(t, admins)
	})
}

func TestWarnings(t *testing.T) {
	t.Run("should flag sqlite in production and missing secrets", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		cfg, err := FromEnv()
		require.NoError(t, err)

		warnings := cfg.Warnings()
		assert.Contains(t, warnings, "Missing environment variables: DATABASE_URL, JWT_SECRET_KEY, MAIL_USERNAME, MAIL_PASSWORD")
		assert.Contains(t, warnings, "Using SQLite in production is not recommended")
		assert.Contains(t, warnings, "Mail configuration is incomplete")
	})

	t.Run("should pass fully configured production", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		t.Setenv("DATABASE_URL", "postgres://u:p@db/chillar")
		t.Setenv("JWT_SECRET_KEY", "secret")
		t.Setenv("MAIL_USERNAME", "me@example.com")
		t.Setenv("MAIL_PASSWORD", "pw")
		t.Setenv("ADMIN_CREDENTIALS", `{"root":"hash"}`)
		cfg, err := FromEnv()
		require.NoError(t, err)

		assert.Empty(t, cfg.Warnings())
	})
}
