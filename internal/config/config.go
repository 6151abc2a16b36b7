// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Backend names a storage driver.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
)

const defaultDatabaseURL = "sqlite:///database.db"

// Config is built once at startup and passed down explicitly.
type Config struct {
	Port        string
	Environment string
	LogLevel    string

	DatabaseURL string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	MailServer   string
	MailPort     int
	MailUsername string
	MailPassword string
	MailSender   string

	// AdminCredentials maps admin username to bcrypt hash.
	AdminCredentials map[string]string
	AdminSessionTTL  time.Duration

	CORSOrigins    []string
	RedisURL       string
	RequireAPIAuth bool
}

// Load reads .env from the working directory when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		JWTSecret:    os.Getenv("JWT_SECRET_KEY"),
		MailServer:   getEnv("MAIL_SERVER", "smtp.gmail.com"),
		MailUsername: os.Getenv("MAIL_USERNAME"),
		MailPassword: os.Getenv("MAIL_PASSWORD"),
		MailSender:   os.Getenv("MAIL_DEFAULT_SENDER"),
		RedisURL:     os.Getenv("REDIS_URL"),
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = getEnv("SQLALCHEMY_DATABASE_URI", defaultDatabaseURL)
	}

	var err error
	if cfg.AccessTokenTTL, err = getDuration("ACCESS_TOKEN_TTL", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.RefreshTokenTTL, err = getDuration("REFRESH_TOKEN_TTL", 30*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.AdminSessionTTL, err = getDuration("ADMIN_SESSION_TTL", 12*time.Hour); err != nil {
		return nil, err
	}

	if cfg.MailPort, err = strconv.Atoi(getEnv("MAIL_PORT", "587")); err != nil {
		return nil, fmt.Errorf("invalid MAIL_PORT: %w", err)
	}

	if v := os.Getenv("REQUIRE_API_AUTH"); v != "" {
		if cfg.RequireAPIAuth, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("invalid REQUIRE_API_AUTH: %w", err)
		}
	}

	for _, origin := range strings.Split(getEnv("CORS_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if cfg.AdminCredentials, err = ParseAdminCredentials(
		os.Getenv("ADMIN_CREDENTIALS"),
		os.Getenv("ADMIN_USERNAME"),
		os.Getenv("ADMIN_PASSWORD_HASH"),
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseAdminCredentials decodes the JSON credential map, falling back to
// the legacy single-admin pair when the map is empty.
func ParseAdminCredentials(credentialsJSON, legacyUser, legacyHash string) (map[string]string, error) {
	admins := make(map[string]string)
	if strings.TrimSpace(credentialsJSON) != "" {
		if err := json.Unmarshal([]byte(credentialsJSON), &admins); err != nil {
			return nil, fmt.Errorf("invalid ADMIN_CREDENTIALS: %w", err)
		}
	}
	if len(admins) == 0 && legacyUser != "" && legacyHash != "" {
		admins[legacyUser] = legacyHash
	}
	return admins, nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Backend reports which store DatabaseURL selects.
func (c *Config) Backend() Backend {
	if strings.HasPrefix(c.DatabaseURL, "postgres://") || strings.HasPrefix(c.DatabaseURL, "postgresql://") {
		return BackendPostgres
	}
	return BackendSQLite
}

// SQLitePath extracts the file path from a sqlite:/// URL.
// A bare path is returned unchanged.
func (c *Config) SQLitePath() string {
	return strings.TrimPrefix(c.DatabaseURL, "sqlite:///")
}

// MailConfigured reports whether SMTP credentials are present.
func (c *Config) MailConfigured() bool {
	return c.MailServer != "" && c.MailUsername != "" && c.MailPassword != ""
}

// Warnings lists deployment problems. An empty list means ready.
func (c *Config) Warnings() []string {
	var warnings []string

	var missing []string
	if os.Getenv("DATABASE_URL") == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET_KEY")
	}
	if c.MailUsername == "" {
		missing = append(missing, "MAIL_USERNAME")
	}
	if c.MailPassword == "" {
		missing = append(missing, "MAIL_PASSWORD")
	}
	if len(missing) > 0 {
		warnings = append(warnings, "Missing environment variables: "+strings.Join(missing, ", "))
	}

	if c.Backend() == BackendSQLite && c.IsProduction() {
		warnings = append(warnings, "Using SQLite in production is not recommended")
	}
	if !c.IsProduction() {
		warnings = append(warnings, "Debug routes are enabled (APP_ENV is not production)")
	}
	if !c.MailConfigured() || c.MailPort == 0 {
		warnings = append(warnings, "Mail configuration is incomplete")
	}
	if len(c.AdminCredentials) == 0 {
		warnings = append(warnings, "No admin credentials configured, admin panel is unusable")
	}
	return warnings
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
