// @title Chillar API
// @version 1.0
// @description Personal finance tracking: people, events and money owed, with email + mPin accounts.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Kousthubh02/Chillar/internal/auth"
	"github.com/Kousthubh02/Chillar/internal/config"
	"github.com/Kousthubh02/Chillar/internal/mailer"
	"github.com/Kousthubh02/Chillar/internal/ratelimit"
	"github.com/Kousthubh02/Chillar/internal/service"
	"github.com/Kousthubh02/Chillar/internal/session"
	"github.com/Kousthubh02/Chillar/internal/storage"
	"github.com/Kousthubh02/Chillar/internal/storage/postgres"
	"github.com/Kousthubh02/Chillar/internal/storage/sqlite"
	"github.com/Kousthubh02/Chillar/pkg/logging"
)

const (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.LogLevel)
	for _, w := range cfg.Warnings() {
		logger.Warn("Deployment check", "warning", w)
	}
	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			logger.Error("JWT_SECRET_KEY must be set in production")
			os.Exit(1)
		}
		cfg.JWTSecret = "dev-secret-change-me"
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	limiter, sessions, closeRedis, err := openRedis(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer closeRedis()

	var sender mailer.Sender = mailer.LogSender{Logger: logger}
	if cfg.MailConfigured() {
		sender = mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.MailServer,
			Port:     cfg.MailPort,
			Username: cfg.MailUsername,
			Password: cfg.MailPassword,
			From:     cfg.MailSender,
		})
	}

	app := newApp(cfg, store, limiter, sessions, sender, logger)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           setupRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port, "env", cfg.Environment, "backend", cfg.Backend())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}

// newApp wires the services over the given infrastructure
func newApp(cfg *config.Config, store storage.Store, limiter ratelimit.Limiter, sessions session.Store, sender mailer.Sender, logger *slog.Logger) *App {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	return &App{
		cfg:      cfg,
		store:    store,
		auth:     service.NewAuthService(store, tokens, sender, logger),
		ledger:   service.NewLedgerService(store, logger),
		admin:    service.NewAdminService(store, cfg.AdminCredentials, logger),
		limiter:  limiter,
		sessions: sessions,
		logger:   logger,
	}
}

// openStore connects to the configured backend, retrying while the database starts
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Store, error) {
	if cfg.Backend() == config.BackendSQLite {
		logger.Info("Using SQLite database", "path", cfg.SQLitePath())
		return sqlite.New(cfg.SQLitePath())
	}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		store, err := postgres.New(ctx, cfg.DatabaseURL)
		if err == nil {
			logger.Info("Successfully connected to database")
			if version, dirty, err := postgres.MigrationVersion(cfg.DatabaseURL); err == nil {
				logger.Info("Current migration version", "version", version, "dirty", dirty)
			}
			return store, nil
		}

		lastErr = err
		logger.Warn("Database not ready", "attempt", i+1, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
	return nil, fmt.Errorf("failed to connect after %d attempts: %w", maxRetries, lastErr)
}

// openRedis builds the limiter and session store, in memory when REDIS_URL is unset
func openRedis(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ratelimit.Limiter, session.Store, func(), error) {
	if cfg.RedisURL == "" {
		logger.Info("REDIS_URL not set, using in-memory rate limits and sessions")
		return ratelimit.NewMemoryLimiter(), session.NewMemoryStore(cfg.AdminSessionTTL), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("Redis connected")
	return ratelimit.NewRedisLimiter(client), session.NewRedisStore(client, cfg.AdminSessionTTL),
		func() { client.Close() }, nil
}
