package main

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Kousthubh02/Chillar/internal/session"
)

const (
	requestIDHeader    = "X-Request-ID"
	userIDKey          = "user_id"
	adminUserKey       = "admin_user"
	adminSessionCookie = "admin_session"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chillar_http_requests_total",
		Help: "HTTP requests by route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chillar_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	paymentsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chillar_payments_recorded_total",
		Help: "Partial payments applied to transactions.",
	})

	otpsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chillar_otps_issued_total",
		Help: "Password reset codes issued.",
	})
)

// requestLogger logs each request and records its metrics
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(elapsed.Seconds())

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", elapsed.Milliseconds(),
			"client_ip", c.ClientIP(),
			"request_id", requestID,
		}
		if userID, ok := c.Get(userIDKey); ok {
			attrs = append(attrs, "user_id", userID)
		}

		switch {
		case status >= http.StatusInternalServerError:
			slog.Error("HTTP request", attrs...)
		case status >= http.StatusBadRequest:
			slog.Warn("HTTP request", attrs...)
		default:
			slog.Info("HTTP request", attrs...)
		}
	}
}

// apiAuth attaches the caller's user id when a valid access token is sent.
// With required set, requests without one are rejected.
func (a *App) apiAuth(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, MessageResponse{Msg: "Missing Authorization Header"})
				return
			}
			c.Next()
			return
		}

		userID, err := a.auth.Authenticate(token)
		if err != nil {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, MessageResponse{Msg: "Invalid or expired token"})
				return
			}
			c.Next()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// rateLimit allows limit requests per window for each client IP
func (a *App) rateLimit(name string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := name + ":" + c.ClientIP()
		allowed, err := a.limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			// fail open
			slog.Error("Rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}
		if !allowed {
			slog.Warn("Rate limit exceeded", "key", key, "limit", limit)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, MessageResponse{Msg: "Too many requests, please try again later"})
			return
		}
		c.Next()
	}
}

// requireAdmin resolves the admin session cookie
func (a *App) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(adminSessionCookie)
		if err != nil || id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, MessageResponse{Msg: "Admin login required"})
			return
		}

		username, err := a.sessions.Get(c.Request.Context(), id)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				slog.Error("Session lookup failed", "error", err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, MessageResponse{Msg: "Admin login required"})
			return
		}

		c.Set(adminUserKey, username)
		c.Next()
	}
}
