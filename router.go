package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Kousthubh02/Chillar/docs"
	"github.com/Kousthubh02/Chillar/internal/config"
	"github.com/Kousthubh02/Chillar/internal/ratelimit"
	"github.com/Kousthubh02/Chillar/internal/service"
	"github.com/Kousthubh02/Chillar/internal/session"
	"github.com/Kousthubh02/Chillar/internal/storage"
)

// App holds the dependencies shared by all handlers.
type App struct {
	cfg      *config.Config
	store    storage.Store
	auth     *service.AuthService
	ledger   *service.LedgerService
	admin    *service.AdminService
	limiter  ratelimit.Limiter
	sessions session.Store
	logger   *slog.Logger
}

// setupRouter registers every route. main and the tests share it.
func setupRouter(a *App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(a.cfg.CORSOrigins) == 1 && a.cfg.CORSOrigins[0] == "*" {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsConfig.AllowOrigins = a.cfg.CORSOrigins
	}
	r.Use(cors.New(corsConfig))

	r.GET("/health", a.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", a.signup)
		authGroup.POST("/login", a.rateLimit("login", 5, time.Minute), a.login)
		authGroup.POST("/refresh", a.refresh)
		authGroup.POST("/request-otp", a.rateLimit("request-otp", 3, time.Hour), a.requestOTP)
		authGroup.POST("/verify-otp", a.verifyOTP)
		authGroup.POST("/reset-mpin", a.resetMPIN)
	}

	api := r.Group("/api", a.apiAuth(a.cfg.RequireAPIAuth))
	{
		api.GET("/people", a.getPeople)
		api.POST("/people", a.createPerson)
		api.GET("/events", a.getEvents)
		api.POST("/events", a.createEvent)
		api.GET("/transactions", a.getTransactions)
		api.POST("/transactions", a.createTransaction)
		api.PATCH("/transactions/:id", a.updateTransactionStatus)
		api.POST("/transactions/:id/pay", a.payTransaction)
		api.GET("/totals", a.getTotals)
		if !a.cfg.IsProduction() {
			api.GET("/transactions/debug/all", a.debugTransactions)
		}
	}

	admin := r.Group("/admin")
	{
		admin.POST("/login", a.rateLimit("admin-login", 10, time.Minute), a.adminLogin)
		admin.POST("/logout", a.adminLogout)

		panel := admin.Group("", a.requireAdmin())
		panel.GET("/", a.adminIndex)
		panel.GET("/users", a.adminListUsers)
		panel.DELETE("/users/:id", a.adminDeleteUser)
		panel.GET("/people", a.adminListPeople)
		panel.PUT("/people/:id", a.adminRenamePerson)
		panel.DELETE("/people/:id", a.adminDeletePerson)
		panel.GET("/events", a.adminListEvents)
		panel.PUT("/events/:id", a.adminRenameEvent)
		panel.DELETE("/events/:id", a.adminDeleteEvent)
		panel.GET("/transactions", a.adminListTransactions)
		panel.DELETE("/transactions/:id", a.adminDeleteTransaction)
	}

	return r
}

// @Summary Health check
// @Description Reports whether the database is reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (a *App) health(c *gin.Context) {
	if err := a.store.Ping(c.Request.Context()); err != nil {
		slog.Error("Health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
