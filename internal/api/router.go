package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/authgate/session-service/docs"
	"github.com/authgate/session-service/internal/api/handler"
	"github.com/authgate/session-service/internal/api/middleware"
	"github.com/authgate/session-service/internal/core/ports"
	"github.com/authgate/session-service/internal/core/service"
	"github.com/authgate/session-service/internal/infrastructure/config"
	mongodb "github.com/authgate/session-service/internal/infrastructure/db/mongo"
	redisdb "github.com/authgate/session-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditSink, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("sessionauth"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)
	authService := service.NewAuthService(userRepo, sessionStore, cfg.Session.TTL)
	gate := service.NewGate(sessionStore)

	authHandler := handler.NewAuthHandler(authService, audit, cfg.Session.Cookie)
	protectedHandler := handler.NewProtectedHandler()
	sessionAuth := middleware.SessionAuth(gate, cfg.Session.Cookie, audit)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Protected routes (gated) ---
	e.GET("/protected", protectedHandler.Greet, sessionAuth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
