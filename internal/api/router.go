package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vibank/account-system/internal/api/handler"
	"github.com/vibank/account-system/internal/core/service"
	mongodb "github.com/vibank/account-system/internal/infrastructure/db/mongo"
	redisdb "github.com/vibank/account-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes
// registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS()) // the login client is a browser-style caller
	e.Use(echoprometheus.NewMiddleware("vibank"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	agentCache := redisdb.NewAgentCache(rdb)
	accounts := service.NewAccountService(userRepo, agentCache, log)
	authHandler := handler.NewAuthHandler(accounts)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/login-by-name", authHandler.LoginByName)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
