package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/brightpixel/website-api/internal/api/handler"
	"github.com/brightpixel/website-api/internal/api/middleware"
	"github.com/brightpixel/website-api/internal/core/ports"
	"github.com/brightpixel/website-api/internal/core/service"
	dbmongo "github.com/brightpixel/website-api/internal/infrastructure/db/mongo"
	dbredis "github.com/brightpixel/website-api/internal/infrastructure/db/redis"
	"github.com/brightpixel/website-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("website"))

	// --- Dependencies ---
	adminRepo := dbmongo.NewAdminRepository(db)
	contactRepo := dbmongo.NewContactRepository(db)
	contentRepo := dbmongo.NewContentRepository(db)
	statusRepo := dbmongo.NewStatusRepository(db)

	var limiter ports.RateLimiter
	if cfg.Contact.RateLimit > 0 {
		limiter = dbredis.NewRateLimiter(rdb, cfg.Contact.RateLimit, cfg.ContactRateWindow())
	}

	authService := service.NewAuthService(adminRepo, cfg.JWTSecret, cfg.TokenTTL(), log)
	contactService := service.NewContactService(contactRepo, limiter, log)
	contentService := service.NewContentService(contentRepo, log)
	statusService := service.NewStatusService(statusRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	contactHandler := handler.NewContactHandler(contactService)
	contentHandler := handler.NewContentHandler(contentService)
	statusHandler := handler.NewStatusHandler(statusService)
	requireAdmin := middleware.Auth(cfg.JWTSecret, adminRepo)

	// --- Public routes ---
	e.GET("/api", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Hello World"})
	})
	e.POST("/api/contact", contactHandler.Submit)
	e.POST("/api/status", statusHandler.Create)
	e.GET("/api/status", statusHandler.List)
	e.GET("/api/content", contentHandler.Get)

	// --- Admin routes ---
	e.POST("/api/admin/signup", authHandler.Signup)
	e.POST("/api/admin/login", authHandler.Login)

	admin := e.Group("/api/admin", requireAdmin)
	admin.GET("/me", authHandler.Me)
	admin.GET("/contacts", contactHandler.List)
	admin.DELETE("/contacts/:id", contactHandler.Delete)
	admin.PUT("/content", contentHandler.UpdateSection)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
