package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shuvo-art/Sheba-Task/internal/api/handler"
	"github.com/shuvo-art/Sheba-Task/internal/api/middleware"
	"github.com/shuvo-art/Sheba-Task/internal/core/domain"
	"github.com/shuvo-art/Sheba-Task/internal/core/ports"
	"github.com/shuvo-art/Sheba-Task/internal/core/service"
	mongodb "github.com/shuvo-art/Sheba-Task/internal/infrastructure/db/mongo"
)

// RouterConfig carries everything the router needs to assemble the service
// graph.
type RouterConfig struct {
	Mongo     *mongo.Database
	Redis     *redis.Client
	Notifier  ports.BookingNotifier
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(cfg.Mongo)
	serviceRepo := mongodb.NewServiceRepository(cfg.Mongo)
	bookingRepo := mongodb.NewBookingRepository(cfg.Mongo)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	catalogService := service.NewCatalogService(serviceRepo, cfg.Logger)
	bookingService := service.NewBookingService(bookingRepo, serviceRepo, userRepo, cfg.Notifier, cfg.Logger)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	authenticated := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	users := e.Group("/api/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)

	// --- Catalog routes ---
	services := e.Group("/api/services", authenticated)
	services.GET("", catalogHandler.List)
	services.POST("", catalogHandler.Create, adminOnly)
	services.PUT("/:id", catalogHandler.Update, adminOnly)
	services.DELETE("/:id", catalogHandler.Delete, adminOnly)

	// --- Booking routes ---
	bookings := e.Group("/api/bookings", authenticated)
	bookings.POST("", bookingHandler.Create)
	bookings.GET("/:id", bookingHandler.Get)
	bookings.GET("", bookingHandler.List, adminOnly)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
