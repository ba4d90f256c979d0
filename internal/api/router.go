package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/acmecorp/invoicing-dashboard/internal/api/handler"
	"github.com/acmecorp/invoicing-dashboard/internal/api/middleware"
	"github.com/acmecorp/invoicing-dashboard/internal/core/service"
	"github.com/acmecorp/invoicing-dashboard/internal/infrastructure/db/postgres"
	redisdb "github.com/acmecorp/invoicing-dashboard/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("invoicing"))

	// --- Dependencies ---
	invoiceRepo := postgres.NewInvoiceRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	authRepo := postgres.NewAuthRepository(db)
	views := redisdb.NewViewCache(rdb, log)

	invoiceService := service.NewInvoiceService(invoiceRepo, customerRepo, views, log)
	authService := service.NewAuthService(authRepo, jwtSecret, 24*time.Hour)

	invoiceHandler := handler.NewInvoiceHandler(invoiceService, views)
	dashboardHandler := handler.NewDashboardHandler(invoiceService)
	authHandler := handler.NewAuthHandler(authService, 24*time.Hour)

	gate := middleware.Gate(jwtSecret)

	// --- Auth routes (gated: a logged-in caller is bounced to the dashboard) ---
	e.POST("/login", authHandler.Login, gate)
	e.POST("/logout", authHandler.Logout)

	// --- Dashboard (protected subtree) ---
	g := e.Group("/dashboard", gate)
	g.GET("", dashboardHandler.Overview)
	g.GET("/customers", dashboardHandler.Customers)
	g.GET("/invoices", invoiceHandler.List)
	g.POST("/invoices", invoiceHandler.Create)
	g.GET("/invoices/:id", invoiceHandler.Get)
	g.PUT("/invoices/:id", invoiceHandler.Update)
	g.DELETE("/invoices/:id", invoiceHandler.Delete)

	// --- Operational endpoints (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
