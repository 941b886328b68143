package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/leadcrm/crm-system/internal/api/handler"
	"github.com/leadcrm/crm-system/internal/api/middleware"
	"github.com/leadcrm/crm-system/internal/core/domain"
	"github.com/leadcrm/crm-system/internal/core/ports"
	"github.com/leadcrm/crm-system/internal/core/service"
	mongostore "github.com/leadcrm/crm-system/internal/infrastructure/db/mongo"
	redisstore "github.com/leadcrm/crm-system/internal/infrastructure/db/redis"
	"github.com/leadcrm/crm-system/internal/infrastructure/spreadsheet"
	"github.com/leadcrm/crm-system/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, jwtSecret string, recorder ports.ActivityRecorder) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	log := logger.Get()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("crm"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	customerRepo := mongostore.NewCustomerRepository(db)
	accountRepo := mongostore.NewAccountRepository(db)
	activityRepo := mongostore.NewActivityRepository(db)

	sessionStore := redisstore.NewSessionStore(rdb)
	filterStore := redisstore.NewFilterStore(rdb)

	authService := service.NewAuthService(accountRepo, sessionStore, recorder, jwtSecret)
	customerService := service.NewCustomerService(customerRepo, filterStore, spreadsheet.NewReader(), recorder, log)
	accountService := service.NewAccountService(accountRepo, log)
	dashboardService := service.NewDashboardService(customerRepo, accountRepo, activityRepo)

	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)
	accountHandler := handler.NewAccountHandler(accountService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authMiddleware := middleware.Auth(jwtSecret, sessionStore)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Customers (all roles; visibility is enforced per record) ---
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/customers", customerHandler.List)
	v1.POST("/customers", customerHandler.Create)
	v1.PUT("/customers/:id", customerHandler.Edit)
	v1.PUT("/customers/:id/status", customerHandler.ChangeStatus)
	v1.PUT("/customers/:id/lifecycle", customerHandler.ChangeLifecycle)
	v1.DELETE("/customers/:id", customerHandler.Delete)
	v1.GET("/customers/export", customerHandler.Export)

	// --- Management-only surfaces ---
	mgmt := v1.Group("", middleware.RBAC(domain.RoleOwner, domain.RoleSupervisor))
	mgmt.POST("/customers/import", customerHandler.Import)
	mgmt.GET("/dashboard", dashboardHandler.Overview)
	mgmt.GET("/users", accountHandler.List)
	mgmt.POST("/users", accountHandler.Create)
	mgmt.PUT("/users/:id", accountHandler.Update)
	mgmt.DELETE("/users/:id", accountHandler.Delete)

	return e
}
