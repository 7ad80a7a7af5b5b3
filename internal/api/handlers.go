package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/brewstation/backend/internal/middleware"
	"github.com/brewstation/backend/internal/service"
)

// Dependencies bundles everything the route tree needs. Redis is optional;
// without it the rate-limited groups run unlimited.
type Dependencies struct {
	DB            *gorm.DB
	Redis         *redis.Client
	Auth          service.IAuthService
	Pricing       service.IPricingService
	Settings      service.ISettingsService
	Brewfather    service.IBrewfatherService
	Notifications service.INotificationService
	Export        service.IExportService
}

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "BrewStation API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	var calculationLimiter, syncLimiter *middleware.RateLimiter
	if deps.Redis != nil {
		calculationLimiter = middleware.NewCalculationRateLimiter(deps.Redis)
		syncLimiter = middleware.NewBrewfatherSyncRateLimiter(deps.Redis)
	}

	authHandler := NewAuthHandler(deps.Auth)
	catalogHandler := NewCatalogHandler(deps.DB, deps.Auth)
	recipeHandler := NewRecipeHandler(deps.DB, deps.Auth)
	calculationHandler := NewCalculationHandler(deps.Pricing, deps.Auth, calculationLimiter)
	settingsHandler := NewSettingsHandler(deps.Settings, deps.Auth)
	brewfatherHandler := NewBrewfatherHandler(deps.Brewfather, deps.Auth, syncLimiter)
	deviceHandler := NewDeviceHandler(deps.DB, deps.Auth)
	notificationHandler := NewNotificationHandler(deps.Notifications, deps.Auth)
	exportHandler := NewExportHandler(deps.Export, deps.Auth)

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	catalogHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)
	calculationHandler.RegisterRoutes(v1)
	settingsHandler.RegisterRoutes(v1)
	brewfatherHandler.RegisterRoutes(v1)
	deviceHandler.RegisterRoutes(v1)
	notificationHandler.RegisterRoutes(v1)
	exportHandler.RegisterRoutes(v1)

	// Dashboard routes (with auth middleware)
	dashboardGroup := v1.Group("")
	dashboardGroup.Use(middleware.AuthMiddleware(deps.Auth))
	NewDashboardHandler(deps.DB, deps.Auth).RegisterRoutes(dashboardGroup)
}
