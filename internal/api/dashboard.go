package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brewstation/backend/internal/models"
	"github.com/brewstation/backend/internal/service"
)

// DashboardHandler handles dashboard-related requests
type DashboardHandler struct {
	db          *gorm.DB
	authService service.IAuthService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(db *gorm.DB, authService service.IAuthService) *DashboardHandler {
	return &DashboardHandler{
		db:          db,
		authService: authService,
	}
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/stats", h.GetStats)
		dashboard.GET("/calculations/recent", h.GetRecentCalculations)
	}
}

// DashboardStats summarizes the catalog and calculation activity.
type DashboardStats struct {
	Malts             int64 `json:"malts"`
	Hops              int64 `json:"hops"`
	Yeasts            int64 `json:"yeasts"`
	Recipes           int64 `json:"recipes"`
	BrewfatherRecipes int64 `json:"brewfather_recipes"`
	Calculations      int64 `json:"calculations"`
	CalculationsWeek  int64 `json:"calculations_this_week"`
	Devices           int64 `json:"devices"`
}

// GetStats returns entity counts for the dashboard landing page
func (h *DashboardHandler) GetStats(c *gin.Context) {
	var stats DashboardStats

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Malt{}, &stats.Malts},
		{&models.Hop{}, &stats.Hops},
		{&models.Yeast{}, &stats.Yeasts},
		{&models.Recipe{}, &stats.Recipes},
		{&models.BrewfatherRecipe{}, &stats.BrewfatherRecipes},
		{&models.PriceCalculation{}, &stats.Calculations},
		{&models.Device{}, &stats.Devices},
	}
	for _, count := range counts {
		if err := h.db.Model(count.model).Count(count.dest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
			return
		}
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := h.db.Model(&models.PriceCalculation{}).
		Where("created_at >= ?", weekAgo).
		Count(&stats.CalculationsWeek).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetRecentCalculations returns the latest stored price calculations
func (h *DashboardHandler) GetRecentCalculations(c *gin.Context) {
	var calculations []models.PriceCalculation
	if err := h.db.Order("created_at desc").Limit(5).Find(&calculations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch calculations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"calculations": calculations})
}
