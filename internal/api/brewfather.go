package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brewstation/backend/internal/middleware"
	"github.com/brewstation/backend/internal/service"
)

// BrewfatherHandler serves the locally mirrored Brewfather recipes and
// triggers sync runs.
type BrewfatherHandler struct {
	brewfatherService service.IBrewfatherService
	authService       service.IAuthService
	syncLimiter       *middleware.RateLimiter
}

func NewBrewfatherHandler(brewfatherService service.IBrewfatherService, authService service.IAuthService, syncLimiter *middleware.RateLimiter) *BrewfatherHandler {
	return &BrewfatherHandler{
		brewfatherService: brewfatherService,
		authService:       authService,
		syncLimiter:       syncLimiter,
	}
}

func (h *BrewfatherHandler) RegisterRoutes(router *gin.RouterGroup) {
	brewfather := router.Group("/brewfather")
	brewfather.Use(middleware.AuthMiddleware(h.authService))
	{
		brewfather.GET("/recipes", h.ListRecipes)
		brewfather.GET("/sync/status", h.SyncStatus)

		sync := brewfather.Group("/sync")
		if h.syncLimiter != nil {
			sync.Use(h.syncLimiter.RateLimitMiddleware())
		}
		sync.POST("/recipes", h.SyncRecipes)
	}
}

func (h *BrewfatherHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.brewfatherService.ListRecipes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch brewfather recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *BrewfatherHandler) SyncRecipes(c *gin.Context) {
	sync, err := h.brewfatherService.SyncRecipes(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrBrewfatherDisabled) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sync)
}

func (h *BrewfatherHandler) SyncStatus(c *gin.Context) {
	sync, err := h.brewfatherService.LastSync("recipes")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sync status"})
		return
	}
	if sync == nil {
		c.JSON(http.StatusOK, gin.H{"status": "never"})
		return
	}
	c.JSON(http.StatusOK, sync)
}
