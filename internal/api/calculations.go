package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brewstation/backend/internal/middleware"
	"github.com/brewstation/backend/internal/service"
	"github.com/brewstation/backend/internal/types"
)

// CalculationHandler runs price calculations and serves the stored history.
type CalculationHandler struct {
	pricingService service.IPricingService
	authService    service.IAuthService
	rateLimiter    *middleware.RateLimiter
}

func NewCalculationHandler(pricingService service.IPricingService, authService service.IAuthService, rateLimiter *middleware.RateLimiter) *CalculationHandler {
	return &CalculationHandler{
		pricingService: pricingService,
		authService:    authService,
		rateLimiter:    rateLimiter,
	}
}

func (h *CalculationHandler) RegisterRoutes(router *gin.RouterGroup) {
	calculations := router.Group("/calculations")
	calculations.Use(middleware.AuthMiddleware(h.authService))
	if h.rateLimiter != nil {
		calculations.Use(h.rateLimiter.RateLimitMiddleware())
	}
	{
		calculations.POST("", h.Calculate)
		calculations.GET("", h.History)
		calculations.GET("/:id", h.Get)
	}
}

func (h *CalculationHandler) Calculate(c *gin.Context) {
	var req types.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.pricingService.Calculate(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuantityRequired), errors.Is(err, service.ErrRecipeRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRecipeNotFound), errors.Is(err, service.ErrBrewfatherRecipeNotFnd):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to calculate price"})
		}
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *CalculationHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	records, err := h.pricingService.History(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch calculations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"calculations": records})
}

func (h *CalculationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid calculation id"})
		return
	}

	record, err := h.pricingService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrCalculationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch calculation"})
		return
	}

	c.JSON(http.StatusOK, record)
}
