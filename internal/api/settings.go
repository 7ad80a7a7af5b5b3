package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brewstation/backend/internal/middleware"
	"github.com/brewstation/backend/internal/models"
	"github.com/brewstation/backend/internal/service"
	"github.com/brewstation/backend/internal/types"
)

// SettingsHandler exposes the system settings store. Sensitive values are
// masked in list and get responses.
type SettingsHandler struct {
	settingsService service.ISettingsService
	authService     service.IAuthService
}

func NewSettingsHandler(settingsService service.ISettingsService, authService service.IAuthService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, authService: authService}
}

func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	settings := router.Group("/settings")
	settings.Use(middleware.AuthMiddleware(h.authService))
	{
		settings.GET("", h.List)
		settings.GET("/:key", h.Get)
		settings.PUT("/:key", h.Set)
		settings.DELETE("/:key", h.Delete)
	}
}

func (h *SettingsHandler) List(c *gin.Context) {
	settings, err := h.settingsService.List(c.Query("group"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch settings"})
		return
	}
	for i := range settings {
		maskSensitive(&settings[i])
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *SettingsHandler) Get(c *gin.Context) {
	setting, err := h.settingsService.Get(c.Param("key"))
	if err != nil {
		if errors.Is(err, service.ErrSettingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch setting"})
		return
	}
	maskSensitive(setting)
	c.JSON(http.StatusOK, setting)
}

func (h *SettingsHandler) Set(c *gin.Context) {
	var req types.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := models.Setting{
		Value:       req.Value,
		Type:        req.Type,
		Group:       req.Group,
		Description: req.Description,
	}
	if req.IsSensitive != nil {
		update.IsSensitive = *req.IsSensitive
	}

	setting, err := h.settingsService.Set(c.Param("key"), update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save setting"})
		return
	}
	maskSensitive(setting)
	c.JSON(http.StatusOK, setting)
}

func (h *SettingsHandler) Delete(c *gin.Context) {
	if err := h.settingsService.Delete(c.Param("key")); err != nil {
		if errors.Is(err, service.ErrSettingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete setting"})
		return
	}
	c.Status(http.StatusNoContent)
}

func maskSensitive(s *models.Setting) {
	if s.IsSensitive && s.Value != "" {
		s.Value = "********"
	}
}
