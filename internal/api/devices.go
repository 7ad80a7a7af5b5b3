package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brewstation/backend/internal/middleware"
	"github.com/brewstation/backend/internal/models"
	"github.com/brewstation/backend/internal/service"
	"github.com/brewstation/backend/internal/types"
)

// DeviceHandler manages the equipment registry and telemetry readings.
type DeviceHandler struct {
	db          *gorm.DB
	authService service.IAuthService
}

func NewDeviceHandler(db *gorm.DB, authService service.IAuthService) *DeviceHandler {
	return &DeviceHandler{db: db, authService: authService}
}

func (h *DeviceHandler) RegisterRoutes(router *gin.RouterGroup) {
	devices := router.Group("/devices")
	devices.Use(middleware.AuthMiddleware(h.authService))
	{
		devices.GET("", h.ListDevices)
		devices.GET("/:id", h.GetDevice)
		devices.POST("", h.CreateDevice)
		devices.PUT("/:id", h.UpdateDevice)
		devices.DELETE("/:id", h.DeleteDevice)
		devices.GET("/:id/readings", h.ListReadings)
		devices.POST("/:id/readings", h.CreateReading)
	}
}

func (h *DeviceHandler) ListDevices(c *gin.Context) {
	var devices []models.Device
	if err := h.db.Order("name asc").Find(&devices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch devices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"devices": devices})
}

func (h *DeviceHandler) GetDevice(c *gin.Context) {
	var device models.Device
	if err := h.db.First(&device, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
		return
	}
	c.JSON(http.StatusOK, device)
}

func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	var device models.Device
	if err := c.ShouldBindJSON(&device); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if device.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	device.Active = true
	if err := h.db.Create(&device).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create device"})
		return
	}
	c.JSON(http.StatusCreated, device)
}

func (h *DeviceHandler) UpdateDevice(c *gin.Context) {
	var device models.Device
	if err := h.db.First(&device, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
		return
	}
	var update models.Device
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	update.ID = device.ID
	update.CreatedAt = device.CreatedAt
	if err := h.db.Save(&update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update device"})
		return
	}
	c.JSON(http.StatusOK, update)
}

func (h *DeviceHandler) DeleteDevice(c *gin.Context) {
	result := h.db.Delete(&models.Device{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete device"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DeviceHandler) ListReadings(c *gin.Context) {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid device id"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	query := h.db.Where("device_id = ?", deviceID.String())
	if metric := c.Query("metric"); metric != "" {
		query = query.Where("metric = ?", metric)
	}

	var readings []models.DeviceReading
	if err := query.Order("recorded_at desc").Limit(limit).Find(&readings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch readings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"readings": readings})
}

func (h *DeviceHandler) CreateReading(c *gin.Context) {
	var device models.Device
	if err := h.db.First(&device, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
		return
	}

	var req types.DeviceReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recordedAt := time.Now()
	if req.RecordedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.RecordedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "recorded_at must be RFC3339"})
			return
		}
		recordedAt = parsed
	}

	reading := models.DeviceReading{
		DeviceID:   device.ID,
		Metric:     req.Metric,
		Value:      req.Value,
		Unit:       req.Unit,
		RecordedAt: recordedAt,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reading).Error; err != nil {
			return err
		}
		return tx.Model(&device).Update("last_seen_at", recordedAt).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store reading"})
		return
	}

	c.JSON(http.StatusCreated, reading)
}
