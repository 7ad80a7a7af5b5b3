package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brewstation/backend/internal/middleware"
	"github.com/brewstation/backend/internal/models"
	"github.com/brewstation/backend/internal/service"
)

// NotificationHandler serves the per-user notification feed.
type NotificationHandler struct {
	notificationService service.INotificationService
	authService         service.IAuthService
}

func NewNotificationHandler(notificationService service.INotificationService, authService service.IAuthService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService, authService: authService}
}

func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware(h.authService))
	{
		notifications.GET("", h.List)
		notifications.POST("", h.Create)
		notifications.GET("/stats", h.Stats)
		notifications.PUT("/read-all", h.MarkAllRead)
		notifications.PUT("/:id/read", h.MarkRead)
		notifications.DELETE("/:id", h.Delete)
		notifications.DELETE("", h.ClearAll)
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := currentUserID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	unreadOnly := c.Query("unread_only") == "true"

	result, err := h.notificationService.List(userID, unreadOnly, page, perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notifications"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *NotificationHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var notification models.Notification
	if err := c.ShouldBindJSON(&notification); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if notification.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	created, err := h.notificationService.Create(userID, notification)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create notification"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := currentUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	notification, err := h.notificationService.MarkRead(userID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notification"})
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := currentUserID(c)

	updated, err := h.notificationService.MarkAllRead(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated_count": updated})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	userID := currentUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	if err := h.notificationService.Delete(userID, id); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete notification"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) ClearAll(c *gin.Context) {
	userID := currentUserID(c)

	cleared, err := h.notificationService.ClearAll(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared_count": cleared})
}

func (h *NotificationHandler) Stats(c *gin.Context) {
	userID := currentUserID(c)

	stats, err := h.notificationService.Stats(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notification stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// currentUserID reads the authenticated user set by the auth middleware.
func currentUserID(c *gin.Context) uuid.UUID {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil
	}
	userID, _ := value.(uuid.UUID)
	return userID
}
