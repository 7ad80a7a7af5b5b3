package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brewstation/backend/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationPage is one page of a user's notification feed.
type NotificationPage struct {
	Notifications []models.Notification `json:"notifications"`
	Total         int64                 `json:"total"`
	Pages         int64                 `json:"pages"`
	CurrentPage   int                   `json:"current_page"`
	UnreadCount   int64                 `json:"unread_count"`
}

// NotificationStats summarizes a user's notifications.
type NotificationStats struct {
	Total  int64            `json:"total"`
	Unread int64            `json:"unread"`
	Read   int64            `json:"read"`
	ByType map[string]int64 `json:"by_type"`
}

// NotificationService manages per-user in-app notifications. Deletes are
// soft in the sense that rows move to notifications_trash.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Create stores a notification for userID. An empty type defaults to info.
func (s *NotificationService) Create(userID uuid.UUID, notification models.Notification) (*models.Notification, error) {
	notification.ID = uuid.Nil
	notification.UserID = userID
	notification.IsRead = false
	if notification.Type == "" {
		notification.Type = "info"
	}
	if err := s.db.Create(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// List returns one page of the user's notifications, highest priority and
// newest first. page and perPage outside their valid range are clamped.
func (s *NotificationService) List(userID uuid.UUID, unreadOnly bool, page, perPage int) (*NotificationPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 || perPage > 100 {
		perPage = 10
	}

	query := s.db.Model(&models.Notification{}).Where("user_id = ?", userID.String())
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var notifications []models.Notification
	err := query.
		Order("priority desc").
		Order("created_at desc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	var unread int64
	err = s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID.String(), false).
		Count(&unread).Error
	if err != nil {
		return nil, err
	}

	pages := total / int64(perPage)
	if total%int64(perPage) != 0 {
		pages++
	}

	return &NotificationPage{
		Notifications: notifications,
		Total:         total,
		Pages:         pages,
		CurrentPage:   page,
		UnreadCount:   unread,
	}, nil
}

// MarkRead flags a single notification of userID as read.
func (s *NotificationService) MarkRead(userID, id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	err := s.db.Where("id = ? AND user_id = ?", id.String(), userID.String()).First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	if err := s.db.Model(&notification).Update("is_read", true).Error; err != nil {
		return nil, err
	}
	notification.IsRead = true
	return &notification, nil
}

// MarkAllRead flags every unread notification of userID as read and
// returns how many rows changed.
func (s *NotificationService) MarkAllRead(userID uuid.UUID) (int64, error) {
	result := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID.String(), false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

// Delete moves a notification of userID to the trash table.
func (s *NotificationService) Delete(userID, id uuid.UUID) error {
	var notification models.Notification
	err := s.db.Where("id = ? AND user_id = ?", id.String(), userID.String()).First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trashRow(notification)).Error; err != nil {
			return err
		}
		return tx.Delete(&notification).Error
	})
}

// ClearAll moves every notification of userID to the trash table and
// returns how many were cleared.
func (s *NotificationService) ClearAll(userID uuid.UUID) (int64, error) {
	var notifications []models.Notification
	if err := s.db.Where("user_id = ?", userID.String()).Find(&notifications).Error; err != nil {
		return 0, err
	}
	if len(notifications) == 0 {
		return 0, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, notification := range notifications {
			if err := tx.Create(trashRow(notification)).Error; err != nil {
				return err
			}
		}
		return tx.Where("user_id = ?", userID.String()).Delete(&models.Notification{}).Error
	})
	if err != nil {
		return 0, err
	}
	return int64(len(notifications)), nil
}

// Stats returns read/unread totals and a per-type breakdown for userID.
func (s *NotificationService) Stats(userID uuid.UUID) (*NotificationStats, error) {
	var total, unread int64
	if err := s.db.Model(&models.Notification{}).Where("user_id = ?", userID.String()).Count(&total).Error; err != nil {
		return nil, err
	}
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID.String(), false).
		Count(&unread).Error
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Type  string
		Count int64
	}
	err = s.db.Model(&models.Notification{}).
		Select("type, count(*) as count").
		Where("user_id = ?", userID.String()).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byType := make(map[string]int64, len(rows))
	for _, row := range rows {
		byType[row.Type] = row.Count
	}

	return &NotificationStats{
		Total:  total,
		Unread: unread,
		Read:   total - unread,
		ByType: byType,
	}, nil
}

func trashRow(notification models.Notification) *models.NotificationTrash {
	return &models.NotificationTrash{
		OriginalNotificationID: notification.ID,
		UserID:                 notification.UserID,
		Title:                  notification.Title,
		Message:                notification.Message,
		Type:                   notification.Type,
		Priority:               notification.Priority,
		IsRead:                 notification.IsRead,
		CreatedAt:              notification.CreatedAt,
		TrashedAt:              time.Now(),
	}
}
