package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is an in-app message for a single user (sync finished,
// device went offline, price defaults changed). Deleting one moves it to
// the trash table instead of dropping it.
type Notification struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Title     string    `gorm:"size:200" json:"title"`
	Message   string    `gorm:"size:1000;not null" json:"message"`
	Type      string    `gorm:"size:20;default:'info'" json:"type"` // info, success, warning, error
	Priority  int       `gorm:"default:0" json:"priority"`
	IsRead    bool      `gorm:"default:false;index" json:"is_read"`
	ActionURL string    `gorm:"size:300" json:"action_url,omitempty"`
}

func (Notification) TableName() string { return "notifications" }

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// NotificationTrash keeps deleted notifications for auditing. CreatedAt
// carries the original creation time, not the trashing time.
type NotificationTrash struct {
	ID                     uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	OriginalNotificationID uuid.UUID `gorm:"type:varchar(36);index" json:"original_notification_id"`
	UserID                 uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Title                  string    `gorm:"size:200" json:"title"`
	Message                string    `gorm:"size:1000;not null" json:"message"`
	Type                   string    `gorm:"size:20" json:"type"`
	Priority               int       `json:"priority"`
	IsRead                 bool      `json:"is_read"`
	CreatedAt              time.Time `json:"created_at"`
	TrashedAt              time.Time `gorm:"index" json:"trashed_at"`
}

func (NotificationTrash) TableName() string { return "notifications_trash" }

func (n *NotificationTrash) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
