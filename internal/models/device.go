package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Device is a registered piece of brewery equipment that reports
// telemetry (fermentation chambers, kettles, flow meters).
type Device struct {
	ID         uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	Name       string         `gorm:"size:100;not null" json:"name"`
	Kind       string         `gorm:"size:50" json:"kind"` // fermenter, kettle, chiller
	Location   string         `gorm:"size:100" json:"location"`
	Active     bool           `gorm:"default:true" json:"active"`
	LastSeenAt *time.Time     `json:"last_seen_at,omitempty"`
}

func (d *Device) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// DeviceReading is a single telemetry sample from a device.
type DeviceReading struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	DeviceID   uuid.UUID `gorm:"type:varchar(36);not null;index" json:"device_id"`
	Metric     string    `gorm:"size:50;not null" json:"metric"` // temperature, gravity, pressure
	Value      float64   `gorm:"not null" json:"value"`
	Unit       string    `gorm:"size:20" json:"unit"`
	RecordedAt time.Time `gorm:"index" json:"recorded_at"`
}

func (r *DeviceReading) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
