package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Setting keys consulted by the pricing engine when a catalog lookup
// misses.
const (
	SettingDefaultMaltPrice  = "DEFAULT_MALTE_VALUE"
	SettingDefaultHopPrice   = "DEFAULT_HOPS_VALUE"
	SettingDefaultYeastPrice = "DEFAULT_YEAST_VALUE"
)

// Setting keys for the Brewfather integration.
const (
	SettingBrewfatherUserID  = "BREWFATHER_USER_ID"
	SettingBrewfatherAPIKey  = "BREWFATHER_API_KEY"
	SettingBrewfatherEnabled = "BREWFATHER_ENABLED"
)

// Setting is a system-wide key/value configuration entry. Values are
// stored as strings and interpreted by Type.
type Setting struct {
	ID          uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Key         string         `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value       string         `gorm:"size:500" json:"value"`
	Type        string         `gorm:"size:20;default:'string'" json:"type"` // string, number, boolean
	Group       string         `gorm:"size:50;default:'system'" json:"group"`
	Description string         `gorm:"size:300" json:"description"`
	IsSensitive bool           `gorm:"default:false" json:"is_sensitive"`
}

func (s *Setting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
