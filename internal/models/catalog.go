package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Malt is a fermentable catalog entry, priced per kilogram.
type Malt struct {
	ID             uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Name           string         `gorm:"size:100;not null;index" json:"name"`
	Supplier       string         `gorm:"size:100" json:"supplier"`
	ColorEBC       float64        `json:"color_ebc"`
	DiastaticPower float64        `json:"diastatic_power"`
	YieldPercent   float64        `json:"yield_percent"`
	PricePerKg     float64        `gorm:"not null" json:"price_per_kg"`
	Type           string         `gorm:"size:50" json:"type"`
	Active         bool           `gorm:"default:true" json:"active"`
}

func (m *Malt) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Hop is a hop catalog entry, priced per kilogram.
type Hop struct {
	ID               uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
	Name             string         `gorm:"size:100;not null;index" json:"name"`
	Supplier         string         `gorm:"size:100" json:"supplier"`
	AlphaAcidPercent float64        `json:"alpha_acid_percent"`
	BetaAcidPercent  float64        `json:"beta_acid_percent"`
	Form             string         `gorm:"size:50" json:"form"` // pellet, leaf, cryo
	Origin           string         `gorm:"size:100" json:"origin"`
	Aroma            string         `gorm:"size:200" json:"aroma"`
	PricePerKg       float64        `gorm:"not null" json:"price_per_kg"`
	Active           bool           `gorm:"default:true" json:"active"`
}

func (h *Hop) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// Yeast is a yeast catalog entry, priced per packet.
type Yeast struct {
	ID                 uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
	Name               string         `gorm:"size:100;not null;index" json:"name"`
	Supplier           string         `gorm:"size:100" json:"supplier"`
	Form               string         `gorm:"size:50" json:"form"` // dry, liquid
	AttenuationPercent float64        `json:"attenuation_percent"`
	FermentationTempC  float64        `json:"fermentation_temp_c"`
	Flocculation       string         `gorm:"size:50" json:"flocculation"`
	PricePerUnit       float64        `gorm:"not null" json:"price_per_unit"`
	Active             bool           `gorm:"default:true" json:"active"`
}

func (y *Yeast) BeforeCreate(tx *gorm.DB) error {
	if y.ID == uuid.Nil {
		y.ID = uuid.New()
	}
	return nil
}
