package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is a locally-authored beer recipe. Ingredient quantities live in
// RecipeIngredient rows: kilograms for malt, grams for hop, packets for
// yeast.
type Recipe struct {
	ID                uuid.UUID          `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	DeletedAt         gorm.DeletedAt     `gorm:"index" json:"-"`
	Name              string             `gorm:"size:100;not null" json:"name"`
	Description       string             `gorm:"size:500" json:"description"`
	Style             string             `gorm:"size:100" json:"style"`
	BatchVolumeLiters float64            `gorm:"not null" json:"batch_volume_liters"`
	EfficiencyPercent float64            `gorm:"default:75" json:"efficiency_percent"`
	Active            bool               `gorm:"default:true" json:"active"`
	UserID            uuid.UUID          `gorm:"type:varchar(36)" json:"user_id"`
	Ingredients       []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecipeIngredient ties a recipe to a catalog entry. Category selects which
// catalog table IngredientID points into.
type RecipeIngredient struct {
	ID              uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	RecipeID        uuid.UUID `gorm:"type:varchar(36);not null;index" json:"recipe_id"`
	Category        string    `gorm:"size:20;not null" json:"category"` // malt, hop, yeast
	IngredientID    uuid.UUID `gorm:"type:varchar(36);not null" json:"ingredient_id"`
	Quantity        float64   `gorm:"not null" json:"quantity"`
	AdditionTimeMin *float64  `json:"addition_time_min,omitempty"`
	Notes           string    `gorm:"size:200" json:"notes"`
}

func (ri *RecipeIngredient) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}
