package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONMap stores an arbitrary JSON object column.
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface
func (m JSONMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// BrewfatherRecipe is a recipe imported from the Brewfather API. The
// Ingredients payload keeps the fermentables/hops/yeasts arrays as the API
// returned them; the pricing service parses them at calculation time.
type BrewfatherRecipe struct {
	ID                uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
	BrewfatherID      string         `gorm:"size:100;uniqueIndex;not null" json:"brewfather_id"`
	Name              string         `gorm:"size:200;not null" json:"name"`
	Style             string         `gorm:"size:100" json:"style"`
	ABV               float64        `json:"abv"`
	IBU               float64        `json:"ibu"`
	ColorEBC          float64        `json:"color_ebc"`
	BatchSizeLiters   float64        `json:"batch_size_liters"`
	EfficiencyPercent float64        `json:"efficiency_percent"`
	OriginalGravity   float64        `json:"original_gravity"`
	FinalGravity      float64        `json:"final_gravity"`
	Ingredients       JSONMap        `gorm:"type:jsonb" json:"ingredients"`
	Notes             string         `gorm:"type:text" json:"notes"`
	Active            bool           `gorm:"default:true" json:"active"`
	SynchronizedAt    time.Time      `json:"synchronized_at"`
}

func (b *BrewfatherRecipe) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BrewfatherSync tracks the outcome of the last sync run per data type.
type BrewfatherSync struct {
	ID           uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	SyncType     string     `gorm:"size:50;not null" json:"sync_type"` // recipes, batches, inventory
	LastSync     *time.Time `json:"last_sync,omitempty"`
	ItemsCount   int        `gorm:"default:0" json:"items_count"`
	Status       string     `gorm:"size:20;default:'pending'" json:"status"` // pending, success, error
	ErrorMessage string     `gorm:"type:text" json:"error_message,omitempty"`
}

func (b *BrewfatherSync) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
