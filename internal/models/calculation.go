package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brewstation/backend/internal/pricing"
)

// LineCostsJSON stores the per-ingredient cost itemization as JSON.
type LineCostsJSON []pricing.LineCost

// Value implements the driver.Valuer interface
func (l LineCostsJSON) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *LineCostsJSON) Scan(value interface{}) error {
	if value == nil {
		*l = LineCostsJSON{}
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

	return json.Unmarshal(bytes, l)
}

// PriceCalculation is the persisted audit record of a pricing run: the
// inputs the user supplied plus every stage of the computed breakdown.
type PriceCalculation struct {
	ID                 uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
	RecipeID           *uuid.UUID     `gorm:"type:varchar(36);index" json:"recipe_id,omitempty"`
	BrewfatherRecipeID *uuid.UUID     `gorm:"type:varchar(36);index" json:"brewfather_recipe_id,omitempty"`
	ProductName        string         `gorm:"size:100;not null" json:"product_name"`
	PackagingType      string         `gorm:"size:50;default:'bottle'" json:"packaging_type"`
	QuantityML         int            `gorm:"not null" json:"quantity_ml"`
	ApplyEfficiency    bool           `json:"apply_efficiency"`

	PackagingCost     float64 `json:"packaging_cost"`
	LabelCost         float64 `json:"label_cost"`
	CapCost           float64 `json:"cap_cost"`
	ProfitPercent     float64 `json:"profit_percent"`
	CardFeePercent    float64 `json:"card_fee_percent"`
	SanitationPercent float64 `json:"sanitation_percent"`
	TaxPercent        float64 `json:"tax_percent"`

	Lines               LineCostsJSON `gorm:"type:jsonb;not null;default:'[]'" json:"lines"`
	TotalIngredientCost float64       `json:"total_ingredient_cost"`
	CostPerLiter        float64       `json:"cost_per_liter"`
	BaseCost            float64       `json:"base_cost"`
	Subtotal            float64       `json:"subtotal"`
	ProfitAmount        float64       `json:"profit_amount"`
	CardFeeAmount       float64       `json:"card_fee_amount"`
	SanitationAmount    float64       `json:"sanitation_amount"`
	PretaxTotal         float64       `json:"pretax_total"`
	TaxAmount           float64       `json:"tax_amount"`
	FinalSalePrice      float64       `gorm:"not null" json:"final_sale_price"`
}

func (p *PriceCalculation) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
