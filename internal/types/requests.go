package types

import "github.com/google/uuid"

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Name              string                    `json:"name" binding:"required"`
	Description       string                    `json:"description"`
	Style             string                    `json:"style"`
	BatchVolumeLiters float64                   `json:"batch_volume_liters" binding:"required,gt=0"`
	EfficiencyPercent float64                   `json:"efficiency_percent"`
	Ingredients       []RecipeIngredientRequest `json:"ingredients"`
}

// UpdateRecipeRequest represents the request body for updating a recipe
type UpdateRecipeRequest struct {
	Name              string                    `json:"name"`
	Description       string                    `json:"description"`
	Style             string                    `json:"style"`
	BatchVolumeLiters float64                   `json:"batch_volume_liters"`
	EfficiencyPercent float64                   `json:"efficiency_percent"`
	Ingredients       []RecipeIngredientRequest `json:"ingredients"`
}

// RecipeIngredientRequest is one ingredient line inside a recipe payload.
type RecipeIngredientRequest struct {
	Category        string    `json:"category" binding:"required,oneof=malt hop yeast"`
	IngredientID    uuid.UUID `json:"ingredient_id" binding:"required"`
	Quantity        float64   `json:"quantity" binding:"required,gt=0"`
	AdditionTimeMin *float64  `json:"addition_time_min"`
	Notes           string    `json:"notes"`
}

// CalculationRequest represents the request body for a price calculation.
// Numeric fields are pointers so that absent values fall back to the
// service defaults rather than zero.
type CalculationRequest struct {
	RecipeID           *uuid.UUID `json:"recipe_id"`
	BrewfatherRecipeID *uuid.UUID `json:"brewfather_recipe_id"`
	ProductName        string     `json:"product_name"`
	PackagingType      string     `json:"packaging_type"`
	QuantityML         *int       `json:"quantity_ml"`
	ApplyEfficiency    *bool      `json:"apply_efficiency"`
	PackagingCost      *float64   `json:"packaging_cost"`
	LabelCost          *float64   `json:"label_cost"`
	CapCost            *float64   `json:"cap_cost"`
	ProfitPercent      *float64   `json:"profit_percent"`
	CardFeePercent     *float64   `json:"card_fee_percent"`
	SanitationPercent  *float64   `json:"sanitation_percent"`
	TaxPercent         *float64   `json:"tax_percent"`
}

// UpdateSettingRequest represents the request body for upserting a setting
type UpdateSettingRequest struct {
	Value       string `json:"value" binding:"required"`
	Type        string `json:"type" binding:"omitempty,oneof=string number boolean"`
	Group       string `json:"group"`
	Description string `json:"description"`
	IsSensitive *bool  `json:"is_sensitive"`
}

// DeviceReadingRequest represents one telemetry sample posted by a device
type DeviceReadingRequest struct {
	Metric     string  `json:"metric" binding:"required"`
	Value      float64 `json:"value" binding:"required"`
	Unit       string  `json:"unit"`
	RecordedAt string  `json:"recorded_at"`
}
