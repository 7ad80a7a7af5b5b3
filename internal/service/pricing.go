package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/brewstation/backend/internal/metrics"
	"github.com/brewstation/backend/internal/models"
	"github.com/brewstation/backend/internal/pricing"
	"github.com/brewstation/backend/internal/types"
)

// Markup defaults applied when the request omits a parameter.
const (
	DefaultProfitPercent     = 30.0
	DefaultCardFeePercent    = 3.5
	DefaultSanitationPercent = 2.0
	DefaultTaxPercent        = 8.0
)

var (
	ErrQuantityRequired       = errors.New("quantity_ml is required and must be positive")
	ErrRecipeRequired         = errors.New("recipe_id or brewfather_recipe_id is required")
	ErrRecipeNotFound         = errors.New("recipe not found")
	ErrCalculationNotFound    = errors.New("calculation not found")
	ErrBrewfatherRecipeNotFnd = errors.New("brewfather recipe not found")
)

var pricingLogger = zerolog.New(os.Stdout).With().Timestamp().Str("service", "pricing").Logger()

// PricingService orchestrates a price calculation: it loads the recipe,
// prices it through the calculator and persists the full breakdown.
type PricingService struct {
	db      *gorm.DB
	catalog *CatalogService
	calc    *pricing.Calculator
}

func NewPricingService(db *gorm.DB, catalog *CatalogService, settings *SettingsService) *PricingService {
	resolver := pricing.NewResolver(catalog, settings)
	return &PricingService{
		db:      db,
		catalog: catalog,
		calc:    pricing.NewCalculator(resolver),
	}
}

// Calculate prices the recipe named by the request and stores the result.
// Exactly one of RecipeID and BrewfatherRecipeID must be set.
func (s *PricingService) Calculate(req types.CalculationRequest) (*models.PriceCalculation, error) {
	if req.QuantityML == nil || *req.QuantityML <= 0 {
		return nil, ErrQuantityRequired
	}

	var (
		input  pricing.RecipeInput
		source string
		err    error
	)
	switch {
	case req.RecipeID != nil:
		source = "recipe"
		input, err = s.localRecipeInput(*req.RecipeID)
	case req.BrewfatherRecipeID != nil:
		source = "brewfather"
		input, err = s.brewfatherRecipeInput(*req.BrewfatherRecipeID)
	default:
		return nil, ErrRecipeRequired
	}
	if err != nil {
		return nil, err
	}

	if req.ApplyEfficiency != nil {
		input.ApplyEfficiency = *req.ApplyEfficiency
	}

	params := pricing.Params{
		QuantityML:        *req.QuantityML,
		PackagingCost:     floatOr(req.PackagingCost, 0),
		LabelCost:         floatOr(req.LabelCost, 0),
		CapCost:           floatOr(req.CapCost, 0),
		ProfitPercent:     floatOr(req.ProfitPercent, DefaultProfitPercent),
		CardFeePercent:    floatOr(req.CardFeePercent, DefaultCardFeePercent),
		SanitationPercent: floatOr(req.SanitationPercent, DefaultSanitationPercent),
		TaxPercent:        floatOr(req.TaxPercent, DefaultTaxPercent),
	}

	breakdown := s.calc.Calculate(input, params)

	productName := req.ProductName
	if productName == "" {
		productName = input.Name
	}
	packagingType := req.PackagingType
	if packagingType == "" {
		packagingType = "bottle"
	}

	record := models.PriceCalculation{
		RecipeID:            req.RecipeID,
		BrewfatherRecipeID:  req.BrewfatherRecipeID,
		ProductName:         productName,
		PackagingType:       packagingType,
		QuantityML:          params.QuantityML,
		ApplyEfficiency:     input.ApplyEfficiency,
		PackagingCost:       params.PackagingCost,
		LabelCost:           params.LabelCost,
		CapCost:             params.CapCost,
		ProfitPercent:       params.ProfitPercent,
		CardFeePercent:      params.CardFeePercent,
		SanitationPercent:   params.SanitationPercent,
		TaxPercent:          params.TaxPercent,
		Lines:               models.LineCostsJSON(breakdown.Lines),
		TotalIngredientCost: breakdown.TotalIngredientCost,
		CostPerLiter:        breakdown.CostPerLiter,
		BaseCost:            breakdown.BaseCost,
		Subtotal:            breakdown.Subtotal,
		ProfitAmount:        breakdown.ProfitAmount,
		CardFeeAmount:       breakdown.CardFeeAmount,
		SanitationAmount:    breakdown.SanitationAmount,
		PretaxTotal:         breakdown.PretaxTotal,
		TaxAmount:           breakdown.TaxAmount,
		FinalSalePrice:      breakdown.FinalSalePrice,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("saving calculation: %w", err)
	}

	metrics.PriceCalculationsTotal.WithLabelValues(source).Inc()
	pricingLogger.Info().
		Str("calculation_id", record.ID.String()).
		Str("source", source).
		Str("product", record.ProductName).
		Float64("final_price", record.FinalSalePrice).
		Msg("price calculation stored")

	return &record, nil
}

// History returns the most recent calculations, newest first.
func (s *PricingService) History(limit int) ([]models.PriceCalculation, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var records []models.PriceCalculation
	if err := s.db.Order("created_at desc").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Get returns a single stored calculation.
func (s *PricingService) Get(id uuid.UUID) (*models.PriceCalculation, error) {
	var record models.PriceCalculation
	if err := s.db.First(&record, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCalculationNotFound
		}
		return nil, err
	}
	return &record, nil
}

// localRecipeInput builds the calculator input from a stored recipe.
// Ingredient references that no longer resolve keep an empty name so the
// resolver falls through to default prices instead of failing the run.
func (s *PricingService) localRecipeInput(id uuid.UUID) (pricing.RecipeInput, error) {
	var recipe models.Recipe
	err := s.db.Preload("Ingredients").First(&recipe, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.RecipeInput{}, ErrRecipeNotFound
		}
		return pricing.RecipeInput{}, err
	}

	lines := make([]pricing.Line, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		category := pricing.Category(ing.Category)
		if !category.Valid() {
			continue
		}
		line := pricing.Line{Category: category, Quantity: ing.Quantity}
		if entry, err := s.catalog.EntryByID(category, ing.IngredientID); err == nil && entry != nil {
			line.Name = entry.Name
			line.Supplier = entry.Supplier
		}
		lines = append(lines, line)
	}

	return pricing.RecipeInput{
		Name:              recipe.Name,
		BatchVolumeLiters: recipe.BatchVolumeLiters,
		EfficiencyPercent: recipe.EfficiencyPercent,
		ApplyEfficiency:   true,
		Lines:             lines,
	}, nil
}

// brewfatherIngredients is the subset of the Brewfather recipe payload the
// calculator needs. Fermentable and hop amounts arrive in kilograms; yeast
// amounts may be absent and default to one packet.
type brewfatherIngredients struct {
	Fermentables []struct {
		Name     string  `json:"name"`
		Supplier string  `json:"supplier"`
		Amount   float64 `json:"amount"`
	} `json:"fermentables"`
	Hops []struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
	} `json:"hops"`
	Yeasts []struct {
		Name       string   `json:"name"`
		Laboratory string   `json:"laboratory"`
		Amount     *float64 `json:"amount"`
	} `json:"yeasts"`
}

func (s *PricingService) brewfatherRecipeInput(id uuid.UUID) (pricing.RecipeInput, error) {
	var recipe models.BrewfatherRecipe
	err := s.db.First(&recipe, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.RecipeInput{}, ErrBrewfatherRecipeNotFnd
		}
		return pricing.RecipeInput{}, err
	}

	raw, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return pricing.RecipeInput{}, fmt.Errorf("reading ingredients payload: %w", err)
	}
	var payload brewfatherIngredients
	if err := json.Unmarshal(raw, &payload); err != nil {
		return pricing.RecipeInput{}, fmt.Errorf("reading ingredients payload: %w", err)
	}

	var lines []pricing.Line
	for _, f := range payload.Fermentables {
		lines = append(lines, pricing.Line{
			Category: pricing.CategoryMalt,
			Name:     f.Name,
			Supplier: f.Supplier,
			Quantity: f.Amount,
		})
	}
	for _, h := range payload.Hops {
		lines = append(lines, pricing.Line{
			Category: pricing.CategoryHop,
			Name:     h.Name,
			Quantity: h.Amount * 1000.0,
		})
	}
	for _, y := range payload.Yeasts {
		quantity := 1.0
		if y.Amount != nil && *y.Amount > 0 {
			quantity = *y.Amount
		}
		lines = append(lines, pricing.Line{
			Category: pricing.CategoryYeast,
			Name:     y.Name,
			Supplier: y.Laboratory,
			Quantity: quantity,
		})
	}

	return pricing.RecipeInput{
		Name:              recipe.Name,
		BatchVolumeLiters: recipe.BatchSizeLiters,
		EfficiencyPercent: recipe.EfficiencyPercent,
		ApplyEfficiency:   false,
		Lines:             lines,
	}, nil
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
