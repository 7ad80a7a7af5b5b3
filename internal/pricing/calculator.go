package pricing

const (
	// DefaultBatchVolumeLiters is substituted when a recipe reports a
	// non-positive batch volume, so the pipeline never divides by zero.
	DefaultBatchVolumeLiters = 20.0
	// DefaultEfficiencyPercent is the assumed brewhouse efficiency when a
	// recipe applies efficiency but does not report one.
	DefaultEfficiencyPercent = 75.0
)

// LineCost is the priced form of a single recipe ingredient line.
type LineCost struct {
	Category  Category    `json:"category"`
	Name      string      `json:"name"`
	Quantity  float64     `json:"quantity"`
	Unit      string      `json:"unit"`
	UnitPrice float64     `json:"unit_price"`
	LineCost  float64     `json:"line_cost"`
	Source    PriceSource `json:"source"`
	CatalogID string      `json:"catalog_id,omitempty"`
}

// Breakdown itemizes every stage of a price calculation. Callers persist
// and display the whole structure, not just FinalSalePrice.
type Breakdown struct {
	Lines               []LineCost `json:"lines"`
	TotalIngredientCost float64    `json:"total_ingredient_cost"`
	CostPerLiter        float64    `json:"cost_per_liter"`
	BaseCost            float64    `json:"base_cost"`
	PackagingCost       float64    `json:"packaging_cost"`
	LabelCost           float64    `json:"label_cost"`
	CapCost             float64    `json:"cap_cost"`
	Subtotal            float64    `json:"subtotal"`
	ProfitAmount        float64    `json:"profit_amount"`
	CardFeeAmount       float64    `json:"card_fee_amount"`
	SanitationAmount    float64    `json:"sanitation_amount"`
	PretaxTotal         float64    `json:"pretax_total"`
	TaxAmount           float64    `json:"tax_amount"`
	FinalSalePrice      float64    `json:"final_sale_price"`
}

// Calculator produces itemized price breakdowns for packaged beer. It is
// stateless and safe for concurrent use.
type Calculator struct {
	resolver *Resolver
}

// NewCalculator creates a calculator that prices ingredients through the
// given resolver.
func NewCalculator(resolver *Resolver) *Calculator {
	return &Calculator{resolver: resolver}
}

// IngredientCosts resolves a unit price for each line and computes its
// cost, converting hop grams to kilograms. Lines with an unknown category
// are skipped.
func (c *Calculator) IngredientCosts(lines []Line) []LineCost {
	costs := make([]LineCost, 0, len(lines))
	for _, line := range lines {
		if !line.Category.Valid() {
			continue
		}
		resolved := c.resolver.ResolveUnitPrice(line.Category, line.Name, line.Supplier)

		var cost float64
		switch line.Category {
		case CategoryMalt:
			cost = line.Quantity * resolved.Price
		case CategoryHop:
			// Hop quantities are in grams, hop prices per kilogram.
			cost = (line.Quantity / 1000.0) * resolved.Price
		case CategoryYeast:
			cost = line.Quantity * resolved.Price
		}

		costs = append(costs, LineCost{
			Category:  line.Category,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Unit:      line.Category.Unit(),
			UnitPrice: resolved.Price,
			LineCost:  cost,
			Source:    resolved.Source,
			CatalogID: resolved.CatalogID,
		})
	}
	return costs
}

// CostPerLiter divides the total ingredient cost over the batch volume.
// With applyEfficiency set, the effective volume shrinks by the brewhouse
// efficiency, so lower efficiency raises the cost per liter.
func (c *Calculator) CostPerLiter(totalIngredientCost, volumeLiters, efficiencyPercent float64, applyEfficiency bool) float64 {
	if volumeLiters <= 0 {
		volumeLiters = DefaultBatchVolumeLiters
	}
	if !applyEfficiency {
		return totalIngredientCost / volumeLiters
	}
	if efficiencyPercent <= 0 {
		efficiencyPercent = DefaultEfficiencyPercent
	}
	return totalIngredientCost / (volumeLiters * (efficiencyPercent / 100.0))
}

// FinalPrice runs the fixed five-stage pipeline. Profit, card fee and
// sanitation are each taken against the same subtotal; only tax compounds
// on top of them. This ordering matches every historical calculation on
// record and must not change.
func (c *Calculator) FinalPrice(costPerLiter float64, p Params) Breakdown {
	baseCost := costPerLiter * (float64(p.QuantityML) / 1000.0)
	subtotal := baseCost + p.PackagingCost + p.LabelCost + p.CapCost

	profit := subtotal * (p.ProfitPercent / 100.0)
	cardFee := subtotal * (p.CardFeePercent / 100.0)
	sanitation := subtotal * (p.SanitationPercent / 100.0)

	pretax := subtotal + profit + cardFee + sanitation
	tax := pretax * (p.TaxPercent / 100.0)

	return Breakdown{
		CostPerLiter:     costPerLiter,
		BaseCost:         baseCost,
		PackagingCost:    p.PackagingCost,
		LabelCost:        p.LabelCost,
		CapCost:          p.CapCost,
		Subtotal:         subtotal,
		ProfitAmount:     profit,
		CardFeeAmount:    cardFee,
		SanitationAmount: sanitation,
		PretaxTotal:      pretax,
		TaxAmount:        tax,
		FinalSalePrice:   pretax + tax,
	}
}

// Calculate prices a whole recipe: per-line costs, cost per liter, then
// the final price pipeline for the packaged quantity.
func (c *Calculator) Calculate(recipe RecipeInput, p Params) Breakdown {
	lines := c.IngredientCosts(recipe.Lines)

	var total float64
	for _, l := range lines {
		total += l.LineCost
	}

	perLiter := c.CostPerLiter(total, recipe.BatchVolumeLiters, recipe.EfficiencyPercent, recipe.ApplyEfficiency)

	breakdown := c.FinalPrice(perLiter, p)
	breakdown.Lines = lines
	breakdown.TotalIngredientCost = total
	return breakdown
}
