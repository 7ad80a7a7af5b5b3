// Package pricing implements the BrewStation pricing engine: a tiered
// ingredient price resolver over the local catalog and a deterministic
// cost/markup/tax pipeline that turns a recipe into an itemized sale price.
// The package is pure computation; all storage access happens behind the
// CatalogLookup and DefaultsProvider interfaces.
package pricing

// Category identifies an ingredient class. Each category is priced in its
// own native unit: currency per kilogram for malt and hop, currency per
// packet for yeast.
type Category string

const (
	CategoryMalt  Category = "malt"
	CategoryHop   Category = "hop"
	CategoryYeast Category = "yeast"
)

// Unit returns the quantity unit recipes use for the category: kilograms
// for malt, grams for hop, packets for yeast.
func (c Category) Unit() string {
	switch c {
	case CategoryMalt:
		return "kg"
	case CategoryHop:
		return "g"
	case CategoryYeast:
		return "unit"
	}
	return ""
}

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	return c == CategoryMalt || c == CategoryHop || c == CategoryYeast
}

// CatalogEntry is a priced catalog record as seen by the resolver. Price is
// in the category's native unit. Inactive entries must not be returned by
// CatalogLookup implementations.
type CatalogEntry struct {
	ID       string
	Name     string
	Supplier string
	Price    float64
}

// CatalogLookup abstracts the ingredient catalog. Implementations return
// only active entries and may return (nil, nil) for "no match"; any error
// is treated by the resolver as a miss and never propagated.
type CatalogLookup interface {
	// FindExact returns the entry matching both name and supplier.
	FindExact(category Category, name, supplier string) (*CatalogEntry, error)
	// FindByName returns the entry matching name, ignoring supplier.
	FindByName(category Category, name string) (*CatalogEntry, error)
	// SearchByName returns entries whose name contains the given string,
	// case-insensitively, in storage order.
	SearchByName(category Category, name string) ([]CatalogEntry, error)
}

// DefaultsProvider supplies the system-wide default unit price for a
// category. ok is false when no usable value is configured.
type DefaultsProvider interface {
	DefaultPrice(category Category) (price float64, ok bool)
}

// Line is a single recipe ingredient to be priced. Quantity is in the
// category's recipe unit (see Category.Unit).
type Line struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Supplier string   `json:"supplier"`
	Quantity float64  `json:"quantity"`
}

// RecipeInput is the immutable snapshot of a recipe handed to the
// calculator.
type RecipeInput struct {
	Name              string  `json:"name"`
	BatchVolumeLiters float64 `json:"batch_volume_liters"`
	EfficiencyPercent float64 `json:"efficiency_percent"`
	// ApplyEfficiency selects whether brewhouse efficiency scales the
	// cost per liter. Local recipes set it; imported recipes do not.
	ApplyEfficiency bool `json:"apply_efficiency"`
	Lines           []Line
}

// Params are the packaging and markup inputs for the final price pipeline.
// Percent fields are whole percentages (30 means 30%).
type Params struct {
	QuantityML        int     `json:"quantity_ml"`
	PackagingCost     float64 `json:"packaging_cost"`
	LabelCost         float64 `json:"label_cost"`
	CapCost           float64 `json:"cap_cost"`
	ProfitPercent     float64 `json:"profit_percent"`
	CardFeePercent    float64 `json:"card_fee_percent"`
	SanitationPercent float64 `json:"sanitation_percent"`
	TaxPercent        float64 `json:"tax_percent"`
}
