package pricing

// Hard price floors, in currency per native unit. Used only when the
// catalog and the configured defaults both come up empty, so a recipe is
// never priced off a zero or missing ingredient price.
const (
	FallbackMaltPricePerKg    = 25.00
	FallbackHopPricePerKg     = 400.00
	FallbackYeastPricePerUnit = 30.00
)

// PriceSource tags where a resolved price came from, for display and audit.
type PriceSource string

const (
	SourceExactMatch PriceSource = "exact_match"
	SourceNameMatch  PriceSource = "name_match"
	SourceFuzzyMatch PriceSource = "fuzzy_match"
	SourceDefault    PriceSource = "configured_default"
	SourceFallback   PriceSource = "fallback_constant"
)

// ResolvedPrice is the outcome of a price lookup. CatalogID is empty unless
// the price came from a catalog entry.
type ResolvedPrice struct {
	Price     float64     `json:"price"`
	Source    PriceSource `json:"source"`
	CatalogID string      `json:"catalog_id,omitempty"`
}

// Resolver finds a usable unit price for a named ingredient. Recipes
// imported from external tools rarely name ingredients exactly the way the
// local catalog does, so the lookup degrades through progressively looser
// tiers before settling on an estimate.
type Resolver struct {
	catalog  CatalogLookup
	defaults DefaultsProvider
}

// NewResolver creates a resolver over the given catalog and defaults.
// Either dependency may be nil, in which case its tiers are skipped.
func NewResolver(catalog CatalogLookup, defaults DefaultsProvider) *Resolver {
	return &Resolver{catalog: catalog, defaults: defaults}
}

// ResolveUnitPrice returns a positive unit price for the ingredient. It
// never fails: catalog errors count as a miss and the final tier is a
// non-zero constant. Tier order: exact name+supplier match, name-only
// match, case-insensitive substring match, configured default, constant.
// Entries priced at zero are skipped at every tier.
func (r *Resolver) ResolveUnitPrice(category Category, name, supplier string) ResolvedPrice {
	if r.catalog != nil && name != "" {
		if entry, err := r.catalog.FindExact(category, name, supplier); err == nil && entry != nil && entry.Price > 0 {
			return ResolvedPrice{Price: entry.Price, Source: SourceExactMatch, CatalogID: entry.ID}
		}

		if entry, err := r.catalog.FindByName(category, name); err == nil && entry != nil && entry.Price > 0 {
			return ResolvedPrice{Price: entry.Price, Source: SourceNameMatch, CatalogID: entry.ID}
		}

		// Match order here follows storage iteration order; this tier is a
		// low-confidence fallback and makes no ordering guarantee.
		if entries, err := r.catalog.SearchByName(category, name); err == nil {
			for _, entry := range entries {
				if entry.Price > 0 {
					return ResolvedPrice{Price: entry.Price, Source: SourceFuzzyMatch, CatalogID: entry.ID}
				}
			}
		}
	}

	if r.defaults != nil {
		if price, ok := r.defaults.DefaultPrice(category); ok && price > 0 {
			return ResolvedPrice{Price: price, Source: SourceDefault}
		}
	}

	return ResolvedPrice{Price: fallbackPrice(category), Source: SourceFallback}
}

func fallbackPrice(category Category) float64 {
	switch category {
	case CategoryHop:
		return FallbackHopPricePerKg
	case CategoryYeast:
		return FallbackYeastPricePerUnit
	default:
		return FallbackMaltPricePerKg
	}
}
