package pricing

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubCatalog is an in-memory CatalogLookup for resolver tests.
type stubCatalog struct {
	entries map[Category][]CatalogEntry
	err     error
}

func (s *stubCatalog) FindExact(category Category, name, supplier string) (*CatalogEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, e := range s.entries[category] {
		if e.Name == name && e.Supplier == supplier {
			return &e, nil
		}
	}
	return nil, nil
}

func (s *stubCatalog) FindByName(category Category, name string) (*CatalogEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, e := range s.entries[category] {
		if e.Name == name {
			return &e, nil
		}
	}
	return nil, nil
}

func (s *stubCatalog) SearchByName(category Category, name string) ([]CatalogEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []CatalogEntry
	for _, e := range s.entries[category] {
		if strings.Contains(strings.ToLower(e.Name), strings.ToLower(name)) {
			out = append(out, e)
		}
	}
	return out, nil
}

type stubDefaults map[Category]float64

func (s stubDefaults) DefaultPrice(category Category) (float64, bool) {
	price, ok := s[category]
	return price, ok
}

func TestResolveUnitPriceExactMatchWins(t *testing.T) {
	catalog := &stubCatalog{entries: map[Category][]CatalogEntry{
		CategoryMalt: {
			{ID: "1", Name: "Pilsen Extra", Supplier: "Other Maltings", Price: 11.00},
			{ID: "2", Name: "Pilsen", Supplier: "Agraria", Price: 8.50},
			{ID: "3", Name: "Pilsen", Supplier: "Cheaper Co", Price: 6.00},
		},
	}}
	resolver := NewResolver(catalog, nil)

	got := resolver.ResolveUnitPrice(CategoryMalt, "Pilsen", "Agraria")
	assert.Equal(t, 8.50, got.Price)
	assert.Equal(t, SourceExactMatch, got.Source)
	assert.Equal(t, "2", got.CatalogID)
}

func TestResolveUnitPriceFallsBackToNameMatch(t *testing.T) {
	catalog := &stubCatalog{entries: map[Category][]CatalogEntry{
		CategoryHop: {
			{ID: "7", Name: "Cascade", Supplier: "Barth Haas", Price: 120.00},
		},
	}}
	resolver := NewResolver(catalog, nil)

	got := resolver.ResolveUnitPrice(CategoryHop, "Cascade", "Unknown Supplier")
	assert.Equal(t, 120.00, got.Price)
	assert.Equal(t, SourceNameMatch, got.Source)
	assert.Equal(t, "7", got.CatalogID)
}

func TestResolveUnitPriceFuzzyMatch(t *testing.T) {
	catalog := &stubCatalog{entries: map[Category][]CatalogEntry{
		CategoryMalt: {
			{ID: "4", Name: "Malte Pilsen Premium", Supplier: "Agraria", Price: 9.20},
		},
	}}
	resolver := NewResolver(catalog, nil)

	got := resolver.ResolveUnitPrice(CategoryMalt, "pilsen", "")
	assert.Equal(t, 9.20, got.Price)
	assert.Equal(t, SourceFuzzyMatch, got.Source)
	assert.Equal(t, "4", got.CatalogID)
}

func TestResolveUnitPriceSkipsZeroPricedEntries(t *testing.T) {
	// A zero price is never a valid match, at any tier.
	catalog := &stubCatalog{entries: map[Category][]CatalogEntry{
		CategoryYeast: {
			{ID: "1", Name: "US-05", Supplier: "Fermentis", Price: 0},
			{ID: "2", Name: "US-05 Dry Ale", Supplier: "Fermentis", Price: 28.00},
		},
	}}
	resolver := NewResolver(catalog, nil)

	got := resolver.ResolveUnitPrice(CategoryYeast, "US-05", "Fermentis")
	assert.Equal(t, 28.00, got.Price)
	assert.Equal(t, SourceFuzzyMatch, got.Source)
	assert.Equal(t, "2", got.CatalogID)
}

func TestResolveUnitPriceConfiguredDefault(t *testing.T) {
	resolver := NewResolver(&stubCatalog{}, stubDefaults{CategoryMalt: 12.00})

	got := resolver.ResolveUnitPrice(CategoryMalt, "Nothing Like This", "")
	assert.Equal(t, 12.00, got.Price)
	assert.Equal(t, SourceDefault, got.Source)
	assert.Zero(t, got.CatalogID)
}

func TestResolveUnitPriceIgnoresNonPositiveDefault(t *testing.T) {
	resolver := NewResolver(&stubCatalog{}, stubDefaults{CategoryHop: 0})

	got := resolver.ResolveUnitPrice(CategoryHop, "Citra", "")
	assert.Equal(t, FallbackHopPricePerKg, got.Price)
	assert.Equal(t, SourceFallback, got.Source)
}

func TestResolveUnitPriceFallbackConstants(t *testing.T) {
	resolver := NewResolver(&stubCatalog{}, stubDefaults{})

	assert.Equal(t, 25.00, resolver.ResolveUnitPrice(CategoryMalt, "mystery", "").Price)
	assert.Equal(t, 400.00, resolver.ResolveUnitPrice(CategoryHop, "mystery", "").Price)
	assert.Equal(t, 30.00, resolver.ResolveUnitPrice(CategoryYeast, "mystery", "").Price)
}

func TestResolveUnitPriceSwallowsLookupErrors(t *testing.T) {
	catalog := &stubCatalog{err: errors.New("connection refused")}
	resolver := NewResolver(catalog, stubDefaults{CategoryYeast: 22.00})

	got := resolver.ResolveUnitPrice(CategoryYeast, "WB-06", "Fermentis")
	assert.Equal(t, 22.00, got.Price)
	assert.Equal(t, SourceDefault, got.Source)
}

func TestResolveUnitPriceTotality(t *testing.T) {
	// Whatever the inputs, the resolver must come back with a positive price.
	resolvers := []*Resolver{
		NewResolver(nil, nil),
		NewResolver(&stubCatalog{}, nil),
		NewResolver(&stubCatalog{err: errors.New("down")}, stubDefaults{}),
	}
	for i, resolver := range resolvers {
		for _, category := range []Category{CategoryMalt, CategoryHop, CategoryYeast} {
			for _, name := range []string{"", "Pilsen", "  ", "ünïcode"} {
				got := resolver.ResolveUnitPrice(category, name, "any")
				assert.Greater(t, got.Price, 0.0, fmt.Sprintf("resolver %d, category %s, name %q", i, category, name))
			}
		}
	}
}
