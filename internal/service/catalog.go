package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brewstation/backend/internal/models"
	"github.com/brewstation/backend/internal/pricing"
)

var ErrUnknownCategory = errors.New("unknown ingredient category")

// CatalogService exposes the malt, hop and yeast tables to the pricing
// resolver and to recipe lookups. Only active rows are visible.
type CatalogService struct {
	db *gorm.DB
}

var _ pricing.CatalogLookup = (*CatalogService)(nil)

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// FindExact returns the active entry matching both name and supplier.
func (s *CatalogService) FindExact(category pricing.Category, name, supplier string) (*pricing.CatalogEntry, error) {
	return s.findOne(category, "LOWER(name) = LOWER(?) AND LOWER(supplier) = LOWER(?) AND active = ?", name, supplier, true)
}

// FindByName returns the active entry matching name, ignoring supplier.
func (s *CatalogService) FindByName(category pricing.Category, name string) (*pricing.CatalogEntry, error) {
	return s.findOne(category, "LOWER(name) = LOWER(?) AND active = ?", name, true)
}

// SearchByName returns active entries whose name contains the given string.
func (s *CatalogService) SearchByName(category pricing.Category, name string) ([]pricing.CatalogEntry, error) {
	pattern := "%" + name + "%"
	query := "LOWER(name) LIKE LOWER(?) AND active = ?"

	switch category {
	case pricing.CategoryMalt:
		var malts []models.Malt
		if err := s.db.Where(query, pattern, true).Find(&malts).Error; err != nil {
			return nil, err
		}
		entries := make([]pricing.CatalogEntry, 0, len(malts))
		for _, m := range malts {
			entries = append(entries, maltEntry(&m))
		}
		return entries, nil
	case pricing.CategoryHop:
		var hops []models.Hop
		if err := s.db.Where(query, pattern, true).Find(&hops).Error; err != nil {
			return nil, err
		}
		entries := make([]pricing.CatalogEntry, 0, len(hops))
		for _, h := range hops {
			entries = append(entries, hopEntry(&h))
		}
		return entries, nil
	case pricing.CategoryYeast:
		var yeasts []models.Yeast
		if err := s.db.Where(query, pattern, true).Find(&yeasts).Error; err != nil {
			return nil, err
		}
		entries := make([]pricing.CatalogEntry, 0, len(yeasts))
		for _, y := range yeasts {
			entries = append(entries, yeastEntry(&y))
		}
		return entries, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
}

// EntryByID resolves a recipe ingredient reference into a priced entry.
func (s *CatalogService) EntryByID(category pricing.Category, id uuid.UUID) (*pricing.CatalogEntry, error) {
	return s.findOne(category, "id = ? AND active = ?", id.String(), true)
}

func (s *CatalogService) findOne(category pricing.Category, query string, args ...interface{}) (*pricing.CatalogEntry, error) {
	switch category {
	case pricing.CategoryMalt:
		var malt models.Malt
		if err := s.db.Where(query, args...).First(&malt).Error; err != nil {
			return nil, ignoreNotFound(err)
		}
		entry := maltEntry(&malt)
		return &entry, nil
	case pricing.CategoryHop:
		var hop models.Hop
		if err := s.db.Where(query, args...).First(&hop).Error; err != nil {
			return nil, ignoreNotFound(err)
		}
		entry := hopEntry(&hop)
		return &entry, nil
	case pricing.CategoryYeast:
		var yeast models.Yeast
		if err := s.db.Where(query, args...).First(&yeast).Error; err != nil {
			return nil, ignoreNotFound(err)
		}
		entry := yeastEntry(&yeast)
		return &entry, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
}

func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func maltEntry(m *models.Malt) pricing.CatalogEntry {
	return pricing.CatalogEntry{ID: m.ID.String(), Name: m.Name, Supplier: m.Supplier, Price: m.PricePerKg}
}

func hopEntry(h *models.Hop) pricing.CatalogEntry {
	return pricing.CatalogEntry{ID: h.ID.String(), Name: h.Name, Supplier: h.Supplier, Price: h.PricePerKg}
}

func yeastEntry(y *models.Yeast) pricing.CatalogEntry {
	return pricing.CatalogEntry{ID: y.ID.String(), Name: y.Name, Supplier: y.Supplier, Price: y.PricePerUnit}
}
