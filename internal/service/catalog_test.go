package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewstation/backend/internal/models"
	"github.com/brewstation/backend/internal/pricing"
)

func TestCatalogService_FindExact(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	require.NoError(t, db.Create(&models.Malt{Name: "Pilsen", Supplier: "Agraria", PricePerKg: 8.50, Active: true}).Error)
	require.NoError(t, db.Create(&models.Malt{Name: "Pilsen", Supplier: "Weyermann", PricePerKg: 11.00, Active: true}).Error)

	entry, err := svc.FindExact(pricing.CategoryMalt, "Pilsen", "Weyermann")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 11.00, entry.Price)
	assert.Equal(t, "Weyermann", entry.Supplier)
}

func TestCatalogService_FindExactIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	require.NoError(t, db.Create(&models.Hop{Name: "Cascade", Supplier: "Barth Haas", PricePerKg: 380, Active: true}).Error)

	entry, err := svc.FindExact(pricing.CategoryHop, "cascade", "barth haas")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "Cascade", entry.Name)
}

func TestCatalogService_FindByNameIgnoresSupplier(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	require.NoError(t, db.Create(&models.Yeast{Name: "US-05", Supplier: "Fermentis", PricePerUnit: 28, Active: true}).Error)

	entry, err := svc.FindByName(pricing.CategoryYeast, "US-05")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 28.0, entry.Price)
}

func TestCatalogService_MissReturnsNilWithoutError(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	entry, err := svc.FindByName(pricing.CategoryMalt, "Nonexistent")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestCatalogService_HidesInactiveEntries(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	require.NoError(t, db.Create(&models.Malt{Name: "Retired", Supplier: "Agraria", PricePerKg: 5, Active: false}).Error)

	entry, err := svc.FindExact(pricing.CategoryMalt, "Retired", "Agraria")
	require.NoError(t, err)
	assert.Nil(t, entry)

	matches, err := svc.SearchByName(pricing.CategoryMalt, "Retired")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestCatalogService_SearchByNameSubstring(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	require.NoError(t, db.Create(&models.Hop{Name: "Hallertau Mittelfrüh", Supplier: "Barth Haas", PricePerKg: 430, Active: true}).Error)
	require.NoError(t, db.Create(&models.Hop{Name: "Hallertau Blanc", Supplier: "Barth Haas", PricePerKg: 450, Active: true}).Error)
	require.NoError(t, db.Create(&models.Hop{Name: "Citra", Supplier: "YCH", PricePerKg: 520, Active: true}).Error)

	matches, err := svc.SearchByName(pricing.CategoryHop, "hallertau")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestCatalogService_EntryByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	malt := models.Malt{Name: "Vienna", Supplier: "Weyermann", PricePerKg: 12, Active: true}
	require.NoError(t, db.Create(&malt).Error)

	entry, err := svc.EntryByID(pricing.CategoryMalt, malt.ID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, malt.ID.String(), entry.ID)

	missing, err := svc.EntryByID(pricing.CategoryMalt, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCatalogService_UnknownCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	_, err := svc.SearchByName(pricing.Category("fruit"), "mango")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
