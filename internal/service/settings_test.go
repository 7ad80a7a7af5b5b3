package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewstation/backend/internal/models"
	"github.com/brewstation/backend/internal/pricing"
)

func TestSettingsService_SetAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	created, err := svc.Set("SITE_NAME", models.Setting{Value: "BrewStation", Group: "system"})
	require.NoError(t, err)
	assert.Equal(t, "string", created.Type)

	got, err := svc.Get("SITE_NAME")
	require.NoError(t, err)
	assert.Equal(t, "BrewStation", got.Value)

	// Upsert keeps a single row per key.
	_, err = svc.Set("SITE_NAME", models.Setting{Value: "BrewStation 2"})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Setting{}).Where("key = ?", "SITE_NAME").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got, err = svc.Get("SITE_NAME")
	require.NoError(t, err)
	assert.Equal(t, "BrewStation 2", got.Value)
}

func TestSettingsService_GetMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	_, err := svc.Get("NOPE")
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestSettingsService_GetFloat(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	_, err := svc.Set("A_NUMBER", models.Setting{Value: "12.5", Type: "number"})
	require.NoError(t, err)
	_, err = svc.Set("NOT_A_NUMBER", models.Setting{Value: "abc"})
	require.NoError(t, err)

	value, ok := svc.GetFloat("A_NUMBER")
	assert.True(t, ok)
	assert.Equal(t, 12.5, value)

	_, ok = svc.GetFloat("NOT_A_NUMBER")
	assert.False(t, ok)

	_, ok = svc.GetFloat("MISSING")
	assert.False(t, ok)
}

func TestSettingsService_Delete(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	_, err := svc.Set("TEMP", models.Setting{Value: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete("TEMP"))
	assert.ErrorIs(t, svc.Delete("TEMP"), ErrSettingNotFound)
}

func TestSettingsService_DefaultPrice(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	// Unconfigured keys report not-ok so the resolver constants apply.
	_, ok := svc.DefaultPrice(pricing.CategoryMalt)
	assert.False(t, ok)

	_, err := svc.Set(models.SettingDefaultMaltPrice, models.Setting{Value: "21.40", Type: "number", Group: "pricing"})
	require.NoError(t, err)

	value, ok := svc.DefaultPrice(pricing.CategoryMalt)
	assert.True(t, ok)
	assert.Equal(t, 21.40, value)
}

func TestSettingsService_DefaultPriceRejectsBadValues(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	_, err := svc.Set(models.SettingDefaultHopPrice, models.Setting{Value: "not a price"})
	require.NoError(t, err)
	_, err = svc.Set(models.SettingDefaultYeastPrice, models.Setting{Value: "-3"})
	require.NoError(t, err)

	_, ok := svc.DefaultPrice(pricing.CategoryHop)
	assert.False(t, ok)

	_, ok = svc.DefaultPrice(pricing.CategoryYeast)
	assert.False(t, ok)
}

func TestSettingsService_ListByGroup(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	_, err := svc.Set("A", models.Setting{Value: "1", Group: "pricing"})
	require.NoError(t, err)
	_, err = svc.Set("B", models.Setting{Value: "2", Group: "brewfather"})
	require.NoError(t, err)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pricingOnly, err := svc.List("pricing")
	require.NoError(t, err)
	require.Len(t, pricingOnly, 1)
	assert.Equal(t, "A", pricingOnly[0].Key)
}
