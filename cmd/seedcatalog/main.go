package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/brewstation/backend/config"
	"github.com/brewstation/backend/internal/database"
	"github.com/brewstation/backend/internal/models"
)

var malts = []models.Malt{
	{Name: "Pilsen", Supplier: "Agraria", ColorEBC: 3.5, YieldPercent: 80, PricePerKg: 8.50, Type: "base", Active: true},
	{Name: "Pale Ale", Supplier: "Agraria", ColorEBC: 6.5, YieldPercent: 79, PricePerKg: 9.20, Type: "base", Active: true},
	{Name: "Vienna", Supplier: "Weyermann", ColorEBC: 8, YieldPercent: 78, PricePerKg: 12.00, Type: "base", Active: true},
	{Name: "Munich", Supplier: "Weyermann", ColorEBC: 15, YieldPercent: 77, PricePerKg: 12.50, Type: "base", Active: true},
	{Name: "Carared", Supplier: "Weyermann", ColorEBC: 50, YieldPercent: 74, PricePerKg: 15.00, Type: "crystal", Active: true},
	{Name: "Caramunich II", Supplier: "Weyermann", ColorEBC: 120, YieldPercent: 73, PricePerKg: 16.00, Type: "crystal", Active: true},
	{Name: "Carafa II", Supplier: "Weyermann", ColorEBC: 1100, YieldPercent: 70, PricePerKg: 18.00, Type: "roasted", Active: true},
	{Name: "Wheat", Supplier: "Agraria", ColorEBC: 4, YieldPercent: 82, PricePerKg: 10.00, Type: "base", Active: true},
}

var hops = []models.Hop{
	{Name: "Cascade", Supplier: "Barth Haas", AlphaAcidPercent: 5.5, Form: "pellet", Origin: "USA", Aroma: "citrus, floral", PricePerKg: 380.00, Active: true},
	{Name: "Citra", Supplier: "YCH", AlphaAcidPercent: 12.0, Form: "pellet", Origin: "USA", Aroma: "tropical, grapefruit", PricePerKg: 520.00, Active: true},
	{Name: "Saaz", Supplier: "Barth Haas", AlphaAcidPercent: 3.5, Form: "pellet", Origin: "Czechia", Aroma: "spicy, herbal", PricePerKg: 420.00, Active: true},
	{Name: "Hallertau Mittelfrüh", Supplier: "Barth Haas", AlphaAcidPercent: 4.0, Form: "pellet", Origin: "Germany", Aroma: "floral, herbal", PricePerKg: 430.00, Active: true},
	{Name: "Magnum", Supplier: "Barth Haas", AlphaAcidPercent: 13.0, Form: "pellet", Origin: "Germany", Aroma: "neutral bittering", PricePerKg: 350.00, Active: true},
	{Name: "Mosaic", Supplier: "YCH", AlphaAcidPercent: 11.5, Form: "pellet", Origin: "USA", Aroma: "berry, pine", PricePerKg: 540.00, Active: true},
}

var yeasts = []models.Yeast{
	{Name: "SafAle US-05", Supplier: "Fermentis", Form: "dry", AttenuationPercent: 81, FermentationTempC: 18, Flocculation: "medium", PricePerUnit: 28.00, Active: true},
	{Name: "SafAle S-04", Supplier: "Fermentis", Form: "dry", AttenuationPercent: 78, FermentationTempC: 18, Flocculation: "high", PricePerUnit: 26.00, Active: true},
	{Name: "SafLager W-34/70", Supplier: "Fermentis", Form: "dry", AttenuationPercent: 82, FermentationTempC: 12, Flocculation: "high", PricePerUnit: 32.00, Active: true},
	{Name: "LalBrew Verdant IPA", Supplier: "Lallemand", Form: "dry", AttenuationPercent: 76, FermentationTempC: 20, Flocculation: "medium", PricePerUnit: 35.00, Active: true},
	{Name: "SafAle BE-256", Supplier: "Fermentis", Form: "dry", AttenuationPercent: 84, FermentationTempC: 20, Flocculation: "medium", PricePerUnit: 30.00, Active: true},
}

var settings = []models.Setting{
	{Key: models.SettingDefaultMaltPrice, Value: "25.00", Type: "number", Group: "pricing", Description: "Fallback malt price per kg when the catalog has no match"},
	{Key: models.SettingDefaultHopPrice, Value: "400.00", Type: "number", Group: "pricing", Description: "Fallback hop price per kg when the catalog has no match"},
	{Key: models.SettingDefaultYeastPrice, Value: "30.00", Type: "number", Group: "pricing", Description: "Fallback yeast price per packet when the catalog has no match"},
	{Key: models.SettingBrewfatherEnabled, Value: "false", Type: "boolean", Group: "brewfather", Description: "Enable the Brewfather API integration"},
	{Key: models.SettingBrewfatherUserID, Value: "", Type: "string", Group: "brewfather", Description: "Brewfather API user id", IsSensitive: true},
	{Key: models.SettingBrewfatherAPIKey, Value: "", Type: "string", Group: "brewfather", Description: "Brewfather API key", IsSensitive: true},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	seeded := 0
	for _, malt := range malts {
		if createIfMissing(db, &models.Malt{}, "name = ? AND supplier = ?", []interface{}{malt.Name, malt.Supplier}, &malt) {
			seeded++
		}
	}
	for _, hop := range hops {
		if createIfMissing(db, &models.Hop{}, "name = ? AND supplier = ?", []interface{}{hop.Name, hop.Supplier}, &hop) {
			seeded++
		}
	}
	for _, yeast := range yeasts {
		if createIfMissing(db, &models.Yeast{}, "name = ? AND supplier = ?", []interface{}{yeast.Name, yeast.Supplier}, &yeast) {
			seeded++
		}
	}
	for _, setting := range settings {
		if createIfMissing(db, &models.Setting{}, "key = ?", []interface{}{setting.Key}, &setting) {
			seeded++
		}
	}

	log.Printf("catalog seed complete, %d rows created", seeded)
}

// createIfMissing inserts value unless a row already matches the query.
func createIfMissing(db *gorm.DB, model interface{}, query string, args []interface{}, value interface{}) bool {
	var count int64
	if err := db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		log.Fatalf("failed to check existing row: %v", err)
	}
	if count > 0 {
		return false
	}
	if err := db.Create(value).Error; err != nil {
		log.Fatalf("failed to seed row: %v", err)
	}
	return true
}
