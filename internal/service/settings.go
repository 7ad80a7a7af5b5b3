package service

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/brewstation/backend/internal/models"
	"github.com/brewstation/backend/internal/pricing"
)

var ErrSettingNotFound = errors.New("setting not found")

// SettingsService reads and writes system settings. It backs the pricing
// resolver's configured default prices.
type SettingsService struct {
	db *gorm.DB
}

var _ pricing.DefaultsProvider = (*SettingsService)(nil)

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get returns the setting stored under key.
func (s *SettingsService) Get(key string) (*models.Setting, error) {
	var setting models.Setting
	if err := s.db.Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return &setting, nil
}

// GetString returns the raw value for key, or fallback when unset.
func (s *SettingsService) GetString(key, fallback string) string {
	setting, err := s.Get(key)
	if err != nil || setting.Value == "" {
		return fallback
	}
	return setting.Value
}

// GetFloat parses the value for key as a float. ok is false when the
// setting is missing or not numeric.
func (s *SettingsService) GetFloat(key string) (float64, bool) {
	setting, err := s.Get(key)
	if err != nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// GetBool parses the value for key as a boolean, defaulting to fallback.
func (s *SettingsService) GetBool(key string, fallback bool) bool {
	setting, err := s.Get(key)
	if err != nil {
		return fallback
	}
	value, err := strconv.ParseBool(setting.Value)
	if err != nil {
		return fallback
	}
	return value
}

// Set upserts the setting stored under key.
func (s *SettingsService) Set(key string, update models.Setting) (*models.Setting, error) {
	var setting models.Setting
	err := s.db.Where("key = ?", key).First(&setting).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = update
		setting.Key = key
		if setting.Type == "" {
			setting.Type = "string"
		}
		if err := s.db.Create(&setting).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		setting.Value = update.Value
		if update.Type != "" {
			setting.Type = update.Type
		}
		if update.Group != "" {
			setting.Group = update.Group
		}
		if update.Description != "" {
			setting.Description = update.Description
		}
		setting.IsSensitive = update.IsSensitive
		if err := s.db.Save(&setting).Error; err != nil {
			return nil, err
		}
	}
	return &setting, nil
}

// List returns all settings, optionally filtered by group.
func (s *SettingsService) List(group string) ([]models.Setting, error) {
	var settings []models.Setting
	query := s.db.Order("key asc")
	if group != "" {
		query = query.Where("\"group\" = ?", group)
	}
	if err := query.Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// Delete removes the setting stored under key.
func (s *SettingsService) Delete(key string) error {
	result := s.db.Where("key = ?", key).Delete(&models.Setting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}
	return nil
}

// DefaultPrice returns the configured default unit price for a category.
// A missing, non-numeric or non-positive value reports ok=false so the
// resolver falls through to its built-in constants.
func (s *SettingsService) DefaultPrice(category pricing.Category) (float64, bool) {
	var key string
	switch category {
	case pricing.CategoryMalt:
		key = models.SettingDefaultMaltPrice
	case pricing.CategoryHop:
		key = models.SettingDefaultHopPrice
	case pricing.CategoryYeast:
		key = models.SettingDefaultYeastPrice
	default:
		return 0, false
	}

	value, ok := s.GetFloat(key)
	if !ok || value <= 0 {
		return 0, false
	}
	return value, true
}
