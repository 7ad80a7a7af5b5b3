package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/brewstation/backend/internal/models"
	"github.com/brewstation/backend/internal/pricing"
	"github.com/brewstation/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(name, email, password, breweryName string) (string, error)
	Login(email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IPricingService defines the interface for price calculation operations
type IPricingService interface {
	Calculate(req types.CalculationRequest) (*models.PriceCalculation, error)
	History(limit int) ([]models.PriceCalculation, error)
	Get(id uuid.UUID) (*models.PriceCalculation, error)
}

// ISettingsService defines the interface for system settings operations
type ISettingsService interface {
	Get(key string) (*models.Setting, error)
	Set(key string, update models.Setting) (*models.Setting, error)
	List(group string) ([]models.Setting, error)
	Delete(key string) error
	DefaultPrice(category pricing.Category) (float64, bool)
}

// IBrewfatherService defines the interface for Brewfather sync operations
type IBrewfatherService interface {
	SyncRecipes(ctx context.Context) (*models.BrewfatherSync, error)
	ListRecipes() ([]models.BrewfatherRecipe, error)
	LastSync(syncType string) (*models.BrewfatherSync, error)
}

// INotificationService defines the interface for user notification operations
type INotificationService interface {
	Create(userID uuid.UUID, notification models.Notification) (*models.Notification, error)
	List(userID uuid.UUID, unreadOnly bool, page, perPage int) (*NotificationPage, error)
	MarkRead(userID, id uuid.UUID) (*models.Notification, error)
	MarkAllRead(userID uuid.UUID) (int64, error)
	Delete(userID, id uuid.UUID) error
	ClearAll(userID uuid.UUID) (int64, error)
	Stats(userID uuid.UUID) (*NotificationStats, error)
}

// IExportService defines the interface for catalog spreadsheet transfer
type IExportService interface {
	ExportCatalog() ([]byte, string, error)
	ImportCatalog(data []byte) (*ImportSummary, error)
	UploadExport(ctx context.Context, filename string, data []byte) (string, error)
}

var (
	_ IAuthService         = (*AuthService)(nil)
	_ IPricingService      = (*PricingService)(nil)
	_ ISettingsService     = (*SettingsService)(nil)
	_ IBrewfatherService   = (*BrewfatherService)(nil)
	_ INotificationService = (*NotificationService)(nil)
	_ IExportService       = (*ExportService)(nil)
)
