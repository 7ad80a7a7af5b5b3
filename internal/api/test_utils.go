package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brewstation/backend/internal/database"
	"github.com/brewstation/backend/internal/models"
	"github.com/brewstation/backend/internal/service"
)

// TestDB holds the in-memory database and the services built on it
type TestDB struct {
	DB          *gorm.DB
	AuthService *service.AuthService
}

// SetupTestDB creates an isolated in-memory database with the full schema
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.AutoMigrateModels(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return &TestDB{
		DB:          db,
		AuthService: service.NewAuthService(db, "test-secret"),
	}
}

// CreateTestUserAndToken creates a test user and returns their ID and a valid JWT token
func CreateTestUserAndToken(t *testing.T, db *TestDB) (uuid.UUID, string) {
	t.Helper()

	userID := uuid.New()
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("testpassword123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		ID:           userID,
		Name:         "Test Brewer",
		Email:        fmt.Sprintf("brewer+%s@example.com", userID.String()),
		PasswordHash: string(hashedPassword),
		BreweryName:  "Test Brewery",
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	token, err := db.AuthService.Login(user.Email, "testpassword123")
	if err != nil {
		t.Fatalf("failed to log test user in: %v", err)
	}

	return userID, token
}

// SetupTestRouter wires the full route tree over an in-memory database
func SetupTestRouter(t *testing.T) (*gin.Engine, *TestDB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testDB := SetupTestDB(t)

	catalogService := service.NewCatalogService(testDB.DB)
	settingsService := service.NewSettingsService(testDB.DB)
	pricingService := service.NewPricingService(testDB.DB, catalogService, settingsService)
	brewfatherService := service.NewBrewfatherService(testDB.DB, settingsService, nil)
	notificationService := service.NewNotificationService(testDB.DB)
	exportService := service.NewExportService(testDB.DB, nil)

	router := gin.New()
	router.Use(gin.Recovery())

	RegisterRoutes(router, Dependencies{
		DB:            testDB.DB,
		Auth:          testDB.AuthService,
		Pricing:       pricingService,
		Settings:      settingsService,
		Brewfather:    brewfatherService,
		Notifications: notificationService,
		Export:        exportService,
	})

	return router, testDB
}

// PerformRequest is a helper function to make HTTP requests in tests
func PerformRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	router.ServeHTTP(w, req)
	return w
}
