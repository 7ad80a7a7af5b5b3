package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewstation/backend/internal/models"
)

func TestDashboardRequiresAuth(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, http.MethodGet, "/api/v1/dashboard/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDashboardStats(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	userID, token := CreateTestUserAndToken(t, testDB)

	require.NoError(t, testDB.DB.Create(&models.Malt{Name: "Pilsen", Supplier: "Agraria", Active: true}).Error)
	require.NoError(t, testDB.DB.Create(&models.Hop{Name: "Citra", Supplier: "YCH", Active: true}).Error)
	require.NoError(t, testDB.DB.Create(&models.Recipe{Name: "IPA", BatchVolumeLiters: 20, Active: true, UserID: userID}).Error)
	require.NoError(t, testDB.DB.Create(&models.PriceCalculation{ProductName: "IPA", QuantityML: 500}).Error)

	w := PerformRequest(router, http.MethodGet, "/api/v1/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.Malts)
	assert.Equal(t, int64(1), stats.Hops)
	assert.Equal(t, int64(0), stats.Yeasts)
	assert.Equal(t, int64(1), stats.Recipes)
	assert.Equal(t, int64(1), stats.Calculations)
	assert.Equal(t, int64(1), stats.CalculationsWeek)
}

func TestDashboardRecentCalculations(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	for i := 0; i < 7; i++ {
		require.NoError(t, testDB.DB.Create(&models.PriceCalculation{ProductName: "Batch", QuantityML: 500}).Error)
	}

	w := PerformRequest(router, http.MethodGet, "/api/v1/dashboard/calculations/recent", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Calculations []models.PriceCalculation `json:"calculations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Calculations, 5)
}
