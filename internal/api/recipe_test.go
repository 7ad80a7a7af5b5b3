package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewstation/backend/internal/models"
)

func TestCreateRecipe(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	userID, token := CreateTestUserAndToken(t, testDB)

	malt := models.Malt{Name: "Pilsen", Supplier: "Agraria", PricePerKg: 8.50, Active: true}
	require.NoError(t, testDB.DB.Create(&malt).Error)

	w := PerformRequest(router, http.MethodPost, "/api/v1/recipes", token, gin.H{
		"name":                "Session Pilsner",
		"style":               "Pilsner",
		"batch_volume_liters": 20,
		"efficiency_percent":  75,
		"ingredients": []gin.H{
			{"category": "malt", "ingredient_id": malt.ID, "quantity": 4.0},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var recipe models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, userID, recipe.UserID)
	assert.True(t, recipe.Active)
	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, malt.ID, recipe.Ingredients[0].IngredientID)
}

func TestCreateRecipeValidation(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	// Missing batch volume.
	w := PerformRequest(router, http.MethodPost, "/api/v1/recipes", token, gin.H{"name": "No Volume"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Bad ingredient category.
	w = PerformRequest(router, http.MethodPost, "/api/v1/recipes", token, gin.H{
		"name":                "Fruit Beer",
		"batch_volume_liters": 20,
		"ingredients": []gin.H{
			{"category": "fruit", "ingredient_id": "8f9e6b0a-1111-2222-3333-444455556666", "quantity": 1.0},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecipeWritesRequireAuth(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, http.MethodPost, "/api/v1/recipes", "", gin.H{
		"name": "Anon", "batch_volume_liters": 20,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateRecipeReplacesIngredients(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	userID, token := CreateTestUserAndToken(t, testDB)

	malt := models.Malt{Name: "Pilsen", Supplier: "Agraria", Active: true}
	require.NoError(t, testDB.DB.Create(&malt).Error)
	hop := models.Hop{Name: "Saaz", Supplier: "Bohemia Hop", Active: true}
	require.NoError(t, testDB.DB.Create(&hop).Error)

	recipe := models.Recipe{
		Name:              "Original",
		BatchVolumeLiters: 20,
		Active:            true,
		UserID:            userID,
		Ingredients: []models.RecipeIngredient{
			{Category: "malt", IngredientID: malt.ID, Quantity: 4.0},
		},
	}
	require.NoError(t, testDB.DB.Create(&recipe).Error)

	w := PerformRequest(router, http.MethodPut, "/api/v1/recipes/"+recipe.ID.String(), token, gin.H{
		"name": "Renamed",
		"ingredients": []gin.H{
			{"category": "hop", "ingredient_id": hop.ID, "quantity": 40.0},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Recipe
	require.NoError(t, testDB.DB.Preload("Ingredients").First(&reloaded, "id = ?", recipe.ID).Error)
	assert.Equal(t, "Renamed", reloaded.Name)
	assert.Equal(t, 20.0, reloaded.BatchVolumeLiters)
	require.Len(t, reloaded.Ingredients, 1)
	assert.Equal(t, "hop", reloaded.Ingredients[0].Category)
}

func TestListRecipesFilters(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	userID, _ := CreateTestUserAndToken(t, testDB)

	for _, r := range []models.Recipe{
		{Name: "West Coast IPA", Style: "IPA", BatchVolumeLiters: 20, Active: true, UserID: userID},
		{Name: "Hazy IPA", Style: "IPA", BatchVolumeLiters: 20, Active: true, UserID: userID},
		{Name: "Helles", Style: "Lager", BatchVolumeLiters: 20, Active: true, UserID: userID},
	} {
		recipe := r
		require.NoError(t, testDB.DB.Create(&recipe).Error)
	}

	w := PerformRequest(router, http.MethodGet, "/api/v1/recipes?q=ipa", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []models.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Recipes, 2)

	w = PerformRequest(router, http.MethodGet, "/api/v1/recipes?style=Lager", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp.Recipes = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, "Helles", resp.Recipes[0].Name)
}

func TestDeleteRecipe(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	userID, token := CreateTestUserAndToken(t, testDB)

	recipe := models.Recipe{Name: "Doomed", BatchVolumeLiters: 20, Active: true, UserID: userID}
	require.NoError(t, testDB.DB.Create(&recipe).Error)

	w := PerformRequest(router, http.MethodDelete, "/api/v1/recipes/"+recipe.ID.String(), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = PerformRequest(router, http.MethodGet, "/api/v1/recipes/"+recipe.ID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
