package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brewstation/backend/internal/middleware"
	"github.com/brewstation/backend/internal/models"
	"github.com/brewstation/backend/internal/service"
	"github.com/brewstation/backend/internal/types"
)

type RecipeHandler struct {
	db          *gorm.DB
	authService service.IAuthService
}

func NewRecipeHandler(db *gorm.DB, authService service.IAuthService) *RecipeHandler {
	return &RecipeHandler{db: db, authService: authService}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", middleware.AuthMiddleware(h.authService), h.CreateRecipe)
		recipes.PUT("/:id", middleware.AuthMiddleware(h.authService), h.UpdateRecipe)
		recipes.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.DeleteRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var recipes []models.Recipe

	query := h.db.Preload("Ingredients")
	if search := c.Query("q"); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(style) LIKE ?", like, like)
	}
	if style := c.Query("style"); style != "" {
		query = query.Where("style = ?", style)
	}

	if err := query.Order("name asc").Find(&recipes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := h.db.Preload("Ingredients").First(&recipe, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipe := models.Recipe{
		Name:              req.Name,
		Description:       req.Description,
		Style:             req.Style,
		BatchVolumeLiters: req.BatchVolumeLiters,
		EfficiencyPercent: req.EfficiencyPercent,
		Active:            true,
		UserID:            userID.(uuid.UUID),
		Ingredients:       ingredientRows(req.Ingredients),
	}

	if err := h.db.Create(&recipe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create recipe"})
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := h.db.First(&recipe, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != "" {
		recipe.Name = req.Name
	}
	if req.Description != "" {
		recipe.Description = req.Description
	}
	if req.Style != "" {
		recipe.Style = req.Style
	}
	if req.BatchVolumeLiters > 0 {
		recipe.BatchVolumeLiters = req.BatchVolumeLiters
	}
	if req.EfficiencyPercent > 0 {
		recipe.EfficiencyPercent = req.EfficiencyPercent
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if req.Ingredients != nil {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
				return err
			}
			recipe.Ingredients = ingredientRows(req.Ingredients)
			for i := range recipe.Ingredients {
				recipe.Ingredients[i].RecipeID = recipe.ID
			}
		}
		return tx.Save(&recipe).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update recipe"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	result := h.db.Delete(&models.Recipe{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete recipe"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func ingredientRows(reqs []types.RecipeIngredientRequest) []models.RecipeIngredient {
	rows := make([]models.RecipeIngredient, 0, len(reqs))
	for _, r := range reqs {
		rows = append(rows, models.RecipeIngredient{
			Category:        r.Category,
			IngredientID:    r.IngredientID,
			Quantity:        r.Quantity,
			AdditionTimeMin: r.AdditionTimeMin,
			Notes:           r.Notes,
		})
	}
	return rows
}
