package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brewstation/backend/internal/middleware"
	"github.com/brewstation/backend/internal/models"
	"github.com/brewstation/backend/internal/service"
)

// CatalogHandler serves the malt, hop and yeast ingredient tables. Reads
// are public; writes require authentication.
type CatalogHandler struct {
	db          *gorm.DB
	authService service.IAuthService
}

func NewCatalogHandler(db *gorm.DB, authService service.IAuthService) *CatalogHandler {
	return &CatalogHandler{db: db, authService: authService}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.authService)

	malts := router.Group("/malts")
	{
		malts.GET("", h.ListMalts)
		malts.GET("/:id", h.GetMalt)
		malts.POST("", auth, h.CreateMalt)
		malts.PUT("/:id", auth, h.UpdateMalt)
		malts.DELETE("/:id", auth, h.DeleteMalt)
	}

	hops := router.Group("/hops")
	{
		hops.GET("", h.ListHops)
		hops.GET("/:id", h.GetHop)
		hops.POST("", auth, h.CreateHop)
		hops.PUT("/:id", auth, h.UpdateHop)
		hops.DELETE("/:id", auth, h.DeleteHop)
	}

	yeasts := router.Group("/yeasts")
	{
		yeasts.GET("", h.ListYeasts)
		yeasts.GET("/:id", h.GetYeast)
		yeasts.POST("", auth, h.CreateYeast)
		yeasts.PUT("/:id", auth, h.UpdateYeast)
		yeasts.DELETE("/:id", auth, h.DeleteYeast)
	}
}

// listQuery applies the shared ?q= and ?active= filters.
func (h *CatalogHandler) listQuery(c *gin.Context) *gorm.DB {
	query := h.db
	if search := c.Query("q"); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ?", like)
	}
	if active := c.Query("active"); active != "" {
		query = query.Where("active = ?", active == "true")
	}
	return query.Order("name asc")
}

func (h *CatalogHandler) ListMalts(c *gin.Context) {
	var malts []models.Malt
	if err := h.listQuery(c).Find(&malts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch malts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"malts": malts})
}

func (h *CatalogHandler) GetMalt(c *gin.Context) {
	var malt models.Malt
	if err := h.db.First(&malt, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "malt not found"})
		return
	}
	c.JSON(http.StatusOK, malt)
}

func (h *CatalogHandler) CreateMalt(c *gin.Context) {
	var malt models.Malt
	if err := c.ShouldBindJSON(&malt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if malt.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	malt.Active = true
	if err := h.db.Create(&malt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create malt"})
		return
	}
	c.JSON(http.StatusCreated, malt)
}

func (h *CatalogHandler) UpdateMalt(c *gin.Context) {
	var malt models.Malt
	if err := h.db.First(&malt, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "malt not found"})
		return
	}
	var update models.Malt
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	update.ID = malt.ID
	update.CreatedAt = malt.CreatedAt
	if err := h.db.Save(&update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update malt"})
		return
	}
	c.JSON(http.StatusOK, update)
}

func (h *CatalogHandler) DeleteMalt(c *gin.Context) {
	result := h.db.Delete(&models.Malt{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete malt"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "malt not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListHops(c *gin.Context) {
	var hops []models.Hop
	if err := h.listQuery(c).Find(&hops).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch hops"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hops": hops})
}

func (h *CatalogHandler) GetHop(c *gin.Context) {
	var hop models.Hop
	if err := h.db.First(&hop, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hop not found"})
		return
	}
	c.JSON(http.StatusOK, hop)
}

func (h *CatalogHandler) CreateHop(c *gin.Context) {
	var hop models.Hop
	if err := c.ShouldBindJSON(&hop); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if hop.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	hop.Active = true
	if err := h.db.Create(&hop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create hop"})
		return
	}
	c.JSON(http.StatusCreated, hop)
}

func (h *CatalogHandler) UpdateHop(c *gin.Context) {
	var hop models.Hop
	if err := h.db.First(&hop, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hop not found"})
		return
	}
	var update models.Hop
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	update.ID = hop.ID
	update.CreatedAt = hop.CreatedAt
	if err := h.db.Save(&update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update hop"})
		return
	}
	c.JSON(http.StatusOK, update)
}

func (h *CatalogHandler) DeleteHop(c *gin.Context) {
	result := h.db.Delete(&models.Hop{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete hop"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "hop not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListYeasts(c *gin.Context) {
	var yeasts []models.Yeast
	if err := h.listQuery(c).Find(&yeasts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch yeasts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"yeasts": yeasts})
}

func (h *CatalogHandler) GetYeast(c *gin.Context) {
	var yeast models.Yeast
	if err := h.db.First(&yeast, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "yeast not found"})
		return
	}
	c.JSON(http.StatusOK, yeast)
}

func (h *CatalogHandler) CreateYeast(c *gin.Context) {
	var yeast models.Yeast
	if err := c.ShouldBindJSON(&yeast); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if yeast.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	yeast.Active = true
	if err := h.db.Create(&yeast).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create yeast"})
		return
	}
	c.JSON(http.StatusCreated, yeast)
}

func (h *CatalogHandler) UpdateYeast(c *gin.Context) {
	var yeast models.Yeast
	if err := h.db.First(&yeast, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "yeast not found"})
		return
	}
	var update models.Yeast
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	update.ID = yeast.ID
	update.CreatedAt = yeast.CreatedAt
	if err := h.db.Save(&update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update yeast"})
		return
	}
	c.JSON(http.StatusOK, update)
}

func (h *CatalogHandler) DeleteYeast(c *gin.Context) {
	result := h.db.Delete(&models.Yeast{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete yeast"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "yeast not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
