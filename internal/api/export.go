package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brewstation/backend/internal/middleware"
	"github.com/brewstation/backend/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Uploaded workbooks larger than this are rejected.
const maxImportSize = 10 << 20

// ExportHandler serves catalog spreadsheet downloads, uploads and the
// optional bucket publication of exports.
type ExportHandler struct {
	exportService service.IExportService
	authService   service.IAuthService
}

func NewExportHandler(exportService service.IExportService, authService service.IAuthService) *ExportHandler {
	return &ExportHandler{exportService: exportService, authService: authService}
}

func (h *ExportHandler) RegisterRoutes(router *gin.RouterGroup) {
	export := router.Group("/catalog")
	export.Use(middleware.AuthMiddleware(h.authService))
	{
		export.GET("/export", h.Download)
		export.POST("/export/publish", h.Publish)
		export.POST("/import", h.Upload)
	}
}

// Download streams the catalog workbook to the client.
func (h *ExportHandler) Download(c *gin.Context) {
	data, filename, err := h.exportService.ExportCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export catalog"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// Publish uploads a fresh export to the configured bucket and returns a
// presigned download URL.
func (h *ExportHandler) Publish(c *gin.Context) {
	data, filename, err := h.exportService.ExportCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export catalog"})
		return
	}

	url, err := h.exportService.UploadExport(c.Request.Context(), filename, data)
	if err != nil {
		if errors.Is(err, service.ErrStorageDisabled) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to upload export"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"filename": filename, "url": url})
}

// Upload applies a catalog workbook uploaded as multipart form file "file".
func (h *ExportHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxImportSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}

	summary, err := h.exportService.ImportCatalog(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
