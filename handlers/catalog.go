package handlers

import (
	"net/http"

	"doctorsportal/services/catalog"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the treatment catalog and availability endpoints.
type CatalogHandler struct {
	Svc catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

// ListServicesHandler handles GET /service.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Svc.ListServices()
	if err != nil {
		utils.GetLogger().Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetAvailableHandler handles GET /available?date=<string>. An omitted date
// falls back to the catalog's fixed default.
func (h *CatalogHandler) GetAvailableHandler(c *gin.Context) {
	date := c.Query("date")

	services, err := h.Svc.Availability(date)
	if err != nil {
		utils.GetLogger().Error("Failed to resolve availability",
			zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services)
}
