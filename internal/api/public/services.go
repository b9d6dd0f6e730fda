package public

import (
	"errors"
	"net/http"

	"amma-cms/database"
	"amma-cms/internal/domain/services"
	"amma-cms/internal/render"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /services
func ListServices(c *gin.Context) {
	var list []services.Service
	err := database.DB.
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": list})
}

// GET /services/:slug
//
// Returns the service together with its rendered detail page. Services
// without a detail page still resolve so the frontend can fall back to
// the external link.
func GetService(c *gin.Context) {
	slug := c.Param("slug")

	var svc services.Service
	err := database.DB.
		Where("slug = ? AND is_active = ?", slug, true).
		First(&svc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load service"})
		return
	}

	blocks, err := services.BlocksInOrder(database.DB, svc.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load service content"})
		return
	}

	html, err := render.ServiceDetail(svc, blocks)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render service"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": svc, "html": html})
}
