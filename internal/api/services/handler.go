package servicesapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"amma-cms/database"
	"amma-cms/internal/api/portal"
	"amma-cms/internal/domain/access"
	"amma-cms/internal/domain/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func serviceID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return 0, false
	}
	return uint(id), true
}

// GET /portal/services?q=
func List(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageServices); !ok {
		return
	}

	q := database.DB.Model(&services.Service{}).
		Order("sort_order ASC, name ASC")

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var list []services.Service
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": list})
}

// GET /portal/services/:id
func Get(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageServices); !ok {
		return
	}
	id, ok := serviceID(c)
	if !ok {
		return
	}

	var svc services.Service
	if err := database.DB.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load service"})
		return
	}

	blocks, err := services.BlocksInOrder(database.DB, svc.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content blocks"})
		return
	}
	svc.ContentBlocks = blocks

	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// POST /portal/services
func Create(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageServices); !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON payload"})
		return
	}

	var svc services.Service
	req.apply(&svc)
	saveService(c, &svc, req.Blocks, http.StatusCreated)
}

// PUT /portal/services/:id
func Update(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageServices); !ok {
		return
	}
	id, ok := serviceID(c)
	if !ok {
		return
	}

	var svc services.Service
	if err := database.DB.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load service"})
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON payload"})
		return
	}

	req.apply(&svc)
	saveService(c, &svc, req.Blocks, http.StatusOK)
}

func saveService(c *gin.Context, svc *services.Service, drafts []services.BlockDraft, okStatus int) {
	if err := services.SaveWithBlocks(database.DB, svc, drafts); err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving service", "details": err.Error()})
		return
	}

	blocks, err := services.BlocksInOrder(database.DB, svc.ID)
	if err == nil {
		svc.ContentBlocks = blocks
	}
	c.JSON(okStatus, gin.H{"service": svc})
}

// DELETE /portal/services/:id
//
// Irreversible; the service's blocks go with it.
func Delete(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageServices); !ok {
		return
	}
	id, ok := serviceID(c)
	if !ok {
		return
	}

	if err := services.Delete(database.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// POST /portal/api/services/:id/blocks/reorder
//
// Drag-and-drop support: updates order on existing blocks without touching
// content. Ids that no longer exist are ignored rather than failing the call.
func ReorderBlocks(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageServices); !ok {
		return
	}
	id, ok := serviceID(c)
	if !ok {
		return
	}

	var svc services.Service
	if err := database.DB.First(&svc, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Service not found"})
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Malformed JSON payload"})
		return
	}

	if err := services.ReorderBlocks(database.DB, svc.ID, req.BlockOrders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
