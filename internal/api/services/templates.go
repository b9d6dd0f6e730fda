package servicesapi

import (
	"net/http"

	"amma-cms/internal/api/portal"
	"amma-cms/internal/domain/access"
	"amma-cms/internal/domain/blocktemplates"

	"github.com/gin-gonic/gin"
)

// GET /portal/api/templates
func ListTemplates(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageServices); !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"templates": blocktemplates.List(),
	})
}

// GET /portal/api/templates/:key
func GetTemplate(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageServices); !ok {
		return
	}

	tmpl, ok := blocktemplates.Get(c.Param("key"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Template not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "template": tmpl})
}
