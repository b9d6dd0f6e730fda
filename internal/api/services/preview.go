package servicesapi

import (
	"encoding/json"
	"net/http"

	"amma-cms/internal/api/portal"
	"amma-cms/internal/domain/access"
	"amma-cms/internal/domain/services"
	"amma-cms/internal/render"

	"github.com/gin-gonic/gin"
)

type previewRequest struct {
	ServiceData json.RawMessage `json:"service_data"`
	BlocksData  json.RawMessage `json:"blocks_data"`
}

type previewService struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// POST /portal/api/services/preview
//
// Renders an in-progress edit session without touching storage: transient
// model values are built straight from the payload and run through the same
// renderer as public detail pages. Best-effort visualization — malformed
// input yields {success:false, error}, never a server fault.
func Preview(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageServices); !ok {
		return
	}

	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Malformed JSON payload"})
		return
	}

	temp := previewService{
		Name:        "Service Name",
		Description: "Service description",
		Icon:        "file-text",
	}
	if len(req.ServiceData) > 0 {
		if err := json.Unmarshal(req.ServiceData, &temp); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "error": "Invalid service_data"})
			return
		}
	}
	if temp.Name == "" {
		temp.Name = "Service Name"
	}
	if temp.Description == "" {
		temp.Description = "Service description"
	}
	if temp.Icon == "" {
		temp.Icon = "file-text"
	}

	var drafts []services.BlockDraft
	if len(req.BlocksData) > 0 {
		if err := json.Unmarshal(req.BlocksData, &drafts); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "error": "Invalid blocks_data"})
			return
		}
	}

	// Transient block instances; service id zero marks them unsaved.
	blocks := make([]services.ServiceContentBlock, 0, len(drafts))
	for _, d := range drafts {
		blocks = append(blocks, d.Block(0))
	}

	svc := services.Service{
		Name:        temp.Name,
		Description: temp.Description,
		Icon:        temp.Icon,
	}

	html, err := render.ServiceDetail(svc, blocks)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "html": html})
}
