package servicesapi

import (
	"amma-cms/internal/domain/services"
)

// ServiceRequest is the full create/edit payload: top-level service fields
// plus the complete block set that replaces whatever is stored.
type ServiceRequest struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	LinkURL       string `json:"link_url"`
	LinkText      string `json:"link_text"`
	HasDetailPage bool   `json:"has_detail_page"`
	IsActive      *bool  `json:"is_active"`
	Order         int    `json:"order"`

	Blocks []services.BlockDraft `json:"blocks"`
}

func (r ServiceRequest) apply(svc *services.Service) {
	svc.Name = r.Name
	svc.Slug = r.Slug
	svc.Description = r.Description

	svc.Icon = r.Icon
	if svc.Icon == "" {
		svc.Icon = "file-text"
	}
	svc.LinkURL = r.LinkURL
	svc.LinkText = r.LinkText
	if svc.LinkText == "" {
		svc.LinkText = "Learn More"
	}

	svc.HasDetailPage = r.HasDetailPage
	svc.SortOrder = r.Order

	svc.IsActive = true
	if r.IsActive != nil {
		svc.IsActive = *r.IsActive
	}
}

type ReorderRequest struct {
	BlockOrders []services.BlockOrder `json:"block_orders"`
}
