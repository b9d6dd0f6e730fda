package services

import (
	"time"

	"gorm.io/datatypes"
)

type Service struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"not null;uniqueIndex" json:"slug"`

	Description string `gorm:"not null" json:"description"`

	// Lucide icon name shown on service cards.
	Icon string `gorm:"not null;default:'file-text'" json:"icon"`

	// Internal path (e.g., /contact) or external URL. Informative together
	// with HasDetailPage: a service either links out or owns a detail page.
	LinkURL  string `json:"link_url"`
	LinkText string `gorm:"not null;default:'Learn More'" json:"link_text"`

	HasDetailPage bool `gorm:"not null;default:false" json:"has_detail_page"`
	IsActive      bool `gorm:"not null;default:true" json:"is_active"`
	SortOrder     int  `gorm:"not null;default:0;index" json:"order"`

	ContentBlocks []ServiceContentBlock `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE;" json:"content_blocks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServiceContentBlock is one ordered, typed unit of a service's detail page.
// Blocks have no lifecycle outside their owning service's save operation.
type ServiceContentBlock struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ServiceID uint `gorm:"not null;index:idx_blocks_service_sort,priority:1" json:"service_id"`

	BlockType string `gorm:"type:varchar(20);not null;default:'text'" json:"block_type"`
	Title     string `json:"title"`
	Content   string `json:"content"`

	// Shape depends on BlockType; see blocks.go for the per-type payloads.
	Data datatypes.JSON `gorm:"not null" json:"data"`

	SortOrder int  `gorm:"not null;default:0;index:idx_blocks_service_sort,priority:2" json:"order"`
	IsActive  bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
