package documents

import (
	"strings"
	"time"

	"amma-cms/internal/domain/services"

	"gorm.io/gorm"
)

type DocumentCategory struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Slug        string `gorm:"not null;uniqueIndex" json:"slug"`
	Description string `json:"description"`
	Icon        string `gorm:"not null;default:'folder'" json:"icon"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DocumentCategory) TableName() string {
	return "document_categories"
}

func (c *DocumentCategory) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(c.Slug) == "" {
		c.Slug = services.MakeSlug(c.Name)
	}
	return nil
}

// Document is an entry of the public document repository (bye-laws,
// fee-fixing resolutions, annual reports and the like).
type Document struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`

	FileURL  string `gorm:"not null" json:"file_url"`
	FileSize int64  `json:"file_size"`

	DocumentYear *int `gorm:"index" json:"document_year,omitempty"`

	CategoryID uint              `gorm:"not null;index" json:"category_id"`
	Category   *DocumentCategory `json:"category,omitempty"`

	IsPublic   bool `gorm:"not null;default:true;index" json:"is_public"`
	IsFeatured bool `gorm:"not null;default:false" json:"is_featured"`

	Downloads int `gorm:"not null;default:0" json:"downloads"`

	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
