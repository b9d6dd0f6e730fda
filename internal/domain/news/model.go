package news

import (
	"strings"
	"time"

	"amma-cms/internal/domain/services"
	"amma-cms/internal/domain/staff"

	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

type NewsCategory struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Slug        string `gorm:"not null;uniqueIndex" json:"slug"`
	Description string `json:"description"`

	// Hex color for the category badge.
	Color string `gorm:"type:varchar(7);not null;default:'#d4af37'" json:"color"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (NewsCategory) TableName() string {
	return "news_categories"
}

func (c *NewsCategory) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(c.Slug) == "" {
		c.Slug = services.MakeSlug(c.Name)
	}
	return nil
}

type NewsArticle struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Slug    string `gorm:"not null;uniqueIndex" json:"slug"`
	Excerpt string `gorm:"type:varchar(300);not null" json:"excerpt"`
	Content string `gorm:"not null" json:"content"`

	ImageURL     string `json:"image_url"`
	ImageCaption string `json:"image_caption"`

	CategoryID uint          `gorm:"not null;index" json:"category_id"`
	Category   *NewsCategory `json:"category,omitempty"`

	AuthorID *uint              `gorm:"index" json:"author_id,omitempty"`
	Author   *staff.StaffMember `json:"author,omitempty"`

	Status     string `gorm:"type:varchar(10);not null;default:'draft';index" json:"status"`
	IsFeatured bool   `gorm:"not null;default:false" json:"is_featured"`

	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`
	Views       int        `gorm:"not null;default:0" json:"views"`

	MetaDescription string `gorm:"type:varchar(160)" json:"meta_description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (NewsArticle) TableName() string {
	return "news_articles"
}

// BeforeSave derives the slug from the title, stamps the first publish time,
// and defaults the meta description from the excerpt.
func (a *NewsArticle) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(a.Slug) == "" {
		a.Slug = services.MakeSlug(a.Title)
	}
	if a.Status == StatusPublished && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}
	if a.MetaDescription == "" && a.Excerpt != "" {
		meta := a.Excerpt
		if len(meta) > 160 {
			meta = meta[:160]
		}
		a.MetaDescription = meta
	}
	return nil
}

// IsPublished reports whether the article is publicly visible.
func (a *NewsArticle) IsPublished() bool {
	return a.Status == StatusPublished && a.PublishedAt != nil
}
