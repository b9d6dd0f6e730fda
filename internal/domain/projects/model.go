package projects

import (
	"strings"
	"time"

	"amma-cms/internal/domain/services"

	"gorm.io/gorm"
)

const (
	StatusPlanned   = "planned"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusSuspended = "suspended"
)

type ProjectCategory struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Slug        string `gorm:"not null;uniqueIndex" json:"slug"`
	Description string `json:"description"`
	Icon        string `gorm:"not null;default:'building'" json:"icon"`
	Color       string `gorm:"type:varchar(7);not null;default:'#d4af37'" json:"color"`
	SortOrder   int    `gorm:"not null;default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProjectCategory) TableName() string {
	return "project_categories"
}

func (c *ProjectCategory) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(c.Slug) == "" {
		c.Slug = services.MakeSlug(c.Name)
	}
	return nil
}

// Project is a municipal development project.
type Project struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"not null" json:"title"`
	Slug  string `gorm:"not null;uniqueIndex" json:"slug"`

	// Short description used in cards and listings.
	Description         string `gorm:"not null" json:"description"`
	DetailedDescription string `json:"detailed_description"`

	CategoryID uint             `gorm:"not null;index" json:"category_id"`
	Category   *ProjectCategory `json:"category,omitempty"`

	Status string `gorm:"type:varchar(10);not null;default:'planned';index" json:"status"`

	Location       string     `json:"location"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`

	// Budget in GHS.
	Budget *float64 `json:"budget,omitempty"`

	Beneficiaries string `json:"beneficiaries"`
	ImpactIcon    string `gorm:"default:'users'" json:"impact_icon"`
	ImpactText    string `json:"impact_text"`

	IsFeatured bool `gorm:"not null;default:false" json:"is_featured"`
	SortOrder  int  `gorm:"not null;default:0" json:"order"`

	Images []ProjectImage `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;" json:"images,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Project) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = services.MakeSlug(p.Title)
	}
	return nil
}

type ProjectImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProjectID uint   `gorm:"not null;index" json:"project_id"`
	ImageURL  string `gorm:"not null" json:"image_url"`
	Caption   string `json:"caption"`
	SortOrder int    `gorm:"not null;default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
}
