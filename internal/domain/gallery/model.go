package gallery

import (
	"strings"
	"time"

	"amma-cms/internal/domain/services"

	"gorm.io/gorm"
)

type GalleryAlbum struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Slug        string `gorm:"not null;uniqueIndex" json:"slug"`
	Description string `json:"description"`

	CoverImageURL string     `json:"cover_image_url"`
	EventDate     *time.Time `json:"event_date,omitempty"`
	IsActive      bool       `gorm:"not null;default:true" json:"is_active"`

	Photos []GalleryPhoto `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE;" json:"photos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *GalleryAlbum) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(a.Slug) == "" {
		a.Slug = services.MakeSlug(a.Title)
	}
	return nil
}

type GalleryPhoto struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	AlbumID   uint   `gorm:"not null;index" json:"album_id"`
	ImageURL  string `gorm:"not null" json:"image_url"`
	Caption   string `json:"caption"`
	SortOrder int    `gorm:"not null;default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
}
