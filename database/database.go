package database

import (
	"fmt"
	"log"
	"os"

	"amma-cms/internal/domain/accounts"
	"amma-cms/internal/domain/contact"
	"amma-cms/internal/domain/documents"
	"amma-cms/internal/domain/gallery"
	"amma-cms/internal/domain/news"
	"amma-cms/internal/domain/projects"
	"amma-cms/internal/domain/services"
	"amma-cms/internal/domain/staff"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate runs AutoMigrate for every domain model. Split out of InitDB so
// tests can run the same migrations against their own database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// accounts
		&accounts.User{},
		&accounts.CapabilityGrant{},

		// services
		&services.Service{},
		&services.ServiceContentBlock{},

		// news
		&news.NewsCategory{},
		&news.NewsArticle{},

		// projects
		&projects.ProjectCategory{},
		&projects.Project{},
		&projects.ProjectImage{},

		// documents
		&documents.DocumentCategory{},
		&documents.Document{},

		// staff directory
		&staff.StaffMember{},

		// gallery
		&gallery.GalleryAlbum{},
		&gallery.GalleryPhoto{},

		// contact
		&contact.ContactMessage{},
	)
}
