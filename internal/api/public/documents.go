package public

import (
	"net/http"
	"strings"

	"amma-cms/database"
	"amma-cms/internal/domain/documents"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /documents?q=&category=&year=
//
// Public documents only.
func ListDocuments(c *gin.Context) {
	q := database.DB.Model(&documents.Document{}).
		Preload("Category").
		Where("is_public = ?", true).
		Order("is_featured DESC, uploaded_at DESC")

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Joins("JOIN document_categories ON document_categories.id = documents.category_id").
			Where("document_categories.slug = ?", category)
	}
	if year := strings.TrimSpace(c.Query("year")); year != "" {
		q = q.Where("document_year = ?", year)
	}

	var list []documents.Document
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load documents"})
		return
	}

	var categories []documents.DocumentCategory
	database.DB.Order("name ASC").Find(&categories)

	c.JSON(http.StatusOK, gin.H{"documents": list, "categories": categories})
}

// POST /documents/:id/download
//
// Counts a download and returns the file URL.
func RecordDownload(c *gin.Context) {
	var doc documents.Document
	err := database.DB.
		Where("id = ? AND is_public = ?", c.Param("id"), true).
		First(&doc).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	database.DB.Model(&doc).UpdateColumn("downloads", gorm.Expr("downloads + 1"))

	c.JSON(http.StatusOK, gin.H{"file_url": doc.FileURL})
}
