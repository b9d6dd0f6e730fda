package documentsapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"amma-cms/database"
	"amma-cms/internal/api/portal"
	"amma-cms/internal/domain/access"
	"amma-cms/internal/domain/documents"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DocumentRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	FileURL      string `json:"file_url"`
	FileSize     int64  `json:"file_size"`
	DocumentYear *int   `json:"document_year"`
	CategoryID   uint   `json:"category_id"`
	IsPublic     *bool  `json:"is_public"`
	IsFeatured   bool   `json:"is_featured"`
}

func (r DocumentRequest) validate() string {
	if strings.TrimSpace(r.Title) == "" {
		return "Title is required"
	}
	if strings.TrimSpace(r.FileURL) == "" {
		return "File URL is required"
	}
	if r.CategoryID == 0 {
		return "Category is required"
	}
	return ""
}

func (r DocumentRequest) apply(d *documents.Document) {
	d.Title = r.Title
	d.Description = r.Description
	d.FileURL = r.FileURL
	d.FileSize = r.FileSize
	d.DocumentYear = r.DocumentYear
	d.CategoryID = r.CategoryID
	if r.IsPublic != nil {
		d.IsPublic = *r.IsPublic
	} else {
		d.IsPublic = true
	}
	d.IsFeatured = r.IsFeatured
}

func documentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return 0, false
	}
	return uint(id), true
}

// GET /portal/documents?q=&category=&year=&public=
func List(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageDocuments); !ok {
		return
	}

	q := database.DB.Model(&documents.Document{}).
		Preload("Category").
		Order("uploaded_at DESC")

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("category_id = ?", category)
	}
	if year := strings.TrimSpace(c.Query("year")); year != "" {
		q = q.Where("document_year = ?", year)
	}
	if public := strings.TrimSpace(c.Query("public")); public != "" {
		q = q.Where("is_public = ?", public == "true" || public == "1")
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

// GET /portal/documents/:id
func Get(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageDocuments); !ok {
		return
	}
	id, ok := documentID(c)
	if !ok {
		return
	}

	var doc documents.Document
	if err := database.DB.Preload("Category").First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"document": doc})
}

// POST /portal/documents
func Create(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageDocuments); !ok {
		return
	}

	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON payload"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var doc documents.Document
	req.apply(&doc)
	if err := database.DB.Create(&doc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving document", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"document": doc})
}

// PUT /portal/documents/:id
func Update(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageDocuments); !ok {
		return
	}
	id, ok := documentID(c)
	if !ok {
		return
	}

	var doc documents.Document
	if err := database.DB.First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load document"})
		return
	}

	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON payload"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	req.apply(&doc)
	if err := database.DB.Save(&doc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving document", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"document": doc})
}

// DELETE /portal/documents/:id
func Delete(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageDocuments); !ok {
		return
	}
	id, ok := documentID(c)
	if !ok {
		return
	}

	res := database.DB.Delete(&documents.Document{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// POST /portal/api/documents/categories
func CreateCategory(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageDocuments); !ok {
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Malformed JSON payload"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Category name is required"})
		return
	}

	var existing int64
	database.DB.Model(&documents.DocumentCategory{}).Where("name = ?", req.Name).Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "A category with this name already exists"})
		return
	}

	category := documents.DocumentCategory{
		Name:        req.Name,
		Description: strings.TrimSpace(req.Description),
		Icon:        req.Icon,
	}
	if category.Icon == "" {
		category.Icon = "folder"
	}

	if err := database.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"category": gin.H{
			"id":   category.ID,
			"name": category.Name,
			"slug": category.Slug,
		},
	})
}
