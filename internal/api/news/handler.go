package newsapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"amma-cms/database"
	"amma-cms/internal/api/portal"
	"amma-cms/internal/domain/access"
	"amma-cms/internal/domain/news"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

type ArticleRequest struct {
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	Excerpt      string `json:"excerpt"`
	Content      string `json:"content"`
	ImageURL     string `json:"image_url"`
	ImageCaption string `json:"image_caption"`
	CategoryID   uint   `json:"category_id"`
	AuthorID     *uint  `json:"author_id"`
	Status       string `json:"status"`
	IsFeatured   bool   `json:"is_featured"`

	MetaDescription string `json:"meta_description"`
}

// validate rejects blank required fields. Content counts as blank when
// nothing is left after stripping markup.
func (r ArticleRequest) validate() string {
	if strings.TrimSpace(r.Title) == "" {
		return "Title is required"
	}
	if strings.TrimSpace(r.Excerpt) == "" {
		return "Excerpt is required"
	}
	stripped := bluemonday.StrictPolicy().Sanitize(r.Content)
	if strings.TrimSpace(stripped) == "" {
		return "Content is required"
	}
	if r.CategoryID == 0 {
		return "Category is required"
	}
	switch r.Status {
	case "", news.StatusDraft, news.StatusPublished, news.StatusArchived:
	default:
		return "Invalid status"
	}
	return ""
}

func (r ArticleRequest) apply(a *news.NewsArticle) {
	a.Title = r.Title
	a.Slug = r.Slug
	a.Excerpt = r.Excerpt
	a.Content = r.Content
	a.ImageURL = r.ImageURL
	a.ImageCaption = r.ImageCaption
	a.CategoryID = r.CategoryID
	a.AuthorID = r.AuthorID
	a.Status = r.Status
	if a.Status == "" {
		a.Status = news.StatusDraft
	}
	a.IsFeatured = r.IsFeatured
	a.MetaDescription = r.MetaDescription
}

func articleID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return 0, false
	}
	return uint(id), true
}

// GET /portal/news?q=&status=&category=
func List(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageNews); !ok {
		return
	}

	q := database.DB.Model(&news.NewsArticle{}).
		Preload("Category").
		Preload("Author").
		Order("created_at DESC")

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("status = ?", status)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("category_id = ?", category)
	}

	var articles []news.NewsArticle
	if err := q.Find(&articles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load articles"})
		return
	}

	var categories []news.NewsCategory
	database.DB.Order("name ASC").Find(&categories)

	c.JSON(http.StatusOK, gin.H{"articles": articles, "categories": categories})
}

// GET /portal/news/:id
func Get(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageNews); !ok {
		return
	}
	id, ok := articleID(c)
	if !ok {
		return
	}

	var article news.NewsArticle
	err := database.DB.Preload("Category").Preload("Author").First(&article, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// POST /portal/news
func Create(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageNews); !ok {
		return
	}

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON payload"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var article news.NewsArticle
	req.apply(&article)
	if err := database.DB.Create(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving article", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"article": article})
}

// PUT /portal/news/:id
func Update(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageNews); !ok {
		return
	}
	id, ok := articleID(c)
	if !ok {
		return
	}

	var article news.NewsArticle
	if err := database.DB.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article"})
		return
	}

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON payload"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	req.apply(&article)
	if err := database.DB.Save(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving article", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// DELETE /portal/news/:id
func Delete(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageNews); !ok {
		return
	}
	id, ok := articleID(c)
	if !ok {
		return
	}

	res := database.DB.Delete(&news.NewsArticle{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// POST /portal/api/news/categories
func CreateCategory(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageNews); !ok {
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Color       string `json:"color"`
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
	database.DB.Model(&news.NewsCategory{}).Where("name = ?", req.Name).Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "A category with this name already exists"})
		return
	}

	category := news.NewsCategory{
		Name:        req.Name,
		Description: strings.TrimSpace(req.Description),
		Color:       req.Color,
	}
	if category.Color == "" {
		category.Color = "#d4af37"
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
