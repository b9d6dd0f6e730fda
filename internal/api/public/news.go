package public

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"amma-cms/database"
	"amma-cms/internal/domain/news"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const newsPageSize = 9

// GET /news?page=&category=&q=
//
// Published articles only, newest first.
func ListNews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	q := database.DB.Model(&news.NewsArticle{}).
		Preload("Category").
		Where("status = ?", news.StatusPublished).
		Order("published_at DESC")

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Joins("JOIN news_categories ON news_categories.id = news_articles.category_id").
			Where("news_categories.slug = ?", category)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load news"})
		return
	}

	var articles []news.NewsArticle
	err := q.Limit(newsPageSize).Offset((page - 1) * newsPageSize).Find(&articles).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load news"})
		return
	}

	var categories []news.NewsCategory
	database.DB.Order("name ASC").Find(&categories)

	pages := int((total + newsPageSize - 1) / newsPageSize)
	c.JSON(http.StatusOK, gin.H{
		"articles":   articles,
		"categories": categories,
		"page":       page,
		"pages":      pages,
		"total":      total,
	})
}

// GET /news/:slug
//
// Bumps the view counter on every read.
func GetNewsArticle(c *gin.Context) {
	slug := c.Param("slug")

	var article news.NewsArticle
	err := database.DB.Preload("Category").Preload("Author").
		Where("slug = ? AND status = ?", slug, news.StatusPublished).
		First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article"})
		return
	}

	database.DB.Model(&article).UpdateColumn("views", gorm.Expr("views + 1"))
	article.Views++

	var related []news.NewsArticle
	database.DB.
		Where("category_id = ? AND status = ? AND id <> ?", article.CategoryID, news.StatusPublished, article.ID).
		Order("published_at DESC").
		Limit(3).
		Find(&related)

	c.JSON(http.StatusOK, gin.H{"article": article, "related": related})
}
