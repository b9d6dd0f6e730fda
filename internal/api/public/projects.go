package public

import (
	"errors"
	"net/http"
	"strings"

	"amma-cms/database"
	"amma-cms/internal/domain/projects"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /projects?status=&category=
func ListProjects(c *gin.Context) {
	q := database.DB.Model(&projects.Project{}).
		Preload("Category").
		Order("is_featured DESC, sort_order ASC, start_date DESC")

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("status = ?", status)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Joins("JOIN project_categories ON project_categories.id = projects.category_id").
			Where("project_categories.slug = ?", category)
	}

	var list []projects.Project
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}

	var categories []projects.ProjectCategory
	database.DB.Order("sort_order ASC, name ASC").Find(&categories)

	c.JSON(http.StatusOK, gin.H{"projects": list, "categories": categories})
}

// GET /projects/:slug
func GetProject(c *gin.Context) {
	slug := c.Param("slug")

	var project projects.Project
	err := database.DB.Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Where("slug = ?", slug).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}
