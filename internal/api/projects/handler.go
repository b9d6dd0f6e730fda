package projectsapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"amma-cms/database"
	"amma-cms/internal/api/portal"
	"amma-cms/internal/domain/access"
	"amma-cms/internal/domain/projects"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ImageDraft struct {
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
	Order    int    `json:"order"`
}

type ProjectRequest struct {
	Title               string `json:"title"`
	Slug                string `json:"slug"`
	Description         string `json:"description"`
	DetailedDescription string `json:"detailed_description"`
	CategoryID          uint   `json:"category_id"`
	Status              string `json:"status"`

	Location       string   `json:"location"`
	StartDate      *string  `json:"start_date"`
	CompletionDate *string  `json:"completion_date"`
	Budget         *float64 `json:"budget"`

	Beneficiaries string `json:"beneficiaries"`
	ImpactIcon    string `json:"impact_icon"`
	ImpactText    string `json:"impact_text"`

	IsFeatured bool `json:"is_featured"`
	Order      int  `json:"order"`

	Images []ImageDraft `json:"images"`
}

func (r ProjectRequest) validate() string {
	if strings.TrimSpace(r.Title) == "" {
		return "Title is required"
	}
	if strings.TrimSpace(r.Description) == "" {
		return "Description is required"
	}
	if r.CategoryID == 0 {
		return "Category is required"
	}
	switch r.Status {
	case "", projects.StatusPlanned, projects.StatusOngoing, projects.StatusCompleted, projects.StatusSuspended:
	default:
		return "Invalid status"
	}
	if _, ok := parseDate(r.StartDate); !ok {
		return "Invalid start date"
	}
	if _, ok := parseDate(r.CompletionDate); !ok {
		return "Invalid completion date"
	}
	return ""
}

// parseDate accepts YYYY-MM-DD or an empty value.
func parseDate(s *string) (*time.Time, bool) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*s))
	if err != nil {
		return nil, false
	}
	return &t, true
}

func (r ProjectRequest) apply(p *projects.Project) {
	p.Title = r.Title
	p.Slug = r.Slug
	p.Description = r.Description
	p.DetailedDescription = r.DetailedDescription
	p.CategoryID = r.CategoryID
	p.Status = r.Status
	if p.Status == "" {
		p.Status = projects.StatusPlanned
	}
	p.Location = r.Location
	p.StartDate, _ = parseDate(r.StartDate)
	p.CompletionDate, _ = parseDate(r.CompletionDate)
	p.Budget = r.Budget
	p.Beneficiaries = r.Beneficiaries
	p.ImpactIcon = r.ImpactIcon
	if p.ImpactIcon == "" {
		p.ImpactIcon = "users"
	}
	p.ImpactText = r.ImpactText
	p.IsFeatured = r.IsFeatured
	p.SortOrder = r.Order
}

func projectID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return 0, false
	}
	return uint(id), true
}

// saveWithImages persists the project and replaces its gallery in one
// transaction, mirroring how service blocks are saved.
func saveWithImages(db *gorm.DB, p *projects.Project, drafts []ImageDraft) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", p.ID).Delete(&projects.ProjectImage{}).Error; err != nil {
			return err
		}
		for _, d := range drafts {
			if strings.TrimSpace(d.ImageURL) == "" {
				continue
			}
			img := projects.ProjectImage{
				ProjectID: p.ID,
				ImageURL:  d.ImageURL,
				Caption:   d.Caption,
				SortOrder: d.Order,
			}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GET /portal/projects?q=&status=&category=
func List(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageProjects); !ok {
		return
	}

	q := database.DB.Model(&projects.Project{}).
		Preload("Category").
		Order("is_featured DESC, sort_order ASC, start_date DESC")

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("status = ?", status)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("category_id = ?", category)
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

// GET /portal/projects/:id
func Get(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageProjects); !ok {
		return
	}
	id, ok := projectID(c)
	if !ok {
		return
	}

	var project projects.Project
	err := database.DB.Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		First(&project, id).Error
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

// POST /portal/projects
func Create(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageProjects); !ok {
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON payload"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var project projects.Project
	req.apply(&project)
	if err := saveWithImages(database.DB, &project, req.Images); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving project", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// PUT /portal/projects/:id
func Update(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageProjects); !ok {
		return
	}
	id, ok := projectID(c)
	if !ok {
		return
	}

	var project projects.Project
	if err := database.DB.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON payload"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	req.apply(&project)
	if err := saveWithImages(database.DB, &project, req.Images); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving project", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// DELETE /portal/projects/:id
func Delete(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageProjects); !ok {
		return
	}
	id, ok := projectID(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var project projects.Project
		if err := tx.First(&project, id).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&projects.ProjectImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// POST /portal/api/projects/categories
func CreateCategory(c *gin.Context) {
	if _, ok := portal.Authorize(c, access.ManageProjects); !ok {
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
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
	database.DB.Model(&projects.ProjectCategory{}).Where("name = ?", req.Name).Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "A category with this name already exists"})
		return
	}

	category := projects.ProjectCategory{
		Name:        req.Name,
		Description: strings.TrimSpace(req.Description),
		Icon:        req.Icon,
		Color:       req.Color,
	}
	if category.Icon == "" {
		category.Icon = "building"
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
