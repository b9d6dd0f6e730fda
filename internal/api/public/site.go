package public

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"amma-cms/database"
	"amma-cms/internal/domain/contact"
	"amma-cms/internal/domain/gallery"
	"amma-cms/internal/domain/staff"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /staff
func ListStaff(c *gin.Context) {
	var members []staff.StaffMember
	err := database.DB.
		Where("is_active = ?", true).
		Order("sort_order ASC, full_name ASC").
		Find(&members).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load staff"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"staff": members})
}

// GET /gallery
func ListGalleryAlbums(c *gin.Context) {
	var albums []gallery.GalleryAlbum
	err := database.DB.
		Where("is_active = ?", true).
		Order("event_date DESC, created_at DESC").
		Find(&albums).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gallery"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"albums": albums})
}

// GET /gallery/:slug
func GetGalleryAlbum(c *gin.Context) {
	var album gallery.GalleryAlbum
	err := database.DB.
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Where("slug = ? AND is_active = ?", c.Param("slug"), true).
		First(&album).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load album"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"album": album})
}

type contactRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// POST /contact
//
// The sanitize middleware has already stripped markup from the payload.
func SubmitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Malformed JSON payload"})
		return
	}

	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	switch {
	case req.FullName == "":
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Full name is required"})
		return
	case req.Email == "":
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email is required"})
		return
	case req.Subject == "":
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Subject is required"})
		return
	case req.Message == "":
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Message is required"})
		return
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid email address"})
		return
	}

	msg := contact.ContactMessage{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    strings.TrimSpace(req.Phone),
		Subject:  req.Subject,
		Message:  req.Message,
	}
	if err := database.DB.Create(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}
