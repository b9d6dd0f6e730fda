package portal

import (
	"net/http"

	"amma-cms/database"
	"amma-cms/internal/domain/access"
	"amma-cms/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

// CurrentUser loads the authenticated actor (with capability grants) for the
// request. Writes the 401 itself when there is no valid actor.
func CurrentUser(c *gin.Context) (*accounts.User, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	userID, ok := v.(uint)
	if !ok || userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	var user accounts.User
	if err := database.DB.Preload("Grants").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	if !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return &user, true
}

// Authorize is the explicit permission gate consulted at the entry of every
// portal handler. Denial reveals nothing about the resource.
func Authorize(c *gin.Context, capability access.Capability) (*accounts.User, bool) {
	user, ok := CurrentUser(c)
	if !ok {
		return nil, false
	}
	if !access.CanManage(user, capability) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return nil, false
	}
	return user, true
}
