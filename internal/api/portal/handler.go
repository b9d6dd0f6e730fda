package portal

import (
	"net/http"

	"amma-cms/database"
	"amma-cms/internal/domain/access"
	"amma-cms/internal/domain/documents"
	"amma-cms/internal/domain/news"
	"amma-cms/internal/domain/projects"
	"amma-cms/internal/domain/services"

	"github.com/gin-gonic/gin"
)

// GET /portal/me
func Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"is_superuser": user.IsSuperuser,
		"capabilities": access.CapabilitiesFor(user),
	})
}

// GET /portal/dashboard
//
// Statistics are zeroed for capabilities the actor lacks, so the dashboard
// never leaks counts from domains the actor cannot manage.
func Dashboard(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		return
	}

	caps := access.CapabilitiesFor(user)
	stats := gin.H{}

	if caps[access.ManageServices] {
		stats["services_count"] = count(&services.Service{}, "")
		stats["active_services_count"] = count(&services.Service{}, "is_active = true")
	} else {
		stats["services_count"] = 0
		stats["active_services_count"] = 0
	}

	if caps[access.ManageNews] {
		stats["news_count"] = count(&news.NewsArticle{}, "")
		stats["published_news_count"] = countWhere(&news.NewsArticle{}, "status = ?", news.StatusPublished)
		stats["draft_news_count"] = countWhere(&news.NewsArticle{}, "status = ?", news.StatusDraft)
	} else {
		stats["news_count"] = 0
		stats["published_news_count"] = 0
		stats["draft_news_count"] = 0
	}

	if caps[access.ManageProjects] {
		stats["projects_count"] = count(&projects.Project{}, "")
		stats["ongoing_projects_count"] = countWhere(&projects.Project{}, "status = ?", projects.StatusOngoing)
		stats["completed_projects_count"] = countWhere(&projects.Project{}, "status = ?", projects.StatusCompleted)
	} else {
		stats["projects_count"] = 0
		stats["ongoing_projects_count"] = 0
		stats["completed_projects_count"] = 0
	}

	if caps[access.ManageDocuments] {
		stats["documents_count"] = count(&documents.Document{}, "")
		stats["public_documents_count"] = count(&documents.Document{}, "is_public = true")
		stats["featured_documents_count"] = count(&documents.Document{}, "is_featured = true")
	} else {
		stats["documents_count"] = 0
		stats["public_documents_count"] = 0
		stats["featured_documents_count"] = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":        stats,
		"capabilities": caps,
	})
}

func count(model interface{}, cond string) int64 {
	var n int64
	q := database.DB.Model(model)
	if cond != "" {
		q = q.Where(cond)
	}
	q.Count(&n)
	return n
}

func countWhere(model interface{}, cond string, args ...interface{}) int64 {
	var n int64
	database.DB.Model(model).Where(cond, args...).Count(&n)
	return n
}
