package routes

import (
	authapi "amma-cms/internal/api/auth"
	documentsapi "amma-cms/internal/api/documents"
	newsapi "amma-cms/internal/api/news"
	"amma-cms/internal/api/portal"
	projectsapi "amma-cms/internal/api/projects"
	"amma-cms/internal/api/public"
	servicesapi "amma-cms/internal/api/services"
	"amma-cms/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public site API
	r.GET("/services", public.ListServices)
	r.GET("/services/:slug", public.GetService)
	r.GET("/news", public.ListNews)
	r.GET("/news/:slug", public.GetNewsArticle)
	r.GET("/projects", public.ListProjects)
	r.GET("/projects/:slug", public.GetProject)
	r.GET("/documents", public.ListDocuments)
	r.POST("/documents/:id/download", public.RecordDownload)
	r.GET("/gallery", public.ListGalleryAlbums)
	r.GET("/gallery/:slug", public.GetGalleryAlbum)
	r.GET("/staff", public.ListStaff)

	// ✅ Sanitize citizen-submitted payloads only
	forms := r.Group("/")
	forms.Use(middleware.SanitizeAndCleanInputMiddleware())
	forms.POST("/contact", public.SubmitContact)

	r.POST("/auth/login", authapi.Login)
	r.GET("/auth/sso", authapi.SSOStart)
	r.GET("/auth/sso/callback", authapi.SSOCallback)

	// Staff portal. Capabilities are checked inside each handler.
	p := r.Group("/portal")
	p.Use(middleware.AuthMiddleware())

	p.GET("/me", portal.Me)
	p.GET("/dashboard", portal.Dashboard)

	p.GET("/services", servicesapi.List)
	p.POST("/services", servicesapi.Create)
	p.GET("/services/:id", servicesapi.Get)
	p.PUT("/services/:id", servicesapi.Update)
	p.DELETE("/services/:id", servicesapi.Delete)
	p.POST("/api/services/preview", servicesapi.Preview)
	p.POST("/api/services/:id/blocks/reorder", servicesapi.ReorderBlocks)
	p.GET("/api/templates", servicesapi.ListTemplates)
	p.GET("/api/templates/:key", servicesapi.GetTemplate)

	p.GET("/news", newsapi.List)
	p.POST("/news", newsapi.Create)
	p.GET("/news/:id", newsapi.Get)
	p.PUT("/news/:id", newsapi.Update)
	p.DELETE("/news/:id", newsapi.Delete)
	p.POST("/api/news/categories", newsapi.CreateCategory)

	p.GET("/projects", projectsapi.List)
	p.POST("/projects", projectsapi.Create)
	p.GET("/projects/:id", projectsapi.Get)
	p.PUT("/projects/:id", projectsapi.Update)
	p.DELETE("/projects/:id", projectsapi.Delete)
	p.POST("/api/projects/categories", projectsapi.CreateCategory)

	p.GET("/documents", documentsapi.List)
	p.POST("/documents", documentsapi.Create)
	p.GET("/documents/:id", documentsapi.Get)
	p.PUT("/documents/:id", documentsapi.Update)
	p.DELETE("/documents/:id", documentsapi.Delete)
	p.POST("/api/documents/categories", documentsapi.CreateCategory)
}
