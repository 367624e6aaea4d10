package api

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"nakliyat-api/internal/config"
	"nakliyat-api/internal/storage"
	"nakliyat-api/internal/ws"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the full route table. Registration order mirrors the
// endpoint precedence the frontends rely on (the fixed /services/featured
// route wins over /services/:slug).
func NewRouter(cfg *config.Config, store *storage.Client, hub *ws.Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("API error: %v", recovered)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	r.Use(corsMiddleware(cfg.CORSOrigins))

	site := NewSiteHandler(hub)
	admin := NewAdminHandler()
	content := NewContentHandler()
	inbox := NewInboxHandler()
	auth := NewAuthHandler(cfg)
	stats := NewStatsHandler()
	upload := NewUploadHandler(store)

	// Public routes
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("", site.Root)
		apiGroup.GET("/root", site.Root)
		apiGroup.GET("/settings", site.GetSettings)
		apiGroup.GET("/services", site.GetServices)
		apiGroup.GET("/services/featured", site.GetFeaturedServices)
		apiGroup.GET("/services/:slug", site.GetServiceBySlug)
		apiGroup.GET("/locations", site.GetLocations)
		apiGroup.GET("/blog", site.GetBlogPosts)
		apiGroup.GET("/blog/featured", site.GetFeaturedBlogPosts)
		apiGroup.GET("/blog/:slug", site.GetBlogPostBySlug)
		apiGroup.GET("/faq", site.GetFAQs)
		apiGroup.GET("/testimonials", site.GetTestimonials)
		apiGroup.GET("/gallery", site.GetGallery)
		apiGroup.GET("/homepage", site.GetHomepage)
		apiGroup.GET("/seo/:page", site.GetSEO)
		apiGroup.POST("/quote-request", site.CreateQuoteRequest)
		apiGroup.POST("/contact", site.CreateContactMessage)

		// Admin routes
		adminGroup := apiGroup.Group("/admin")
		{
			adminGroup.POST("/login", auth.Login)
			adminGroup.GET("/stats", stats.GetStats)
			adminGroup.POST("/upload", upload.Upload)

			adminGroup.GET("/settings", content.GetSettings)
			adminGroup.PUT("/settings", content.UpdateSettings)
			adminGroup.GET("/homepage", content.GetHomepage)
			adminGroup.PUT("/homepage", content.UpdateHomepage)
			adminGroup.GET("/hero-content", content.GetHeroContent)
			adminGroup.PUT("/hero-content", content.UpdateHeroContent)
			adminGroup.GET("/footer", content.GetFooter)
			adminGroup.PUT("/footer", content.UpdateFooter)

			adminGroup.GET("/services", admin.ListServices)
			adminGroup.POST("/services", admin.CreateService)
			adminGroup.PUT("/services/:id", admin.UpdateService)
			adminGroup.PATCH("/services/:id", admin.UpdateService)
			adminGroup.DELETE("/services/:id", admin.DeleteService)

			adminGroup.GET("/locations", admin.ListLocations)
			adminGroup.POST("/locations", admin.CreateLocation)
			adminGroup.PUT("/locations/:id", admin.UpdateLocation)
			adminGroup.PATCH("/locations/:id", admin.UpdateLocation)
			adminGroup.DELETE("/locations/:id", admin.DeleteLocation)

			adminGroup.GET("/blog", admin.ListBlogPosts)
			adminGroup.POST("/blog", admin.CreateBlogPost)
			adminGroup.PUT("/blog/:id", admin.UpdateBlogPost)
			adminGroup.PATCH("/blog/:id", admin.UpdateBlogPost)
			adminGroup.DELETE("/blog/:id", admin.DeleteBlogPost)

			adminGroup.GET("/faqs", admin.ListFAQs)
			adminGroup.POST("/faqs", admin.CreateFAQ)
			adminGroup.PUT("/faqs/:id", admin.UpdateFAQ)
			adminGroup.PATCH("/faqs/:id", admin.UpdateFAQ)
			adminGroup.DELETE("/faqs/:id", admin.DeleteFAQ)

			adminGroup.GET("/testimonials", admin.ListTestimonials)
			adminGroup.POST("/testimonials", admin.CreateTestimonial)
			adminGroup.PUT("/testimonials/:id", admin.UpdateTestimonial)
			adminGroup.PATCH("/testimonials/:id", admin.UpdateTestimonial)
			adminGroup.DELETE("/testimonials/:id", admin.DeleteTestimonial)

			adminGroup.GET("/gallery", admin.ListGallery)
			adminGroup.POST("/gallery", admin.CreateGalleryItem)
			adminGroup.PUT("/gallery/:id", admin.UpdateGalleryItem)
			adminGroup.PATCH("/gallery/:id", admin.UpdateGalleryItem)
			adminGroup.DELETE("/gallery/:id", admin.DeleteGalleryItem)

			adminGroup.GET("/sliders", admin.ListSliders)
			adminGroup.POST("/sliders", admin.CreateSlider)
			adminGroup.PUT("/sliders/:id", admin.UpdateSlider)
			adminGroup.PATCH("/sliders/:id", admin.UpdateSlider)
			adminGroup.DELETE("/sliders/:id", admin.DeleteSlider)

			adminGroup.GET("/tabs", admin.ListTabs)
			adminGroup.POST("/tabs", admin.CreateTab)
			adminGroup.PUT("/tabs/:id", admin.UpdateTab)
			adminGroup.PATCH("/tabs/:id", admin.UpdateTab)
			adminGroup.DELETE("/tabs/:id", admin.DeleteTab)

			adminGroup.GET("/menu", admin.ListMenuItems)
			adminGroup.POST("/menu", admin.CreateMenuItem)
			adminGroup.PUT("/menu/:id", admin.UpdateMenuItem)
			adminGroup.PATCH("/menu/:id", admin.UpdateMenuItem)
			adminGroup.DELETE("/menu/:id", admin.DeleteMenuItem)

			adminGroup.GET("/quote-requests", inbox.ListQuoteRequests)
			adminGroup.PUT("/quote-requests/:id", inbox.UpdateQuoteRequest)
			adminGroup.PATCH("/quote-requests/:id", inbox.UpdateQuoteRequest)
			adminGroup.DELETE("/quote-requests/:id", inbox.DeleteQuoteRequest)

			adminGroup.GET("/contact-messages", inbox.ListContactMessages)
			adminGroup.PUT("/contact-messages/:id", inbox.UpdateContactMessage)
			adminGroup.PATCH("/contact-messages/:id", inbox.UpdateContactMessage)
			adminGroup.DELETE("/contact-messages/:id", inbox.DeleteContactMessage)

			adminGroup.GET("/seo", content.ListSEOSettings)
			adminGroup.POST("/seo", content.UpsertSEOSetting)
			adminGroup.PUT("/seo/:id", content.UpdateSEOSetting)
			adminGroup.PATCH("/seo/:id", content.UpdateSEOSetting)

			adminGroup.GET("/pages", content.ListPages)
			adminGroup.GET("/pages/:key", content.GetPage)
			adminGroup.PUT("/pages/:key", content.UpdatePage)
			adminGroup.PATCH("/pages/:key", content.UpdatePage)
		}
	}

	if hub != nil {
		r.GET("/ws", func(c *gin.Context) {
			hub.ServeWs(c.Writer, c.Request)
		})
	}

	r.NoRoute(func(c *gin.Context) {
		route := strings.TrimPrefix(c.Request.URL.Path, "/api")
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Route %s not found", route)})
	})

	return r
}

// corsMiddleware stamps the CORS headers on every response, success or
// error, and answers preflight OPTIONS immediately with an empty 200.
func corsMiddleware(origins string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Set("Access-Control-Allow-Origin", origins)
		header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, OPTIONS")
		header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		header.Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
