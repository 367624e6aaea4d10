package api

import (
	"log"
	"net/http"
	"time"

	"nakliyat-api/internal/database"
	"nakliyat-api/internal/models"
	"nakliyat-api/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SiteHandler serves the public site endpoints. Read endpoints degrade to an
// empty list or default object on store errors so visitors never see a raw
// error; only the form submissions surface failures.
type SiteHandler struct {
	Hub *ws.Hub
}

func NewSiteHandler(hub *ws.Hub) *SiteHandler {
	return &SiteHandler{Hub: hub}
}

func (h *SiteHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Baraj Nakliyat API"})
}

// defaultSettings is returned while the settings table is still empty so the
// site header always has contact details to show.
var defaultSettings = gin.H{
	"phone":     "0 (536) 740 92 06",
	"phone_raw": "05367409206",
	"email":     "info@barajnakliyat.com",
	"address":   "Adana, Türkiye",
	"whatsapp":  "5367409206",
}

func (h *SiteHandler) GetSettings(c *gin.Context) {
	var settings models.SiteSettings
	if err := database.DB.First(&settings).Error; err != nil {
		c.JSON(http.StatusOK, defaultSettings)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SiteHandler) GetServices(c *gin.Context) {
	var services []models.Service
	err := database.DB.Where("status = ?", "published").
		Order("display_order asc").
		Find(&services).Error
	if err != nil {
		log.Printf("Services error: %v", err)
		c.JSON(http.StatusOK, []models.Service{})
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, services)
}

func (h *SiteHandler) GetFeaturedServices(c *gin.Context) {
	var services []models.Service
	err := database.DB.Where("status = ? AND is_featured = ?", "published", true).
		Order("display_order asc").
		Limit(6).
		Find(&services).Error
	if err != nil {
		log.Printf("Featured services error: %v", err)
		c.JSON(http.StatusOK, []models.Service{})
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, services)
}

func (h *SiteHandler) GetServiceBySlug(c *gin.Context) {
	var service models.Service
	if err := database.DB.First(&service, "slug = ?", c.Param("slug")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *SiteHandler) GetLocations(c *gin.Context) {
	var locations []models.Location
	err := database.DB.Where("is_active = ?", true).
		Order("display_order asc").
		Find(&locations).Error
	if err != nil {
		log.Printf("Locations error: %v", err)
		c.JSON(http.StatusOK, []models.Location{})
		return
	}
	if locations == nil {
		locations = []models.Location{}
	}
	c.JSON(http.StatusOK, locations)
}

func (h *SiteHandler) GetBlogPosts(c *gin.Context) {
	var posts []models.BlogPost
	err := database.DB.Where("status = ?", "published").
		Order("published_at desc").
		Find(&posts).Error
	if err != nil {
		log.Printf("Blog error: %v", err)
		c.JSON(http.StatusOK, []models.BlogPost{})
		return
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	c.JSON(http.StatusOK, posts)
}

func (h *SiteHandler) GetFeaturedBlogPosts(c *gin.Context) {
	var posts []models.BlogPost
	err := database.DB.Where("status = ?", "published").
		Order("published_at desc").
		Limit(3).
		Find(&posts).Error
	if err != nil {
		log.Printf("Featured blog error: %v", err)
		c.JSON(http.StatusOK, []models.BlogPost{})
		return
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	c.JSON(http.StatusOK, posts)
}

func (h *SiteHandler) GetBlogPostBySlug(c *gin.Context) {
	var post models.BlogPost
	if err := database.DB.First(&post, "slug = ?", c.Param("slug")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *SiteHandler) GetFAQs(c *gin.Context) {
	var faqs []models.FAQ
	err := database.DB.Where("is_active = ?", true).
		Order("display_order asc").
		Find(&faqs).Error
	if err != nil {
		log.Printf("FAQ error: %v", err)
		c.JSON(http.StatusOK, []models.FAQ{})
		return
	}
	if faqs == nil {
		faqs = []models.FAQ{}
	}
	c.JSON(http.StatusOK, faqs)
}

func (h *SiteHandler) GetTestimonials(c *gin.Context) {
	var testimonials []models.Testimonial
	err := database.DB.Where("is_active = ?", true).
		Order("display_order asc").
		Find(&testimonials).Error
	if err != nil {
		log.Printf("Testimonials error: %v", err)
		c.JSON(http.StatusOK, []models.Testimonial{})
		return
	}
	if testimonials == nil {
		testimonials = []models.Testimonial{}
	}
	c.JSON(http.StatusOK, testimonials)
}

func (h *SiteHandler) GetGallery(c *gin.Context) {
	var items []models.GalleryItem
	err := database.DB.Where("is_active = ?", true).
		Order("display_order asc").
		Find(&items).Error
	if err != nil {
		log.Printf("Gallery error: %v", err)
		c.JSON(http.StatusOK, []models.GalleryItem{})
		return
	}
	if items == nil {
		items = []models.GalleryItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *SiteHandler) GetHomepage(c *gin.Context) {
	var homepage models.HomepageContent
	if err := database.DB.First(&homepage).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, homepage)
}

func (h *SiteHandler) GetSEO(c *gin.Context) {
	var seo models.SEOSetting
	if err := database.DB.First(&seo, "page_name = ?", c.Param("page")).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, seo)
}

// CreateQuoteRequest stores a public quote form submission. Status always
// starts at "new" no matter what the body says.
func (h *SiteHandler) CreateQuoteRequest(c *gin.Context) {
	var quote models.QuoteRequest
	if err := c.ShouldBindJSON(&quote); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote.ID = uuid.NewString()
	quote.Status = "new"
	quote.CreatedAt = time.Now().UTC()

	if err := database.DB.Create(&quote).Error; err != nil {
		log.Printf("Quote request error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit quote request"})
		return
	}

	if h.Hub != nil {
		go h.Hub.NotifyQuoteRequest(quote)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": quote})
}

func (h *SiteHandler) CreateContactMessage(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg.ID = uuid.NewString()
	msg.IsRead = false
	msg.CreatedAt = time.Now().UTC()

	if err := database.DB.Create(&msg).Error; err != nil {
		log.Printf("Contact message error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit message"})
		return
	}

	if h.Hub != nil {
		go h.Hub.NotifyContactMessage(msg)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": msg})
}
