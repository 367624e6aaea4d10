package api

import (
	"errors"
	"net/http"

	"nakliyat-api/internal/database"
	"nakliyat-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentHandler owns the singleton resources (settings, homepage, footer,
// hero content) and the keyed ones (seo by page_name, pages by page_key).
// Singleton PUTs are fetch-then-insert-or-update so exactly one row ever
// exists per table.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

var (
	settingsColumns = models.Columns(models.SiteSettings{}, "id")
	homepageColumns = models.Columns(models.HomepageContent{}, "id")
	heroColumns     = models.Columns(models.HeroContent{}, "id")
	footerColumns   = models.Columns(models.FooterSettings{}, "id")
	seoColumns      = models.Columns(models.SEOSetting{}, "id")
	pageColumns     = models.Columns(models.PageContent{}, "id", "page_key")
)

// getSingleton writes the table's only row, or {} when the table is empty.
func getSingleton(c *gin.Context, dest interface{}) {
	if err := database.DB.First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dest)
}

// upsertSingleton merges the body into the table's only row, inserting it
// when the table is still empty. dest must be a pointer to the model struct.
func upsertSingleton(c *gin.Context, dest interface{}, allowed map[string]bool) {
	updates, ok := bindUpdates(c, allowed)
	if !ok {
		return
	}

	err := database.DB.First(dest).Error
	switch {
	case err == nil:
		if len(updates) > 0 {
			if err := database.DB.Model(dest).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
		if err := database.DB.First(dest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dest)
	case errors.Is(err, gorm.ErrRecordNotFound):
		id := uuid.NewString()
		updates["id"] = id
		if err := database.DB.Model(dest).Create(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := database.DB.First(dest, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dest)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// --- Site settings ---

func (h *ContentHandler) GetSettings(c *gin.Context) {
	getSingleton(c, &models.SiteSettings{})
}

func (h *ContentHandler) UpdateSettings(c *gin.Context) {
	upsertSingleton(c, &models.SiteSettings{}, settingsColumns)
}

// --- Homepage ---

func (h *ContentHandler) GetHomepage(c *gin.Context) {
	getSingleton(c, &models.HomepageContent{})
}

func (h *ContentHandler) UpdateHomepage(c *gin.Context) {
	upsertSingleton(c, &models.HomepageContent{}, homepageColumns)
}

// --- Hero content ---

func (h *ContentHandler) GetHeroContent(c *gin.Context) {
	getSingleton(c, &models.HeroContent{})
}

func (h *ContentHandler) UpdateHeroContent(c *gin.Context) {
	upsertSingleton(c, &models.HeroContent{}, heroColumns)
}

// --- Footer ---

func (h *ContentHandler) GetFooter(c *gin.Context) {
	getSingleton(c, &models.FooterSettings{})
}

func (h *ContentHandler) UpdateFooter(c *gin.Context) {
	upsertSingleton(c, &models.FooterSettings{}, footerColumns)
}

// --- SEO settings ---

func (h *ContentHandler) ListSEOSettings(c *gin.Context) {
	var settings []models.SEOSetting
	if err := database.DB.Order("page_name asc").Find(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if settings == nil {
		settings = []models.SEOSetting{}
	}
	c.JSON(http.StatusOK, settings)
}

// UpsertSEOSetting merges the body into the row for its page_name, inserting
// the row on first save. Keys absent from the body keep their stored values.
func (h *ContentHandler) UpsertSEOSetting(c *gin.Context) {
	updates, ok := bindUpdates(c, seoColumns)
	if !ok {
		return
	}

	pageName, _ := updates["page_name"].(string)
	var seo models.SEOSetting
	err := database.DB.First(&seo, "page_name = ?", pageName).Error
	switch {
	case err == nil:
		if len(updates) > 0 {
			if err := database.DB.Model(&seo).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		updates["id"] = uuid.NewString()
		if err := database.DB.Model(&models.SEOSetting{}).Create(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.First(&seo, "page_name = ?", pageName).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, seo)
}

func (h *ContentHandler) UpdateSEOSetting(c *gin.Context) {
	updates, ok := bindUpdates(c, seoColumns)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := applyUpdates(&models.SEOSetting{}, id, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var seo models.SEOSetting
	if err := database.DB.First(&seo, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, seo)
}

// --- Pages ---

func (h *ContentHandler) ListPages(c *gin.Context) {
	var pages []models.PageContent
	if err := database.DB.Find(&pages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if pages == nil {
		pages = []models.PageContent{}
	}
	c.JSON(http.StatusOK, pages)
}

func (h *ContentHandler) GetPage(c *gin.Context) {
	var page models.PageContent
	if err := database.DB.First(&page, "page_key = ?", c.Param("key")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// UpdatePage merges the body into the page addressed by page_key, creating
// the row on first save.
func (h *ContentHandler) UpdatePage(c *gin.Context) {
	updates, ok := bindUpdates(c, pageColumns)
	if !ok {
		return
	}

	key := c.Param("key")
	var page models.PageContent
	err := database.DB.First(&page, "page_key = ?", key).Error
	switch {
	case err == nil:
		if len(updates) > 0 {
			if err := database.DB.Model(&page).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		updates["id"] = uuid.NewString()
		updates["page_key"] = key
		if err := database.DB.Model(&models.PageContent{}).Create(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.First(&page, "page_key = ?", key).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}
