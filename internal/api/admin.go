package api

import (
	"net/http"
	"time"

	"nakliyat-api/internal/database"
	"nakliyat-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler owns the collection CRUD endpoints of the admin panel. Every
// store error on an admin path surfaces as a 500 with the store's message;
// deletes are idempotent and always answer {"success": true}.
type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// Per-entity allow-lists. Update bodies are filtered through these so a stray
// JSON key never becomes a store column.
var (
	serviceColumns     = models.Columns(models.Service{}, "id", "created_at", "updated_at")
	locationColumns    = models.Columns(models.Location{}, "id")
	blogColumns        = models.Columns(models.BlogPost{}, "id", "created_at", "updated_at")
	faqColumns         = models.Columns(models.FAQ{}, "id")
	testimonialColumns = models.Columns(models.Testimonial{}, "id")
	galleryColumns     = models.Columns(models.GalleryItem{}, "id")
	sliderColumns      = models.Columns(models.Slider{}, "id")
	tabColumns         = models.Columns(models.Tab{}, "id")
	menuColumns        = models.Columns(models.MenuItem{}, "id")
)

// bindUpdates binds the request body and strips keys outside the entity's
// column set. Writes the 400 response itself on a malformed body.
func bindUpdates(c *gin.Context, allowed map[string]bool) (map[string]interface{}, bool) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return models.FilterColumns(body, allowed), true
}

// applyUpdates runs the partial merge for one row. A body with no known
// columns is a no-op rather than an error.
func applyUpdates(model interface{}, id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return database.DB.Model(model).Where("id = ?", id).Updates(updates).Error
}

// --- Services ---

func (h *AdminHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := database.DB.Order("display_order asc").Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, services)
}

func (h *AdminHandler) CreateService(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service.ID = uuid.NewString()
	now := time.Now().UTC()
	service.CreatedAt = now
	service.UpdatedAt = now

	if err := database.DB.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *AdminHandler) UpdateService(c *gin.Context) {
	updates, ok := bindUpdates(c, serviceColumns)
	if !ok {
		return
	}
	updates["updated_at"] = time.Now().UTC()

	id := c.Param("id")
	if err := applyUpdates(&models.Service{}, id, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var service models.Service
	if err := database.DB.First(&service, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *AdminHandler) DeleteService(c *gin.Context) {
	if err := database.DB.Delete(&models.Service{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Locations ---

func (h *AdminHandler) ListLocations(c *gin.Context) {
	var locations []models.Location
	if err := database.DB.Order("display_order asc").Find(&locations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if locations == nil {
		locations = []models.Location{}
	}
	c.JSON(http.StatusOK, locations)
}

func (h *AdminHandler) CreateLocation(c *gin.Context) {
	var location models.Location
	if err := c.ShouldBindJSON(&location); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location.ID = uuid.NewString()
	if err := database.DB.Create(&location).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, location)
}

func (h *AdminHandler) UpdateLocation(c *gin.Context) {
	updates, ok := bindUpdates(c, locationColumns)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := applyUpdates(&models.Location{}, id, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var location models.Location
	if err := database.DB.First(&location, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, location)
}

func (h *AdminHandler) DeleteLocation(c *gin.Context) {
	if err := database.DB.Delete(&models.Location{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Blog posts ---

func (h *AdminHandler) ListBlogPosts(c *gin.Context) {
	var posts []models.BlogPost
	if err := database.DB.Order("created_at desc").Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	c.JSON(http.StatusOK, posts)
}

func (h *AdminHandler) CreateBlogPost(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post.ID = uuid.NewString()
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *AdminHandler) UpdateBlogPost(c *gin.Context) {
	updates, ok := bindUpdates(c, blogColumns)
	if !ok {
		return
	}
	updates["updated_at"] = time.Now().UTC()

	id := c.Param("id")
	if err := applyUpdates(&models.BlogPost{}, id, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var post models.BlogPost
	if err := database.DB.First(&post, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *AdminHandler) DeleteBlogPost(c *gin.Context) {
	if err := database.DB.Delete(&models.BlogPost{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- FAQs ---

func (h *AdminHandler) ListFAQs(c *gin.Context) {
	var faqs []models.FAQ
	if err := database.DB.Order("display_order asc").Find(&faqs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if faqs == nil {
		faqs = []models.FAQ{}
	}
	c.JSON(http.StatusOK, faqs)
}

func (h *AdminHandler) CreateFAQ(c *gin.Context) {
	var faq models.FAQ
	if err := c.ShouldBindJSON(&faq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	faq.ID = uuid.NewString()
	if err := database.DB.Create(&faq).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, faq)
}

func (h *AdminHandler) UpdateFAQ(c *gin.Context) {
	updates, ok := bindUpdates(c, faqColumns)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := applyUpdates(&models.FAQ{}, id, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var faq models.FAQ
	if err := database.DB.First(&faq, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, faq)
}

func (h *AdminHandler) DeleteFAQ(c *gin.Context) {
	if err := database.DB.Delete(&models.FAQ{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Testimonials ---

func (h *AdminHandler) ListTestimonials(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := database.DB.Order("display_order asc").Find(&testimonials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if testimonials == nil {
		testimonials = []models.Testimonial{}
	}
	c.JSON(http.StatusOK, testimonials)
}

func (h *AdminHandler) CreateTestimonial(c *gin.Context) {
	var testimonial models.Testimonial
	if err := c.ShouldBindJSON(&testimonial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	testimonial.ID = uuid.NewString()
	if err := database.DB.Create(&testimonial).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

func (h *AdminHandler) UpdateTestimonial(c *gin.Context) {
	updates, ok := bindUpdates(c, testimonialColumns)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := applyUpdates(&models.Testimonial{}, id, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var testimonial models.Testimonial
	if err := database.DB.First(&testimonial, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

func (h *AdminHandler) DeleteTestimonial(c *gin.Context) {
	if err := database.DB.Delete(&models.Testimonial{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Gallery ---

func (h *AdminHandler) ListGallery(c *gin.Context) {
	var items []models.GalleryItem
	if err := database.DB.Order("display_order asc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []models.GalleryItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *AdminHandler) CreateGalleryItem(c *gin.Context) {
	var item models.GalleryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.ID = uuid.NewString()
	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *AdminHandler) UpdateGalleryItem(c *gin.Context) {
	updates, ok := bindUpdates(c, galleryColumns)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := applyUpdates(&models.GalleryItem{}, id, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var item models.GalleryItem
	if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *AdminHandler) DeleteGalleryItem(c *gin.Context) {
	if err := database.DB.Delete(&models.GalleryItem{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Sliders ---

func (h *AdminHandler) ListSliders(c *gin.Context) {
	var sliders []models.Slider
	if err := database.DB.Order("display_order asc").Find(&sliders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if sliders == nil {
		sliders = []models.Slider{}
	}
	c.JSON(http.StatusOK, sliders)
}

func (h *AdminHandler) CreateSlider(c *gin.Context) {
	var slider models.Slider
	if err := c.ShouldBindJSON(&slider); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slider.ID = uuid.NewString()
	if err := database.DB.Create(&slider).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slider)
}

func (h *AdminHandler) UpdateSlider(c *gin.Context) {
	updates, ok := bindUpdates(c, sliderColumns)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := applyUpdates(&models.Slider{}, id, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var slider models.Slider
	if err := database.DB.First(&slider, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slider)
}

func (h *AdminHandler) DeleteSlider(c *gin.Context) {
	if err := database.DB.Delete(&models.Slider{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Tabs ---

func (h *AdminHandler) ListTabs(c *gin.Context) {
	var tabs []models.Tab
	if err := database.DB.Order("display_order asc").Find(&tabs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if tabs == nil {
		tabs = []models.Tab{}
	}
	c.JSON(http.StatusOK, tabs)
}

func (h *AdminHandler) CreateTab(c *gin.Context) {
	var tab models.Tab
	if err := c.ShouldBindJSON(&tab); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tab.ID = uuid.NewString()
	if err := database.DB.Create(&tab).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tab)
}

func (h *AdminHandler) UpdateTab(c *gin.Context) {
	updates, ok := bindUpdates(c, tabColumns)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := applyUpdates(&models.Tab{}, id, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var tab models.Tab
	if err := database.DB.First(&tab, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tab)
}

func (h *AdminHandler) DeleteTab(c *gin.Context) {
	if err := database.DB.Delete(&models.Tab{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Menu ---

func (h *AdminHandler) ListMenuItems(c *gin.Context) {
	var items []models.MenuItem
	if err := database.DB.Order("display_order asc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *AdminHandler) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.ID = uuid.NewString()
	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateMenuItem only touches the addressed row; children referencing it via
// parent_id are left as they are.
func (h *AdminHandler) UpdateMenuItem(c *gin.Context) {
	updates, ok := bindUpdates(c, menuColumns)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := applyUpdates(&models.MenuItem{}, id, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var item models.MenuItem
	if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *AdminHandler) DeleteMenuItem(c *gin.Context) {
	if err := database.DB.Delete(&models.MenuItem{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
