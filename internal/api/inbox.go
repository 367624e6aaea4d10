package api

import (
	"net/http"

	"nakliyat-api/internal/database"
	"nakliyat-api/internal/models"

	"github.com/gin-gonic/gin"
)

// InboxHandler serves the admin views of what the public forms submit:
// quote requests and contact messages. Rows are only ever created by the
// public endpoints; the admin updates status/read flags and deletes.
type InboxHandler struct{}

func NewInboxHandler() *InboxHandler {
	return &InboxHandler{}
}

var (
	quoteColumns   = models.Columns(models.QuoteRequest{}, "id", "created_at")
	contactColumns = models.Columns(models.ContactMessage{}, "id", "created_at")
)

func (h *InboxHandler) ListQuoteRequests(c *gin.Context) {
	var quotes []models.QuoteRequest
	if err := database.DB.Order("created_at desc").Find(&quotes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if quotes == nil {
		quotes = []models.QuoteRequest{}
	}
	c.JSON(http.StatusOK, quotes)
}

// UpdateQuoteRequest is how the admin moves a request through new,
// in_progress, completed or cancelled. No transition graph is enforced.
func (h *InboxHandler) UpdateQuoteRequest(c *gin.Context) {
	updates, ok := bindUpdates(c, quoteColumns)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := applyUpdates(&models.QuoteRequest{}, id, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var quote models.QuoteRequest
	if err := database.DB.First(&quote, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *InboxHandler) DeleteQuoteRequest(c *gin.Context) {
	if err := database.DB.Delete(&models.QuoteRequest{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *InboxHandler) ListContactMessages(c *gin.Context) {
	var messages []models.ContactMessage
	if err := database.DB.Order("created_at desc").Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if messages == nil {
		messages = []models.ContactMessage{}
	}
	c.JSON(http.StatusOK, messages)
}

func (h *InboxHandler) UpdateContactMessage(c *gin.Context) {
	updates, ok := bindUpdates(c, contactColumns)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := applyUpdates(&models.ContactMessage{}, id, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var msg models.ContactMessage
	if err := database.DB.First(&msg, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *InboxHandler) DeleteContactMessage(c *gin.Context) {
	if err := database.DB.Delete(&models.ContactMessage{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
