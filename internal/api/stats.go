package api

import (
	"net/http"
	"sync"

	"nakliyat-api/internal/database"
	"nakliyat-api/internal/models"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the admin dashboard counters.
type StatsHandler struct{}

func NewStatsHandler() *StatsHandler {
	return &StatsHandler{}
}

// GetStats issues the four store queries concurrently and derives the
// new-quote and unread-message subtotals from the fetched rows.
func (h *StatsHandler) GetStats(c *gin.Context) {
	var (
		quotes        []models.QuoteRequest
		messages      []models.ContactMessage
		totalServices int64
		totalBlogs    int64
	)

	errs := make([]error, 4)
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		errs[0] = database.DB.Model(&models.QuoteRequest{}).Select("id", "status").Find(&quotes).Error
	}()
	go func() {
		defer wg.Done()
		errs[1] = database.DB.Model(&models.ContactMessage{}).Select("id", "is_read").Find(&messages).Error
	}()
	go func() {
		defer wg.Done()
		errs[2] = database.DB.Model(&models.Service{}).Count(&totalServices).Error
	}()
	go func() {
		defer wg.Done()
		errs[3] = database.DB.Model(&models.BlogPost{}).Count(&totalBlogs).Error
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	newQuotes := 0
	for _, q := range quotes {
		if q.Status == "new" {
			newQuotes++
		}
	}
	unread := 0
	for _, m := range messages {
		if !m.IsRead {
			unread++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_quotes":    len(quotes),
		"new_quotes":      newQuotes,
		"total_messages":  len(messages),
		"unread_messages": unread,
		"total_services":  totalServices,
		"total_blogs":     totalBlogs,
	})
}
