package api

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"nakliyat-api/internal/storage"

	"github.com/gin-gonic/gin"
)

// UploadHandler forwards admin file uploads to the object-storage bucket.
type UploadHandler struct {
	Storage *storage.Client
}

func NewUploadHandler(client *storage.Client) *UploadHandler {
	return &UploadHandler{Storage: client}
}

// Upload reads the multipart "file" field, prefixes the name with a
// millisecond timestamp to dodge collisions, and returns the public URL.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(header.Filename))
	url, err := h.Storage.Upload(name, header.Header.Get("Content-Type"), data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
