package storage

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"nakliyat-api/internal/config"
)

// Client uploads files to the object-storage bucket behind the site and
// resolves their public URLs. It speaks the storage service's plain REST
// interface; one upload is one HTTP round trip.
type Client struct {
	BaseURL string
	APIKey  string
	Bucket  string

	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL:    cfg.StorageURL,
		APIKey:     cfg.StorageKey,
		Bucket:     cfg.StorageBucket,
		httpClient: &http.Client{},
	}
}

// Upload stores the file under the given name, overwriting any existing
// object with the same name, and returns its public URL.
func (c *Client) Upload(name, contentType string, data []byte) (string, error) {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.BaseURL, c.Bucket, url.PathEscape(name))

	req, err := http.NewRequest("POST", endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("x-upsert", "true")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("upload failed: %s - %s", resp.Status, string(respBody))
	}

	return c.PublicURL(name), nil
}

// PublicURL returns the unauthenticated download URL for an object.
func (c *Client) PublicURL(name string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.BaseURL, c.Bucket, url.PathEscape(name))
}
