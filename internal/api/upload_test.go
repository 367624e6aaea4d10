package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nakliyat-api/internal/config"
	"nakliyat-api/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadRequiresFile(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/admin/upload", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	decodeJSON(t, w, &resp)
	assert.Equal(t, "No file provided", resp["error"])
}

func TestUploadForwardsToStorage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotPath, gotAuth, gotUpsert string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		gotAuth = req.Header.Get("Authorization")
		gotUpsert = req.Header.Get("x-upsert")
		buf := new(bytes.Buffer)
		buf.ReadFrom(req.Body)
		gotBody = buf.Bytes()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := &config.Config{StorageURL: srv.URL, StorageKey: "test-key", StorageBucket: "images"}
	handler := NewUploadHandler(storage.NewClient(cfg))

	r := gin.New()
	r.POST("/api/admin/upload", handler.Upload)

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", "kamyon.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	decodeJSON(t, w, &resp)
	assert.True(t, strings.HasPrefix(resp["url"], srv.URL+"/storage/v1/object/public/images/"))
	assert.True(t, strings.HasSuffix(resp["url"], "-kamyon.jpg"))

	assert.True(t, strings.HasPrefix(gotPath, "/storage/v1/object/images/"))
	assert.True(t, strings.HasSuffix(gotPath, "-kamyon.jpg"))
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "true", gotUpsert)
	assert.Equal(t, []byte("fake image bytes"), gotBody)
}

func TestUploadSurfacesStorageFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "bucket not found", http.StatusNotFound)
	}))
	defer srv.Close()

	cfg := &config.Config{StorageURL: srv.URL, StorageKey: "test-key", StorageBucket: "images"}
	handler := NewUploadHandler(storage.NewClient(cfg))

	r := gin.New()
	r.POST("/api/admin/upload", handler.Upload)

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", "kamyon.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "upload failed")
}
