package api

import (
	"net/http"
	"testing"

	"nakliyat-api/internal/database"
	"nakliyat-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCRUDLifecycle(t *testing.T) {
	r, _ := setupRouter(t)

	w := postJSON(t, r, "/api/admin/services", map[string]interface{}{
		"title":  "Evden Eve Nakliyat",
		"slug":   "evden-eve-nakliyat",
		"status": "draft",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created models.Service
	decodeJSON(t, w, &created)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	w = doRequest(t, r, http.MethodPatch, "/api/admin/services/"+created.ID, map[string]interface{}{
		"status": "published",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Service
	decodeJSON(t, w, &updated)
	assert.Equal(t, "published", updated.Status)
	assert.Equal(t, "Evden Eve Nakliyat", updated.Title)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))

	w = doRequest(t, r, http.MethodDelete, "/api/admin/services/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	database.DB.Model(&models.Service{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateStripsUnknownFields(t *testing.T) {
	r, _ := setupRouter(t)
	service := seedService(t, "draft", false, 1)

	w := doRequest(t, r, http.MethodPut, "/api/admin/services/"+service.ID, map[string]interface{}{
		"title":      "Ofis Taşıma",
		"bogus_key":  "ignored",
		"created_at": "2000-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Service
	decodeJSON(t, w, &updated)
	assert.Equal(t, "Ofis Taşıma", updated.Title)
	assert.NotEqual(t, 2000, updated.CreatedAt.Year())
}

func TestDeleteNonexistentIsIdempotent(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodDelete, "/api/admin/faqs/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]bool
	decodeJSON(t, w, &resp)
	assert.True(t, resp["success"])
}

func TestEmptyUpdateBodyIsNoOp(t *testing.T) {
	r, _ := setupRouter(t)
	service := seedService(t, "published", false, 1)

	w := doRequest(t, r, http.MethodPatch, "/api/admin/services/"+service.ID, map[string]interface{}{
		"only_unknown": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Service
	decodeJSON(t, w, &updated)
	assert.Equal(t, service.Title, updated.Title)
}

func TestSingletonUpsertsKeepSingleRow(t *testing.T) {
	cases := []struct {
		path        string
		model       interface{}
		firstField  string
		secondField string
	}{
		{"/api/admin/settings", &models.SiteSettings{}, "phone", "email"},
		{"/api/admin/homepage", &models.HomepageContent{}, "hero_title", "cta_title"},
		{"/api/admin/hero-content", &models.HeroContent{}, "title", "content"},
		{"/api/admin/footer", &models.FooterSettings{}, "about_text", "copyright_text"},
	}

	for _, tc := range cases {
		r, _ := setupRouter(t)

		w := doRequest(t, r, http.MethodPut, tc.path, map[string]interface{}{
			tc.firstField: "ilk değer",
		})
		require.Equal(t, http.StatusOK, w.Code, tc.path)

		w = doRequest(t, r, http.MethodPut, tc.path, map[string]interface{}{
			tc.secondField: "ikinci değer",
		})
		require.Equal(t, http.StatusOK, w.Code, tc.path)

		// The second partial body must merge into the first row, not add or
		// replace one.
		var row map[string]interface{}
		decodeJSON(t, w, &row)
		assert.Equal(t, "ilk değer", row[tc.firstField], tc.path)
		assert.Equal(t, "ikinci değer", row[tc.secondField], tc.path)

		var count int64
		database.DB.Model(tc.model).Count(&count)
		assert.EqualValues(t, 1, count, tc.path)
	}
}

func TestAdminSingletonGetEmptyObject(t *testing.T) {
	r, _ := setupRouter(t)

	for _, path := range []string{
		"/api/admin/settings", "/api/admin/homepage",
		"/api/admin/hero-content", "/api/admin/footer",
	} {
		w := doRequest(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "{}", w.Body.String(), path)
	}
}

func TestMenuUpdateLeavesChildrenAlone(t *testing.T) {
	r, _ := setupRouter(t)

	parent := models.MenuItem{ID: uuid.NewString(), Title: "Hizmetler", URL: "/hizmetler"}
	require.NoError(t, database.DB.Create(&parent).Error)
	child := models.MenuItem{ID: uuid.NewString(), Title: "Ofis Taşıma", URL: "/hizmetler/ofis", ParentID: &parent.ID}
	require.NoError(t, database.DB.Create(&child).Error)

	w := doRequest(t, r, http.MethodPatch, "/api/admin/menu/"+parent.ID, map[string]interface{}{
		"is_dropdown": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got models.MenuItem
	require.NoError(t, database.DB.First(&got, "id = ?", child.ID).Error)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, parent.ID, *got.ParentID)
}

func TestSEOUpsertByPageName(t *testing.T) {
	r, _ := setupRouter(t)

	w := postJSON(t, r, "/api/admin/seo", map[string]interface{}{
		"page_name":  "anasayfa",
		"meta_title": "Ana Sayfa",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var first models.SEOSetting
	decodeJSON(t, w, &first)

	w = postJSON(t, r, "/api/admin/seo", map[string]interface{}{
		"page_name":  "anasayfa",
		"meta_title": "Ana Sayfa | Baraj Nakliyat",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var second models.SEOSetting
	decodeJSON(t, w, &second)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	database.DB.Model(&models.SEOSetting{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSEOUpsertMergesPartialBodies(t *testing.T) {
	r, _ := setupRouter(t)

	w := postJSON(t, r, "/api/admin/seo", map[string]interface{}{
		"page_name": "anasayfa",
		"og_title":  "Baraj Nakliyat",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, "/api/admin/seo", map[string]interface{}{
		"page_name":  "anasayfa",
		"meta_title": "Ana Sayfa | Baraj Nakliyat",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var seo models.SEOSetting
	decodeJSON(t, w, &seo)
	assert.Equal(t, "Baraj Nakliyat", seo.OGTitle)
	assert.Equal(t, "Ana Sayfa | Baraj Nakliyat", seo.MetaTitle)

	var stored models.SEOSetting
	require.NoError(t, database.DB.First(&stored, "page_name = ?", "anasayfa").Error)
	assert.Equal(t, "Baraj Nakliyat", stored.OGTitle)
}

func TestPageUpsertByKey(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodPut, "/api/admin/pages/hakkimizda", map[string]interface{}{
		"title":   "Hakkımızda",
		"content": "<p>İlk içerik</p>",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var page models.PageContent
	decodeJSON(t, w, &page)
	assert.Equal(t, "hakkimizda", page.PageKey)

	w = doRequest(t, r, http.MethodPut, "/api/admin/pages/hakkimizda", map[string]interface{}{
		"content":  "<p>Güncel içerik</p>",
		"page_key": "something-else",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.PageContent
	decodeJSON(t, w, &updated)
	assert.Equal(t, page.ID, updated.ID)
	assert.Equal(t, "hakkimizda", updated.PageKey)
	assert.Equal(t, "<p>Güncel içerik</p>", updated.Content)
}

func TestGetPageFallsBackToEmptyObject(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/admin/pages/unknown", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "{}", w.Body.String())
}

func TestInboxUpdateAndDelete(t *testing.T) {
	r, _ := setupRouter(t)

	quote := models.QuoteRequest{ID: uuid.NewString(), Name: "Ali", Phone: "5551112233", Status: "new"}
	require.NoError(t, database.DB.Create(&quote).Error)

	w := doRequest(t, r, http.MethodPatch, "/api/admin/quote-requests/"+quote.ID, map[string]interface{}{
		"status": "completed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.QuoteRequest
	decodeJSON(t, w, &updated)
	assert.Equal(t, "completed", updated.Status)

	msg := models.ContactMessage{ID: uuid.NewString(), Name: "Veli", Message: "Merhaba"}
	require.NoError(t, database.DB.Create(&msg).Error)

	w = doRequest(t, r, http.MethodPatch, "/api/admin/contact-messages/"+msg.ID, map[string]interface{}{
		"is_read": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var read models.ContactMessage
	decodeJSON(t, w, &read)
	assert.True(t, read.IsRead)

	w = doRequest(t, r, http.MethodDelete, "/api/admin/contact-messages/"+msg.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	database.DB.Model(&models.ContactMessage{}).Count(&count)
	assert.Zero(t, count)
}

func TestStatsCounts(t *testing.T) {
	r, _ := setupRouter(t)

	for _, status := range []string{"new", "new", "completed"} {
		q := models.QuoteRequest{ID: uuid.NewString(), Name: "x", Phone: "y", Status: status}
		require.NoError(t, database.DB.Create(&q).Error)
	}
	for _, read := range []bool{false, true} {
		m := models.ContactMessage{ID: uuid.NewString(), Name: "x", Message: "y", IsRead: read}
		require.NoError(t, database.DB.Create(&m).Error)
	}
	seedService(t, "published", false, 1)

	w := doRequest(t, r, http.MethodGet, "/api/admin/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]float64
	decodeJSON(t, w, &stats)
	assert.EqualValues(t, 3, stats["total_quotes"])
	assert.EqualValues(t, 2, stats["new_quotes"])
	assert.EqualValues(t, 2, stats["total_messages"])
	assert.EqualValues(t, 1, stats["unread_messages"])
	assert.EqualValues(t, 1, stats["total_services"])
	assert.EqualValues(t, 0, stats["total_blogs"])
}
