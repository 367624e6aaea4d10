// Command seed fills a fresh database with the default navigation, static
// pages and per-page SEO rows so the site renders before any admin edits.
// Existing rows are left alone; running it twice is safe.
package main

import (
	"log"

	"nakliyat-api/internal/config"
	"nakliyat-api/internal/database"
	"nakliyat-api/internal/models"

	"github.com/google/uuid"
)

var defaultMenu = []models.MenuItem{
	{Title: "Ana Sayfa", URL: "/", DisplayOrder: 0},
	{Title: "Hizmetler", URL: "/hizmetler", DisplayOrder: 1},
	{Title: "Hakkımızda", URL: "/hakkimizda", DisplayOrder: 2},
	{Title: "Blog", URL: "/blog", DisplayOrder: 3},
	{Title: "SSS", URL: "/sss", DisplayOrder: 4},
	{Title: "İletişim", URL: "/iletisim", DisplayOrder: 5},
}

var defaultPages = []models.PageContent{
	{PageKey: "hakkimizda", Title: "Hakkımızda"},
	{PageKey: "iletisim", Title: "İletişim"},
}

var defaultSEOPages = []struct {
	PageName string
	Title    string
}{
	{"anasayfa", "Ana Sayfa"},
	{"hizmetler", "Hizmetler"},
	{"blog", "Blog"},
	{"hakkimizda", "Hakkımızda"},
	{"iletisim", "İletişim"},
	{"sss", "SSS"},
	{"galeri", "Galeri"},
	{"teklif-al", "Teklif Al"},
}

func main() {
	cfg := config.LoadConfig()
	database.Init(cfg)
	db := database.DB

	var menuCount int64
	db.Model(&models.MenuItem{}).Count(&menuCount)
	if menuCount == 0 {
		for _, item := range defaultMenu {
			item.ID = uuid.NewString()
			if err := db.Create(&item).Error; err != nil {
				log.Fatalf("Failed to seed menu item %q: %v", item.Title, err)
			}
		}
		log.Printf("Seeded %d menu items", len(defaultMenu))
	}

	for _, page := range defaultPages {
		var existing models.PageContent
		if err := db.First(&existing, "page_key = ?", page.PageKey).Error; err == nil {
			continue
		}
		page.ID = uuid.NewString()
		if err := db.Create(&page).Error; err != nil {
			log.Fatalf("Failed to seed page %q: %v", page.PageKey, err)
		}
		log.Printf("Seeded page %s", page.PageKey)
	}

	for _, p := range defaultSEOPages {
		var existing models.SEOSetting
		if err := db.First(&existing, "page_name = ?", p.PageName).Error; err == nil {
			continue
		}
		seo := models.SEOSetting{
			ID:        uuid.NewString(),
			PageName:  p.PageName,
			MetaTitle: p.Title + " | Baraj Nakliyat",
		}
		if err := db.Create(&seo).Error; err != nil {
			log.Fatalf("Failed to seed seo row %q: %v", p.PageName, err)
		}
		log.Printf("Seeded seo settings for %s", p.PageName)
	}

	log.Println("Seed completed")
}
