package database

import (
	"fmt"
	"log"

	"nakliyat-api/internal/config"
	"nakliyat-api/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the database selected by DB_DRIVER, runs the migrations and
// makes sure the configured admin login exists.
func Init(cfg *config.Config) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(cfg.DBPath)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to run auto-migration: %v", err)
	}

	SeedAdminUser(DB, cfg.AdminEmail, cfg.AdminPassword)

	log.Println("Database initialized")
}

// Migrate creates or updates the table for every content entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.SiteSettings{},
		&models.Service{},
		&models.Location{},
		&models.BlogPost{},
		&models.FAQ{},
		&models.Testimonial{},
		&models.GalleryItem{},
		&models.Slider{},
		&models.Tab{},
		&models.MenuItem{},
		&models.SEOSetting{},
		&models.QuoteRequest{},
		&models.ContactMessage{},
		&models.HomepageContent{},
		&models.HeroContent{},
		&models.FooterSettings{},
		&models.PageContent{},
		&models.AdminUser{},
	)
}

// SeedAdminUser creates the panel login from the environment on first boot.
// An existing row always wins over the configured credentials.
func SeedAdminUser(db *gorm.DB, email, password string) {
	if email == "" || password == "" {
		return
	}

	var existing models.AdminUser
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	user := models.AdminUser{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Printf("Seeded admin user %s", email)
}
