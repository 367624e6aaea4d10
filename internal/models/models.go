package models

import (
	"time"
)

// SiteSettings is the singleton row with the company contact details.
type SiteSettings struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Phone       string `gorm:"type:varchar(50)" json:"phone"`
	PhoneRaw    string `gorm:"type:varchar(50)" json:"phone_raw"`
	WhatsApp    string `gorm:"column:whatsapp;type:varchar(50)" json:"whatsapp"`
	Email       string `gorm:"type:varchar(255)" json:"email"`
	Address     string `gorm:"type:text" json:"address"`
	CompanyName string `gorm:"type:varchar(255)" json:"company_name"`
	Slogan      string `gorm:"type:varchar(255)" json:"slogan"`
	AboutShort  string `gorm:"type:text" json:"about_short"`
	Logo        string `gorm:"type:text" json:"logo"`
	Favicon     string `gorm:"type:text" json:"favicon"`
	Facebook    string `gorm:"type:text" json:"facebook"`
	Instagram   string `gorm:"type:text" json:"instagram"`
	Twitter     string `gorm:"type:text" json:"twitter"`
}

func (SiteSettings) TableName() string {
	return "settings"
}

// Service is one offered moving service (public when status is "published").
type Service struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"type:varchar(255)" json:"title"`
	Slug             string    `gorm:"type:varchar(255);index" json:"slug"`
	ShortDescription string    `gorm:"type:text" json:"short_description"`
	Content          string    `gorm:"type:text" json:"content"`
	Category         string    `gorm:"type:varchar(100)" json:"category"`
	Icon             string    `gorm:"type:varchar(100)" json:"icon"`
	Image            string    `gorm:"type:text" json:"image"`
	IsFeatured       bool      `json:"is_featured"`
	Status           string    `gorm:"type:varchar(20)" json:"status"`
	DisplayOrder     int       `json:"display_order"`
	MetaTitle        string    `gorm:"type:varchar(255)" json:"meta_title"`
	MetaDescription  string    `gorm:"type:text" json:"meta_description"`
	MetaKeywords     string    `gorm:"type:text" json:"meta_keywords"`
	OGImage          string    `gorm:"type:text" json:"og_image"`
	CanonicalURL     string    `gorm:"type:text" json:"canonical_url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Service) TableName() string {
	return "services"
}

// Location is a served district/region page.
type Location struct {
	ID               string `gorm:"primaryKey" json:"id"`
	Name             string `gorm:"type:varchar(255)" json:"name"`
	Slug             string `gorm:"type:varchar(255);index" json:"slug"`
	ShortDescription string `gorm:"type:text" json:"short_description"`
	MetaTitle        string `gorm:"type:varchar(255)" json:"meta_title"`
	MetaDescription  string `gorm:"type:text" json:"meta_description"`
	DisplayOrder     int    `json:"display_order"`
	IsActive         bool   `json:"is_active"`
}

func (Location) TableName() string {
	return "locations"
}

// BlogPost holds one article. PublishedAt is the date string the admin form sends.
type BlogPost struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"type:varchar(255)" json:"title"`
	Slug            string    `gorm:"type:varchar(255);index" json:"slug"`
	Excerpt         string    `gorm:"type:text" json:"excerpt"`
	Content         string    `gorm:"type:text" json:"content"`
	Image           string    `gorm:"type:text" json:"image"`
	Category        string    `gorm:"type:varchar(100)" json:"category"`
	Tags            string    `gorm:"type:text" json:"tags"` // Comma separated tags
	MetaTitle       string    `gorm:"type:varchar(255)" json:"meta_title"`
	MetaDescription string    `gorm:"type:text" json:"meta_description"`
	MetaKeywords    string    `gorm:"type:text" json:"meta_keywords"`
	Status          string    `gorm:"type:varchar(20)" json:"status"`
	PublishedAt     string    `gorm:"type:varchar(50)" json:"published_at"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

// FAQ is a question/answer pair grouped by category on the site.
type FAQ struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Question     string `gorm:"type:text" json:"question"`
	Answer       string `gorm:"type:text" json:"answer"`
	Category     string `gorm:"type:varchar(100)" json:"category"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

func (FAQ) TableName() string {
	return "faqs"
}

// Testimonial is a customer review shown on the site.
type Testimonial struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"type:varchar(255)" json:"name"`
	District     string `gorm:"type:varchar(100)" json:"district"`
	Rating       int    `json:"rating"`
	Comment      string `gorm:"type:text" json:"comment"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

// GalleryItem is one image in the site gallery.
type GalleryItem struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Title        string `gorm:"type:varchar(255)" json:"title"`
	Image        string `gorm:"type:text" json:"image"`
	Category     string `gorm:"type:varchar(100)" json:"category"`
	Description  string `gorm:"type:text" json:"description"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

func (GalleryItem) TableName() string {
	return "gallery"
}

// Slider is one homepage hero slide.
type Slider struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Title        string `gorm:"type:varchar(255)" json:"title"`
	Subtitle     string `gorm:"type:varchar(255)" json:"subtitle"`
	Description  string `gorm:"type:text" json:"description"`
	Image        string `gorm:"type:text" json:"image"`
	ButtonText   string `gorm:"type:varchar(100)" json:"button_text"`
	ButtonLink   string `gorm:"type:text" json:"button_link"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

func (Slider) TableName() string {
	return "sliders"
}

// Tab is a free-text content block shown in a tabbed section.
type Tab struct {
	ID           string `gorm:"primaryKey" json:"id"`
	TabID        string `gorm:"type:varchar(100)" json:"tab_id"`
	Title        string `gorm:"type:varchar(255)" json:"title"`
	Content      string `gorm:"type:text" json:"content"`
	DisplayOrder int    `json:"display_order"`
}

func (Tab) TableName() string {
	return "tabs"
}

// MenuItem is a navigation entry. ParentID builds a one-level dropdown tree.
type MenuItem struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	Title        string  `gorm:"type:varchar(255)" json:"title"`
	URL          string  `gorm:"type:text" json:"url"`
	ParentID     *string `gorm:"type:varchar(64);index" json:"parent_id"`
	IsDropdown   bool    `json:"is_dropdown"`
	DisplayOrder int     `json:"display_order"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

// SEOSetting holds per-page meta/OG/Twitter tags, keyed by page name.
type SEOSetting struct {
	ID                 string `gorm:"primaryKey" json:"id"`
	PageName           string `gorm:"type:varchar(100);uniqueIndex" json:"page_name"`
	MetaTitle          string `gorm:"type:varchar(255)" json:"meta_title"`
	MetaDescription    string `gorm:"type:text" json:"meta_description"`
	MetaKeywords       string `gorm:"type:text" json:"meta_keywords"`
	CanonicalURL       string `gorm:"type:text" json:"canonical_url"`
	OGTitle            string `gorm:"type:varchar(255)" json:"og_title"`
	OGDescription      string `gorm:"type:text" json:"og_description"`
	OGImage            string `gorm:"type:text" json:"og_image"`
	TwitterTitle       string `gorm:"type:varchar(255)" json:"twitter_title"`
	TwitterDescription string `gorm:"type:text" json:"twitter_description"`
	TwitterImage       string `gorm:"type:text" json:"twitter_image"`
}

func (SEOSetting) TableName() string {
	return "seo_settings"
}

// QuoteRequest is a public quote form submission. Status starts at "new";
// the admin can set it to in_progress, completed or cancelled.
type QuoteRequest struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	Phone        string    `gorm:"type:varchar(50)" json:"phone"`
	Email        *string   `gorm:"type:varchar(255)" json:"email"`
	FromDistrict string    `gorm:"type:varchar(100)" json:"from_district"`
	ToDistrict   string    `gorm:"type:varchar(100)" json:"to_district"`
	MoveDate     *string   `gorm:"type:varchar(50)" json:"move_date"`
	HasElevator  bool      `json:"has_elevator"`
	FromFloor    *string   `gorm:"type:varchar(20)" json:"from_floor"`
	ToFloor      *string   `gorm:"type:varchar(20)" json:"to_floor"`
	Notes        *string   `gorm:"type:text" json:"notes"`
	Status       string    `gorm:"type:varchar(20)" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func (QuoteRequest) TableName() string {
	return "quote_requests"
}

// ContactMessage is a public contact form submission.
type ContactMessage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	Email     *string   `gorm:"type:varchar(255)" json:"email"`
	Message   string    `gorm:"type:text" json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

// HomepageContent is the singleton row with the homepage section texts.
type HomepageContent struct {
	ID              string `gorm:"primaryKey" json:"id"`
	HeroTitle       string `gorm:"type:varchar(255)" json:"hero_title"`
	HeroSubtitle    string `gorm:"type:varchar(255)" json:"hero_subtitle"`
	HeroDescription string `gorm:"type:text" json:"hero_description"`
	HeroImage       string `gorm:"type:text" json:"hero_image"`
	CTATitle        string `gorm:"type:varchar(255)" json:"cta_title"`
	CTADescription  string `gorm:"type:text" json:"cta_description"`
	WhyUsTitle      string `gorm:"type:varchar(255)" json:"why_us_title"`
	WhyUsSubtitle   string `gorm:"type:varchar(255)" json:"why_us_subtitle"`
	ProcessTitle    string `gorm:"type:varchar(255)" json:"process_title"`
	ProcessSubtitle string `gorm:"type:varchar(255)" json:"process_subtitle"`
}

func (HomepageContent) TableName() string {
	return "homepage"
}

// HeroContent is a singleton free-text block edited with the rich-text form.
type HeroContent struct {
	ID      string `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"type:varchar(255)" json:"title"`
	Content string `gorm:"type:text" json:"content"`
}

func (HeroContent) TableName() string {
	return "hero_content"
}

// FooterSettings is the singleton row with the footer texts.
type FooterSettings struct {
	ID            string `gorm:"primaryKey" json:"id"`
	AboutText     string `gorm:"type:text" json:"about_text"`
	CopyrightText string `gorm:"type:text" json:"copyright_text"`
}

func (FooterSettings) TableName() string {
	return "footer_settings"
}

// PageContent is a static page body, keyed by page_key (hakkimizda, iletisim, ...).
type PageContent struct {
	ID              string `gorm:"primaryKey" json:"id"`
	PageKey         string `gorm:"type:varchar(100);uniqueIndex" json:"page_key"`
	Title           string `gorm:"type:varchar(255)" json:"title"`
	Content         string `gorm:"type:text" json:"content"`
	MetaTitle       string `gorm:"type:varchar(255)" json:"meta_title"`
	MetaDescription string `gorm:"type:text" json:"meta_description"`
	MetaKeywords    string `gorm:"type:text" json:"meta_keywords"`
	CanonicalURL    string `gorm:"type:text" json:"canonical_url"`
}

func (PageContent) TableName() string {
	return "pages"
}

// AdminUser is a panel login. The password is stored as a bcrypt hash and
// never serialized.
type AdminUser struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255)" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
