package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Theme holds the visual identity of a website. Predefined themes are seeded
// at startup with is_custom=false and no owning organization; custom themes
// belong to the organization that created them.
type Theme struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string    `json:"name" gorm:"type:varchar(100);not null;index"`
	ColorPrimary   string    `json:"color_primary" gorm:"type:varchar(20)"`
	ColorSecondary string    `json:"color_secondary" gorm:"type:varchar(20)"`
	ColorTertiary  string    `json:"color_tertiary" gorm:"type:varchar(20)"`
	ColorLight     string    `json:"color_light" gorm:"type:varchar(20)"`
	ColorDark      string    `json:"color_dark" gorm:"type:varchar(20)"`
	FontHeading    string    `json:"font_heading" gorm:"type:varchar(100)"`
	FontBody       string    `json:"font_body" gorm:"type:varchar(100)"`
	Radius         string    `json:"radius" gorm:"type:varchar(20)"`
	IsCustom       bool      `json:"is_custom" gorm:"not null;default:false"`
	OrganizationID *string   `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	CreatedAt      time.Time `json:"created_at"`
}

func (t *Theme) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Website is the per-organization site document root. One per organization.
type Website struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey"`
	OrganizationID string    `json:"organization_id" gorm:"type:uuid;uniqueIndex;not null"`
	ThemeID        string    `json:"theme_id" gorm:"type:uuid;not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (w *Website) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// Navigation is the site header block. One per website.
type Navigation struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	WebsiteID    string    `json:"website_id" gorm:"type:uuid;uniqueIndex;not null"`
	Announcement *string   `json:"announcement,omitempty"`
	LogoURL      *string   `json:"logo_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (n *Navigation) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// NavigationItem is one ordered entry in the site navigation.
type NavigationItem struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	NavigationID string `json:"navigation_id" gorm:"type:uuid;index;not null"`
	Label        string `json:"label" gorm:"type:varchar(255);not null"`
	Slug         string `json:"slug" gorm:"type:varchar(255);not null"`
	SortOrder    int    `json:"sort_order" gorm:"not null;default:0"`
}

// Hero is the landing block of a website. One per website.
type Hero struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	WebsiteID    string    `json:"website_id" gorm:"type:uuid;uniqueIndex;not null"`
	Image1URL    *string   `json:"image_1_url,omitempty"`
	Image2URL    *string   `json:"image_2_url,omitempty"`
	Title        *string   `json:"title,omitempty"`
	Subtitle     *string   `json:"subtitle,omitempty"`
	CTAText      *string   `json:"cta_text,omitempty"`
	IncludeIntro bool      `json:"include_intro" gorm:"not null;default:false"`
	IntroText    *string   `json:"intro_text,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (h *Hero) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// PostSection toggles the blog section of a website. One per website.
type PostSection struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	WebsiteID    string    `json:"website_id" gorm:"type:uuid;uniqueIndex;not null"`
	IncludePosts bool      `json:"include_posts" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *PostSection) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PostLink pins a blog post onto the website in a given order.
type PostLink struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	WebsiteID string `json:"website_id" gorm:"type:uuid;index;not null"`
	PostID    string `json:"post_id" gorm:"type:uuid;not null"`
	SortOrder int    `json:"sort_order" gorm:"not null;default:0"`
}

// Footer is the site footer block. One per website.
type Footer struct {
	ID               string    `json:"id" gorm:"type:uuid;primaryKey"`
	WebsiteID        string    `json:"website_id" gorm:"type:uuid;uniqueIndex;not null"`
	IncludeEmailList bool      `json:"include_email_list" gorm:"not null;default:false"`
	EmailListTitle   *string   `json:"email_list_title,omitempty"`
	EmailListCTA     *string   `json:"email_list_cta,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (f *Footer) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// FooterItem is one ordered entry in the site footer.
type FooterItem struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	FooterID  string `json:"footer_id" gorm:"type:uuid;index;not null"`
	Label     string `json:"label" gorm:"type:varchar(255);not null"`
	Slug      string `json:"slug" gorm:"type:varchar(255);not null"`
	SortOrder int    `json:"sort_order" gorm:"not null;default:0"`
}

// SocialLink is an outbound social URL in the footer, with the platform
// inferred from the URL.
type SocialLink struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	FooterID string `json:"footer_id" gorm:"type:uuid;index;not null"`
	Platform string `json:"platform" gorm:"type:varchar(50);not null"`
	URL      string `json:"url" gorm:"not null"`
}

// LinkItem is a label/slug pair in the website document.
type LinkItem struct {
	Label string `json:"label"`
	Slug  string `json:"slug"`
}

// WebsitePost is a blog post as it appears in the website document.
type WebsitePost struct {
	Title string `json:"title"`
	Image string `json:"image"`
	Body  string `json:"body"`
	Slug  string `json:"slug"`
}

// WebsiteData is the flat document the website builder reads and writes. It
// is persisted across the website, navigation, hero, post, footer and social
// tables and reassembled on reads.
type WebsiteData struct {
	Theme string `json:"theme"`

	Announcement    string     `json:"announcement"`
	Logo            string     `json:"logo"`
	NavigationItems []LinkItem `json:"navigation_items"`

	HeroImage1   string `json:"hero_image_1"`
	HeroImage2   string `json:"hero_image_2"`
	HeroTitle    string `json:"hero_title"`
	HeroSubtitle string `json:"hero_subtitle"`
	HeroCTA      string `json:"hero_cta"`
	IncludeIntro bool   `json:"include_intro"`
	IntroText    string `json:"intro_text"`

	IncludeBlog bool          `json:"include_blog"`
	BlogPosts   []WebsitePost `json:"blog_posts"`

	IncludeEmailList bool   `json:"include_email_list"`
	EmailListTitle   string `json:"email_list_title"`
	EmailListCTA     string `json:"email_list_cta"`

	SocialLinks []string   `json:"social_links"`
	FooterItems []LinkItem `json:"footer_items"`
}
