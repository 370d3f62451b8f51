package store

import (
	"errors"
	"strings"

	"backoffice-service/internal/model"

	"gorm.io/gorm"
)

// WebsiteStore persists the flat website document across the website, theme,
// navigation, hero, post, footer and social tables, and reassembles it on
// reads. Saves are atomic: the whole document goes in one transaction.
type WebsiteStore struct {
	db *gorm.DB
}

func NewWebsiteStore(db *gorm.DB) *WebsiteStore {
	return &WebsiteStore{db: db}
}

// inferPlatform guesses the social platform from a URL.
func inferPlatform(url string) string {
	switch {
	case strings.Contains(url, "instagram"):
		return "Instagram"
	case strings.Contains(url, "facebook"):
		return "Facebook"
	case strings.Contains(url, "pinterest"):
		return "Pinterest"
	case strings.Contains(url, "tiktok"):
		return "TikTok"
	}
	return "Other"
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Save writes the whole website document for the organization, creating the
// website and its child rows on first save and replacing them afterwards.
// Returns the website id.
func (s *WebsiteStore) Save(orgID string, data model.WebsiteData) (string, error) {
	var websiteID string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		themeID, err := resolveTheme(tx, orgID, data.Theme)
		if err != nil {
			return err
		}

		// Get or create the website row
		var website model.Website
		err = tx.Where("organization_id = ?", orgID).First(&website).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			website = model.Website{OrganizationID: orgID, ThemeID: themeID}
			if err := tx.Create(&website).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			website.ThemeID = themeID
			if err := tx.Save(&website).Error; err != nil {
				return err
			}
		}
		websiteID = website.ID

		if err := saveNavigation(tx, website.ID, data); err != nil {
			return err
		}
		if err := saveHero(tx, website.ID, data); err != nil {
			return err
		}
		if err := savePosts(tx, orgID, website.ID, data); err != nil {
			return err
		}
		return saveFooter(tx, website.ID, data)
	})
	if err != nil {
		return "", err
	}
	return websiteID, nil
}

// resolveTheme returns the theme id for the document's theme name. A
// "custom-" prefix creates an organization-owned custom theme; otherwise the
// name must match a predefined theme (defaulting to slate).
func resolveTheme(tx *gorm.DB, orgID, name string) (string, error) {
	if strings.HasPrefix(name, "custom-") {
		theme := model.Theme{
			Name:           strings.TrimPrefix(name, "custom-"),
			ColorPrimary:   "#475569",
			ColorSecondary: "#64748b",
			ColorTertiary:  "#94a3b8",
			ColorLight:     "#f1f5f9",
			ColorDark:      "#0f172a",
			FontHeading:    "Inter",
			FontBody:       "Inter",
			Radius:         "0.5rem",
			IsCustom:       true,
			OrganizationID: &orgID,
		}
		if err := tx.Create(&theme).Error; err != nil {
			return "", err
		}
		return theme.ID, nil
	}

	if name == "" {
		name = "slate"
	}
	var theme model.Theme
	err := tx.Where("name = ? AND is_custom = ?", name, false).First(&theme).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrThemeNotFound
	}
	if err != nil {
		return "", err
	}
	return theme.ID, nil
}

func saveNavigation(tx *gorm.DB, websiteID string, data model.WebsiteData) error {
	var nav model.Navigation
	err := tx.Where("website_id = ?", websiteID).First(&nav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		nav = model.Navigation{WebsiteID: websiteID}
	} else if err != nil {
		return err
	}
	nav.Announcement = strPtr(data.Announcement)
	nav.LogoURL = strPtr(data.Logo)
	if err := tx.Save(&nav).Error; err != nil {
		return err
	}

	// Replace the item list, skipping blank entries
	if err := tx.Where("navigation_id = ?", nav.ID).Delete(&model.NavigationItem{}).Error; err != nil {
		return err
	}
	order := 0
	for _, item := range data.NavigationItems {
		if strings.TrimSpace(item.Label) == "" || strings.TrimSpace(item.Slug) == "" {
			continue
		}
		row := model.NavigationItem{NavigationID: nav.ID, Label: item.Label, Slug: item.Slug, SortOrder: order}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		order++
	}
	return nil
}

func saveHero(tx *gorm.DB, websiteID string, data model.WebsiteData) error {
	var hero model.Hero
	err := tx.Where("website_id = ?", websiteID).First(&hero).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hero = model.Hero{WebsiteID: websiteID}
	} else if err != nil {
		return err
	}
	hero.Image1URL = strPtr(data.HeroImage1)
	hero.Image2URL = strPtr(data.HeroImage2)
	hero.Title = strPtr(data.HeroTitle)
	hero.Subtitle = strPtr(data.HeroSubtitle)
	hero.CTAText = strPtr(data.HeroCTA)
	hero.IncludeIntro = data.IncludeIntro
	hero.IntroText = strPtr(data.IntroText)
	return tx.Save(&hero).Error
}

func savePosts(tx *gorm.DB, orgID, websiteID string, data model.WebsiteData) error {
	var section model.PostSection
	err := tx.Where("website_id = ?", websiteID).First(&section).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		section = model.PostSection{WebsiteID: websiteID}
	} else if err != nil {
		return err
	}
	section.IncludePosts = data.IncludeBlog
	if err := tx.Save(&section).Error; err != nil {
		return err
	}

	// Replace the pinned post links, creating posts that do not exist yet
	if err := tx.Where("website_id = ?", websiteID).Delete(&model.PostLink{}).Error; err != nil {
		return err
	}
	order := 0
	for _, post := range data.BlogPosts {
		if strings.TrimSpace(post.Title) == "" || strings.TrimSpace(post.Slug) == "" {
			continue
		}
		var existing model.BlogPost
		err := tx.Where("slug = ? AND organization_id = ?", post.Slug, orgID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			existing = model.BlogPost{
				OrganizationID: orgID,
				Title:          post.Title,
				Slug:           post.Slug,
				ImageURL:       strPtr(post.Image),
				Body:           strPtr(post.Body),
			}
			if err := tx.Create(&existing).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		link := model.PostLink{WebsiteID: websiteID, PostID: existing.ID, SortOrder: order}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		order++
	}
	return nil
}

func saveFooter(tx *gorm.DB, websiteID string, data model.WebsiteData) error {
	var footer model.Footer
	err := tx.Where("website_id = ?", websiteID).First(&footer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		footer = model.Footer{WebsiteID: websiteID}
	} else if err != nil {
		return err
	}
	footer.IncludeEmailList = data.IncludeEmailList
	footer.EmailListTitle = strPtr(data.EmailListTitle)
	footer.EmailListCTA = strPtr(data.EmailListCTA)
	if err := tx.Save(&footer).Error; err != nil {
		return err
	}

	if err := tx.Where("footer_id = ?", footer.ID).Delete(&model.FooterItem{}).Error; err != nil {
		return err
	}
	order := 0
	for _, item := range data.FooterItems {
		if strings.TrimSpace(item.Label) == "" || strings.TrimSpace(item.Slug) == "" {
			continue
		}
		row := model.FooterItem{FooterID: footer.ID, Label: item.Label, Slug: item.Slug, SortOrder: order}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		order++
	}

	if err := tx.Where("footer_id = ?", footer.ID).Delete(&model.SocialLink{}).Error; err != nil {
		return err
	}
	for _, url := range data.SocialLinks {
		if strings.TrimSpace(url) == "" {
			continue
		}
		link := model.SocialLink{FooterID: footer.ID, Platform: inferPlatform(url), URL: url}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// Get reassembles the website document for the organization, or reports
// gorm.ErrRecordNotFound when no website has been saved yet.
func (s *WebsiteStore) Get(orgID string) (*model.WebsiteData, error) {
	var website model.Website
	if err := s.db.Where("organization_id = ?", orgID).First(&website).Error; err != nil {
		return nil, err
	}

	var theme model.Theme
	if err := s.db.Where("id = ?", website.ThemeID).First(&theme).Error; err != nil {
		return nil, err
	}

	data := &model.WebsiteData{
		Theme:           theme.Name,
		NavigationItems: []model.LinkItem{},
		BlogPosts:       []model.WebsitePost{},
		SocialLinks:     []string{},
		FooterItems:     []model.LinkItem{},
	}

	var nav model.Navigation
	err := s.db.Where("website_id = ?", website.ID).First(&nav).Error
	if err == nil {
		data.Announcement = deref(nav.Announcement)
		data.Logo = deref(nav.LogoURL)
		var items []model.NavigationItem
		if err := s.db.Where("navigation_id = ?", nav.ID).Order("sort_order").Find(&items).Error; err != nil {
			return nil, err
		}
		for _, item := range items {
			data.NavigationItems = append(data.NavigationItems, model.LinkItem{Label: item.Label, Slug: item.Slug})
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var hero model.Hero
	err = s.db.Where("website_id = ?", website.ID).First(&hero).Error
	if err == nil {
		data.HeroImage1 = deref(hero.Image1URL)
		data.HeroImage2 = deref(hero.Image2URL)
		data.HeroTitle = deref(hero.Title)
		data.HeroSubtitle = deref(hero.Subtitle)
		data.HeroCTA = deref(hero.CTAText)
		data.IncludeIntro = hero.IncludeIntro
		data.IntroText = deref(hero.IntroText)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var section model.PostSection
	err = s.db.Where("website_id = ?", website.ID).First(&section).Error
	if err == nil {
		data.IncludeBlog = section.IncludePosts
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var links []model.PostLink
	if err := s.db.Where("website_id = ?", website.ID).Order("sort_order").Find(&links).Error; err != nil {
		return nil, err
	}
	for _, link := range links {
		var post model.BlogPost
		if err := s.db.Where("id = ?", link.PostID).First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		data.BlogPosts = append(data.BlogPosts, model.WebsitePost{
			Title: post.Title,
			Image: deref(post.ImageURL),
			Body:  deref(post.Body),
			Slug:  post.Slug,
		})
	}

	var footer model.Footer
	err = s.db.Where("website_id = ?", website.ID).First(&footer).Error
	if err == nil {
		data.IncludeEmailList = footer.IncludeEmailList
		data.EmailListTitle = deref(footer.EmailListTitle)
		data.EmailListCTA = deref(footer.EmailListCTA)

		var items []model.FooterItem
		if err := s.db.Where("footer_id = ?", footer.ID).Order("sort_order").Find(&items).Error; err != nil {
			return nil, err
		}
		for _, item := range items {
			data.FooterItems = append(data.FooterItems, model.LinkItem{Label: item.Label, Slug: item.Slug})
		}

		var socials []model.SocialLink
		if err := s.db.Where("footer_id = ?", footer.ID).Find(&socials).Error; err != nil {
			return nil, err
		}
		for _, link := range socials {
			data.SocialLinks = append(data.SocialLinks, link.URL)
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return data, nil
}
