package store

import (
	"backoffice-service/internal/model"

	"gorm.io/gorm"
)

// PostStore owns the blog posts table.
type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

// Create inserts the post, deriving the slug from the title when omitted.
func (s *PostStore) Create(orgID string, post *model.BlogPost) error {
	post.OrganizationID = orgID
	if post.Slug == "" {
		post.Slug = model.Slugify(post.Title)
	}
	return s.db.Create(post).Error
}

// List returns the organization's posts, newest first.
func (s *PostStore) List(orgID string) ([]model.BlogPost, error) {
	posts := []model.BlogPost{}
	err := s.db.Where("organization_id = ?", orgID).Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// DeleteBySlug removes the owned post addressed by slug.
func (s *PostStore) DeleteBySlug(orgID, slug string) error {
	res := s.db.Where("slug = ? AND organization_id = ?", slug, orgID).Delete(&model.BlogPost{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
