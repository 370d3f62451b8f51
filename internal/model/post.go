package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogPost is an organization-scoped post, addressed by slug.
type BlogPost struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey"`
	OrganizationID string    `json:"organization_id" gorm:"type:uuid;index;uniqueIndex:idx_posts_org_slug;not null"`
	Title          string    `json:"title" gorm:"type:varchar(255);not null"`
	Slug           string    `json:"slug" gorm:"type:varchar(255);uniqueIndex:idx_posts_org_slug;not null"`
	ImageURL       *string   `json:"image_url,omitempty"`
	Body           *string   `json:"body,omitempty" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
