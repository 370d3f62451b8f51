package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductSettings records the distinct categories and tags an organization
// has ever used, for autocomplete. At most one row per organization, created
// lazily on first use.
type ProductSettings struct {
	ID                  string    `json:"id" gorm:"type:uuid;primaryKey"`
	OrganizationID      string    `json:"organization_id" gorm:"type:uuid;uniqueIndex;not null"`
	AvailableCategories []string  `json:"available_categories" gorm:"serializer:json"`
	AvailableTags       []string  `json:"available_tags" gorm:"serializer:json"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (s *ProductSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// UnionStrings appends the members of add that are not already in existing,
// preserving insertion order.
func UnionStrings(existing, add []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[s] = true
	}
	out := existing
	for _, s := range add {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
