package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Drop is a scheduled release grouping zero or more products. A product
// belongs to at most one drop at a time.
type Drop struct {
	ID             string     `json:"id" gorm:"type:uuid;primaryKey"`
	OrganizationID string     `json:"organization_id" gorm:"type:uuid;index;not null"`
	Title          string     `json:"title" gorm:"type:varchar(255);not null"`
	Description    string     `json:"description" gorm:"type:text"`
	ScheduledAt    time.Time  `json:"scheduled_at" gorm:"not null;index"`
	Status         DropStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled'"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Member products, aggregated on reads
	Products []Product `json:"products" gorm:"foreignKey:DropID"`
}

func (d *Drop) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// DropPatch is a partial update for the drop's own fields. Membership changes
// travel separately (product_ids), since they touch product rows.
type DropPatch struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	ScheduledAt *time.Time  `json:"scheduled_at"`
	Status      *DropStatus `json:"status"`
	ProductIDs  *[]string   `json:"product_ids"`
}

// Apply merges the scalar fields of the patch into a copy of d and returns
// it. ProductIDs is intentionally not part of the merge.
func (patch DropPatch) Apply(d Drop) Drop {
	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.ScheduledAt != nil {
		d.ScheduledAt = *patch.ScheduledAt
	}
	if patch.Status != nil {
		d.Status = *patch.Status
	}
	return d
}
