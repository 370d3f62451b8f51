package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a sellable item owned by exactly one organization.
// Prices are integer minor currency units. Slice columns use the gorm JSON
// serializer so they work on both the Postgres and sqlite drivers.
type Product struct {
	ID             string        `json:"id" gorm:"type:uuid;primaryKey"`
	OrganizationID string        `json:"organization_id" gorm:"type:uuid;index;not null"`
	Name           string        `json:"name" gorm:"type:varchar(255);not null"`
	Description    string        `json:"description" gorm:"type:text"`
	Price          int64         `json:"price" gorm:"not null;default:0"`
	Stock          int           `json:"stock" gorm:"not null;default:0"`
	Images         []string      `json:"images" gorm:"serializer:json"`
	Category       *string       `json:"category,omitempty" gorm:"type:varchar(100)"`
	Tags           []string      `json:"tags" gorm:"serializer:json"`
	DropID         *string       `json:"drop_id" gorm:"type:uuid;index"`
	Status         ProductStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ProductPatch is a partial update. Nil fields keep their current value;
// Apply is a pure merge so the coalesce semantics are testable without a
// database.
type ProductPatch struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Price       *int64         `json:"price"`
	Stock       *int           `json:"stock"`
	Images      *[]string      `json:"images"`
	Category    *string        `json:"category"`
	Tags        *[]string      `json:"tags"`
	Status      *ProductStatus `json:"status"`
}

// Apply merges the patch into a copy of p and returns it.
func (patch ProductPatch) Apply(p Product) Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.Category != nil {
		p.Category = patch.Category
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	return p
}
