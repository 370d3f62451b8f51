package store

import (
	"backoffice-service/internal/model"

	"gorm.io/gorm"
)

// ProductStore owns the products table. Every method takes the resolved
// organization id so tenant isolation is visible in the call, not ambient.
type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

// Create inserts the product for the organization. Products always start as
// draft regardless of any caller-supplied status. Supplied tags and category
// are unioned into the organization's settings in the same transaction.
func (s *ProductStore) Create(orgID string, p *model.Product) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		p.OrganizationID = orgID
		p.Status = model.ProductDraft
		p.DropID = nil
		if p.Images == nil {
			p.Images = []string{}
		}
		if p.Tags == nil {
			p.Tags = []string{}
		}
		if err := tx.Create(p).Error; err != nil {
			return err
		}

		hasCategory := p.Category != nil && *p.Category != ""
		if len(p.Tags) == 0 && !hasCategory {
			return nil
		}
		settings, err := getOrCreateSettings(tx, orgID)
		if err != nil {
			return err
		}
		settings.AvailableTags = model.UnionStrings(settings.AvailableTags, p.Tags)
		if hasCategory {
			settings.AvailableCategories = model.UnionStrings(settings.AvailableCategories, []string{*p.Category})
		}
		return tx.Save(settings).Error
	})
}

// List returns the organization's products, newest first.
func (s *ProductStore) List(orgID string) ([]model.Product, error) {
	products := []model.Product{}
	err := s.db.Where("organization_id = ?", orgID).Order("created_at DESC").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Get returns the product only when the organization owns it.
func (s *ProductStore) Get(orgID, id string) (*model.Product, error) {
	var p model.Product
	if err := s.db.Where("id = ? AND organization_id = ?", id, orgID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Update merges the patch into the owned row. Omitted fields keep their
// prior value. A status change must be legal per the transition table.
func (s *ProductStore) Update(orgID, id string, patch model.ProductPatch) (*model.Product, error) {
	var merged model.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var p model.Product
		if err := tx.Where("id = ? AND organization_id = ?", id, orgID).First(&p).Error; err != nil {
			return err
		}
		if patch.Status != nil {
			if !patch.Status.Valid() {
				return ErrInvalidStatus
			}
			if !p.Status.CanTransitionTo(*patch.Status) {
				return ErrInvalidTransition
			}
		}
		merged = patch.Apply(p)
		return tx.Save(&merged).Error
	})
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete hard-deletes the owned row. Missing or foreign rows report
// gorm.ErrRecordNotFound.
func (s *ProductStore) Delete(orgID, id string) error {
	res := s.db.Where("id = ? AND organization_id = ?", id, orgID).Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
