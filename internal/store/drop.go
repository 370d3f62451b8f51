package store

import (
	"backoffice-service/internal/model"

	"gorm.io/gorm"
)

// DropStore owns the drops table and the product membership side effects.
// Membership changes run inside a single transaction so concurrent callers
// never observe a half-detached state.
type DropStore struct {
	db *gorm.DB
}

func NewDropStore(db *gorm.DB) *DropStore {
	return &DropStore{db: db}
}

// Create inserts the drop and attaches the named member products: each one
// that the organization owns gets drop_id set and moves to scheduled.
// Returns the drop with its members aggregated.
func (s *DropStore) Create(orgID string, d *model.Drop, productIDs []string) (*model.Drop, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		d.OrganizationID = orgID
		d.Status = model.DropScheduled
		d.Products = nil
		if err := tx.Create(d).Error; err != nil {
			return err
		}
		if len(productIDs) == 0 {
			return nil
		}
		return tx.Model(&model.Product{}).
			Where("id IN ? AND organization_id = ?", productIDs, orgID).
			Updates(map[string]interface{}{
				"drop_id": d.ID,
				"status":  model.ProductScheduled,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(orgID, d.ID)
}

// Get returns the owned drop with its member products.
func (s *DropStore) Get(orgID, id string) (*model.Drop, error) {
	var d model.Drop
	err := s.db.Preload("Products", "organization_id = ?", orgID).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	if d.Products == nil {
		d.Products = []model.Product{}
	}
	return &d, nil
}

// List returns the organization's drops by scheduled time descending, with
// member products aggregated.
func (s *DropStore) List(orgID string) ([]model.Drop, error) {
	drops := []model.Drop{}
	err := s.db.Preload("Products", "organization_id = ?", orgID).
		Where("organization_id = ?", orgID).
		Order("scheduled_at DESC").
		Find(&drops).Error
	if err != nil {
		return nil, err
	}
	for i := range drops {
		if drops[i].Products == nil {
			drops[i].Products = []model.Product{}
		}
	}
	return drops, nil
}

// Update merges the patch into the owned drop. When product_ids is present —
// even as an empty list — membership is replaced: all current members are
// detached back to draft, then exactly the named set is attached as
// scheduled. Absent product_ids leaves membership untouched.
func (s *DropStore) Update(orgID, id string, patch model.DropPatch) (*model.Drop, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var d model.Drop
		if err := tx.Where("id = ? AND organization_id = ?", id, orgID).First(&d).Error; err != nil {
			return err
		}
		if patch.Status != nil && !patch.Status.Valid() {
			return ErrInvalidStatus
		}
		merged := patch.Apply(d)
		if err := tx.Save(&merged).Error; err != nil {
			return err
		}
		if patch.ProductIDs == nil {
			return nil
		}

		// Detach all current members, then attach exactly the named set.
		err := tx.Model(&model.Product{}).
			Where("drop_id = ? AND organization_id = ?", id, orgID).
			Updates(map[string]interface{}{
				"drop_id": nil,
				"status":  model.ProductDraft,
			}).Error
		if err != nil {
			return err
		}
		ids := *patch.ProductIDs
		if len(ids) == 0 {
			return nil
		}
		return tx.Model(&model.Product{}).
			Where("id IN ? AND organization_id = ?", ids, orgID).
			Updates(map[string]interface{}{
				"drop_id": id,
				"status":  model.ProductScheduled,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(orgID, id)
}

// Delete detaches all member products (reset to draft) before deleting the
// drop row, so no product is ever left referencing a deleted drop.
func (s *DropStore) Delete(orgID, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Product{}).
			Where("drop_id = ? AND organization_id = ?", id, orgID).
			Updates(map[string]interface{}{
				"drop_id": nil,
				"status":  model.ProductDraft,
			}).Error
		if err != nil {
			return err
		}
		res := tx.Where("id = ? AND organization_id = ?", id, orgID).Delete(&model.Drop{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
