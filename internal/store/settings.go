package store

import (
	"errors"

	"backoffice-service/internal/model"

	"gorm.io/gorm"
)

// SettingsStore owns the per-organization product settings row.
type SettingsStore struct {
	db *gorm.DB
}

func NewSettingsStore(db *gorm.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// getOrCreateSettings loads the organization's settings row, creating the
// default one when absent. Shared with the product store's tag union.
func getOrCreateSettings(tx *gorm.DB, orgID string) (*model.ProductSettings, error) {
	var settings model.ProductSettings
	err := tx.Where("organization_id = ?", orgID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	settings = model.ProductSettings{
		OrganizationID:      orgID,
		AvailableCategories: []string{},
		AvailableTags:       []string{},
	}
	if err := tx.Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetOrCreate returns the organization's settings, creating the default row
// lazily.
func (s *SettingsStore) GetOrCreate(orgID string) (*model.ProductSettings, error) {
	return getOrCreateSettings(s.db, orgID)
}

// Create inserts a settings row with the given vocabularies.
func (s *SettingsStore) Create(orgID string, categories, tags []string) (*model.ProductSettings, error) {
	if categories == nil {
		categories = []string{}
	}
	if tags == nil {
		tags = []string{}
	}
	settings := model.ProductSettings{
		OrganizationID:      orgID,
		AvailableCategories: categories,
		AvailableTags:       tags,
	}
	if err := s.db.Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update replaces the supplied sets on the organization's settings row,
// creating it when absent. Nil fields are left untouched.
func (s *SettingsStore) Update(orgID string, categories, tags *[]string) (*model.ProductSettings, error) {
	settings, err := getOrCreateSettings(s.db, orgID)
	if err != nil {
		return nil, err
	}
	if categories != nil {
		settings.AvailableCategories = *categories
	}
	if tags != nil {
		settings.AvailableTags = *tags
	}
	if err := s.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
