package store

import (
	"backoffice-service/internal/model"

	"gorm.io/gorm"
)

// OrganizationStore owns the organizations table. Unlike the other stores it
// is scoped by the owning principal rather than by organization, since it is
// what resolves the organization in the first place.
type OrganizationStore struct {
	db *gorm.DB
}

func NewOrganizationStore(db *gorm.DB) *OrganizationStore {
	return &OrganizationStore{db: db}
}

// Create inserts the organization for the given principal, deriving the slug
// from the name when none is supplied.
func (s *OrganizationStore) Create(userID string, org *model.Organization) error {
	org.UserID = userID
	if org.Slug == "" {
		org.Slug = model.Slugify(org.Name)
	}
	return s.db.Create(org).Error
}

// FirstByUser returns the principal's first owned organization, or
// gorm.ErrRecordNotFound.
func (s *OrganizationStore) FirstByUser(userID string) (*model.Organization, error) {
	var org model.Organization
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// ListByUser returns all organizations the principal owns.
func (s *OrganizationStore) ListByUser(userID string) ([]model.Organization, error) {
	orgs := []model.Organization{}
	if err := s.db.Where("user_id = ?", userID).Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// GetOwned returns the organization only when the principal owns it.
func (s *OrganizationStore) GetOwned(userID, id string) (*model.Organization, error) {
	var org model.Organization
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// UpdateOwned renames the organization and replaces its domain and logo.
// Name is required by the caller; domain and logo may be cleared.
func (s *OrganizationStore) UpdateOwned(userID, id, name string, domain, logoURL *string) (*model.Organization, error) {
	org, err := s.GetOwned(userID, id)
	if err != nil {
		return nil, err
	}
	org.Name = name
	org.Domain = domain
	org.LogoURL = logoURL
	if err := s.db.Save(org).Error; err != nil {
		return nil, err
	}
	return org, nil
}
