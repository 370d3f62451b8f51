package store

import (
	"backoffice-service/internal/model"

	"gorm.io/gorm"
)

// FileStore records uploaded objects against their organization.
type FileStore struct {
	db *gorm.DB
}

func NewFileStore(db *gorm.DB) *FileStore {
	return &FileStore{db: db}
}

// Create records a completed upload.
func (s *FileStore) Create(orgID string, file *model.S3File) error {
	file.OrganizationID = orgID
	return s.db.Create(file).Error
}

// List returns the organization's uploads, newest first.
func (s *FileStore) List(orgID string) ([]model.S3File, error) {
	files := []model.S3File{}
	err := s.db.Where("organization_id = ?", orgID).Order("upload_timestamp DESC").Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}
