package model

import "time"

// S3File records an object uploaded to storage on behalf of an organization.
// Rows are written by the upload metadata callback after the client-side PUT
// completes.
type S3File struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	ObjectKey       string    `json:"object_key" gorm:"type:varchar(512);not null"`
	FileURL         string    `json:"file_url" gorm:"not null"`
	OrganizationID  string    `json:"organization_id" gorm:"type:uuid;index;not null"`
	FileSize        int64     `json:"file_size" gorm:"not null"`
	UploadTimestamp time.Time `json:"upload_timestamp" gorm:"autoCreateTime"`
}

func (S3File) TableName() string {
	return "s3_files"
}
