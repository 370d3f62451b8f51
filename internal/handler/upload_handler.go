package handler

import (
	"net/http"
	"strings"

	mid "backoffice-service/internal/middleware"
	"backoffice-service/internal/model"
	"backoffice-service/internal/store"
	"backoffice-service/pkg/database"
	"backoffice-service/pkg/logger"
	"backoffice-service/pkg/storage"
	"backoffice-service/prometheus"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var presigner storage.Presigner

// InitUploads wires the object storage client used by the upload endpoints.
func InitUploads(p storage.Presigner) {
	presigner = p
}

// PresignRequest defines the structure for presigned upload URL requests.
type PresignRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

// FileMetadataRequest records a completed upload.
type FileMetadataRequest struct {
	ObjectKey     string `json:"object_key"`
	PublicFileURL string `json:"public_file_url"`
	FileSize      int64  `json:"file_size"`
}

// PresignUpload issues a short-lived presigned PUT URL for a direct browser
// upload. Only image content types are accepted, and the object key is
// prefixed with a fresh UUID so uploads never collide.
func PresignUpload(c echo.Context) error {
	log := logger.FromContext(c)

	var req PresignRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.FileName == "" || req.ContentType == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "File name and content type are required"})
	}
	if !strings.HasPrefix(req.ContentType, "image/") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Only image files are allowed"})
	}

	objectKey := uuid.New().String() + "-" + req.FileName

	url, err := presigner.PresignPut(c.Request().Context(), objectKey, req.ContentType)
	if err != nil {
		log.Error("Failed to presign upload",
			zap.String("object_key", objectKey),
			zap.Error(err))
		prometheus.RecordUploadOperation("presign", "error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to generate upload URL"})
	}

	log.Info("Upload URL issued",
		zap.String("object_key", objectKey),
		zap.String("content_type", req.ContentType))
	prometheus.RecordUploadOperation("presign", "success")
	return c.JSON(http.StatusOK, echo.Map{
		"success":         true,
		"presigned_url":   url,
		"object_key":      objectKey,
		"public_file_url": presigner.PublicURL(objectKey),
	})
}

// RecordFileMetadata persists the bookkeeping row after the browser finishes
// its direct upload.
func RecordFileMetadata(c echo.Context) error {
	log := logger.FromContext(c)

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No organization found for user"})
	}

	var req FileMetadataRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.ObjectKey == "" || req.PublicFileURL == "" || req.FileSize == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Object key, file URL and file size are required"})
	}

	file := model.S3File{
		ObjectKey: req.ObjectKey,
		FileURL:   req.PublicFileURL,
		FileSize:  req.FileSize,
	}

	if err := store.NewFileStore(database.GetDB()).Create(org.ID, &file); err != nil {
		log.Error("Failed to record file metadata",
			zap.String("object_key", req.ObjectKey),
			zap.Error(err))
		prometheus.RecordUploadOperation("metadata", "error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to record file metadata"})
	}

	prometheus.RecordUploadOperation("metadata", "success")
	return c.JSON(http.StatusCreated, file)
}

// ListFiles returns the organization's uploaded files, newest first.
func ListFiles(c echo.Context) error {
	log := logger.FromContext(c)

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No organization found for user"})
	}

	files, err := store.NewFileStore(database.GetDB()).List(org.ID)
	if err != nil {
		log.Error("Failed to list files",
			zap.String("organization_id", org.ID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch files"})
	}

	return c.JSON(http.StatusOK, files)
}
