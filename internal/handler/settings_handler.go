package handler

import (
	"net/http"

	mid "backoffice-service/internal/middleware"
	"backoffice-service/internal/store"
	"backoffice-service/pkg/database"
	"backoffice-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SettingsRequest carries category and tag vocabularies. Nil slices on PATCH
// mean "leave that list alone".
type SettingsRequest struct {
	AvailableCategories *[]string `json:"available_categories"`
	AvailableTags       *[]string `json:"available_tags"`
}

// GetProductSettings returns the organization's vocabulary, creating an empty
// row on first read so the frontend always has something to render.
func GetProductSettings(c echo.Context) error {
	log := logger.FromContext(c)

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No organization found for user"})
	}

	settings, err := store.NewSettingsStore(database.GetDB()).GetOrCreate(org.ID)
	if err != nil {
		log.Error("Failed to fetch product settings",
			zap.String("organization_id", org.ID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch product settings"})
	}

	return c.JSON(http.StatusOK, settings)
}

// CreateProductSettings replaces the organization's vocabulary wholesale.
func CreateProductSettings(c echo.Context) error {
	log := logger.FromContext(c)

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No organization found for user"})
	}

	var req SettingsRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var categories, tags []string
	if req.AvailableCategories != nil {
		categories = *req.AvailableCategories
	}
	if req.AvailableTags != nil {
		tags = *req.AvailableTags
	}

	settings, err := store.NewSettingsStore(database.GetDB()).Create(org.ID, categories, tags)
	if err != nil {
		log.Error("Failed to save product settings",
			zap.String("organization_id", org.ID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to save product settings"})
	}

	log.Info("Product settings saved", zap.String("organization_id", org.ID))
	return c.JSON(http.StatusOK, settings)
}

// UpdateProductSettings updates whichever vocabulary lists the request names.
func UpdateProductSettings(c echo.Context) error {
	log := logger.FromContext(c)

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No organization found for user"})
	}

	var req SettingsRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	settings, err := store.NewSettingsStore(database.GetDB()).Update(org.ID, req.AvailableCategories, req.AvailableTags)
	if err != nil {
		log.Error("Failed to update product settings",
			zap.String("organization_id", org.ID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update product settings"})
	}

	return c.JSON(http.StatusOK, settings)
}
