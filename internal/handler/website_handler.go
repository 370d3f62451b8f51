package handler

import (
	"errors"
	"net/http"

	mid "backoffice-service/internal/middleware"
	"backoffice-service/internal/model"
	"backoffice-service/internal/store"
	"backoffice-service/pkg/database"
	"backoffice-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SaveWebsite persists the full builder document in one shot. Repeated saves
// replace the previous configuration.
func SaveWebsite(c echo.Context) error {
	log := logger.FromContext(c)

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No organization found for user"})
	}

	var data model.WebsiteData
	if err := c.Bind(&data); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	websiteID, err := store.NewWebsiteStore(database.GetDB()).Save(org.ID, data)
	if err != nil {
		if errors.Is(err, store.ErrThemeNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Theme not found"})
		}
		log.Error("Failed to save website",
			zap.String("organization_id", org.ID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to save website"})
	}

	log.Info("Website saved",
		zap.String("website_id", websiteID),
		zap.String("organization_id", org.ID),
		zap.String("theme", data.Theme))
	return c.JSON(http.StatusOK, echo.Map{"success": true, "website_id": websiteID})
}

// GetWebsite reassembles the builder document from its normalized rows.
func GetWebsite(c echo.Context) error {
	log := logger.FromContext(c)

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No organization found for user"})
	}

	data, err := store.NewWebsiteStore(database.GetDB()).Get(org.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No website found"})
		}
		log.Error("Failed to fetch website",
			zap.String("organization_id", org.ID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch website"})
	}

	return c.JSON(http.StatusOK, data)
}
