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

// OrganizationRequest defines the structure for organization creation/update
// requests
type OrganizationRequest struct {
	Name    string  `json:"name"`
	Domain  *string `json:"domain"`
	Slug    string  `json:"slug"`
	LogoURL *string `json:"logo_url"`
}

// CreateOrganization handles the one-time onboarding insert. The slug is
// auto-derived from the name unless explicitly supplied.
func CreateOrganization(c echo.Context) error {
	log := logger.FromContext(c)

	userID, ok := mid.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req OrganizationRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Organization name is required"})
	}

	org := model.Organization{
		Name:    req.Name,
		Domain:  req.Domain,
		Slug:    req.Slug,
		LogoURL: req.LogoURL,
	}

	orgs := store.NewOrganizationStore(database.GetDB())
	if err := orgs.Create(userID, &org); err != nil {
		log.Error("Failed to create organization",
			zap.String("name", req.Name),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create organization"})
	}

	log.Info("Organization created",
		zap.String("organization_id", org.ID),
		zap.String("name", org.Name),
		zap.String("slug", org.Slug))
	return c.JSON(http.StatusCreated, org)
}

// ListOrganizations returns all organizations the principal owns.
func ListOrganizations(c echo.Context) error {
	log := logger.FromContext(c)

	userID, ok := mid.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	orgs, err := store.NewOrganizationStore(database.GetDB()).ListByUser(userID)
	if err != nil {
		log.Error("Failed to list organizations", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch organizations"})
	}

	return c.JSON(http.StatusOK, orgs)
}

// GetOrganization returns a single owned organization.
func GetOrganization(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	userID, ok := mid.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	org, err := store.NewOrganizationStore(database.GetDB()).GetOwned(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Organization not found"})
		}
		log.Error("Failed to fetch organization", zap.String("organization_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch organization"})
	}

	return c.JSON(http.StatusOK, org)
}

// UpdateOrganization renames an owned organization and replaces its domain
// and logo.
func UpdateOrganization(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	userID, ok := mid.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req OrganizationRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Organization name is required"})
	}

	org, err := store.NewOrganizationStore(database.GetDB()).UpdateOwned(userID, id, req.Name, req.Domain, req.LogoURL)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Organization not found"})
		}
		log.Error("Failed to update organization", zap.String("organization_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update organization"})
	}

	log.Info("Organization updated",
		zap.String("organization_id", org.ID),
		zap.String("name", org.Name))
	return c.JSON(http.StatusOK, org)
}

// CheckUserOrganization reports whether the principal has completed
// onboarding. The organization field is null when none exists yet.
func CheckUserOrganization(c echo.Context) error {
	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusOK, echo.Map{"organization": nil})
	}
	return c.JSON(http.StatusOK, echo.Map{"organization": org})
}
