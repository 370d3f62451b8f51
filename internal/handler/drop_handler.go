package handler

import (
	"errors"
	"net/http"
	"time"

	mid "backoffice-service/internal/middleware"
	"backoffice-service/internal/model"
	"backoffice-service/internal/store"
	"backoffice-service/pkg/database"
	"backoffice-service/pkg/logger"
	"backoffice-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DropRequest defines the structure for drop creation requests.
type DropRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	ProductIDs  []string   `json:"product_ids"`
}

// ListDrops returns the organization's drops, soonest release last.
func ListDrops(c echo.Context) error {
	log := logger.FromContext(c)

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusOK, []model.Drop{})
	}

	drops, err := store.NewDropStore(database.GetDB()).List(org.ID)
	if err != nil {
		log.Error("Failed to list drops",
			zap.String("organization_id", org.ID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch drops"})
	}

	return c.JSON(http.StatusOK, drops)
}

// CreateDrop schedules a new drop and attaches the named products to it.
func CreateDrop(c echo.Context) error {
	log := logger.FromContext(c)

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No organization found for user"})
	}

	var req DropRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Drop title is required"})
	}
	if req.ScheduledAt == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Scheduled date is required"})
	}

	drop := model.Drop{
		Title:       req.Title,
		Description: req.Description,
		ScheduledAt: *req.ScheduledAt,
	}

	created, err := store.NewDropStore(database.GetDB()).Create(org.ID, &drop, req.ProductIDs)
	if err != nil {
		log.Error("Failed to create drop",
			zap.String("organization_id", org.ID),
			zap.String("title", req.Title),
			zap.Error(err))
		prometheus.RecordDropOperation("create", "error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create drop"})
	}

	log.Info("Drop created",
		zap.String("drop_id", created.ID),
		zap.String("organization_id", org.ID),
		zap.Int("products", len(created.Products)))
	prometheus.RecordDropOperation("create", "success")
	return c.JSON(http.StatusCreated, created)
}

// GetDrop returns a single owned drop with its member products preloaded.
func GetDrop(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No organization found for user"})
	}

	drop, err := store.NewDropStore(database.GetDB()).Get(org.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Drop not found"})
		}
		log.Error("Failed to fetch drop", zap.String("drop_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch drop"})
	}

	return c.JSON(http.StatusOK, drop)
}

// UpdateDrop applies a partial update. When product_ids is present the
// membership is replaced: detached products fall back to draft.
func UpdateDrop(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No organization found for user"})
	}

	var patch model.DropPatch
	if err := c.Bind(&patch); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	drop, err := store.NewDropStore(database.GetDB()).Update(org.ID, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Drop not found"})
		case errors.Is(err, store.ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid drop status"})
		}
		log.Error("Failed to update drop",
			zap.String("drop_id", id),
			zap.String("organization_id", org.ID),
			zap.Error(err))
		prometheus.RecordDropOperation("update", "error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update drop"})
	}

	log.Info("Drop updated",
		zap.String("drop_id", drop.ID),
		zap.String("status", string(drop.Status)))
	prometheus.RecordDropOperation("update", "success")
	return c.JSON(http.StatusOK, drop)
}

// DeleteDrop removes a drop. Member products survive as drafts.
func DeleteDrop(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No organization found for user"})
	}

	if err := store.NewDropStore(database.GetDB()).Delete(org.ID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Drop not found"})
		}
		log.Error("Failed to delete drop", zap.String("drop_id", id), zap.Error(err))
		prometheus.RecordDropOperation("delete", "error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete drop"})
	}

	log.Info("Drop deleted",
		zap.String("drop_id", id),
		zap.String("organization_id", org.ID))
	prometheus.RecordDropOperation("delete", "success")
	return c.JSON(http.StatusOK, echo.Map{"message": "Drop deleted successfully"})
}
