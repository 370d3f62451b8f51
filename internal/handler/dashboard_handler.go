package handler

import (
	"net/http"
	"time"

	mid "backoffice-service/internal/middleware"
	"backoffice-service/internal/model"
	"backoffice-service/internal/store"
	"backoffice-service/pkg/database"
	"backoffice-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DashboardStats returns the headline numbers for the dashboard landing
// page. An account without an organization gets a zeroed shape so the page
// renders without special-casing.
func DashboardStats(c echo.Context) error {
	log := logger.FromContext(c)

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusOK, model.DashboardStats{
			RecentTransactions: []model.Transaction{},
			TopSellingProducts: []model.TopSellingProduct{},
		})
	}

	stats, err := store.NewTransactionStore(database.GetDB()).Stats(org.ID)
	if err != nil {
		log.Error("Failed to compute dashboard stats",
			zap.String("organization_id", org.ID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch dashboard stats"})
	}

	return c.JSON(http.StatusOK, stats)
}

// RevenueOverTime returns per-day revenue buckets for the chart, optionally
// bounded by from/to query parameters.
func RevenueOverTime(c echo.Context) error {
	log := logger.FromContext(c)

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusOK, []model.RevenuePoint{})
	}

	from, err := parseTimeParam(c.QueryParam("from"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid from date"})
	}
	to, err := parseTimeParam(c.QueryParam("to"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid to date"})
	}

	points, err := store.NewTransactionStore(database.GetDB()).Revenue(org.ID, from, to)
	if err != nil {
		log.Error("Failed to compute revenue series",
			zap.String("organization_id", org.ID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch revenue data"})
	}

	return c.JSON(http.StatusOK, points)
}

func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
