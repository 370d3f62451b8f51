package middleware

import (
	"errors"

	"backoffice-service/internal/model"
	"backoffice-service/internal/store"
	"backoffice-service/pkg/database"
	"backoffice-service/pkg/logger"
	"backoffice-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ResolveOrganization is the access guard: it resolves the authenticated
// principal's first owned organization and stores it in the request context
// as the mandatory scoping key. It does not reject by itself — list handlers
// render empty and mutating handlers return 400 — but any lookup failure is
// treated as "no organization" so the guard fails closed.
func ResolveOrganization(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := UserIDFromContext(c)
		if !ok {
			return next(c)
		}

		orgs := store.NewOrganizationStore(database.GetDB())
		org, err := orgs.FirstByUser(userID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				logger.FromContext(c).Error("Organization lookup failed",
					zap.String("user_id", userID),
					zap.Error(err))
			}
			prometheus.TenantContextMissingCounter.Inc()
			return next(c)
		}

		c.Set("organization", org)
		return next(c)
	}
}

// OrganizationFromContext retrieves the organization resolved by the guard.
func OrganizationFromContext(c echo.Context) (*model.Organization, bool) {
	org, ok := c.Get("organization").(*model.Organization)
	return org, ok && org != nil
}
