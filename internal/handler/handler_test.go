package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"backoffice-service/internal/model"
	"backoffice-service/pkg/config"
	"backoffice-service/pkg/database"
	"backoffice-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var metricsOnce sync.Once

// setupTestDB wires an isolated in-memory sqlite database into the package
// database handle and returns it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	metricsOnce.Do(func() {
		prometheus.InitMetrics(&config.Config{Metrics: config.MetricsConfig{Prefix: "test"}})
	})
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.SeedThemes(db))
	database.Set(db)
	return db
}

func createTestOrg(t *testing.T, db *gorm.DB, userID string) *model.Organization {
	t.Helper()
	org := &model.Organization{
		UserID: userID,
		Name:   "Acme Studio",
		Slug:   "acme-studio",
	}
	require.NoError(t, db.Create(org).Error)
	return org
}

// newTestContext builds an echo context as the auth and organization
// middleware would have left it.
func newTestContext(t *testing.T, method, target, body string, org *model.Organization) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.Set("user_id", "user-1")
	c.Set("email", "owner@example.com")
	if org != nil {
		c.Set("organization", org)
	}
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
