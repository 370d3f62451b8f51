package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"backoffice-service/pkg/config"
	"backoffice-service/pkg/jwtutil"
	"backoffice-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var metricsOnce sync.Once

func initTestEnv() {
	metricsOnce.Do(func() {
		prometheus.InitMetrics(&config.Config{Metrics: config.MetricsConfig{Prefix: "mwtest"}})
	})
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "test-signing-key"})
}

func runAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	h := AuthMiddleware(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, c
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	initTestEnv()
	token, err := jwtutil.GenerateToken("owner@example.com", "user-1", time.Hour)
	require.NoError(t, err)

	rec, c := runAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)

	userID, ok := UserIDFromContext(c)
	require.True(t, ok)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "owner@example.com", c.Get("email"))
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	initTestEnv()
	rec, _ := runAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	initTestEnv()
	rec, _ := runAuth(t, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	initTestEnv()
	token, err := jwtutil.GenerateToken("owner@example.com", "user-1", -time.Minute)
	require.NoError(t, err)

	rec, _ := runAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareWrongKey(t *testing.T) {
	initTestEnv()
	token, err := jwtutil.GenerateToken("owner@example.com", "user-1", time.Hour)
	require.NoError(t, err)

	jwtutil.Initialize(&config.JWTConfig{SigningKey: "another-key"})
	defer jwtutil.Initialize(&config.JWTConfig{SigningKey: "test-signing-key"})

	rec, _ := runAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
