package handler

import (
	"net/http"
	"testing"

	"backoffice-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrganizationDerivesSlug(t *testing.T) {
	setupTestDB(t)

	c, rec := newTestContext(t, http.MethodPost, "/api/organizations", `{"name":"Acme Co!"}`, nil)
	require.NoError(t, CreateOrganization(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got model.Organization
	decodeBody(t, rec, &got)
	assert.Equal(t, "acme-co", got.Slug)
	assert.Equal(t, "user-1", got.UserID)
	assert.NotEmpty(t, got.ID)
}

func TestCreateOrganizationKeepsExplicitSlug(t *testing.T) {
	setupTestDB(t)

	c, rec := newTestContext(t, http.MethodPost, "/api/organizations", `{"name":"Acme Co","slug":"custom-slug"}`, nil)
	require.NoError(t, CreateOrganization(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got model.Organization
	decodeBody(t, rec, &got)
	assert.Equal(t, "custom-slug", got.Slug)
}

func TestCreateOrganizationRequiresName(t *testing.T) {
	setupTestDB(t)

	c, rec := newTestContext(t, http.MethodPost, "/api/organizations", `{"domain":"acme.example"}`, nil)
	require.NoError(t, CreateOrganization(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckUserOrganization(t *testing.T) {
	db := setupTestDB(t)

	c, rec := newTestContext(t, http.MethodGet, "/api/user/organization", "", nil)
	require.NoError(t, CheckUserOrganization(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"organization":null}`, rec.Body.String())

	org := createTestOrg(t, db, "user-1")
	c, rec = newTestContext(t, http.MethodGet, "/api/user/organization", "", org)
	require.NoError(t, CheckUserOrganization(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Organization *model.Organization `json:"organization"`
	}
	decodeBody(t, rec, &got)
	require.NotNil(t, got.Organization)
	assert.Equal(t, org.ID, got.Organization.ID)
}

func TestUpdateOrganization(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")

	body := `{"name":"Acme Ceramics","domain":"acme.example"}`
	c, rec := newTestContext(t, http.MethodPatch, "/api/organizations/"+org.ID, body, org)
	c.SetParamNames("id")
	c.SetParamValues(org.ID)
	require.NoError(t, UpdateOrganization(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Organization
	decodeBody(t, rec, &got)
	assert.Equal(t, "Acme Ceramics", got.Name)
	require.NotNil(t, got.Domain)
	assert.Equal(t, "acme.example", *got.Domain)
	// The slug is fixed at onboarding.
	assert.Equal(t, org.Slug, got.Slug)
}

func TestUpdateOrganizationNotOwned(t *testing.T) {
	db := setupTestDB(t)
	other := &model.Organization{UserID: "user-2", Name: "Rival", Slug: "rival"}
	require.NoError(t, db.Create(other).Error)

	c, rec := newTestContext(t, http.MethodPatch, "/api/organizations/"+other.ID, `{"name":"Hijacked"}`, nil)
	c.SetParamNames("id")
	c.SetParamValues(other.ID)
	require.NoError(t, UpdateOrganization(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
