package handler

import (
	"net/http"
	"testing"

	"backoffice-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDropAttachesProducts(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")
	p1 := seedProduct(t, db, org.ID, model.ProductDraft)
	p2 := seedProduct(t, db, org.ID, model.ProductDraft)

	body := `{"title":"Spring Drop","scheduled_at":"2026-03-01T10:00:00Z","product_ids":["` + p1.ID + `","` + p2.ID + `"]}`
	c, rec := newTestContext(t, http.MethodPost, "/api/drops", body, org)
	require.NoError(t, CreateDrop(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got model.Drop
	decodeBody(t, rec, &got)
	assert.Equal(t, model.DropScheduled, got.Status)
	assert.Len(t, got.Products, 2)
	for _, p := range got.Products {
		assert.Equal(t, model.ProductScheduled, p.Status)
		require.NotNil(t, p.DropID)
		assert.Equal(t, got.ID, *p.DropID)
	}
}

func TestCreateDropValidation(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")

	c, rec := newTestContext(t, http.MethodPost, "/api/drops", `{"scheduled_at":"2026-03-01T10:00:00Z"}`, org)
	require.NoError(t, CreateDrop(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newTestContext(t, http.MethodPost, "/api/drops", `{"title":"Spring Drop"}`, org)
	require.NoError(t, CreateDrop(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateDropSkipsForeignProducts(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")
	other := &model.Organization{UserID: "user-2", Name: "Rival", Slug: "rival"}
	require.NoError(t, db.Create(other).Error)
	foreign := seedProduct(t, db, other.ID, model.ProductDraft)

	body := `{"title":"Spring Drop","scheduled_at":"2026-03-01T10:00:00Z","product_ids":["` + foreign.ID + `"]}`
	c, rec := newTestContext(t, http.MethodPost, "/api/drops", body, org)
	require.NoError(t, CreateDrop(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got model.Drop
	decodeBody(t, rec, &got)
	assert.Empty(t, got.Products)

	// The foreign product is untouched.
	var stored model.Product
	require.NoError(t, db.First(&stored, "id = ?", foreign.ID).Error)
	assert.Nil(t, stored.DropID)
	assert.Equal(t, model.ProductDraft, stored.Status)
}

func TestUpdateDropReplacesMembership(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")
	p1 := seedProduct(t, db, org.ID, model.ProductDraft)
	p2 := seedProduct(t, db, org.ID, model.ProductDraft)

	body := `{"title":"Spring Drop","scheduled_at":"2026-03-01T10:00:00Z","product_ids":["` + p1.ID + `"]}`
	c, rec := newTestContext(t, http.MethodPost, "/api/drops", body, org)
	require.NoError(t, CreateDrop(c))
	var drop model.Drop
	decodeBody(t, rec, &drop)

	// Swap p1 out for p2.
	c, rec = newTestContext(t, http.MethodPatch, "/api/drops/"+drop.ID, `{"product_ids":["`+p2.ID+`"]}`, org)
	c.SetParamNames("id")
	c.SetParamValues(drop.ID)
	require.NoError(t, UpdateDrop(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Drop
	decodeBody(t, rec, &got)
	require.Len(t, got.Products, 1)
	assert.Equal(t, p2.ID, got.Products[0].ID)

	// The detached product fell back to draft.
	var detached model.Product
	require.NoError(t, db.First(&detached, "id = ?", p1.ID).Error)
	assert.Nil(t, detached.DropID)
	assert.Equal(t, model.ProductDraft, detached.Status)
}

func TestUpdateDropEmptyMembershipClearsAll(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")
	p1 := seedProduct(t, db, org.ID, model.ProductDraft)

	body := `{"title":"Spring Drop","scheduled_at":"2026-03-01T10:00:00Z","product_ids":["` + p1.ID + `"]}`
	c, rec := newTestContext(t, http.MethodPost, "/api/drops", body, org)
	require.NoError(t, CreateDrop(c))
	var drop model.Drop
	decodeBody(t, rec, &drop)

	c, rec = newTestContext(t, http.MethodPatch, "/api/drops/"+drop.ID, `{"product_ids":[]}`, org)
	c.SetParamNames("id")
	c.SetParamValues(drop.ID)
	require.NoError(t, UpdateDrop(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Drop
	decodeBody(t, rec, &got)
	assert.Empty(t, got.Products)
}

func TestUpdateDropOmittedMembershipKeepsMembers(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")
	p1 := seedProduct(t, db, org.ID, model.ProductDraft)

	body := `{"title":"Spring Drop","scheduled_at":"2026-03-01T10:00:00Z","product_ids":["` + p1.ID + `"]}`
	c, rec := newTestContext(t, http.MethodPost, "/api/drops", body, org)
	require.NoError(t, CreateDrop(c))
	var drop model.Drop
	decodeBody(t, rec, &drop)

	c, rec = newTestContext(t, http.MethodPatch, "/api/drops/"+drop.ID, `{"title":"Renamed Drop"}`, org)
	c.SetParamNames("id")
	c.SetParamValues(drop.ID)
	require.NoError(t, UpdateDrop(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Drop
	decodeBody(t, rec, &got)
	assert.Equal(t, "Renamed Drop", got.Title)
	require.Len(t, got.Products, 1)
	assert.Equal(t, model.ProductScheduled, got.Products[0].Status)
}

func TestUpdateDropRejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")

	body := `{"title":"Spring Drop","scheduled_at":"2026-03-01T10:00:00Z"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/drops", body, org)
	require.NoError(t, CreateDrop(c))
	var drop model.Drop
	decodeBody(t, rec, &drop)

	c, rec = newTestContext(t, http.MethodPatch, "/api/drops/"+drop.ID, `{"status":"archived"}`, org)
	c.SetParamNames("id")
	c.SetParamValues(drop.ID)
	require.NoError(t, UpdateDrop(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteDropDetachesMembers(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")
	p1 := seedProduct(t, db, org.ID, model.ProductDraft)

	body := `{"title":"Spring Drop","scheduled_at":"2026-03-01T10:00:00Z","product_ids":["` + p1.ID + `"]}`
	c, rec := newTestContext(t, http.MethodPost, "/api/drops", body, org)
	require.NoError(t, CreateDrop(c))
	var drop model.Drop
	decodeBody(t, rec, &drop)

	c, rec = newTestContext(t, http.MethodDelete, "/api/drops/"+drop.ID, "", org)
	c.SetParamNames("id")
	c.SetParamValues(drop.ID)
	require.NoError(t, DeleteDrop(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var survivor model.Product
	require.NoError(t, db.First(&survivor, "id = ?", p1.ID).Error)
	assert.Nil(t, survivor.DropID)
	assert.Equal(t, model.ProductDraft, survivor.Status)

	var count int64
	require.NoError(t, db.Model(&model.Drop{}).Where("id = ?", drop.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGetDropCrossTenant(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")
	other := &model.Organization{UserID: "user-2", Name: "Rival", Slug: "rival"}
	require.NoError(t, db.Create(other).Error)

	body := `{"title":"Spring Drop","scheduled_at":"2026-03-01T10:00:00Z"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/drops", body, org)
	require.NoError(t, CreateDrop(c))
	var drop model.Drop
	decodeBody(t, rec, &drop)

	c, rec = newTestContext(t, http.MethodGet, "/api/drops/"+drop.ID, "", other)
	c.SetParamNames("id")
	c.SetParamValues(drop.ID)
	require.NoError(t, GetDrop(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
