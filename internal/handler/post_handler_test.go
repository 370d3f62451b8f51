package handler

import (
	"net/http"
	"testing"

	"backoffice-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostDerivesSlugFromTitle(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")

	body := `{"title":"Our First Firing!","image":"https://cdn.example/kiln.jpg","body":"We opened the kiln today."}`
	c, rec := newTestContext(t, http.MethodPost, "/api/blog-posts", body, org)
	require.NoError(t, CreatePost(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got model.BlogPost
	decodeBody(t, rec, &got)
	assert.Equal(t, "our-first-firing", got.Slug)
	assert.Equal(t, org.ID, got.OrganizationID)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, "https://cdn.example/kiln.jpg", *got.ImageURL)
}

func TestCreatePostRequiresTitle(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")

	c, rec := newTestContext(t, http.MethodPost, "/api/blog-posts", `{"body":"no title"}`, org)
	require.NoError(t, CreatePost(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeletePostBySlug(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")

	c, rec := newTestContext(t, http.MethodPost, "/api/blog-posts", `{"title":"Kiln Notes"}`, org)
	require.NoError(t, CreatePost(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newTestContext(t, http.MethodDelete, "/api/blog-posts/kiln-notes", "", org)
	c.SetParamNames("slug")
	c.SetParamValues("kiln-notes")
	require.NoError(t, DeletePost(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, db.Model(&model.BlogPost{}).Where("organization_id = ?", org.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDeletePostCrossTenant(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")
	other := &model.Organization{UserID: "user-2", Name: "Rival", Slug: "rival"}
	require.NoError(t, db.Create(other).Error)

	c, rec := newTestContext(t, http.MethodPost, "/api/blog-posts", `{"title":"Kiln Notes"}`, org)
	require.NoError(t, CreatePost(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// The same slug under a different organization is a miss.
	c, rec = newTestContext(t, http.MethodDelete, "/api/blog-posts/kiln-notes", "", other)
	c.SetParamNames("slug")
	c.SetParamValues("kiln-notes")
	require.NoError(t, DeletePost(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
