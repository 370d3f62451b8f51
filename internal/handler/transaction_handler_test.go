package handler

import (
	"net/http"
	"testing"

	"backoffice-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransactionDefaultsQuantity(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")
	p := seedProduct(t, db, org.ID, model.ProductLive)

	body := `{"product_id":"` + p.ID + `","unit_price":4500,"total_amount":4500}`
	c, rec := newTestContext(t, http.MethodPost, "/api/transactions", body, org)
	require.NoError(t, CreateTransaction(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got model.Transaction
	decodeBody(t, rec, &got)
	assert.Equal(t, 1, got.Quantity)
	assert.Equal(t, int64(4500), got.TotalAmount)
	assert.Equal(t, org.ID, got.OrganizationID)
}

func TestCreateTransactionValidation(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")
	p := seedProduct(t, db, org.ID, model.ProductLive)

	cases := []struct {
		name string
		body string
	}{
		{"missing product id", `{"unit_price":100,"total_amount":100}`},
		{"missing prices", `{"product_id":"` + p.ID + `"}`},
		{"zero quantity", `{"product_id":"` + p.ID + `","quantity":0,"unit_price":100,"total_amount":100}`},
		{"negative quantity", `{"product_id":"` + p.ID + `","quantity":-2,"unit_price":100,"total_amount":100}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestContext(t, http.MethodPost, "/api/transactions", tc.body, org)
			require.NoError(t, CreateTransaction(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateTransactionForeignProduct(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")
	other := &model.Organization{UserID: "user-2", Name: "Rival", Slug: "rival"}
	require.NoError(t, db.Create(other).Error)
	foreign := seedProduct(t, db, other.ID, model.ProductLive)

	body := `{"product_id":"` + foreign.ID + `","unit_price":100,"total_amount":100}`
	c, rec := newTestContext(t, http.MethodPost, "/api/transactions", body, org)
	require.NoError(t, CreateTransaction(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")
	p := seedProduct(t, db, org.ID, model.ProductLive)

	for _, amount := range []int64{4500, 9000} {
		txn := &model.Transaction{
			OrganizationID: org.ID,
			ProductID:      p.ID,
			Quantity:       int(amount / 4500),
			UnitPrice:      4500,
			TotalAmount:    amount,
		}
		require.NoError(t, db.Create(txn).Error)
	}

	c, rec := newTestContext(t, http.MethodGet, "/api/dashboard/stats", "", org)
	require.NoError(t, DashboardStats(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.DashboardStats
	decodeBody(t, rec, &got)
	assert.Equal(t, int64(13500), got.TotalRevenue)
	assert.Equal(t, int64(2), got.TotalSales)
	assert.Equal(t, int64(1), got.TotalProducts)
	assert.Len(t, got.RecentTransactions, 2)
	require.Len(t, got.TopSellingProducts, 1)
	assert.Equal(t, p.ID, got.TopSellingProducts[0].ProductID)
	assert.Equal(t, int64(3), got.TopSellingProducts[0].TotalQuantity)
}

func TestDashboardStatsWithoutOrganization(t *testing.T) {
	setupTestDB(t)

	c, rec := newTestContext(t, http.MethodGet, "/api/dashboard/stats", "", nil)
	require.NoError(t, DashboardStats(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.DashboardStats
	decodeBody(t, rec, &got)
	assert.Zero(t, got.TotalRevenue)
	assert.Empty(t, got.RecentTransactions)
	assert.Empty(t, got.TopSellingProducts)
}

func TestRevenueOverTime(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")
	p := seedProduct(t, db, org.ID, model.ProductLive)

	txn := &model.Transaction{
		OrganizationID: org.ID,
		ProductID:      p.ID,
		Quantity:       1,
		UnitPrice:      4500,
		TotalAmount:    4500,
	}
	require.NoError(t, db.Create(txn).Error)

	c, rec := newTestContext(t, http.MethodGet, "/api/dashboard/revenue", "", org)
	require.NoError(t, RevenueOverTime(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var points []model.RevenuePoint
	decodeBody(t, rec, &points)
	require.Len(t, points, 1)
	assert.Equal(t, int64(4500), points[0].Revenue)
	assert.Equal(t, int64(1), points[0].Transactions)
	assert.NotEmpty(t, points[0].Date)
}

func TestRevenueOverTimeRejectsBadDates(t *testing.T) {
	db := setupTestDB(t)
	org := createTestOrg(t, db, "user-1")

	c, rec := newTestContext(t, http.MethodGet, "/api/dashboard/revenue?from=not-a-date", "", org)
	require.NoError(t, RevenueOverTime(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
