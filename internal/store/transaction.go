package store

import (
	"time"

	"backoffice-service/internal/model"

	"gorm.io/gorm"
)

// TransactionStore owns the immutable sale records and the dashboard
// aggregates derived from them.
type TransactionStore struct {
	db *gorm.DB
}

func NewTransactionStore(db *gorm.DB) *TransactionStore {
	return &TransactionStore{db: db}
}

// Create inserts an immutable sale record. Amounts are recorded as supplied;
// total_amount is not recomputed from quantity and unit price.
func (s *TransactionStore) Create(orgID string, t *model.Transaction) error {
	t.OrganizationID = orgID
	t.Product = nil
	return s.db.Create(t).Error
}

// List returns the organization's transactions with product data joined,
// newest first.
func (s *TransactionStore) List(orgID string) ([]model.Transaction, error) {
	transactions := []model.Transaction{}
	err := s.db.Preload("Product").
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// Stats computes the dashboard overview for the organization.
func (s *TransactionStore) Stats(orgID string) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{
		RecentTransactions: []model.Transaction{},
		TopSellingProducts: []model.TopSellingProduct{},
	}

	err := s.db.Model(&model.Transaction{}).
		Where("organization_id = ?", orgID).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&model.Transaction{}).
		Where("organization_id = ?", orgID).
		Count(&stats.TotalSales).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&model.Product{}).
		Where("organization_id = ?", orgID).
		Count(&stats.TotalProducts).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Preload("Product").
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Limit(10).
		Find(&stats.RecentTransactions).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Table("transactions").
		Select("transactions.product_id AS product_id, products.name AS product_name, SUM(transactions.quantity) AS total_quantity, SUM(transactions.total_amount) AS total_revenue").
		Joins("JOIN products ON products.id = transactions.product_id").
		Where("transactions.organization_id = ?", orgID).
		Group("transactions.product_id, products.name").
		Order("total_quantity DESC").
		Limit(5).
		Scan(&stats.TopSellingProducts).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// Revenue returns per-day revenue and transaction counts, ascending by date,
// optionally bounded by the from/to instants.
func (s *TransactionStore) Revenue(orgID string, from, to *time.Time) ([]model.RevenuePoint, error) {
	points := []model.RevenuePoint{}

	query := s.db.Model(&model.Transaction{}).
		Where("organization_id = ?", orgID)
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	// date() and CAST work on both the Postgres and sqlite drivers.
	err := query.
		Select("CAST(date(created_at) AS TEXT) AS date, SUM(total_amount) AS revenue, COUNT(*) AS transactions").
		Group("date(created_at)").
		Order("date ASC").
		Scan(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}
