package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction is an immutable sale record. Amounts are minor currency units.
// total_amount is recorded as supplied by the caller; the system does not
// recompute it from quantity and unit price.
type Transaction struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey"`
	OrganizationID string    `json:"organization_id" gorm:"type:uuid;index;not null"`
	ProductID      string    `json:"product_id" gorm:"type:uuid;index;not null"`
	Quantity       int       `json:"quantity" gorm:"not null;default:1"`
	UnitPrice      int64     `json:"unit_price" gorm:"not null"`
	TotalAmount    int64     `json:"total_amount" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`

	// Joined product data on reads
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// DashboardStats is the aggregate payload for the dashboard overview.
type DashboardStats struct {
	TotalRevenue       int64               `json:"total_revenue"`
	TotalSales         int64               `json:"total_sales"`
	TotalProducts      int64               `json:"total_products"`
	RecentTransactions []Transaction       `json:"recent_transactions"`
	TopSellingProducts []TopSellingProduct `json:"top_selling_products"`
}

// TopSellingProduct ranks products by units sold.
type TopSellingProduct struct {
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	TotalQuantity int64  `json:"total_quantity"`
	TotalRevenue  int64  `json:"total_revenue"`
}

// RevenuePoint is one day of revenue for the dashboard chart.
type RevenuePoint struct {
	Date         string `json:"date"`
	Revenue      int64  `json:"revenue"`
	Transactions int64  `json:"transactions"`
}
