package handler

import (
	"errors"
	"net/http"

	mid "backoffice-service/internal/middleware"
	"backoffice-service/internal/model"
	"backoffice-service/internal/store"
	"backoffice-service/pkg/database"
	"backoffice-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TransactionRequest defines the structure for sale-recording requests.
// Prices are pointers so a missing field can be told apart from zero.
type TransactionRequest struct {
	ProductID   string `json:"product_id"`
	Quantity    *int   `json:"quantity"`
	UnitPrice   *int64 `json:"unit_price"`
	TotalAmount *int64 `json:"total_amount"`
}

// ListTransactions returns the organization's sales, newest first, with the
// sold product preloaded.
func ListTransactions(c echo.Context) error {
	log := logger.FromContext(c)

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusOK, []model.Transaction{})
	}

	txns, err := store.NewTransactionStore(database.GetDB()).List(org.ID)
	if err != nil {
		log.Error("Failed to list transactions",
			zap.String("organization_id", org.ID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch transactions"})
	}

	return c.JSON(http.StatusOK, txns)
}

// CreateTransaction records a sale against an owned product. Quantity
// defaults to one. Amounts are recorded as sent and are not recomputed from
// the product's current price.
func CreateTransaction(c echo.Context) error {
	log := logger.FromContext(c)

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No organization found for user"})
	}

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Product ID is required"})
	}
	if req.UnitPrice == nil || req.TotalAmount == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unit price and total amount are required"})
	}

	quantity := 1
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Quantity must be positive"})
		}
		quantity = *req.Quantity
	}

	db := database.GetDB()
	if _, err := store.NewProductStore(db).Get(org.ID, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
		}
		log.Error("Failed to verify product", zap.String("product_id", req.ProductID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to record transaction"})
	}

	txn := model.Transaction{
		ProductID:   req.ProductID,
		Quantity:    quantity,
		UnitPrice:   *req.UnitPrice,
		TotalAmount: *req.TotalAmount,
	}

	if err := store.NewTransactionStore(db).Create(org.ID, &txn); err != nil {
		log.Error("Failed to record transaction",
			zap.String("organization_id", org.ID),
			zap.String("product_id", req.ProductID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to record transaction"})
	}

	log.Info("Transaction recorded",
		zap.String("transaction_id", txn.ID),
		zap.String("product_id", txn.ProductID),
		zap.Int("quantity", txn.Quantity),
		zap.Int64("total_amount", txn.TotalAmount))
	return c.JSON(http.StatusCreated, txn)
}
