package handler

import (
	"errors"
	"net/http"

	mid "backoffice-service/internal/middleware"
	"backoffice-service/internal/model"
	"backoffice-service/internal/store"
	"backoffice-service/pkg/database"
	"backoffice-service/pkg/logger"
	"backoffice-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductRequest defines the structure for product creation requests. Status
// is intentionally absent: new products always start as drafts.
type ProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Stock       int      `json:"stock"`
	Images      []string `json:"images"`
	Category    *string  `json:"category"`
	Tags        []string `json:"tags"`
}

// ListProducts returns every product in the caller's organization, newest
// first. Callers without an organization get an empty list rather than an
// error so a fresh account renders a blank catalog.
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusOK, []model.Product{})
	}

	products, err := store.NewProductStore(database.GetDB()).List(org.ID)
	if err != nil {
		log.Error("Failed to list products",
			zap.String("organization_id", org.ID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch products"})
	}

	return c.JSON(http.StatusOK, products)
}

// CreateProduct inserts a new draft product and folds its category and tags
// into the organization's product settings.
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No organization found for user"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Product name is required"})
	}

	product := model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Images:      req.Images,
		Category:    req.Category,
		Tags:        req.Tags,
	}

	if err := store.NewProductStore(database.GetDB()).Create(org.ID, &product); err != nil {
		log.Error("Failed to create product",
			zap.String("organization_id", org.ID),
			zap.String("name", req.Name),
			zap.Error(err))
		prometheus.RecordProductOperation("create", "error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create product"})
	}

	log.Info("Product created",
		zap.String("product_id", product.ID),
		zap.String("organization_id", org.ID),
		zap.String("name", product.Name))
	prometheus.RecordProductOperation("create", "success")
	prometheus.UpdateProductInventory(org.ID, product.ID, product.Stock)
	return c.JSON(http.StatusCreated, product)
}

// GetProduct returns a single owned product.
func GetProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No organization found for user"})
	}

	product, err := store.NewProductStore(database.GetDB()).Get(org.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
		}
		log.Error("Failed to fetch product", zap.String("product_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch product"})
	}

	return c.JSON(http.StatusOK, product)
}

// UpdateProduct applies a partial update to an owned product. Omitted fields
// keep their stored values, and status changes are checked against the
// lifecycle transition table.
func UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No organization found for user"})
	}

	var patch model.ProductPatch
	if err := c.Bind(&patch); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	product, err := store.NewProductStore(database.GetDB()).Update(org.ID, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
		case errors.Is(err, store.ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product status"})
		case errors.Is(err, store.ErrInvalidTransition):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid status transition"})
		}
		log.Error("Failed to update product",
			zap.String("product_id", id),
			zap.String("organization_id", org.ID),
			zap.Error(err))
		prometheus.RecordProductOperation("update", "error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update product"})
	}

	log.Info("Product updated",
		zap.String("product_id", product.ID),
		zap.String("status", string(product.Status)))
	prometheus.RecordProductOperation("update", "success")
	prometheus.UpdateProductInventory(org.ID, product.ID, product.Stock)
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct removes an owned product.
func DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No organization found for user"})
	}

	if err := store.NewProductStore(database.GetDB()).Delete(org.ID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
		}
		log.Error("Failed to delete product", zap.String("product_id", id), zap.Error(err))
		prometheus.RecordProductOperation("delete", "error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete product"})
	}

	log.Info("Product deleted",
		zap.String("product_id", id),
		zap.String("organization_id", org.ID))
	prometheus.RecordProductOperation("delete", "success")
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}
