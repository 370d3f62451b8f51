package prometheus

import (
	"backoffice-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	AuthAttemptsCounter prometheus.Counter
	AuthSuccessCounter  prometheus.Counter
	AuthErrorsCounter   prometheus.Counter

	// Tenant context metrics
	TenantContextMissingCounter prometheus.Counter

	// Domain operation metrics
	ProductOperationsCounter prometheus.CounterVec
	DropOperationsCounter    prometheus.CounterVec
	UploadOperationsCounter  prometheus.CounterVec

	// Inventory metrics
	ProductInventoryGauge prometheus.GaugeVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	AuthAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
	)

	AuthSuccessCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_success_total",
			Help: "Total number of successful authentications",
		},
	)

	AuthErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
	)

	// Tenant context metrics
	TenantContextMissingCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_tenant_context_missing_total",
			Help: "Total number of requests without an organization context",
		},
	)

	// Product metrics
	ProductOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_product_operations_total",
			Help: "Total number of product operations",
		},
		[]string{"operation", "status"},
	)

	// Drop metrics
	DropOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_drop_operations_total",
			Help: "Total number of drop operations",
		},
		[]string{"operation", "status"},
	)

	// Upload metrics
	UploadOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_upload_operations_total",
			Help: "Total number of upload operations",
		},
		[]string{"operation", "status"},
	)

	// Product inventory metrics
	ProductInventoryGauge = *promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_product_inventory",
			Help: "Current inventory level for products",
		},
		[]string{"organization_id", "product_id"},
	)
}

// RecordProductOperation increments the counter for product operations
func RecordProductOperation(operation, status string) {
	ProductOperationsCounter.WithLabelValues(operation, status).Inc()
}

// RecordDropOperation increments the counter for drop operations
func RecordDropOperation(operation, status string) {
	DropOperationsCounter.WithLabelValues(operation, status).Inc()
}

// RecordUploadOperation increments the counter for upload operations
func RecordUploadOperation(operation, status string) {
	UploadOperationsCounter.WithLabelValues(operation, status).Inc()
}

// UpdateProductInventory updates the gauge for product inventory
func UpdateProductInventory(organizationID, productID string, stock int) {
	ProductInventoryGauge.WithLabelValues(organizationID, productID).Set(float64(stock))
}
