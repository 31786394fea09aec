// Package metrics provides Prometheus metrics collection for the production gateway.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// UpstreamRequestsTotal counts calls to the manufacturing service by operation and outcome.
	// status is the HTTP status code, "error" for transport failures or "rejected" when the
	// circuit breaker refused the call.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests sent to the manufacturing service",
		},
		[]string{"operation", "status"},
	)

	// UpstreamRequestDuration tracks manufacturing service latency by operation.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Manufacturing service request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	// CircuitBreakerState exposes the breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open",
		},
		[]string{"name"},
	)

	// PlanRefreshesTotal counts production plan refreshes by outcome.
	PlanRefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "production_plan_refreshes_total",
			Help: "Total number of production plan refreshes",
		},
		[]string{"outcome"},
	)

	// PlanEntries tracks the number of entries in the last ready production plan.
	PlanEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "production_plan_entries",
			Help: "Number of products in the current production plan",
		},
	)

	// PlanExportsTotal counts XLSX exports by outcome.
	PlanExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "production_plan_exports_total",
			Help: "Total number of production plan exports",
		},
		[]string{"outcome"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordUpstreamRequest records one manufacturing service call.
func RecordUpstreamRequest(operation, status string, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(operation, status).Inc()
	UpstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetCircuitBreakerState publishes the state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordPlanRefresh records a production plan refresh. entries is ignored for failures.
func RecordPlanRefresh(outcome string, entries int) {
	PlanRefreshesTotal.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		PlanEntries.Set(float64(entries))
	}
}

// RecordPlanExport records an XLSX export attempt.
func RecordPlanExport(outcome string) {
	PlanExportsTotal.WithLabelValues(outcome).Inc()
}
