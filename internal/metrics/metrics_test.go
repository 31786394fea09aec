package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/products", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/api/fail", func(c *gin.Context) {
		c.String(http.StatusBadGateway, "error")
	})

	tests := []struct {
		name           string
		path           string
		label          string
		expectedStatus int
	}{
		{
			name:           "records successful request",
			path:           "/api/products",
			label:          "/api/products",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records failed request",
			path:           "/api/fail",
			label:          "/api/fail",
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "unmatched routes share one label",
			path:           "/does/not/exist",
			label:          "unmatched",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.label, strconv.Itoa(tt.expectedStatus))
			before := testutil.ToFloat64(counter)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestRecordUpstreamRequest(t *testing.T) {
	counter := UpstreamRequestsTotal.WithLabelValues("list_products", "200")
	before := testutil.ToFloat64(counter)

	RecordUpstreamRequest("list_products", "200", 15*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("manufacturing", 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("manufacturing")))

	SetCircuitBreakerState("manufacturing", 0)
	assert.Equal(t, float64(0), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("manufacturing")))
}

func TestRecordPlanRefresh(t *testing.T) {
	RecordPlanRefresh("success", 3)
	assert.Equal(t, float64(3), testutil.ToFloat64(PlanEntries))

	RecordPlanRefresh("failure", 0)
	assert.Equal(t, float64(3), testutil.ToFloat64(PlanEntries))
}

func TestRecordPlanExport(t *testing.T) {
	counter := PlanExportsTotal.WithLabelValues("success")
	before := testutil.ToFloat64(counter)

	RecordPlanExport("success")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
