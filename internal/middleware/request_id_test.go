package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/production-gateway/internal/logger"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		headerValue string
		validate    func(*testing.T, string)
	}{
		{
			name:        "generates new request ID when not provided",
			headerValue: "",
			validate: func(t *testing.T, id string) {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			},
		},
		{
			name:        "uses provided request ID from header",
			headerValue: "custom-request-id-123",
			validate: func(t *testing.T, id string) {
				assert.Equal(t, "custom-request-id-123", id)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromContext string

			router := gin.New()
			router.Use(RequestID())
			router.GET("/test", func(c *gin.Context) {
				fromContext = logger.RequestIDFromContext(c.Request.Context())
				c.String(http.StatusOK, GetRequestID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.headerValue != "" {
				req.Header.Set(RequestIDHeader, tt.headerValue)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			requestID := w.Body.String()
			assert.NotEmpty(t, requestID)
			assert.Equal(t, requestID, w.Header().Get(RequestIDHeader))
			assert.Equal(t, requestID, fromContext)
			tt.validate(t, requestID)
		})
	}
}

func TestGetRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	assert.Empty(t, GetRequestID(c))

	c.Set(string(RequestIDKey), "test-id-123")
	assert.Equal(t, "test-id-123", GetRequestID(c))
}

func TestSetActor(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	assert.Empty(t, GetActor(c))

	setActor(c, "token:planner")

	assert.Equal(t, "token:planner", GetActor(c))
	assert.Equal(t, "token:planner", logger.ActorFromContext(c.Request.Context()))
}
