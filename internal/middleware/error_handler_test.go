package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/production-gateway/internal/domain/dto"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupHandler   func(*gin.Engine)
		expectedStatus int
		expectedBody   string
		mustContain    []string
	}{
		{
			name: "handles gin context errors",
			path: "/error",
			setupHandler: func(router *gin.Engine) {
				router.GET("/error", func(c *gin.Context) {
					_ = c.Error(errors.New("test error"))
				})
			},
			expectedStatus: http.StatusInternalServerError,
			mustContain:    []string{"internal_error", "An unexpected error occurred"},
		},
		{
			name: "keeps a response the handler already wrote",
			path: "/written",
			setupHandler: func(router *gin.Engine) {
				router.GET("/written", func(c *gin.Context) {
					_ = c.Error(errors.New("Service Unavailable"))
					c.JSON(http.StatusBadGateway, dto.NewError(dto.ErrCodeFromStatus(http.StatusBadGateway), "Service Unavailable"))
				})
			},
			expectedStatus: http.StatusBadGateway,
			mustContain:    []string{"Service Unavailable"},
		},
		{
			name: "does nothing when no errors",
			path: "/ok",
			setupHandler: func(router *gin.Engine) {
				router.GET("/ok", func(c *gin.Context) {
					c.String(http.StatusOK, "ok")
				})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), ErrorHandler())
			tt.setupHandler(router)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
			for _, substr := range tt.mustContain {
				assert.Contains(t, w.Body.String(), substr)
			}
		})
	}
}

func TestErrorHandler_Envelope(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), ErrorHandler())
	router.GET("/api/production/plan", func(c *gin.Context) {
		_ = c.Error(errors.New("first"))
		_ = c.Error(errors.New("second"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/production/plan", nil)
	req.Header.Set(RequestIDHeader, "req-err")
	req.Header.Set("Accept-Language", "pt")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, dto.ErrCodeInternal, body.Error)
	assert.Equal(t, "Ocorreu um erro inesperado", body.Message)
	assert.Equal(t, "req-err", body.RequestID)
}
