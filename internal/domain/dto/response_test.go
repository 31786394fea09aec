package dto

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorResponse_WithRequestID(t *testing.T) {
	err := NewError(ErrCodeInternal, "test error").WithRequestID("test-id")

	assert.Equal(t, "test-id", err.RequestID)
	assert.Equal(t, ErrCodeInternal, err.Error)
	assert.Equal(t, "test error", err.Message)
}

func TestErrorResponse_WithDetail(t *testing.T) {
	base := NewError(ErrCodeUpstream, "Bad Gateway").WithDetail("operation", "list_products")
	extended := base.WithDetail("status", "502")

	assert.Equal(t, map[string]string{"operation": "list_products"}, base.Details)
	assert.Equal(t, map[string]string{"operation": "list_products", "status": "502"}, extended.Details)
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusForbidden, ErrCodeForbidden},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusUnprocessableEntity, ErrCodeUnprocessable},
		{http.StatusTeapot, ErrCodeInvalidRequest},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeUpstream},
		{http.StatusServiceUnavailable, ErrCodeUnavailable},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, ErrCodeFromStatus(tt.status))
		})
	}
}

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeInvalidRequest, "test message")

	assert.Equal(t, ErrCodeInvalidRequest, err.Error)
	assert.Equal(t, "test message", err.Message)
	assert.WithinDuration(t, time.Now(), err.Timestamp, time.Second)
}
