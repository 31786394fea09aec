// Package middleware provides HTTP middleware components for the production gateway.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/guttosm/production-gateway/internal/logger"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"
)

// ContextKey type for context keys to avoid collisions.
type ContextKey string

const (
	// RequestIDKey is the gin context key for request ID.
	RequestIDKey ContextKey = "request_id"
	// ActorKey is the gin context key for the authenticated caller.
	ActorKey ContextKey = "actor"
)

// RequestID returns a middleware that ensures each request has a unique ID.
// A client-provided X-Request-ID is kept; otherwise a UUID v4 is generated.
// The id is also stored in the request context so upstream calls forward it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), requestID))
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(string(RequestIDKey)); exists {
		if requestID, ok := id.(string); ok {
			return requestID
		}
	}
	return ""
}

// GetActor retrieves the authenticated caller from the gin context.
func GetActor(c *gin.Context) string {
	return c.GetString(string(ActorKey))
}

func setActor(c *gin.Context, actor string) {
	c.Set(string(ActorKey), actor)
	c.Request = c.Request.WithContext(logger.ContextWithActor(c.Request.Context(), actor))
}
