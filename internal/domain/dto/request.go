// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"time"

	"github.com/guttosm/production-gateway/internal/domain/model"
)

// MaterialQuantityRequest is the optional body of the legacy positional create route
// POST /api/products/{id}/materials/{materialId}.
//
// @Description Required quantity of a raw material, as a number or a decimal string ("2,5" is accepted)
type MaterialQuantityRequest struct {
	RequiredQuantity any `json:"requiredQuantity,omitempty" swaggertype:"number" example:"2.5"`
	// Quantity is read when requiredQuantity is absent
	Quantity any `json:"quantity,omitempty" swaggertype:"number" example:"2.5"`
} // @name MaterialQuantityRequest

// Value returns requiredQuantity, falling back to quantity. Nil when neither is set.
func (r MaterialQuantityRequest) Value() any {
	if r.RequiredQuantity != nil {
		return r.RequiredQuantity
	}
	return r.Quantity
}

// AuditQueryRequest holds the query parameters of GET /api/audit.
type AuditQueryRequest struct {
	Action    string     `form:"action" example:"create_composition"`
	RequestID string     `form:"request_id"`
	Subject   string     `form:"subject" example:"7"`
	StartTime *time.Time `form:"start_time" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime   *time.Time `form:"end_time" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit     int        `form:"limit" binding:"omitempty,min=0,max=500" example:"50"`
	Skip      int        `form:"skip" binding:"omitempty,min=0"`
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// ErrInvalidTimeRange is returned when end_time precedes start_time.
var ErrInvalidTimeRange = &ValidationError{
	Field:   "end_time",
	Message: "must not be before start_time",
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs checks the binding tags cannot express.
func (r *AuditQueryRequest) Validate() error {
	if r.StartTime != nil && r.EndTime != nil && r.EndTime.Before(*r.StartTime) {
		return ErrInvalidTimeRange
	}
	return nil
}

// ToQuery converts the request into a domain audit query.
func (r *AuditQueryRequest) ToQuery() model.AuditQuery {
	return model.AuditQuery{
		Action:    r.Action,
		RequestID: r.RequestID,
		Subject:   r.Subject,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Limit:     r.Limit,
		Skip:      r.Skip,
	}
}
