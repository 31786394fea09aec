package http

import (
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/production-gateway/internal/circuitbreaker"
	"github.com/guttosm/production-gateway/internal/domain/dto"
	"github.com/guttosm/production-gateway/internal/domain/model"
	"github.com/guttosm/production-gateway/internal/i18n"
	"github.com/guttosm/production-gateway/internal/manufacturing"
	"github.com/guttosm/production-gateway/internal/middleware"
	"github.com/guttosm/production-gateway/internal/service"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() any {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() any {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	resp.Error = ""
	resp.Message = ""
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	resp.Details = nil
	errorResponsePool.Put(resp)
}

// BuildRequest binds the JSON body of c into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BuildOptionalRequest is BuildRequest for bodies that may be omitted.
// An empty body yields the zero T.
func BuildOptionalRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &req, nil
}

// bindRecord reads a free-form JSON object body. An empty body or a JSON null
// yields a nil record.
func bindRecord(c *gin.Context) (model.Record, error) {
	req, err := BuildOptionalRequest[model.Record](c)
	if err != nil {
		return nil, err
	}
	return *req, nil
}

// ResponseBuilder writes the gateway's JSON envelopes.
// Uses sync.Pool for DTO reuse to reduce allocations.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a successful response with the given data.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	resp := getSuccessResponse()

	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// Gin serializes synchronously, so the response can go back to the pool right after.
	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data any) {
	b.Success(http.StatusCreated, data)
}

// NoContent sends an empty 204 response.
func (b *ResponseBuilder) NoContent() {
	b.c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code and message key.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.ErrorWithMessage(statusCode, message, err)
}

// ErrorWithMessage sends an error response with a message that is not translated.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	resp := getErrorResponse()

	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// Picked up and logged by the error handler middleware.
	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}

// Fail maps a service or upstream error to its response. Errors answered by
// the manufacturing service keep their status and text.
func (b *ResponseBuilder) Fail(err error) {
	var se *manufacturing.ServiceError
	switch {
	case errors.As(err, &se):
		status := se.StatusCode
		if status < http.StatusBadRequest || status > 599 {
			status = http.StatusBadGateway
		}
		b.ErrorWithMessage(status, se.Message, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		b.Error(http.StatusServiceUnavailable, i18n.ErrKeyUpstreamUnavailable, err)
	case errors.Is(err, service.ErrInvalidID):
		b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidID, err)
	case errors.Is(err, service.ErrMissingAssociationID):
		b.Error(http.StatusBadRequest, i18n.ErrKeyMissingAssociationID, err)
	case errors.Is(err, service.ErrPlanNotReady):
		b.Error(http.StatusConflict, i18n.ErrKeyPlanNotReady, err)
	case errors.Is(err, service.ErrAuditDisabled):
		b.Error(http.StatusNotFound, i18n.ErrKeyAuditDisabled, err)
	default:
		b.Error(http.StatusBadGateway, i18n.ErrKeyUpstreamFailure, err)
	}
}

// InvalidBody sends a 400 for a body that could not be bound.
func (b *ResponseBuilder) InvalidBody(err error) {
	b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}
