// Package manufacturing is the HTTP client for the external manufacturing
// service that owns products, raw materials, compositions and the production
// suggestion.
package manufacturing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/production-gateway/config"
	"github.com/guttosm/production-gateway/internal/circuitbreaker"
	"github.com/guttosm/production-gateway/internal/domain/model"
	"github.com/guttosm/production-gateway/internal/logger"
	"github.com/guttosm/production-gateway/internal/metrics"
	"github.com/guttosm/production-gateway/internal/normalize"
)

// Operation names used in logs, metrics and errors.
const (
	OpListProducts          = "list_products"
	OpCreateProduct         = "create_product"
	OpUpdateProduct         = "update_product"
	OpDeleteProduct         = "delete_product"
	OpListRawMaterials      = "list_raw_materials"
	OpCreateRawMaterial     = "create_raw_material"
	OpUpdateRawMaterial     = "update_raw_material"
	OpDeleteRawMaterial     = "delete_raw_material"
	OpListCompositions      = "list_compositions"
	OpGetComposition        = "get_composition"
	OpCreateComposition     = "create_composition"
	OpUpdateComposition     = "update_composition"
	OpDeleteComposition     = "delete_composition"
	OpProductionSuggestions = "production_suggestions"
)

const (
	pathProducts     = "/products"
	pathRawMaterials = "/raw-materials"
	pathCompositions = "/product-materials"
	pathSuggestions  = "/production/suggestions"
)

// Client talks to the manufacturing service. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithCircuitBreaker guards every call with cb.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(c *Client) {
		c.breaker = cb
	}
}

// NewClient creates a client for the service rooted at cfg.BaseURL.
// A trailing slash on the base URL is dropped.
func NewClient(cfg config.UpstreamConfig, opts ...Option) *Client {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = config.DefaultUpstreamBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(base, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListProducts returns the product catalogue.
func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	if err := c.do(ctx, OpListProducts, http.MethodGet, pathProducts, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Product{}
	}
	return out, nil
}

// CreateProduct creates a product. The result is nil when the service answers without a body.
func (c *Client) CreateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	return decodeOptional[model.Product](ctx, c, OpCreateProduct, http.MethodPost, pathProducts, p)
}

// UpdateProduct replaces the product with the given id.
func (c *Client) UpdateProduct(ctx context.Context, id model.ID, p model.Product) (*model.Product, error) {
	return decodeOptional[model.Product](ctx, c, OpUpdateProduct, http.MethodPut, itemPath(pathProducts, id), p)
}

// DeleteProduct deletes the product with the given id.
func (c *Client) DeleteProduct(ctx context.Context, id model.ID) error {
	return c.do(ctx, OpDeleteProduct, http.MethodDelete, itemPath(pathProducts, id), nil, nil)
}

// ListRawMaterials returns the raw material catalogue.
func (c *Client) ListRawMaterials(ctx context.Context) ([]model.RawMaterial, error) {
	var out []model.RawMaterial
	if err := c.do(ctx, OpListRawMaterials, http.MethodGet, pathRawMaterials, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.RawMaterial{}
	}
	return out, nil
}

// CreateRawMaterial creates a raw material.
func (c *Client) CreateRawMaterial(ctx context.Context, m model.RawMaterial) (*model.RawMaterial, error) {
	return decodeOptional[model.RawMaterial](ctx, c, OpCreateRawMaterial, http.MethodPost, pathRawMaterials, m)
}

// UpdateRawMaterial replaces the raw material with the given id.
func (c *Client) UpdateRawMaterial(ctx context.Context, id model.ID, m model.RawMaterial) (*model.RawMaterial, error) {
	return decodeOptional[model.RawMaterial](ctx, c, OpUpdateRawMaterial, http.MethodPut, itemPath(pathRawMaterials, id), m)
}

// DeleteRawMaterial deletes the raw material with the given id.
func (c *Client) DeleteRawMaterial(ctx context.Context, id model.ID) error {
	return c.do(ctx, OpDeleteRawMaterial, http.MethodDelete, itemPath(pathRawMaterials, id), nil, nil)
}

// ListCompositions returns every composition record in canonical form.
// Elements that are not JSON objects are dropped. A response that is not a
// list yields an empty result.
func (c *Client) ListCompositions(ctx context.Context) ([]model.Record, error) {
	var raw any
	if err := c.do(ctx, OpListCompositions, http.MethodGet, pathCompositions, nil, &raw); err != nil {
		return nil, err
	}

	items, ok := raw.([]any)
	if !ok {
		if raw != nil {
			logger.FromContext(ctx).Warn().
				Str("operation", OpListCompositions).
				Msg("Manufacturing service returned a non-list composition response")
		}
		return []model.Record{}, nil
	}

	out := make([]model.Record, 0, len(items))
	for _, item := range items {
		r, ok := model.AsRecord(item)
		if !ok {
			continue
		}
		out = append(out, normalize.CanonicalizeResponse(r))
	}
	return out, nil
}

// GetComposition returns one composition record in canonical form. The record
// is nil when the service answers without a body.
func (c *Client) GetComposition(ctx context.Context, associationID model.ID) (model.Record, error) {
	return c.compositionCall(ctx, OpGetComposition, http.MethodGet, itemPath(pathCompositions, associationID), nil)
}

// CreateComposition sends an already canonical payload.
func (c *Client) CreateComposition(ctx context.Context, payload model.Record) (model.Record, error) {
	return c.compositionCall(ctx, OpCreateComposition, http.MethodPost, pathCompositions, payload)
}

// UpdateComposition sends an already canonical payload to the association. A
// nil payload is sent as a request without body.
func (c *Client) UpdateComposition(ctx context.Context, associationID model.ID, payload model.Record) (model.Record, error) {
	return c.compositionCall(ctx, OpUpdateComposition, http.MethodPut, itemPath(pathCompositions, associationID), payload)
}

// DeleteComposition deletes the association.
func (c *Client) DeleteComposition(ctx context.Context, associationID model.ID) error {
	return c.do(ctx, OpDeleteComposition, http.MethodDelete, itemPath(pathCompositions, associationID), nil, nil)
}

// ProductionSuggestions returns the production suggestion as decoded JSON.
// Its shape varies between service versions; see normalize.Suggestions.
func (c *Client) ProductionSuggestions(ctx context.Context) (any, error) {
	var raw any
	if err := c.do(ctx, OpProductionSuggestions, http.MethodGet, pathSuggestions, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) compositionCall(ctx context.Context, op, method, path string, payload model.Record) (model.Record, error) {
	var body any
	if payload != nil {
		body = payload
	}

	var raw any
	if err := c.do(ctx, op, method, path, body, &raw); err != nil {
		return nil, err
	}
	r, ok := model.AsRecord(raw)
	if !ok {
		return nil, nil
	}
	return normalize.CanonicalizeResponse(r), nil
}

func decodeOptional[T any](ctx context.Context, c *Client, op, method, path string, body any) (*T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, op, method, path, body, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &TransportError{Operation: op, Err: err}
	}
	return &out, nil
}

// do runs one request through the circuit breaker. out is left untouched when
// the response has no body.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	if c.breaker == nil {
		return c.roundTrip(ctx, op, method, path, body, out)
	}

	err := c.breaker.Execute(ctx, func() error {
		return c.roundTrip(ctx, op, method, path, body, out)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		metrics.RecordUpstreamRequest(op, "rejected", 0)
		logger.FromContext(ctx).Warn().
			Str("operation", op).
			Str("circuit_breaker", c.breaker.Name()).
			Msg("Manufacturing service call rejected by open circuit")
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, op, method, path string, body, out any) error {
	log := logger.FromContext(ctx)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Operation: op, Err: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &TransportError{Operation: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := logger.RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(op, "error", time.Since(start))
		log.Warn().Err(err).Str("operation", op).Str("method", method).Str("path", path).
			Msg("Manufacturing service unreachable")
		return &TransportError{Operation: op, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(resp.Body)
	duration := time.Since(start)
	metrics.RecordUpstreamRequest(op, strconv.Itoa(resp.StatusCode), duration)
	if err != nil {
		return &TransportError{Operation: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := string(payload)
		if message == "" {
			message = defaultErrorMessage
		}
		log.Warn().Str("operation", op).Int("status", resp.StatusCode).Dur("duration", duration).
			Msg("Manufacturing service returned an error")
		return &ServiceError{Operation: op, StatusCode: resp.StatusCode, Message: message}
	}

	log.Debug().Str("operation", op).Int("status", resp.StatusCode).Dur("duration", duration).
		Msg("Manufacturing service call")

	if resp.StatusCode == http.StatusNoContent || out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &TransportError{Operation: op, Err: err}
	}
	return nil
}

func itemPath(collection string, id model.ID) string {
	return collection + "/" + url.PathEscape(id.String())
}
