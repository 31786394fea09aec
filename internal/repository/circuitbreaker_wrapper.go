package repository

import (
	"context"
	"errors"

	"github.com/guttosm/production-gateway/internal/circuitbreaker"
)

// AuditRepositoryWithCircuitBreaker guards the audit repository so that an
// unavailable MongoDB never slows down the gateway's requests.
type AuditRepositoryWithCircuitBreaker struct {
	repo           AuditRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewAuditRepositoryWithCircuitBreaker wraps repo with cb.
func NewAuditRepositoryWithCircuitBreaker(repo AuditRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *AuditRepositoryWithCircuitBreaker {
	return &AuditRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a document. Writes are dropped while the circuit is open.
func (r *AuditRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *AuditDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, doc)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query reads documents with circuit breaker protection.
func (r *AuditRepositoryWithCircuitBreaker) Query(ctx context.Context, opts AuditQueryOptions) ([]*AuditDocument, error) {
	var result []*AuditDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count counts documents with circuit breaker protection.
func (r *AuditRepositoryWithCircuitBreaker) Count(ctx context.Context, opts AuditQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *AuditRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
