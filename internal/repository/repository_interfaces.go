package repository

import "context"

// AuditRepositoryInterface defines the audit trail storage operations.
type AuditRepositoryInterface interface {
	Create(ctx context.Context, doc *AuditDocument) error
	Query(ctx context.Context, opts AuditQueryOptions) ([]*AuditDocument, error)
	Count(ctx context.Context, opts AuditQueryOptions) (int64, error)
}

var (
	_ AuditRepositoryInterface = (*AuditRepository)(nil)
	_ AuditRepositoryInterface = (*AuditRepositoryWithCircuitBreaker)(nil)
)
