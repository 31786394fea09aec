// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/production-gateway/internal/repository"
)

type MockAuditRepositoryInterface struct {
	mock.Mock
}

func (m *MockAuditRepositoryInterface) Create(ctx context.Context, doc *repository.AuditDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockAuditRepositoryInterface) Query(ctx context.Context, opts repository.AuditQueryOptions) ([]*repository.AuditDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.AuditDocument), args.Error(1)
}

func (m *MockAuditRepositoryInterface) Count(ctx context.Context, opts repository.AuditQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
