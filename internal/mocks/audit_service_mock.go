// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/production-gateway/internal/domain/model"
)

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, entry *model.AuditEntry) {
	m.Called(ctx, entry)
}

func (m *MockAuditService) Query(ctx context.Context, q model.AuditQuery) ([]model.AuditEntry, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AuditEntry), args.Error(1)
}

func (m *MockAuditService) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockAuditService) Wait() {
	m.Called()
}
