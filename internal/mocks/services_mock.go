// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/production-gateway/internal/domain/model"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogService) CreateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) UpdateProduct(ctx context.Context, id model.ID, p model.Product) (*model.Product, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) DeleteProduct(ctx context.Context, id model.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) ListRawMaterials(ctx context.Context) ([]model.RawMaterial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RawMaterial), args.Error(1)
}

func (m *MockCatalogService) CreateRawMaterial(ctx context.Context, rm model.RawMaterial) (*model.RawMaterial, error) {
	args := m.Called(ctx, rm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RawMaterial), args.Error(1)
}

func (m *MockCatalogService) UpdateRawMaterial(ctx context.Context, id model.ID, rm model.RawMaterial) (*model.RawMaterial, error) {
	args := m.Called(ctx, id, rm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RawMaterial), args.Error(1)
}

func (m *MockCatalogService) DeleteRawMaterial(ctx context.Context, id model.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCompositionService struct {
	mock.Mock
}

func (m *MockCompositionService) List(ctx context.Context) ([]model.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockCompositionService) ListByProduct(ctx context.Context, productID model.ID) ([]model.Record, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockCompositionService) Get(ctx context.Context, associationID model.ID) (model.Record, error) {
	args := m.Called(ctx, associationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockCompositionService) Create(ctx context.Context, payload model.Record) (model.Record, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockCompositionService) Update(ctx context.Context, associationID model.ID, payload model.Record) (model.Record, error) {
	args := m.Called(ctx, associationID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockCompositionService) Delete(ctx context.Context, associationID model.ID) error {
	args := m.Called(ctx, associationID)
	return args.Error(0)
}

func (m *MockCompositionService) CreateLegacy(ctx context.Context, callArgs ...any) (model.Record, error) {
	args := m.Called(ctx, callArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockCompositionService) UpdateLegacy(ctx context.Context, callArgs ...any) (model.Record, error) {
	args := m.Called(ctx, callArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockCompositionService) DeleteLegacy(ctx context.Context, callArgs ...any) error {
	args := m.Called(ctx, callArgs)
	return args.Error(0)
}

type MockProductionService struct {
	mock.Mock
}

func (m *MockProductionService) Plan(ctx context.Context) (model.ProductionPlan, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.ProductionPlan), args.Error(1)
}
