// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/production-gateway/internal/domain/model"
)

type MockManufacturingClient struct {
	mock.Mock
}

func (m *MockManufacturingClient) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockManufacturingClient) CreateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockManufacturingClient) UpdateProduct(ctx context.Context, id model.ID, p model.Product) (*model.Product, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockManufacturingClient) DeleteProduct(ctx context.Context, id model.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockManufacturingClient) ListRawMaterials(ctx context.Context) ([]model.RawMaterial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RawMaterial), args.Error(1)
}

func (m *MockManufacturingClient) CreateRawMaterial(ctx context.Context, rm model.RawMaterial) (*model.RawMaterial, error) {
	args := m.Called(ctx, rm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RawMaterial), args.Error(1)
}

func (m *MockManufacturingClient) UpdateRawMaterial(ctx context.Context, id model.ID, rm model.RawMaterial) (*model.RawMaterial, error) {
	args := m.Called(ctx, id, rm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RawMaterial), args.Error(1)
}

func (m *MockManufacturingClient) DeleteRawMaterial(ctx context.Context, id model.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockManufacturingClient) ListCompositions(ctx context.Context) ([]model.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockManufacturingClient) GetComposition(ctx context.Context, associationID model.ID) (model.Record, error) {
	args := m.Called(ctx, associationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockManufacturingClient) CreateComposition(ctx context.Context, payload model.Record) (model.Record, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockManufacturingClient) UpdateComposition(ctx context.Context, associationID model.ID, payload model.Record) (model.Record, error) {
	args := m.Called(ctx, associationID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockManufacturingClient) DeleteComposition(ctx context.Context, associationID model.ID) error {
	args := m.Called(ctx, associationID)
	return args.Error(0)
}

func (m *MockManufacturingClient) ProductionSuggestions(ctx context.Context) (any, error) {
	args := m.Called(ctx)
	return args.Get(0), args.Error(1)
}
