package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/production-gateway/internal/domain/model"
	"github.com/guttosm/production-gateway/internal/manufacturing"
	"github.com/guttosm/production-gateway/internal/mocks"
	"github.com/guttosm/production-gateway/internal/service"
)

func auditWith(action, outcome string) any {
	return mock.MatchedBy(func(e *model.AuditEntry) bool {
		return e.Action == action && e.Outcome == outcome
	})
}

func TestCatalogService_Products(t *testing.T) {
	chair := model.Product{Code: "P-1", Name: "Chair", Value: 149.9}

	t.Run("list passes through", func(t *testing.T) {
		client := new(mocks.MockManufacturingClient)
		client.On("ListProducts", mock.Anything).Return([]model.Product{chair}, nil)

		products, err := service.NewCatalogService(client, nil).ListProducts(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []model.Product{chair}, products)
	})

	t.Run("create is audited", func(t *testing.T) {
		created := chair
		created.ID = "1"

		client := new(mocks.MockManufacturingClient)
		client.On("CreateProduct", mock.Anything, chair).Return(&created, nil)
		audit := new(mocks.MockAuditService)
		audit.On("Record", mock.Anything, auditWith(model.ActionCreateProduct, model.OutcomeSuccess)).Once()

		got, err := service.NewCatalogService(client, audit).CreateProduct(context.Background(), chair)

		require.NoError(t, err)
		assert.Equal(t, model.ID("1"), got.ID)
		audit.AssertExpectations(t)
	})

	t.Run("failed update is audited as failure", func(t *testing.T) {
		upstreamErr := &manufacturing.ServiceError{StatusCode: 404, Message: "Not Found"}

		client := new(mocks.MockManufacturingClient)
		client.On("UpdateProduct", mock.Anything, model.ID("9"), chair).Return(nil, upstreamErr)
		audit := new(mocks.MockAuditService)
		audit.On("Record", mock.Anything, auditWith(model.ActionUpdateProduct, model.OutcomeFailure)).Once()

		got, err := service.NewCatalogService(client, audit).UpdateProduct(context.Background(), "9", chair)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, upstreamErr)
		audit.AssertExpectations(t)
	})

	t.Run("delete", func(t *testing.T) {
		client := new(mocks.MockManufacturingClient)
		client.On("DeleteProduct", mock.Anything, model.ID("1")).Return(nil)

		err := service.NewCatalogService(client, nil).DeleteProduct(context.Background(), "1")

		assert.NoError(t, err)
		client.AssertExpectations(t)
	})
}

func TestCatalogService_RawMaterials(t *testing.T) {
	wood := model.RawMaterial{Code: "RM-1", Name: "Wood", StockQuantity: 10}

	client := new(mocks.MockManufacturingClient)
	client.On("ListRawMaterials", mock.Anything).Return([]model.RawMaterial{wood}, nil)
	client.On("CreateRawMaterial", mock.Anything, wood).Return(nil, nil)
	client.On("UpdateRawMaterial", mock.Anything, model.ID("3"), wood).Return(&wood, nil)
	client.On("DeleteRawMaterial", mock.Anything, model.ID("3")).Return(errors.New("boom"))

	svc := service.NewCatalogService(client, nil)
	ctx := context.Background()

	materials, err := svc.ListRawMaterials(ctx)
	require.NoError(t, err)
	assert.Len(t, materials, 1)

	created, err := svc.CreateRawMaterial(ctx, wood)
	require.NoError(t, err)
	assert.Nil(t, created)

	updated, err := svc.UpdateRawMaterial(ctx, "3", wood)
	require.NoError(t, err)
	assert.Equal(t, "Wood", updated.Name)

	assert.EqualError(t, svc.DeleteRawMaterial(ctx, "3"), "boom")
}

func TestCatalogService_RejectsEmptyID(t *testing.T) {
	client := new(mocks.MockManufacturingClient)
	svc := service.NewCatalogService(client, nil)
	ctx := context.Background()

	_, err := svc.UpdateProduct(ctx, "", model.Product{})
	assert.ErrorIs(t, err, service.ErrInvalidID)
	assert.ErrorIs(t, svc.DeleteProduct(ctx, ""), service.ErrInvalidID)
	_, err = svc.UpdateRawMaterial(ctx, "", model.RawMaterial{})
	assert.ErrorIs(t, err, service.ErrInvalidID)
	assert.ErrorIs(t, svc.DeleteRawMaterial(ctx, ""), service.ErrInvalidID)

	client.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "DeleteRawMaterial", mock.Anything, mock.Anything)
}
