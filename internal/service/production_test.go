package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/production-gateway/internal/domain/model"
	"github.com/guttosm/production-gateway/internal/mocks"
	"github.com/guttosm/production-gateway/internal/service"
)

func TestProductionService_Plan(t *testing.T) {
	tests := []struct {
		name      string
		response  any
		err       error
		wantCodes []string
		wantTotal float64
		wantSrc   string
		wantErr   bool
	}{
		{
			name: "bare list ranked by unit value",
			response: []any{
				map[string]any{"productId": 1.0, "code": "P-1", "name": "Stool", "quantity": 2.0, "unitValue": 10.0},
				map[string]any{"productId": 2.0, "code": "P-2", "name": "Table", "quantity": 1.0, "unitValue": 50.0},
			},
			wantCodes: []string{"P-2", "P-1"},
			wantTotal: 70,
			wantSrc:   model.TotalSourceComputed,
		},
		{
			name: "envelope keeps the reported total",
			response: map[string]any{
				"products": []any{
					map[string]any{"productCode": "P-1", "productValue": 5.0, "producibleQuantity": 3.0, "subtotal": 15.0},
				},
				"totalValue": 99.0,
			},
			wantCodes: []string{"P-1"},
			wantTotal: 99,
			wantSrc:   model.TotalSourceService,
		},
		{
			name:      "unexpected shape yields an empty plan",
			response:  "nope",
			wantCodes: []string{},
			wantSrc:   model.TotalSourceComputed,
		},
		{
			name:    "upstream error",
			err:     errors.New("Service Unavailable"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.MockManufacturingClient)
			client.On("ProductionSuggestions", mock.Anything).Return(tt.response, tt.err)

			plan, err := service.NewProductionService(client).Plan(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			codes := make([]string, 0, len(plan.Entries))
			for _, e := range plan.Entries {
				codes = append(codes, e.Code)
			}
			assert.Equal(t, tt.wantCodes, codes)
			assert.InDelta(t, tt.wantTotal, plan.TotalValue, 1e-9)
			assert.Equal(t, tt.wantSrc, plan.TotalSource)
		})
	}
}

func TestPlanView_StartsLoading(t *testing.T) {
	view := service.NewPlanView(new(mocks.MockProductionService), nil)

	snap := view.Snapshot()
	assert.Equal(t, service.PlanLoading, snap.State)
	assert.Nil(t, snap.Plan)
	assert.Empty(t, snap.Error)

	_, err := view.ReadyPlan()
	assert.ErrorIs(t, err, service.ErrPlanNotReady)
}

func TestPlanView_Refresh(t *testing.T) {
	plan := model.ProductionPlan{
		Entries:     []model.SuggestionEntry{{Code: "P-1", Quantity: 2, UnitValue: 10, Subtotal: 20}},
		TotalValue:  20,
		TotalSource: model.TotalSourceComputed,
	}

	production := new(mocks.MockProductionService)
	production.On("Plan", mock.Anything).Return(plan, nil).Once()
	production.On("Plan", mock.Anything).Return(model.ProductionPlan{}, errors.New("Service Unavailable")).Once()
	production.On("Plan", mock.Anything).Return(plan, nil).Once()

	audit := new(mocks.MockAuditService)
	audit.On("Record", mock.Anything, auditWith(model.ActionRefreshPlan, model.OutcomeSuccess)).Twice()
	audit.On("Record", mock.Anything, auditWith(model.ActionRefreshPlan, model.OutcomeFailure)).Once()

	view := service.NewPlanView(production, audit)
	ctx := context.Background()

	ready := view.Refresh(ctx)
	assert.Equal(t, service.PlanReady, ready.State)
	require.NotNil(t, ready.Plan)
	assert.Equal(t, plan, *ready.Plan)
	assert.False(t, ready.UpdatedAt.IsZero())

	failed := view.Refresh(ctx)
	assert.Equal(t, service.PlanFailed, failed.State)
	assert.Nil(t, failed.Plan)
	assert.Equal(t, "Error loading production suggestion: Service Unavailable", failed.Error)

	_, err := view.ReadyPlan()
	assert.ErrorIs(t, err, service.ErrPlanNotReady)

	again := view.Refresh(ctx)
	assert.Equal(t, service.PlanReady, again.State)
	assert.Empty(t, again.Error)

	got, err := view.ReadyPlan()
	require.NoError(t, err)
	assert.Equal(t, plan, got)

	production.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestPlanView_SnapshotIsACopy(t *testing.T) {
	production := new(mocks.MockProductionService)
	production.On("Plan", mock.Anything).Return(model.ProductionPlan{
		Entries: []model.SuggestionEntry{{Code: "P-1"}},
	}, nil)

	view := service.NewPlanView(production, nil)
	snap := view.Refresh(context.Background())
	snap.Plan.Entries[0].Code = "changed"

	assert.Equal(t, "P-1", view.Snapshot().Plan.Entries[0].Code)
}

func TestPlanView_RefreshIgnoresCallerCancellation(t *testing.T) {
	production := new(mocks.MockProductionService)
	production.On("Plan", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	})).Return(model.EmptyPlan(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap := service.NewPlanView(production, nil).Refresh(ctx)

	assert.Equal(t, service.PlanReady, snap.State)
	production.AssertExpectations(t)
}

func TestPlanView_ConcurrentRefresh(t *testing.T) {
	production := new(mocks.MockProductionService)
	production.On("Plan", mock.Anything).Return(model.EmptyPlan(), nil)

	view := service.NewPlanView(production, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			view.Refresh(context.Background())
			_ = view.Snapshot()
		}()
	}
	wg.Wait()

	assert.Equal(t, service.PlanReady, view.Snapshot().State)
	production.AssertNumberOfCalls(t, "Plan", 8)
}
