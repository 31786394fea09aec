package service

import (
	"context"

	"github.com/guttosm/production-gateway/internal/domain/model"
	"github.com/guttosm/production-gateway/internal/normalize"
)

// ProductionService builds production plans from the manufacturing service's suggestions.
type ProductionService interface {
	// Plan fetches the current suggestion and returns it ranked by unit value with its total.
	Plan(ctx context.Context) (model.ProductionPlan, error)
}

// ProductionServiceImpl implements ProductionService.
type ProductionServiceImpl struct {
	client ManufacturingClient
}

// NewProductionService creates a production service.
func NewProductionService(client ManufacturingClient) ProductionService {
	return &ProductionServiceImpl{client: client}
}

func (s *ProductionServiceImpl) Plan(ctx context.Context) (model.ProductionPlan, error) {
	raw, err := s.client.ProductionSuggestions(ctx)
	if err != nil {
		return model.ProductionPlan{}, err
	}
	return normalize.BuildPlan(normalize.Suggestions(raw)), nil
}
