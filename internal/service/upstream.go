package service

import (
	"context"

	"github.com/guttosm/production-gateway/internal/domain/model"
	"github.com/guttosm/production-gateway/internal/manufacturing"
)

// ManufacturingClient is the subset of the manufacturing service client used by the services.
// This interface can be mocked for testing.
type ManufacturingClient interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, p model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, id model.ID, p model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id model.ID) error

	ListRawMaterials(ctx context.Context) ([]model.RawMaterial, error)
	CreateRawMaterial(ctx context.Context, m model.RawMaterial) (*model.RawMaterial, error)
	UpdateRawMaterial(ctx context.Context, id model.ID, m model.RawMaterial) (*model.RawMaterial, error)
	DeleteRawMaterial(ctx context.Context, id model.ID) error

	ListCompositions(ctx context.Context) ([]model.Record, error)
	GetComposition(ctx context.Context, associationID model.ID) (model.Record, error)
	CreateComposition(ctx context.Context, payload model.Record) (model.Record, error)
	UpdateComposition(ctx context.Context, associationID model.ID, payload model.Record) (model.Record, error)
	DeleteComposition(ctx context.Context, associationID model.ID) error

	ProductionSuggestions(ctx context.Context) (any, error)
}

var _ ManufacturingClient = (*manufacturing.Client)(nil)
