package service

import (
	"context"
	"errors"

	"github.com/guttosm/production-gateway/internal/domain/model"
)

// ErrInvalidID is returned when an operation addressed by id receives an empty id.
var ErrInvalidID = errors.New("id is required")

// CatalogService manages products and raw materials on the manufacturing service.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, p model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, id model.ID, p model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id model.ID) error

	ListRawMaterials(ctx context.Context) ([]model.RawMaterial, error)
	CreateRawMaterial(ctx context.Context, m model.RawMaterial) (*model.RawMaterial, error)
	UpdateRawMaterial(ctx context.Context, id model.ID, m model.RawMaterial) (*model.RawMaterial, error)
	DeleteRawMaterial(ctx context.Context, id model.ID) error
}

// CatalogServiceImpl forwards catalogue operations upstream and audits mutations.
type CatalogServiceImpl struct {
	client ManufacturingClient
	audit  AuditService
}

// NewCatalogService creates a catalogue service. audit may be nil.
func NewCatalogService(client ManufacturingClient, audit AuditService) CatalogService {
	return &CatalogServiceImpl{client: client, audit: audit}
}

func (s *CatalogServiceImpl) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.client.ListProducts(ctx)
}

func (s *CatalogServiceImpl) CreateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	created, err := s.client.CreateProduct(ctx, p)
	s.record(ctx, auditEntry(model.ActionCreateProduct, p.Code, err).WithField("product", p))
	return created, err
}

func (s *CatalogServiceImpl) UpdateProduct(ctx context.Context, id model.ID, p model.Product) (*model.Product, error) {
	if id.IsZero() {
		return nil, ErrInvalidID
	}
	updated, err := s.client.UpdateProduct(ctx, id, p)
	s.record(ctx, auditEntry(model.ActionUpdateProduct, id.String(), err).WithField("product", p))
	return updated, err
}

func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, id model.ID) error {
	if id.IsZero() {
		return ErrInvalidID
	}
	err := s.client.DeleteProduct(ctx, id)
	s.record(ctx, auditEntry(model.ActionDeleteProduct, id.String(), err))
	return err
}

func (s *CatalogServiceImpl) ListRawMaterials(ctx context.Context) ([]model.RawMaterial, error) {
	return s.client.ListRawMaterials(ctx)
}

func (s *CatalogServiceImpl) CreateRawMaterial(ctx context.Context, m model.RawMaterial) (*model.RawMaterial, error) {
	created, err := s.client.CreateRawMaterial(ctx, m)
	s.record(ctx, auditEntry(model.ActionCreateRawMaterial, m.Code, err).WithField("raw_material", m))
	return created, err
}

func (s *CatalogServiceImpl) UpdateRawMaterial(ctx context.Context, id model.ID, m model.RawMaterial) (*model.RawMaterial, error) {
	if id.IsZero() {
		return nil, ErrInvalidID
	}
	updated, err := s.client.UpdateRawMaterial(ctx, id, m)
	s.record(ctx, auditEntry(model.ActionUpdateRawMaterial, id.String(), err).WithField("raw_material", m))
	return updated, err
}

func (s *CatalogServiceImpl) DeleteRawMaterial(ctx context.Context, id model.ID) error {
	if id.IsZero() {
		return ErrInvalidID
	}
	err := s.client.DeleteRawMaterial(ctx, id)
	s.record(ctx, auditEntry(model.ActionDeleteRawMaterial, id.String(), err))
	return err
}

func (s *CatalogServiceImpl) record(ctx context.Context, entry *model.AuditEntry) {
	if s.audit != nil {
		s.audit.Record(ctx, entry)
	}
}
