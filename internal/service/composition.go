package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/production-gateway/internal/domain/model"
	"github.com/guttosm/production-gateway/internal/normalize"
)

// ErrMissingAssociationID is returned when an update or delete cannot tell which
// product-material association it addresses. No upstream call is made.
var ErrMissingAssociationID = errors.New("association id is required")

// CompositionService manages product-material associations.
type CompositionService interface {
	// List returns every association in canonical form.
	List(ctx context.Context) ([]model.Record, error)

	// ListByProduct returns the associations of one product with raw material
	// code and name filled in from the catalogue.
	ListByProduct(ctx context.Context, productID model.ID) ([]model.Record, error)

	Get(ctx context.Context, associationID model.ID) (model.Record, error)
	Create(ctx context.Context, payload model.Record) (model.Record, error)
	Update(ctx context.Context, associationID model.ID, payload model.Record) (model.Record, error)
	Delete(ctx context.Context, associationID model.ID) error

	// CreateLegacy, UpdateLegacy and DeleteLegacy accept the historical argument
	// lists and resolve them with the call-shape normalizer.
	CreateLegacy(ctx context.Context, args ...any) (model.Record, error)
	UpdateLegacy(ctx context.Context, args ...any) (model.Record, error)
	DeleteLegacy(ctx context.Context, args ...any) error
}

// CompositionServiceImpl implements CompositionService against the manufacturing service.
type CompositionServiceImpl struct {
	client ManufacturingClient
	audit  AuditService
}

// NewCompositionService creates a composition service. audit may be nil.
func NewCompositionService(client ManufacturingClient, audit AuditService) CompositionService {
	return &CompositionServiceImpl{client: client, audit: audit}
}

func (s *CompositionServiceImpl) List(ctx context.Context) ([]model.Record, error) {
	return s.client.ListCompositions(ctx)
}

func (s *CompositionServiceImpl) ListByProduct(ctx context.Context, productID model.ID) ([]model.Record, error) {
	if productID.IsZero() {
		return nil, ErrInvalidID
	}

	var (
		g            errgroup.Group
		compositions []model.Record
		catalogue    []model.RawMaterial
	)
	g.Go(func() error {
		var err error
		compositions, err = s.client.ListCompositions(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		catalogue, err = s.client.ListRawMaterials(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return normalize.JoinRawMaterials(normalize.FilterByProduct(compositions, productID), catalogue), nil
}

func (s *CompositionServiceImpl) Get(ctx context.Context, associationID model.ID) (model.Record, error) {
	if associationID.IsZero() {
		return nil, ErrMissingAssociationID
	}
	return s.client.GetComposition(ctx, associationID)
}

func (s *CompositionServiceImpl) Create(ctx context.Context, payload model.Record) (model.Record, error) {
	canonical := normalize.CanonicalizePayload(payload)
	if canonical == nil {
		canonical = model.Record{}
	}

	created, err := s.client.CreateComposition(ctx, canonical)
	subject := model.IDFrom(canonical[normalize.FieldProductID]).String()
	s.record(ctx, auditEntry(model.ActionCreateComposition, subject, err).WithField("payload", map[string]any(canonical)))
	return created, err
}

func (s *CompositionServiceImpl) Update(ctx context.Context, associationID model.ID, payload model.Record) (model.Record, error) {
	if associationID.IsZero() {
		return nil, ErrMissingAssociationID
	}

	canonical := normalize.CanonicalizePayload(payload)
	updated, err := s.client.UpdateComposition(ctx, associationID, canonical)

	entry := auditEntry(model.ActionUpdateComposition, associationID.String(), err)
	if canonical != nil {
		entry.WithField("payload", map[string]any(canonical))
	}
	s.record(ctx, entry)
	return updated, err
}

func (s *CompositionServiceImpl) Delete(ctx context.Context, associationID model.ID) error {
	if associationID.IsZero() {
		return ErrMissingAssociationID
	}

	err := s.client.DeleteComposition(ctx, associationID)
	s.record(ctx, auditEntry(model.ActionDeleteComposition, associationID.String(), err))
	return err
}

func (s *CompositionServiceImpl) CreateLegacy(ctx context.Context, args ...any) (model.Record, error) {
	return s.Create(ctx, normalize.CreateCall(args...))
}

func (s *CompositionServiceImpl) UpdateLegacy(ctx context.Context, args ...any) (model.Record, error) {
	d := normalize.UpdateCall(args...)
	return s.Update(ctx, model.IDFrom(d.AssociationID), d.Payload)
}

func (s *CompositionServiceImpl) DeleteLegacy(ctx context.Context, args ...any) error {
	return s.Delete(ctx, model.IDFrom(normalize.DeleteCall(args...)))
}

func (s *CompositionServiceImpl) record(ctx context.Context, entry *model.AuditEntry) {
	if s.audit != nil {
		s.audit.Record(ctx, entry)
	}
}
