package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/guttosm/production-gateway/internal/domain/model"
	"github.com/guttosm/production-gateway/internal/logger"
	"github.com/guttosm/production-gateway/internal/repository"
)

// auditWriteTimeout bounds a single detached audit write.
const auditWriteTimeout = 5 * time.Second

// ErrAuditDisabled is returned by Query when no audit store is configured.
var ErrAuditDisabled = errors.New("audit trail is disabled")

// AuditService records mutations forwarded to the manufacturing service.
type AuditService interface {
	// Record stores the entry without blocking the caller. Request id and actor are
	// taken from ctx when the entry does not carry them.
	Record(ctx context.Context, entry *model.AuditEntry)

	// Query returns entries matching q, newest first.
	Query(ctx context.Context, q model.AuditQuery) ([]model.AuditEntry, error)

	// Enabled reports whether entries are persisted.
	Enabled() bool

	// Wait blocks until pending writes finish.
	Wait()
}

// AuditServiceImpl implements AuditService over an audit repository.
// A nil repository turns every Record into a no-op.
type AuditServiceImpl struct {
	repo repository.AuditRepositoryInterface
	wg   sync.WaitGroup
}

// NewAuditService creates an audit service. repo may be nil when MongoDB is disabled.
func NewAuditService(repo repository.AuditRepositoryInterface) *AuditServiceImpl {
	return &AuditServiceImpl{repo: repo}
}

// Enabled reports whether an audit repository is configured.
func (s *AuditServiceImpl) Enabled() bool {
	return s.repo != nil
}

// Record stores the entry asynchronously.
func (s *AuditServiceImpl) Record(ctx context.Context, entry *model.AuditEntry) {
	if s.repo == nil || entry == nil {
		return
	}

	if entry.RequestID == "" {
		entry.RequestID = logger.RequestIDFromContext(ctx)
	}
	if entry.Actor == "" {
		entry.Actor = logger.ActorFromContext(ctx)
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	doc := entryToDocument(entry)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		writeCtx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()

		if err := s.repo.Create(writeCtx, doc); err != nil {
			logger.FromContext(ctx).Warn().Err(err).
				Str("action", doc.Action).
				Msg("Failed to write audit entry")
		}
	}()
}

// Query retrieves audit entries.
func (s *AuditServiceImpl) Query(ctx context.Context, q model.AuditQuery) ([]model.AuditEntry, error) {
	if s.repo == nil {
		return nil, ErrAuditDisabled
	}

	docs, err := s.repo.Query(ctx, repository.AuditQueryOptions{
		Action:    q.Action,
		RequestID: q.RequestID,
		Subject:   q.Subject,
		StartTime: q.StartTime,
		EndTime:   q.EndTime,
		Limit:     q.Limit,
		Skip:      q.Skip,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]model.AuditEntry, len(docs))
	for i, doc := range docs {
		entries[i] = documentToEntry(doc)
	}
	return entries, nil
}

// Wait blocks until every detached write has returned.
func (s *AuditServiceImpl) Wait() {
	s.wg.Wait()
}

func entryToDocument(entry *model.AuditEntry) *repository.AuditDocument {
	return &repository.AuditDocument{
		ID:        entry.ID,
		Timestamp: entry.Timestamp,
		Action:    entry.Action,
		Outcome:   entry.Outcome,
		RequestID: entry.RequestID,
		Subject:   entry.Subject,
		Actor:     entry.Actor,
		Error:     entry.Error,
		Fields:    entry.Fields,
	}
}

func documentToEntry(doc *repository.AuditDocument) model.AuditEntry {
	return model.AuditEntry{
		ID:        doc.ID,
		Timestamp: doc.Timestamp,
		Action:    doc.Action,
		Outcome:   doc.Outcome,
		RequestID: doc.RequestID,
		Subject:   doc.Subject,
		Actor:     doc.Actor,
		Error:     doc.Error,
		Fields:    doc.Fields,
	}
}

// auditEntry builds an entry for action on subject from the outcome of a call.
func auditEntry(action, subject string, err error) *model.AuditEntry {
	entry := &model.AuditEntry{
		Action:  action,
		Subject: subject,
		Outcome: model.OutcomeSuccess,
	}
	if err != nil {
		entry.Outcome = model.OutcomeFailure
		entry.Error = err.Error()
	}
	return entry
}
