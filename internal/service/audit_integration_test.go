//go:build integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/production-gateway/internal/circuitbreaker"
	"github.com/guttosm/production-gateway/internal/domain/model"
	"github.com/guttosm/production-gateway/internal/repository"
	"github.com/guttosm/production-gateway/internal/testutil"
)

func TestAuditService_Integration(t *testing.T) {
	ctx := context.Background()

	mongoContainer, err := testutil.SetupMongoDB(ctx)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, mongoContainer.Cleanup(ctx))
	}()

	db, err := repository.NewMongoDB(mongoContainer.URI, "test_production_gateway")
	require.NoError(t, err)
	defer func() {
		_ = db.Close(ctx)
	}()

	repo := repository.NewAuditRepositoryWithCircuitBreaker(
		repository.NewAuditRepository(db),
		circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 2,
			SuccessThreshold: 1,
			Timeout:          100 * time.Millisecond,
			Name:             "test-audit",
		}),
	)
	audit := NewAuditService(repo)

	t.Run("record and query by request id", func(t *testing.T) {
		audit.Record(ctx, auditEntry(model.ActionCreateComposition, "7", nil).
			WithField("payload", map[string]any{"productId": 7, "rawMaterialId": 3}))
		audit.Record(ctx, &model.AuditEntry{
			Action:    model.ActionDeleteComposition,
			Outcome:   model.OutcomeFailure,
			RequestID: "req-int-1",
			Subject:   "11",
			Error:     "Not Found",
		})
		audit.Wait()

		entries, err := audit.Query(ctx, model.AuditQuery{RequestID: "req-int-1"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, model.ActionDeleteComposition, entries[0].Action)
		assert.Equal(t, "Not Found", entries[0].Error)
		assert.False(t, entries[0].ID.IsZero())
	})

	t.Run("query by action", func(t *testing.T) {
		entries, err := audit.Query(ctx, model.AuditQuery{Action: model.ActionCreateComposition})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "7", entries[0].Subject)
		assert.Equal(t, model.OutcomeSuccess, entries[0].Outcome)
		assert.Contains(t, entries[0].Fields, "payload")
	})
}
