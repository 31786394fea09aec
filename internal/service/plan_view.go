package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/guttosm/production-gateway/internal/domain/model"
	"github.com/guttosm/production-gateway/internal/logger"
	"github.com/guttosm/production-gateway/internal/metrics"
)

// PlanErrorPrefix precedes the failure message shown by a failed plan view.
const PlanErrorPrefix = "Error loading production suggestion: "

// ErrPlanNotReady is returned when a ready plan is required but the view is loading or failed.
var ErrPlanNotReady = errors.New("production plan is not ready")

// PlanState is the state of the production plan view.
type PlanState string

// Plan view states.
const (
	PlanLoading PlanState = "loading"
	PlanReady   PlanState = "ready"
	PlanFailed  PlanState = "failed"
)

// PlanSnapshot is a consistent copy of the view. Plan is set only when State is ready;
// Error only when it is failed.
type PlanSnapshot struct {
	State     PlanState
	Plan      *model.ProductionPlan
	Error     string
	UpdatedAt time.Time
}

// PlanView holds the last loaded production plan. It starts loading and only
// changes on an explicit Refresh. Concurrent refreshes are not sequenced: each
// commits its own result, so the last one to complete wins.
type PlanView struct {
	production ProductionService
	audit      AuditService
	now        func() time.Time

	mu        sync.RWMutex
	state     PlanState
	plan      model.ProductionPlan
	errMsg    string
	updatedAt time.Time
}

// NewPlanView creates a view in the loading state. audit may be nil.
func NewPlanView(production ProductionService, audit AuditService) *PlanView {
	return &PlanView{
		production: production,
		audit:      audit,
		now:        time.Now,
		state:      PlanLoading,
	}
}

// Snapshot returns the current state of the view.
func (v *PlanView) Snapshot() PlanSnapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.snapshotLocked()
}

// ReadyPlan returns the loaded plan, or ErrPlanNotReady.
func (v *PlanView) ReadyPlan() (model.ProductionPlan, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.state != PlanReady {
		return model.ProductionPlan{}, ErrPlanNotReady
	}
	return clonePlan(v.plan), nil
}

// Refresh reloads the plan and returns the state it committed. The fetch is not
// cancelled when ctx is.
func (v *PlanView) Refresh(ctx context.Context) PlanSnapshot {
	v.mu.Lock()
	v.state = PlanLoading
	v.mu.Unlock()

	plan, err := v.production.Plan(context.WithoutCancel(ctx))

	v.mu.Lock()
	defer v.mu.Unlock()

	v.updatedAt = v.now().UTC()
	if err != nil {
		v.state = PlanFailed
		v.plan = model.ProductionPlan{}
		v.errMsg = PlanErrorPrefix + err.Error()

		logger.FromContext(ctx).Warn().Err(err).Msg("Production plan refresh failed")
		metrics.RecordPlanRefresh(model.OutcomeFailure, 0)
	} else {
		v.state = PlanReady
		v.plan = plan
		v.errMsg = ""

		logger.FromContext(ctx).Debug().
			Int("entries", len(plan.Entries)).
			Float64("total_value", plan.TotalValue).
			Msg("Production plan refreshed")
		metrics.RecordPlanRefresh(model.OutcomeSuccess, len(plan.Entries))
	}

	if v.audit != nil {
		v.audit.Record(ctx, auditEntry(model.ActionRefreshPlan, "", err))
	}
	return v.snapshotLocked()
}

func (v *PlanView) snapshotLocked() PlanSnapshot {
	s := PlanSnapshot{State: v.state, UpdatedAt: v.updatedAt}
	switch v.state {
	case PlanReady:
		plan := clonePlan(v.plan)
		s.Plan = &plan
	case PlanFailed:
		s.Error = v.errMsg
	}
	return s
}

func clonePlan(p model.ProductionPlan) model.ProductionPlan {
	entries := make([]model.SuggestionEntry, len(p.Entries))
	copy(entries, p.Entries)
	p.Entries = entries
	return p
}
