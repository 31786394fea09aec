// Package app provides upstream and service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/production-gateway/config"
	"github.com/guttosm/production-gateway/internal/circuitbreaker"
	"github.com/guttosm/production-gateway/internal/manufacturing"
	"github.com/guttosm/production-gateway/internal/metrics"
	"github.com/guttosm/production-gateway/internal/repository"
	"github.com/guttosm/production-gateway/internal/service"
)

// upstreamBreakerName labels the manufacturing service breaker in logs, metrics and /readyz.
const upstreamBreakerName = "manufacturing"

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Client         *manufacturing.Client
	CircuitBreaker *circuitbreaker.CircuitBreaker
	Audit          service.AuditService
	Catalog        service.CatalogService
	Compositions   service.CompositionService
	Production     service.ProductionService
	PlanView       *service.PlanView
}

// InitializeServices creates the manufacturing client and the services built on it.
// db may be nil, in which case the audit trail is disabled.
func InitializeServices(cfg config.UpstreamConfig, db *DatabaseComponents) *ServiceComponents {
	breaker := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             upstreamBreakerName,
		IsFailure:        manufacturing.IsUpstreamFailure,
		OnStateChange:    recordBreakerState,
	})
	client := manufacturing.NewClient(cfg, manufacturing.WithCircuitBreaker(breaker))

	log.Info().
		Str("base_url", client.BaseURL()).
		Dur("timeout", cfg.Timeout).
		Msg("Manufacturing service client configured")

	var auditRepo repository.AuditRepositoryInterface
	if db != nil {
		auditRepo = db.AuditRepo
	}
	audit := service.NewAuditService(auditRepo)

	production := service.NewProductionService(client)

	return &ServiceComponents{
		Client:         client,
		CircuitBreaker: breaker,
		Audit:          audit,
		Catalog:        service.NewCatalogService(client, audit),
		Compositions:   service.NewCompositionService(client, audit),
		Production:     production,
		PlanView:       service.NewPlanView(production, audit),
	}
}

func recordBreakerState(name string, state circuitbreaker.State) {
	metrics.SetCircuitBreakerState(name, int(state))
	log.Warn().Str("circuit_breaker", name).Str("state", state.String()).Msg("Circuit breaker state changed")
}
