// Package app provides router configuration.
package app

import (
	"github.com/guttosm/production-gateway/config"
	"github.com/guttosm/production-gateway/internal/http"
	"github.com/guttosm/production-gateway/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handlers http.Handlers
	Config   http.RouterConfig
}

// InitializeRouter creates the HTTP handlers and router configuration. db may be nil.
func InitializeRouter(cfg config.Config, services *ServiceComponents, db *DatabaseComponents) *RouterComponents {
	health := http.NewHealthHandler()
	health.RegisterCircuitBreaker(upstreamBreakerName, services.CircuitBreaker)
	if db != nil {
		health.RegisterChecker("mongodb", db.DB)
		health.RegisterCircuitBreaker(auditBreakerName, db.CircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		Auth:        InitializeAuth(cfg.Auth),
		Idempotency: middleware.NewIdempotencyConfig(cfg.Server.IdempotencyTTL),
		CORSOrigins: cfg.Server.CORSOrigins,
		SwaggerUser: cfg.Server.SwaggerUser,
		SwaggerPass: cfg.Server.SwaggerPass,
	}
	if cfg.Server.RateLimit > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	return &RouterComponents{
		Handlers: http.Handlers{
			Catalog:      http.NewCatalogHandler(services.Catalog),
			Compositions: http.NewCompositionHandler(services.Compositions),
			Production:   http.NewProductionHandler(services.Production, services.PlanView),
			Audit:        http.NewAuditHandler(services.Audit),
			Health:       health,
		},
		Config: routerCfg,
	}
}

// Close stops the background cleanup of the rate limiter and idempotency cache.
func (r *RouterComponents) Close() {
	if r.Config.RateLimiter != nil {
		r.Config.RateLimiter.Stop()
	}
	if r.Config.Idempotency.Cache != nil {
		r.Config.Idempotency.Cache.Stop()
	}
}
