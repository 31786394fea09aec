package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/production-gateway/internal/metrics"
	"github.com/guttosm/production-gateway/internal/middleware"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	// RateLimiter throttles /api per caller. Nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
	Auth        middleware.AuthConfig
	Idempotency middleware.IdempotencyConfig
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// Handlers groups the route handlers served by the gateway.
type Handlers struct {
	Catalog      *CatalogHandler
	Compositions *CompositionHandler
	Production   *ProductionHandler
	Audit        *AuditHandler
	Health       *HealthHandler
}

// NewRouter creates and configures the Gin router for the production gateway.
func NewRouter(h Handlers, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, h.Health, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)
	registerAPIRoutes(api, h)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
		middleware.CORS(cfg.CORSOrigins),
		middleware.Compression(),
	)
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, health *HealthHandler, cfg *RouterConfig) {
	if health == nil {
		health = NewHealthHandler()
	}
	health.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group. Authentication
// runs first so rate limits and idempotency keys are scoped to the caller.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	api.Use(middleware.Authenticate(cfg.Auth))

	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.RateLimit())
	}

	api.Use(middleware.Idempotency(cfg.Idempotency))
}
