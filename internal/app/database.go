// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/production-gateway/config"
	"github.com/guttosm/production-gateway/internal/circuitbreaker"
	"github.com/guttosm/production-gateway/internal/repository"
)

const (
	auditBreakerName = "mongodb_audit"
	ttlSetupTimeout  = 5 * time.Second
)

// DatabaseComponents holds the MongoDB-backed audit trail.
type DatabaseComponents struct {
	DB             *repository.MongoDB
	AuditRepo      repository.AuditRepositoryInterface
	CircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the audit repository.
// Returns nil if the database is disabled or the connection fails: the gateway
// then runs without an audit trail.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without audit trail")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), ttlSetupTimeout)
	defer cancel()
	if err := db.SetAuditTTL(ctx, cfg.AuditTTL); err != nil {
		log.Warn().Err(err).Dur("ttl", cfg.AuditTTL).Msg("Failed to set audit TTL index")
	}

	breakerCfg := circuitbreaker.DefaultConfig()
	breakerCfg.Name = auditBreakerName
	breakerCfg.OnStateChange = recordBreakerState
	breaker := circuitbreaker.New(breakerCfg)

	return &DatabaseComponents{
		DB:             db,
		AuditRepo:      repository.NewAuditRepositoryWithCircuitBreaker(repository.NewAuditRepository(db), breaker),
		CircuitBreaker: breaker,
	}
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) {
	if d == nil || d.DB == nil {
		return
	}
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to close MongoDB connection")
	}
}
