//go:build !integration

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/production-gateway/config"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	db := InitializeDatabase(config.DatabaseConfig{Enabled: false, URI: "mongodb://localhost:27017"})

	assert.Nil(t, db)
	assert.NotPanics(t, func() { db.Close(context.Background()) })
}

func TestInitializeServices_WithoutDatabase(t *testing.T) {
	services := InitializeServices(config.UpstreamConfig{BaseURL: "http://upstream/api/"}, nil)

	assert.Equal(t, "http://upstream/api", services.Client.BaseURL())
	assert.Equal(t, upstreamBreakerName, services.CircuitBreaker.Name())
	assert.False(t, services.Audit.Enabled())
	assert.NotNil(t, services.PlanView)
}
