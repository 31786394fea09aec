// Package app provides authentication initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/production-gateway/config"
	"github.com/guttosm/production-gateway/internal/middleware"
)

// InitializeAuth builds the credentials accepted on /api. A disabled
// configuration yields an empty AuthConfig, which lets every request through.
func InitializeAuth(cfg config.AuthConfig) middleware.AuthConfig {
	if !cfg.Enabled {
		log.Info().Msg("Authentication disabled")
		return middleware.AuthConfig{}
	}

	auth := middleware.AuthConfig{
		APIKeys: cfg.APIKeys,
		Tokens:  middleware.NewTokenValidator(cfg.JWTSecretKey),
	}
	if !auth.Enabled() {
		log.Warn().Msg("AUTH_ENABLED is set but neither API_KEYS nor JWT_SECRET_KEY is configured; the API is open")
		return auth
	}

	log.Info().
		Int("api_keys", len(auth.APIKeys)).
		Bool("bearer_tokens", auth.Tokens != nil).
		Msg("Authentication enabled")
	return auth
}
