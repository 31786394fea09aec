//go:build !integration

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/production-gateway/config"
)

func TestInitializeAuth(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.AuthConfig
		wantEnabled bool
		wantKeys    int
		wantTokens  bool
	}{
		{
			name: "disabled ignores configured credentials",
			cfg:  config.AuthConfig{APIKeys: map[string]bool{"k": true}, JWTSecretKey: "s"},
		},
		{
			name:        "api keys only",
			cfg:         config.AuthConfig{Enabled: true, APIKeys: map[string]bool{"k1": true, "k2": true}},
			wantEnabled: true,
			wantKeys:    2,
		},
		{
			name:        "jwt secret only",
			cfg:         config.AuthConfig{Enabled: true, JWTSecretKey: "secret"},
			wantEnabled: true,
			wantTokens:  true,
		},
		{
			name: "enabled without credentials stays open",
			cfg:  config.AuthConfig{Enabled: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := InitializeAuth(tt.cfg)

			assert.Equal(t, tt.wantEnabled, auth.Enabled())
			assert.Len(t, auth.APIKeys, tt.wantKeys)
			assert.Equal(t, tt.wantTokens, auth.Tokens != nil)
		})
	}
}
