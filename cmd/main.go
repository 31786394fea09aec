// Package main is the entry point for the production gateway.
//
// @title           Production Gateway API
// @version         1.0.0
// @description     Backend-for-frontend in front of the manufacturing service.
//
//	Normalizes catalogue and composition payloads, assembles legacy composition
//	calls and serves the ranked production plan.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/production-gateway
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT bearer token: "Bearer {token}".
//
// @tag.name        Products
// @tag.description Product catalogue
//
// @tag.name        Raw materials
// @tag.description Raw material catalogue
//
// @tag.name        Compositions
// @tag.description Product/raw material associations
//
// @tag.name        Production
// @tag.description Production plan
//
// @tag.name        Audit
// @tag.description Audit trail of write operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"time"

	_ "github.com/guttosm/production-gateway/docs" // swagger docs

	"github.com/guttosm/production-gateway/config"
	"github.com/guttosm/production-gateway/internal/app"
	"github.com/rs/zerolog/log"
)

const closeTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	application.Start(context.Background())

	server := app.NewServer(application.Router, cfg.Server)
	err := server.Run()

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	application.Close(ctx)
	cancel()

	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
