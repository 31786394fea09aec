// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/production-gateway/config"
	"github.com/guttosm/production-gateway/internal/http"
)

// App is the wired gateway.
type App struct {
	Router *gin.Engine

	services *ServiceComponents
	database *DatabaseComponents
	router   *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	InitializeLogger(cfg.Log)

	database := InitializeDatabase(cfg.Database)
	services := InitializeServices(cfg.Upstream, database)
	router := InitializeRouter(cfg, services, database)

	return &App{
		Router:   http.NewRouter(router.Handlers, router.Config),
		services: services,
		database: database,
		router:   router,
	}
}

// Start loads the production plan view in the background.
func (a *App) Start(ctx context.Context) {
	go func() {
		snapshot := a.services.PlanView.Refresh(ctx)
		log.Info().Str("state", string(snapshot.State)).Msg("Initial production plan load finished")
	}()
}

// Close flushes pending audit writes and releases background resources.
func (a *App) Close(ctx context.Context) {
	a.services.Audit.Wait()
	a.router.Close()
	a.database.Close(ctx)
}
