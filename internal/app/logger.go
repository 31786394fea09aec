// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/production-gateway/config"
	"github.com/guttosm/production-gateway/internal/logger"
)

// InitializeLogger initializes the global logger from the log configuration.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
