package main

import (
	"github.com/osse101/itemforge/internal/config"
	"github.com/osse101/itemforge/internal/logger"
)

// initLogger installs the default logger from the app configuration.
// Source locations are only logged in dev.
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
