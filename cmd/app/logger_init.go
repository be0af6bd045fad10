package main

import (
	"github.com/osse101/DeluxeGrabber_Go/internal/config"
	"github.com/osse101/DeluxeGrabber_Go/internal/logger"
)

// initLogger initializes the logger from the service configuration.
// Source locations are only added in development.
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))
}
