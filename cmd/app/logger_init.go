package main

import (
	"os"

	"github.com/osse101/GrandLineBot_Go/internal/config"
	"github.com/osse101/GrandLineBot_Go/internal/logger"
)

const serviceName = "grandlinebot"

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Determine if we should add source info (only in dev)
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		serviceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	logger.Init(loggerConfig, os.Stdout)
}
