package main

import (
	"log"
	"os"

	"github.com/karkabahamza/multisales/internal/app"
	"github.com/karkabahamza/multisales/internal/config"
	"github.com/karkabahamza/multisales/internal/demo"
	"github.com/karkabahamza/multisales/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	platform := app.New(cfg, appLogger, app.SystemClock{}, app.UUIDGenerator{})

	if err := demo.Run(os.Stdout, platform); err != nil {
		appLogger.WithError(err).Fatal("demo failed")
	}
}
