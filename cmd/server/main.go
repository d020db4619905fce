package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/developerfelipemoraes/vehiclecatalog/internal/app"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/config"
	"github.com/developerfelipemoraes/vehiclecatalog/internal/logging"
)

func main() {
	// Optional .env for local development; missing file is fine
	_ = godotenv.Load()

	cfg := config.Load()

	application, err := app.New(cfg)
	if err != nil {
		logger := logging.New(logging.LevelError)
		logger.Error("Failed to initialize", logging.WithField("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		application.Logger.Error("Server exited", logging.WithField("error", err.Error()))
		os.Exit(1)
	}
}
