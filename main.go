package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/The-Bracket-Club/tourney-bot/app"
	"github.com/The-Bracket-Club/tourney-bot/config"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	obs, err := observability.Init(ctx, config.ToObsConfig(cfg))
	if err != nil {
		log.Fatalf("Failed to initialize observability: %v", err)
	}

	application := &app.App{}
	if err := application.Initialize(ctx, cfg, obs); err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := application.Run(ctx); err != nil {
		obs.Provider.Logger.Error("Application stopped with error", "error", err)
	}

	if err := application.Close(); err != nil {
		obs.Provider.Logger.Error("Error during shutdown", "error", err)
	}
}
