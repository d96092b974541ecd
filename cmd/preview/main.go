package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/config"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/logger"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/server"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/storage"
)

// Serves generated reports over HTTP for review.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.NewDefault().WithComponent("preview")

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal("Failed to load configuration", err)
	}

	mode := storage.DeploymentLocal
	if cfg.Environment == "gcs" {
		mode = storage.DeploymentGCS
	}
	store, err := storage.NewStorageClient(ctx, mode, cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage", err)
	}
	defer store.Close()

	log.Info("Starting preview server", map[string]interface{}{
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"version":     config.GetVersion(),
	})

	if err := server.New(cfg, store).Run(ctx); err != nil {
		log.Fatal("Server failed", err)
	}
}
