package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"

	"foodnetwork/internal/accountd"
	"foodnetwork/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := accountd.LoadConfig(viper.New())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log)
	logger.Info("Starting Food Network account service...")

	store := accountd.NewStore(cfg.BcryptCost)
	if err := store.Seed(cfg.Seed); err != nil {
		logger.Fatalf("Failed to seed accounts: %v", err)
	}
	if len(cfg.Seed) > 0 {
		logger.Infof("Seeded %d development accounts", len(cfg.Seed))
	}
	server := accountd.NewServer(cfg, store)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorf("HTTP server panic recovered: %v", r)
			}
		}()
		errCh <- server.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-errCh:
		if err != nil {
			logger.Fatalf("HTTP server error: %v", err)
		}
		return
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
	logger.Info("Shutdown complete")
}
