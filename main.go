// main.go
package main

import (
	"context"
	"log"

	"foodgram-admin/cmd"
	"foodgram-admin/internal/data/backend"
	"foodgram-admin/internal/session"
	"foodgram-admin/internal/wire"
	"foodgram-admin/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("backend", config.Backend.BaseURL),
		zap.Bool("debug", config.App.Debug),
	)

	// Restore the persisted admin session, if any
	store := session.NewStore(config.Console.SessionFile, logger)
	if admin := store.Current(); admin != nil {
		logger.Info("Session restored", zap.String("email", admin.Email))
	}

	// Backend API client
	api := backend.NewClient(config.Backend, store, logger)

	// Wire all dependencies
	app := wire.Wiring(api, store, config, logger)

	// Badge counts refresh in the background for the lifetime of the process
	app.Poller.Start(context.Background())
	defer app.Poller.Stop()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
