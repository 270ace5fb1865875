// main.go
package main

import (
	"context"
	"log"
	"time"

	"telegram-auth/cmd"
	"telegram-auth/internal/data/repository"
	"telegram-auth/internal/wire"
	"telegram-auth/pkg/database"
	"telegram-auth/pkg/telegram"
	"telegram-auth/pkg/utils"

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
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Create tables if missing; safe to run on every startup
	schemaCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repository.EnsureSchema(schemaCtx, db); err != nil {
		logger.Fatal("Failed to ensure schema", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Outbound Telegram client. Without BOT_TOKEN the server still runs;
	// code delivery fails per request instead.
	sender := telegram.NewClient(config.Telegram, logger)
	if config.Telegram.BotToken == "" {
		logger.Warn("BOT_TOKEN not set, OTP delivery will fail")
	}

	// Wire all dependencies
	app := wire.Wiring(repos, sender, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
