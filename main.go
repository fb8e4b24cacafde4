// main.go
package main

import (
	"log"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/cmd"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/repository"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/events"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/wire"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/pkg/cache"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/pkg/database"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/pkg/utils"

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

	// Optional dashboard cache; nil when Redis is disabled or unreachable
	rdb := cache.NewRedisClient(config.Redis, logger)
	if rdb != nil {
		defer rdb.Close()
	}

	// Booking lifecycle event publisher; no-op when the broker is disabled
	publisher := events.NewPublisher(config.Broker, logger)

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, rdb, publisher, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
