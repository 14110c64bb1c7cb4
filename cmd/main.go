// Package main provides the entry point for the vidboard service.
// @title Vidboard API
// @version 1.0
// @description A Go service for organizing YouTube videos into named boards.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by the session provider

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/vidboard/vidboard/docs" // Import for swagger docs
	"github.com/vidboard/vidboard/internal/api/handlers"
	"github.com/vidboard/vidboard/internal/api/router"
	"github.com/vidboard/vidboard/internal/config"
	"github.com/vidboard/vidboard/internal/database"
	"github.com/vidboard/vidboard/internal/services/boards"
	"github.com/vidboard/vidboard/internal/services/youtube"
	"github.com/vidboard/vidboard/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting vidboard service")

	// Initialize database
	db, err := database.Connect(&cfg.MongoDB)
	if err != nil {
		logger.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// Initialize YouTube metadata client
	youtubeClient := youtube.NewClient(&cfg.YouTube)

	// Initialize board store and service
	boardStore := database.NewBoardStore(db)
	boardService := boards.NewService(boardStore, youtubeClient)

	// Initialize handlers
	boardHandler := handlers.NewBoardHandler(boardService)
	healthHandler := handlers.NewHealthHandler(db)

	// Initialize router
	r := router.NewRouter(cfg, boardHandler, healthHandler)

	// Start server
	go func() {
		logger.Infof("Starting server on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := r.Start(); err != nil {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Close(ctx); err != nil {
		logger.Errorf("Failed to close database connection: %v", err)
	}

	logger.Info("Server shutdown complete")
}
