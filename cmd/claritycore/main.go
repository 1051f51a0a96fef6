package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/campuskit/claritycore/internal/api"
	"github.com/campuskit/claritycore/internal/clarity"
	"github.com/campuskit/claritycore/internal/config"
	"github.com/campuskit/claritycore/internal/repository"
	"github.com/campuskit/claritycore/internal/service"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	documentRepo := repository.NewDocumentRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)

	// Static tables, built once and passed by reference
	lexicon := clarity.DefaultLexicon()
	classifier := clarity.DefaultIntentClassifier()
	engine := clarity.NewEngine(lexicon, documentRepo, logger)

	// Initialize services
	askService := service.NewAskService(engine, classifier, interactionRepo, logger)
	insightService := service.NewInsightService(documentRepo, interactionRepo, lexicon, logger)
	adminService := service.NewAdminService(documentRepo, interactionRepo, insightService)

	// Setup router
	router := api.SetupRouter(askService, adminService, insightService, api.RouterConfig{
		APIKey:       cfg.Admin.APIKey,
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting clarity core server",
			zap.String("address", cfg.Address()),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
