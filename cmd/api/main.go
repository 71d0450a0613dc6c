package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"eisenhower-task-management/config"
	_ "eisenhower-task-management/docs" // Swagger docs
	"eisenhower-task-management/internal/classifier"
	"eisenhower-task-management/internal/event"
	"eisenhower-task-management/internal/httpserver"
	"eisenhower-task-management/internal/session"
	"eisenhower-task-management/pkg/gemini"
	"eisenhower-task-management/pkg/kvstore"
	"eisenhower-task-management/pkg/log"
)

// @title       Eisenhower Task Management API
// @description Personal task management around the Eisenhower Matrix with AI-assisted quadrant classification.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Eisenhower Task Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage dir: %s", cfg.Storage.Dir)

	// 3. Persistence
	kv, err := kvstore.NewFileStore(afero.NewOsFs(), cfg.Storage.Dir)
	if err != nil {
		logger.Error(ctx, "Failed to initialize storage: ", err)
		return
	}

	// 4. Classifier
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}
	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY not set, classification will degrade to fallback placement")
	}
	cls := classifier.New(geminiClient, logger)

	// 5. Sessions and events
	bus := event.NewBus()
	sessions := session.NewManager(logger, kv, bus)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		Sessions:    sessions,
		Classifier:  cls,
		Bus:         bus,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
