package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/legallens/legal-lens-api/internal/config"
	"github.com/legallens/legal-lens-api/internal/extractor"
	"github.com/legallens/legal-lens-api/internal/llm"
	"github.com/legallens/legal-lens-api/internal/router"
	"github.com/legallens/legal-lens-api/internal/services"
	"github.com/legallens/legal-lens-api/internal/utils"
)

func main() {
	// A .env file is optional; real environments set the variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := utils.NewLogger(cfg.LogLevel)

	generator, err := llm.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Gemini client", "error", err)
	}
	defer generator.Close()

	service := services.NewService(extractor.Default(), generator, logger)

	handler := router.New(service, logger, cfg.StaticDir, cfg.MaxUploadSize)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "model", cfg.GeminiModel)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
