package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/insightdash/insight-api/internal/completion"
	"github.com/insightdash/insight-api/internal/config"
	"github.com/insightdash/insight-api/internal/mockdata"
	"github.com/insightdash/insight-api/internal/pipeline"
	"github.com/insightdash/insight-api/internal/refresher"
	"github.com/insightdash/insight-api/internal/server"
	"github.com/insightdash/insight-api/internal/sources"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	logrus.Info("Starting Insight Dashboard API")

	var runner server.InsightRunner
	if cfg.MockData {
		logrus.Info("MOCK_DATA set, serving generated mock insights")
		runner = mockdata.NewRunner()
	} else {
		client := completion.NewClient(cfg.GroqAPIKey, cfg.FallbackModel)
		if !client.Configured() {
			logrus.Warn("GROQ_API_KEY not set, insight requests will fail until configured")
		}
		runner = pipeline.New(cfg, client, sources.NewRegistry())
	}

	// Optional scheduled refresh keeps a cached response for the
	// dashboard's realtime view
	var refreshService *refresher.Service
	if cfg.EnableRefresh {
		refreshService = refresher.NewService(cfg, runner)
		if err := refreshService.Start(); err != nil {
			logrus.Fatalf("Failed to start insight refresher: %v", err)
		}
		defer refreshService.Stop()
	}

	apiServer := server.New(cfg, runner, refreshService)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      apiServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server in a goroutine
	go func() {
		logrus.Infof("HTTP server starting on port %s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
