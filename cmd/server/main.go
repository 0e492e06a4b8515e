package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api"
	"github.com/ndewijer/VibeInvestor-Backend/internal/app"
	"github.com/ndewijer/VibeInvestor-Backend/internal/config"
	"github.com/ndewijer/VibeInvestor-Backend/internal/logging"
	"github.com/ndewijer/VibeInvestor-Backend/internal/version"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck // nothing to do on flush failure at exit
	zap.ReplaceGlobals(logger)

	ctx := context.Background()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}
	defer a.Close()

	if err := a.Prepare(ctx); err != nil {
		logger.Fatal("failed to prepare database", zap.Error(err))
	}
	logger.Info("connected to database", zap.String("path", cfg.Database.Path))

	// Background goal progress sync
	scheduler := cron.New(cron.WithLogger(logging.NewCron(logger)))
	if cfg.Jobs.GoalSyncSchedule != "" {
		_, err := scheduler.AddFunc(cfg.Jobs.GoalSyncSchedule, func() {
			results, err := a.Services.Goal.SyncAll(context.Background())
			if err != nil {
				logger.Error("goal sync failed", zap.Error(err))
				return
			}
			logger.Info("goal sync finished", zap.Int("users", len(results)))
		})
		if err != nil {
			logger.Fatal("invalid GOAL_SYNC_SCHEDULE", zap.Error(err))
		}
		scheduler.Start()
	}

	router := api.NewRouter(a.Services, cfg, logger, a.Metrics)

	// Create HTTP server
	server := &http.Server{
		Addr:        cfg.Server.Addr,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// Advice generation can take up to AI_TIMEOUT.
		WriteTimeout: cfg.AI.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("starting server",
			zap.String("addr", cfg.Server.Addr),
			zap.String("version", version.Version),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// Wait for a running sync to finish.
	<-scheduler.Stop().Done()

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("server exited")
}
