package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Harshitk-cp/edgeworth/internal/api"
	"github.com/Harshitk-cp/edgeworth/internal/buildconfig"
	"github.com/Harshitk-cp/edgeworth/internal/config"
	"github.com/Harshitk-cp/edgeworth/internal/service"
	"github.com/Harshitk-cp/edgeworth/internal/store"
	"go.uber.org/zap"
)

func main() {
	if err := config.Load(); err != nil {
		panic(err)
	}

	logger := newLogger(config.LogLevel())
	defer func() { _ = logger.Sync() }()

	params := config.EconomyParams()
	if err := params.Validate(); err != nil {
		logger.Fatal("invalid economy parameters", zap.Error(err))
	}
	sweep := config.Sweep()
	if err := sweep.Validate(); err != nil {
		logger.Fatal("invalid price sweep", zap.Error(err))
	}

	economy := service.NewEconomyService(params, logger)
	economy.SetSweep(sweep)
	economy.SetParetoGrid(config.ParetoGrid())

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	opts := api.Options{
		Economy:        economy,
		APIKey:         config.APIKey(),
		RateLimitRPS:   config.RateLimitRPS(),
		RateLimitBurst: config.RateLimitBurst(),
	}

	if dbURL := config.DatabaseURL(); dbURL != "" {
		pool, err := store.Connect(ctx, dbURL)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()
		logger.Info("connected to database")

		opts.Scenarios = store.NewScenarioStore(pool)
		opts.Pinger = pool
	}

	app := api.NewApp(ctx, opts, logger)

	addr := config.ServerAddr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server starting",
			zap.String("addr", addr),
			zap.String("version", buildconfig.Version()),
			zap.Float64("alpha", params.Alpha),
			zap.Float64("beta", params.Beta),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down server")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}

// newLogger builds a production JSON logger at the given level, falling
// back to info for unknown levels.
func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
