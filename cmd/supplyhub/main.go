package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"github.com/odyssey-erp/supplyhub/internal/app"
	"github.com/odyssey-erp/supplyhub/internal/observability"
	"github.com/odyssey-erp/supplyhub/internal/shared"
	"github.com/odyssey-erp/supplyhub/jobs"
)

func main() {
	_ = godotenv.Load()

	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	metrics := observability.NewMetrics()

	var (
		events     shared.ChangePublisher
		jobHandler *jobs.Handler
	)
	if cfg.JobsEnabled {
		redisOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr}
		jobClient := jobs.NewClient(redisOpts)
		defer func() {
			if err := jobClient.Close(); err != nil {
				logger.Warn("job client close", slog.Any("error", err))
			}
		}()
		events = jobClient.Publisher()

		inspector := asynq.NewInspector(redisOpts)
		defer func() {
			if err := inspector.Close(); err != nil {
				logger.Warn("inspector close", slog.Any("error", err))
			}
		}()
		jobHandler = jobs.NewHandler(inspector, logger)
	}

	services := app.NewServices(logger, events, cfg.SeedData)

	router := app.NewRouter(app.RouterParams{
		Logger:     logger,
		Config:     cfg,
		Services:   services,
		JobHandler: jobHandler,
		Metrics:    metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.Bool("jobs", cfg.JobsEnabled))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
