package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/odyssey-erp/supplyhub/internal/app"
	"github.com/odyssey-erp/supplyhub/internal/dashboard"
	jobmetrics "github.com/odyssey-erp/supplyhub/internal/jobs"
	"github.com/odyssey-erp/supplyhub/internal/notify"
	"github.com/odyssey-erp/supplyhub/internal/platform/cache"
	"github.com/odyssey-erp/supplyhub/internal/query"
	"github.com/odyssey-erp/supplyhub/internal/transport"
	"github.com/odyssey-erp/supplyhub/internal/workflow"
	"github.com/odyssey-erp/supplyhub/jobs"
)

func main() {
	_ = godotenv.Load()

	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
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

	queryCache, closeCache, err := cache.NewQueryCache(ctx, cfg.CacheDriver, cfg.RedisAddr, cfg.CacheTTL)
	if err != nil {
		logger.Error("query cache", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := closeCache(); err != nil {
			logger.Warn("query cache close", slog.Any("error", err))
		}
	}()

	api, err := transport.New(cfg.APIBaseURL, logger)
	if err != nil {
		logger.Error("api client", slog.Any("error", err))
		os.Exit(1)
	}

	notifier := notify.NewLogNotifier(logger)
	queries := query.NewClient(queryCache, notifier, logger,
		query.WithMetrics(query.NewMetrics(prometheus.DefaultRegisterer)),
		query.WithFailureMessage(dashboard.FailureMessage),
	)
	deps := dashboard.Deps{
		API:     api,
		Queries: queries,
		Runner:  workflow.NewRunner(queries, notifier, nil, logger).WithMetrics(prometheus.DefaultRegisterer),
	}

	scanJob := jobs.NewAlertScanJob(jobs.DashboardScanner{Deps: deps}, notifier, logger, jobmetrics.NewMetrics(nil))
	scanTask, err := jobs.NewAlertScanTask(jobs.AlertScanPayload{Trigger: "cron"})
	if err != nil {
		logger.Error("build alert scan task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskAlertScan, Handler: scanJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: cfg.AlertScanCron, Task: scanTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("starting worker", slog.String("api", cfg.APIBaseURL), slog.String("cron", cfg.AlertScanCron))
	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
