package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"publications-api/internal/config"
	"publications-api/internal/handler/http/respond"
	pgRepo "publications-api/internal/infra/adapter/persistence/postgres"
	"publications-api/internal/infra/db"
	"publications-api/internal/observability/logging"
	"publications-api/internal/observability/metrics"
	"publications-api/internal/repository"
	"publications-api/internal/resilience/circuitbreaker"
	"publications-api/internal/resilience/retry"
	pubUC "publications-api/internal/usecase/publication"
)

const statsTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.Database.URL, cfg.Database.Pool())
	if err != nil {
		logger.Error("database initialisation failed", slog.Any("error", respond.SanitizeError(err)))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := waitForMigrations(ctx, logger, database); err != nil {
		logger.Error("migrations did not complete in time", slog.Any("error", err))
		os.Exit(1)
	}

	svc := &pubUC.Service{Repo: pgRepo.NewPublicationRepo(circuitbreaker.NewDBCircuitBreaker(database))}
	job := &statsJob{stats: svc, db: database, logger: logger, timeout: statsTimeout}

	if err := run(ctx, logger, cfg.Worker, job); err != nil {
		logger.Error("worker exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

// waitForMigrations blocks until the API process has created the schema.
func waitForMigrations(ctx context.Context, logger *slog.Logger, database *sql.DB) error {
	const schemaCheck = "SELECT 1 FROM publications LIMIT 1"
	cfg := retry.DBConfig()
	cfg.MaxAttempts = 10
	return retry.WithBackoff(ctx, cfg, func() error {
		_, err := database.ExecContext(ctx, schemaCheck)
		if err != nil {
			logger.Info("waiting for migrations")
		}
		return err
	})
}

// run schedules job, serves metrics and blocks until ctx is cancelled.
func run(ctx context.Context, logger *slog.Logger, cfg config.WorkerConfig, job *statsJob) error {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(cfg.CronSchedule, func() { job.Run(ctx) }); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return serveMetrics(gctx, logger, cfg.MetricsPort)
	})
	g.Go(func() error {
		job.Run(gctx)
		c.Start()
		logger.Info("worker started", slog.String("schedule", cfg.CronSchedule), slog.String("timezone", loc.String()))

		<-gctx.Done()
		<-c.Stop().Done()
		logger.Info("worker stopped")
		return nil
	})
	return g.Wait()
}

type statsSource interface {
	Stats(ctx context.Context) (repository.PublicationStats, error)
}

// statsJob refreshes the scheduled/published gauges and the pool gauges.
type statsJob struct {
	stats   statsSource
	db      *sql.DB
	logger  *slog.Logger
	timeout time.Duration
}

func (j *statsJob) Run(parent context.Context) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(parent, j.timeout)
	defer cancel()

	stats, err := j.stats.Stats(ctx)
	if err != nil {
		metrics.RecordStatsRefresh(false)
		j.logger.Error("publication stats refresh failed", slog.Any("error", respond.SanitizeError(err)))
		return
	}

	metrics.SetPublicationStates(stats.Scheduled, stats.Published)
	metrics.RecordStatsRefresh(true)
	if j.db != nil {
		db.ReportPoolStats(j.db)
	}

	j.logger.Info("publication stats refreshed",
		slog.Int64("scheduled", stats.Scheduled),
		slog.Int64("published", stats.Published),
		slog.Duration("duration", time.Since(start)))
}
