package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"publications-api/internal/config"
	pgRepo "publications-api/internal/infra/adapter/persistence/postgres"
	"publications-api/internal/infra/db"
	"publications-api/internal/observability/logging"
	"publications-api/internal/observability/tracing"
	"publications-api/internal/resilience/circuitbreaker"

	mediaUC "publications-api/internal/usecase/media"
	postUC "publications-api/internal/usecase/post"
	pubUC "publications-api/internal/usecase/publication"

	hhttp "publications-api/internal/handler/http"
	hmedia "publications-api/internal/handler/http/media"
	hpost "publications-api/internal/handler/http/post"
	hpub "publications-api/internal/handler/http/publication"
	"publications-api/internal/handler/http/requestid"

	_ "publications-api/docs" // swagger docs
)

// @title           Publications API
// @version         1.0
// @description     Manages media outlets, posts and the publications that schedule a post on a media.
// @description     A publication can be rescheduled until its date has passed.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg)
	shutdownTracing := tracing.InitProvider(cfg.Tracing.ServiceName, cfg.Version, cfg.Tracing.Enabled, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := initDatabase(ctx, cfg.Database)
	if err != nil {
		logger.Error("database initialisation failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	components := setupServer(logger, cfg, database)
	if err := runServer(ctx, logger, cfg, components); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracer provider shutdown failed", slog.Any("error", err))
	}
}

func initLogger(cfg *config.Config) *slog.Logger {
	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the pool and applies the schema.
func initDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	database, err := db.Open(ctx, cfg.URL, cfg.Pool())
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(database); err != nil {
		_ = database.Close()
		return nil, err
	}
	return database, nil
}

// ServerComponents holds what runServer needs besides the config.
type ServerComponents struct {
	Handler     http.Handler
	RateLimiter *hhttp.RateLimiter
}

// setupServer wires repositories, services and routes, and wraps them in the middleware chain.
func setupServer(logger *slog.Logger, cfg *config.Config, database *sql.DB) *ServerComponents {
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	mediaSvc := &mediaUC.Service{Repo: pgRepo.NewMediaRepo(breaker)}
	postSvc := &postUC.Service{Repo: pgRepo.NewPostRepo(breaker)}
	pubSvc := &pubUC.Service{
		Repo:  pgRepo.NewPublicationRepo(breaker),
		Media: mediaSvc,
		Posts: postSvc,
	}

	mux := http.NewServeMux()
	hmedia.Register(mux, mediaSvc)
	hpost.Register(mux, postSvc)
	hpub.Register(mux, pubSvc)

	mux.Handle("GET /health", &hhttp.HealthHandler{})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database, Breaker: breaker, Version: cfg.Version})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	var limiter *hhttp.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = hhttp.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.Server.TrustProxy)
		logger.Info("rate limiting enabled",
			slog.Float64("rps", cfg.RateLimit.RPS),
			slog.Int("burst", cfg.RateLimit.Burst),
			slog.Bool("trust_proxy", cfg.Server.TrustProxy))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	return &ServerComponents{
		Handler:     applyMiddleware(logger, cfg, mux, limiter),
		RateLimiter: limiter,
	}
}

// applyMiddleware wraps the handler with the middleware chain.
// Order, outermost first: CORS → Request ID → Rate Limit → Recovery → Tracing → Logging → Body Limit → Timeout → Metrics
func applyMiddleware(logger *slog.Logger, cfg *config.Config, handler http.Handler, limiter *hhttp.RateLimiter) http.Handler {
	corsConfig := hhttp.DefaultCORSConfig(cfg.Server.CORSAllowedOrigins)
	logger.Info("CORS configured", slog.Any("allowed_origins", corsConfig.AllowedOrigins))

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Timeout(cfg.Server.RequestTimeout)(chain)
	chain = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = hhttp.Recover(logger)(chain)
	if limiter != nil {
		chain = limiter.Middleware(chain)
	}
	chain = requestid.Middleware(chain)
	chain = hhttp.CORS(corsConfig, logger)(chain)
	return chain
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, logger *slog.Logger, cfg *config.Config, components *ServerComponents) error {
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if components.RateLimiter != nil {
		g.Go(func() error {
			components.RateLimiter.StartCleanup(gctx, cfg.RateLimit.CleanupInterval, cfg.RateLimit.IdleTimeout, logger)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}
