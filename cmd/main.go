package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ulule/limiter/v3"

	httpadapter "banner-rotator/internal/adapter/http"
	"banner-rotator/internal/adapter/postgres"
	"banner-rotator/internal/adapter/render"
	"banner-rotator/internal/adapter/usecase"
	"banner-rotator/internal/config"
	"banner-rotator/internal/db"
	"banner-rotator/internal/metrics"
	"banner-rotator/internal/security"
)

// main is the entry point of the banner service. It loads configuration,
// optionally runs database migrations and seeds demo banners, wires the
// repositories, use cases and HTTP handler, then serves until SIGINT or
// SIGTERM and shuts down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo banners seeded")
	}

	m := metrics.New()
	bannerRepo := postgres.NewBannerRepository(pool)
	statRepo := postgres.NewStatisticRepository(pool)
	statsUC := usecase.NewStatisticsUseCase(bannerRepo, statRepo, logger, m)
	bannerUC := usecase.NewBannerUseCase(bannerRepo, statsUC, logger, m)

	handler := httpadapter.NewHandler(httpadapter.Deps{
		Banners: bannerUC,
		Stats:   statsUC,
		Renderer: render.NewRenderer(render.Options{
			SiteURL:          cfg.HTTP.SiteURL,
			RotationInterval: cfg.Banner.RotationInterval,
			ClickEndpoint:    "/api/v1/banners/click",
		}),
		Nonces:    security.NewNonces([]byte(cfg.Auth.NonceKey), cfg.Auth.NonceLifetime),
		Tokens:    security.NewTokens([]byte(cfg.Auth.JWTSecret)),
		Metrics:   m,
		Logger:    logger,
		ClickRate: limiter.Rate{Period: time.Minute, Limit: cfg.HTTP.ClickRateLimit},
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
