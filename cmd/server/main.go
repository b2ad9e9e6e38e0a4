package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Sheddybata/sdp.app/internal/bootstrap"
	"github.com/Sheddybata/sdp.app/internal/config"
	"github.com/Sheddybata/sdp.app/internal/geo"
	"github.com/Sheddybata/sdp.app/internal/router"
	"github.com/Sheddybata/sdp.app/internal/shared/database"
	"github.com/Sheddybata/sdp.app/internal/shared/logger"
	"github.com/Sheddybata/sdp.app/internal/shared/metrics"
	sharedRedis "github.com/Sheddybata/sdp.app/internal/shared/redis"
	"github.com/Sheddybata/sdp.app/internal/shared/validator"
)

func main() {
	env := parseFlags()

	logger.Setup(env)
	slog.Info("initializing server", "env", env)

	if err := run(env); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped", "env", env)
}

func parseFlags() string {
	env := flag.String("env", "local", "Environment (local|dev|production)")
	flag.Parse()
	return *env
}

func run(env string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("close database", "error", err)
		}
	}()

	if err := database.Migrate(db.DB, cfg); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	redisClient, err := sharedRedis.New(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("close redis", "error", err)
			}
		}()
	} else {
		slog.Info("REDIS_URL not set, login lockout is kept in memory")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	infra := router.Infra{
		DB:      db,
		Redis:   redisClient,
		Geo:     geo.Resolve(ctx, geo.DefaultSources(cfg.Geo.DataFile)...),
		Metrics: metrics.New(reg),
	}

	srv, err := setupServer(cfg, infra)
	if err != nil {
		return err
	}

	return startWithGracefulShutdown(ctx, srv, cfg.Server.GracefulTimeout)
}

func setupServer(cfg *config.Config, infra router.Infra) (*bootstrap.Server, error) {
	engine := bootstrap.NewBootstrap(cfg, infra.Metrics).SetupEngine()

	if err := validator.RegisterAll(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	if err := router.Setup(engine, cfg, infra); err != nil {
		return nil, fmt.Errorf("setup routes: %w", err)
	}

	slog.Info("server configured",
		"env", cfg.App.Env,
		"geography", infra.Geo.Source(),
		"db_driver", cfg.Database.Driver,
	)

	return bootstrap.New(cfg, engine), nil
}

func startWithGracefulShutdown(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	serverErrors := make(chan error, 1)

	go func() {
		serverErrors <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, gracefulTimeout)
		defer cancel()

		slog.Info("shutting down server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("forced shutdown: %w", err)
		}
		return nil
	}
}
