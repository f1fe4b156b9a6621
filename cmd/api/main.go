// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Animelar HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and .env when present).
//  3. Open the document repository selected by STORE_DRIVER.
//  4. Seed the document on first start.
//  5. Wire HTTP handlers.
//  6. Start the background worker.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	"github.com/taibuivan/animelar/internal/api"
	"github.com/taibuivan/animelar/internal/platform/config"
	"github.com/taibuivan/animelar/internal/platform/constants"
	"github.com/taibuivan/animelar/internal/platform/metrics"
	"github.com/taibuivan/animelar/internal/platform/migration"
	mongostore "github.com/taibuivan/animelar/internal/platform/mongo"
	pgstore "github.com/taibuivan/animelar/internal/platform/postgres"
	redisstore "github.com/taibuivan/animelar/internal/platform/redis"
	"github.com/taibuivan/animelar/internal/platform/sec"
	"github.com/taibuivan/animelar/internal/store"
	"github.com/taibuivan/animelar/internal/worker"
	"github.com/taibuivan/animelar/pkg/idgen"
)

const appName = "animelar"

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("[Animelar] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store_driver", cfg.StoreDriver),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	recorder := metrics.New()

	// ── 3. Document Repository ────────────────────────────────────────────
	repository, err := openRepository(startupCtx, cfg, log)
	must(log, err, "open document repository")
	defer func() {
		log.Info("closing document repository")
		if cerr := repository.Close(); cerr != nil {
			log.Error("repository close error", slog.Any("error", cerr))
		}
	}()

	// ── 4. Bootstrap ──────────────────────────────────────────────────────
	gateway := store.NewGateway(repository, cfg.SuperAdminID, recorder)

	seeded, err := gateway.Bootstrap(startupCtx)
	must(log, err, "bootstrap document")
	if seeded {
		log.Info("document_seeded", slog.String("super_admin_id", cfg.SuperAdminID))
	}

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	handlers := api.NewHandlers(api.Dependencies{
		Gateway: gateway,
		Hasher:  sec.NewBcryptHasher(cfg.BcryptCost),
		IDs:     idgen.New(),
		Metrics: recorder,
		Logger:  log,
	})

	server := api.NewServer(cfg, log, recorder, handlers)

	// ── 6. Background Worker ──────────────────────────────────────────────
	scheduler, err := worker.New(gateway, log, worker.Options{
		AuditSchedule:    cfg.AuditSchedule,
		SnapshotSchedule: cfg.SnapshotSchedule,
		SnapshotDir:      cfg.SnapshotDir,
	})
	must(log, err, "schedule background jobs")
	scheduler.Start()

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server_listening", slog.String("addr", ":"+cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stopCancel()
	scheduler.Stop(stopCtx)

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// newLogger builds the JSON logger tagged with the application name.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", appName))
}

// openRepository connects the backend named by STORE_DRIVER.
func openRepository(ctx context.Context, cfg *config.Config, log *slog.Logger) (store.Repository, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Warn("memory_store_selected", slog.String("note", "state is lost on restart"))
		return store.NewMemoryRepository(), nil

	case config.DriverFile:
		return store.NewFileRepository(cfg.DataFile), nil

	case config.DriverPostgres:
		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
			return nil, err
		}
		pool, err := pgstore.NewPool(ctx, pgstore.Options{
			URL:      cfg.DatabaseURL,
			MaxConns: cfg.DatabaseMaxConns,
		}, log)
		if err != nil {
			return nil, err
		}
		return store.NewPostgresRepository(pool, cfg.DocumentKey), nil

	case config.DriverRedis:
		client, err := redisstore.NewClient(ctx, redisstore.Options{
			URL:      cfg.RedisURL,
			PoolSize: cfg.RedisPoolSize,
		}, log)
		if err != nil {
			return nil, err
		}
		return store.NewRedisRepository(client, cfg.DocumentKey), nil

	case config.DriverMongo:
		client, err := mongostore.NewClient(ctx, cfg.MongoURL, log)
		if err != nil {
			return nil, err
		}
		return store.NewMongoRepository(client, cfg.MongoDatabase, cfg.DocumentKey), nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// Only used during startup wiring.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
