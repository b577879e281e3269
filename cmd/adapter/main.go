package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/change-adapter/internal/adapter"
	httptransport "github.com/spec-kit/change-adapter/internal/api/http"
	"github.com/spec-kit/change-adapter/internal/api/http/handlers"
	"github.com/spec-kit/change-adapter/internal/auth"
	"github.com/spec-kit/change-adapter/internal/cache"
	"github.com/spec-kit/change-adapter/internal/config"
	"github.com/spec-kit/change-adapter/internal/events"
	"github.com/spec-kit/change-adapter/internal/observability"
	"github.com/spec-kit/change-adapter/internal/persistence"
	"github.com/spec-kit/change-adapter/internal/repository"
	"github.com/spec-kit/change-adapter/internal/service"
	"github.com/spec-kit/change-adapter/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	adapterInstance := adapter.New(cfg, logger, adapter.Dependencies{
		Dispatcher: dispatcher,
		Metrics:    metrics,
	})
	logger.Info("adapter initialized", zap.String("id", adapterInstance.ID()))

	var statusRepo repository.StatusRepository
	var recordRepo repository.RecordRepository
	if pool := pg.PoolHandle(); pool != nil {
		statusRepo = repository.NewStatusRepository(pool)
		recordRepo = repository.NewRecordRepository(pool)

		audit := service.NewAuditService(dispatcher, statusRepo, logger)
		audit.RegisterHandlers()
	}

	recordCache := cache.NewRecordCache(redis.Client, cfg.Cache.TTL(), logger)
	tokenService := service.NewTokenService(cfg.Auth, logger)
	authMiddleware := auth.NewAuthMiddleware(tokenService.TokenManager())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, adapterInstance.ID(), pg, redis),
		Records:        handlers.NewRecordsHandler(adapterInstance, recordCache, recordRepo, logger),
		Status:         handlers.NewStatusHandler(adapterInstance, statusRepo),
		Auth:           handlers.NewAuthHandler(tokenService),
		AuthMiddleware: authMiddleware,
	})

	// First probe on startup; the host observes the result via status events.
	adapterInstance.Connect(ctx)

	prober := worker.NewProbeWorker(adapterInstance.Monitor(), cfg.Probe.Interval(), logger)
	go prober.Run(ctx)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)
	cancel()

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
