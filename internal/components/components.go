package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"lifesaver/internal/api"
	"lifesaver/internal/api/handlers/http/system"
	"lifesaver/internal/config"
	"lifesaver/internal/service"
	"lifesaver/internal/storage"
	"lifesaver/internal/storage/postgres"
	"lifesaver/internal/storage/redis"
	"lifesaver/internal/workers"
	"lifesaver/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Notifier   *workers.Pool
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	pg, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		pg.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	profileCache := redis.NewProfileCache(redisClient, cfg.Dispatch.ProfileCacheTTL)
	providers := storage.NewProviders(pg.Providers(), pg.Profiles(), profileCache, logger)
	engine := service.NewAssignmentEngine(providers, logger)

	var (
		sosSvc   service.SOSService
		notifier *workers.Pool
	)
	if cfg.Webhook.Disabled {
		sosSvc = service.NewSOSService(engine, nil, logger)
	} else {
		queue := redis.NewNotificationQueue(redisClient.Client, redis.NotificationQueueKey)
		sosSvc = service.NewSOSService(engine, queue, logger)
		sender := service.NewWebhookSender(logger, cfg.Webhook, queue)
		notifier = workers.NewPool(sender, queue, cfg.Webhook.Workers, logger)
	}

	svc := service.NewService(
		sosSvc,
		service.NewRequestService(pg.Requests(), logger),
		service.NewAlertService(pg.Alerts(), logger, cfg.Dispatch.ResponderRadiusKm),
		service.NewStatsService(pg.Stats()),
	)

	httpServer := api.NewServer(cfg, logger, svc, map[string]system.Pinger{
		"postgres": pg,
		"redis":    redisClient,
	})
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   pg,
		Redis:      redisClient,
		Notifier:   notifier,
	}, nil
}

// RunWorkers blocks until ctx is done. It returns immediately when
// notifications are disabled.
func (c *Components) RunWorkers(ctx context.Context) {
	if c.Notifier == nil {
		c.logger.Info("assignment notifications disabled")
		return
	}
	c.Notifier.Run(ctx)
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
