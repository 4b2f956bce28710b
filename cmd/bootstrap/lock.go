package bootstrap

import (
	"context"
	"log/slog"

	"storefront/internal/infra/lock"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/jobs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var LockModule = fx.Module("lock",
	fx.Provide(
		NewSweepLock,
	),
)

// NewSweepLock shares the lease through Redis when REDIS_ADDR is set and
// falls back to an in-process mutex otherwise.
func NewSweepLock(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (jobs.RunLock, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("sweep lock is process-local", "reason", "REDIS_ADDR not set")
		return lock.NewLocalLock(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return lock.NewRedisLock(client, cfg.Redis.LockKey, cfg.Sweeper.LockTTL), nil
}
