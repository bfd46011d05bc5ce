package bootstrap

import (
	"context"
	"log/slog"

	"tablebook/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// Cache is best-effort; the app still serves without it.
				slog.Warn("redis unreachable at startup", "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			slog.Info("closing redis client")
			return client.Close()
		},
	})

	return client
}
