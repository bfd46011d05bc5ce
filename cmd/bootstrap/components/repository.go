package components

import (
	"tablebook/internal/infra/cache"
	"tablebook/internal/infra/readstore"
	"tablebook/internal/infra/repository"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// RepositoryModule binds the pgx-backed write repositories and read stores to
// the usecase-layer ports.
var RepositoryModule = fx.Options(
	fx.Provide(
		fx.Annotate(
			repository.NewRestaurantRepository,
			fx.As(new(commands.RestaurantRepository)),
		),
		fx.Annotate(
			repository.NewTableRepository,
			fx.As(new(commands.TableRepository)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewReviewRepository,
			fx.As(new(commands.ReviewRepository)),
		),
		fx.Annotate(
			readstore.NewRestaurantReadStore,
			fx.As(new(queries.RestaurantReadStore)),
		),
		fx.Annotate(
			readstore.NewTableReadStore,
			fx.As(new(queries.TableReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewCommandReadStore,
			fx.As(new(commands.CommandReads)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(commands.PrincipalResolver)),
		),
		fx.Annotate(
			NewRestaurantCache,
			fx.As(new(queries.RestaurantListCache)),
			fx.As(new(commands.RestaurantCacheInvalidator)),
		),
	),
)

func NewRestaurantCache(client *redis.Client, cfg config.Config) *cache.RestaurantListCache {
	return cache.NewRestaurantListCache(client, cfg.Redis.CacheTTL)
}
