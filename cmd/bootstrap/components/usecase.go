package components

import (
	"tablebook/internal/pkg/clock"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Options(
	fx.Provide(
		clock.NewRealClock,

		commands.NewRestaurantCommands,
		commands.NewTableCommands,
		commands.NewReservationCommands,
		commands.NewReviewCommands,

		queries.NewRestaurantQueries,
		queries.NewTableQueries,
		queries.NewReservationQueries,
		queries.NewReviewQueries,
	),
)
