package bootstrap

import (
	"context"
	"log/slog"

	"tablebook/internal/infra/notify"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

var AMQPModule = fx.Module("amqp",
	fx.Provide(
		NewAMQPConnection,
		fx.Annotate(
			NewDispatcher,
			fx.As(new(commands.NotificationDispatcher)),
		),
	),
)

func NewAMQPConnection(lc fx.Lifecycle, cfg config.Config) (*amqp.Connection, error) {
	conn, err := amqp.Dial(cfg.AMQP.URL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			slog.Info("closing amqp connection")
			return conn.Close()
		},
	})

	return conn, nil
}

func NewDispatcher(conn *amqp.Connection, cfg config.Config) (*notify.AMQPDispatcher, error) {
	return notify.NewAMQPDispatcher(conn, cfg.AMQP.Queue)
}
