package rabbit

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/guitarshop/checkout/internal/config"
)

// Module wires the broker connection and order event publisher.
var Module = fx.Options(
	fx.Provide(newBroker),
	fx.Provide(NewPublisher),
	fx.Invoke(registerLifecycle),
)

type brokerParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newBroker(p brokerParams) *Broker {
	return Connect(p.Ctx, p.Config, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, broker *Broker) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			broker.Close()
			return nil
		},
	})
}
