package di

import (
	"go.uber.org/fx"

	"github.com/guitarshop/checkout/internal/app"
	"github.com/guitarshop/checkout/internal/config"
	"github.com/guitarshop/checkout/internal/logger"
	"github.com/guitarshop/checkout/internal/messaging/rabbit"
	"github.com/guitarshop/checkout/internal/server/http/handlers"
	"github.com/guitarshop/checkout/internal/server/http/router"
	"github.com/guitarshop/checkout/internal/storage/postgres"
	"github.com/guitarshop/checkout/internal/usecase"
	"github.com/guitarshop/checkout/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		rabbit.Module,
		fx.Provide(func(d *worker.PublishDispatcher) usecase.EventPublisher { return d }),
		usecase.Module,
		fx.Provide(func(f *app.CheckoutFacade) handlers.CheckoutFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
