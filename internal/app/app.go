package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/guitarshop/checkout/internal/config"
	"github.com/guitarshop/checkout/internal/messaging/rabbit"
	"github.com/guitarshop/checkout/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewCheckoutFacade,
		newHTTPServer,
		newPublishDispatcher,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type dispatcherParams struct {
	fx.In

	Publisher *rabbit.Publisher
	Config    *config.Config
	Logger    *slog.Logger
}

func newPublishDispatcher(p dispatcherParams) *worker.PublishDispatcher {
	return worker.NewPublishDispatcher(
		p.Publisher,
		p.Config.PublishBuffer,
		p.Config.PublishWorkers,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Ctx        context.Context
	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Dispatcher *worker.PublishDispatcher
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			p.Logger.Info("starting checkout service", slog.String("addr", p.Server.Addr))
			// The hook context is cancelled once startup completes, so the
			// dispatcher runs on the application context instead.
			p.Dispatcher.Start(p.Ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Dispatcher.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("checkout service stopped")
			return nil
		},
	})
}
