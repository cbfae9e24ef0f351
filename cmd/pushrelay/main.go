package main

import (
	"context"
	"log/slog"

	"pushrelay/config"
	"pushrelay/internal/delivery"
	"pushrelay/internal/delivery/api"
	"pushrelay/internal/delivery/api/middleware"
	"pushrelay/internal/delivery/api/router/handler"
	"pushrelay/internal/dispatch"
	"pushrelay/internal/domain/service"
	"pushrelay/internal/infra/auth"
	logs "pushrelay/internal/infra/log"
	"pushrelay/internal/infra/notification"
	"pushrelay/internal/infra/persistence/store"
	"pushrelay/internal/infra/pubsub"
	"pushrelay/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		store.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			store.NewTokenRepository,
			store.NewNotificationRepository,
			store.NewTransactionManager,
			fx.Annotate(
				store.NewHealthChecker,
				fx.As(new(handler.DatabasePinger)),
			),
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			notification.NewPushProvider,
			pubsub.NewEventPublisher,
			newDispatchEngine,
		),
	)
}

// newDispatchEngine builds the engine from the dispatch configuration
func newDispatchEngine(cfg *config.Config, provider service.PushProvider, logger *slog.Logger) *dispatch.Engine {
	gate := dispatch.NewTokenGate(0, cfg.Dispatch.StrictTokenValidation)

	return dispatch.NewEngine(provider, gate, cfg.Dispatch.BatchLimit, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeviceService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDeviceHandler,
			handler.NewNotificationHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer launches every delivery once the start hooks (migrations included) have run.
func startServer(ctx context.Context, params startServerParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(ctx); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
					}
				}()
			}

			return nil
		},
	})
}
