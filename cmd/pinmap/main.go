package main

import (
	"context"
	"log/slog"
	"os"

	"pinmap/config"
	"pinmap/internal/delivery"
	"pinmap/internal/delivery/api"
	"pinmap/internal/delivery/api/middleware"
	"pinmap/internal/delivery/api/router/handler"
	"pinmap/internal/infra/auth"
	"pinmap/internal/infra/export"
	logs "pinmap/internal/infra/log"
	"pinmap/internal/infra/mapsurface"
	"pinmap/internal/infra/metrics"
	"pinmap/internal/infra/persistence/postgres"
	"pinmap/internal/infra/store"
	"pinmap/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
		postgres.New,
		metrics.New,
		store.NewSupabaseClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPinRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			store.NewPinStore,
			auth.NewIdentityProvider,
			mapsurface.NewFactory,
			export.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPinService,
			impl.NewMapSessionService,
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
			handler.NewPinHandler,
			handler.NewSessionHandler,
			handler.NewCategoryHandler,
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

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
