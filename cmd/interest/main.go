package main

import (
	"context"
	"log/slog"
	"os"

	"interest/config"
	"interest/internal/delivery"
	"interest/internal/delivery/admin"
	"interest/internal/delivery/api"
	"interest/internal/delivery/api/middleware"
	"interest/internal/delivery/api/router/handler"
	"interest/internal/infra/auth"
	"interest/internal/infra/cache"
	logs "interest/internal/infra/log"
	"interest/internal/infra/persistence/migration"
	"interest/internal/infra/persistence/postgres"
	"interest/internal/infra/pubsub"
	"interest/internal/usecase"
	"interest/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectAdmin(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			migration.Register,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			cache.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewCustomerRepository,
			postgres.NewRelationshipRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			usecase.NewTableHooks,
			impl.NewProductService,
			impl.NewSubscriptionService,
			impl.NewTableService,
			impl.NewBulkActionService,
		),
	)
}

func injectAdmin() fx.Option {
	return fx.Options(
		fx.Provide(
			admin.NewPage,
			admin.NewRowRenderer,
			admin.NewCSRF,
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
			handler.NewAdminHandler,
			handler.NewInterestHandler,
			handler.NewSessionHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
