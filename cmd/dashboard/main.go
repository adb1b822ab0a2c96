package main

import (
	"context"
	"log/slog"
	"os"

	"dashboard/config"
	"dashboard/internal/delivery"
	"dashboard/internal/delivery/api"
	"dashboard/internal/delivery/api/middleware"
	"dashboard/internal/delivery/api/router/handler"
	"dashboard/internal/infra/auth"
	"dashboard/internal/infra/botapi"
	"dashboard/internal/infra/cache"
	"dashboard/internal/infra/discord"
	logs "dashboard/internal/infra/log"
	"dashboard/internal/infra/metrics"
	"dashboard/internal/infra/persistence/postgres"
	"dashboard/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			metrics.NewRegistry,
			metrics.New,
		),
		cache.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCredentialRepository,
			postgres.NewAccessControlRepository,
			postgres.NewRolePermissionRepository,
			postgres.NewGuildGroupRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			discord.NewClient,
			botapi.NewClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGuildAccessService,
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
			handler.NewGuildHandler,
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
