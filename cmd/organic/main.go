package main

import (
	"context"
	"log/slog"
	"os"

	"organic/config"
	"organic/internal/delivery"
	"organic/internal/delivery/http"
	"organic/internal/delivery/http/middleware"
	"organic/internal/delivery/http/router/handler"
	"organic/internal/domain/querykey"
	"organic/internal/infra/auth"
	"organic/internal/infra/cache"
	logs "organic/internal/infra/log"
	"organic/internal/infra/persistence/postgres"
	"organic/internal/infra/pubsub"
	"organic/internal/infra/storage"
	"organic/internal/usecase/impl"

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
		cache.NewRedisClient,
		cache.NewQueryCache,
		querykey.NewRegistry,
		storage.NewBucket,
		storage.NewObjectStorage,
		auth.NewJWTService,
		auth.NewWebhookVerifier,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewUserRepository,
			postgres.NewOrderRepository,
			postgres.NewStoreRepository,
			postgres.NewShippingRateRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCategoryService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewUserService,
			impl.NewStoreService,
			impl.NewAuthzService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProductHandler,
			handler.NewCategoryHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewUserHandler,
			handler.NewStoreHandler,
			handler.NewWebhookHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
