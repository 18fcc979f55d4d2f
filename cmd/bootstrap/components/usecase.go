package components

import (
	"organic-storefront/internal/infra/cache"
	"organic-storefront/internal/infra/events"
	"organic-storefront/internal/pkg/clock"
	"organic-storefront/internal/pkg/config"
	"organic-storefront/internal/usecase/commands"
	"organic-storefront/internal/usecase/queries"
	"organic-storefront/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(rdb *redis.Client, cfg config.Config) *cache.CatalogCache {
		return cache.NewCatalogCache(rdb, cfg.Redis.CacheTTL)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(uow shared.UnitOfWork, clk clock.Clock, publisher events.Publisher, cfg config.Config) commands.OrderCommands {
			return commands.NewOrderUseCase(uow, clk, publisher, cfg.Reservation.PaymentWindow)
		},
		func(uow shared.UnitOfWork, clk clock.Clock, publisher events.Publisher, cfg config.Config) commands.SweeperCommands {
			return commands.NewSweeperUseCase(uow, clk, publisher, cfg.Reservation.CleanupThreshold)
		},
		commands.NewInventoryUseCase,
		commands.NewBannerUseCase,
		commands.NewCatalogUseCase,
		commands.NewSettingsUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewInventoryQueries,
		queries.NewBannerQueries,
		queries.NewCatalogQueries,
		queries.NewPaymentMethodQueries,
		queries.NewAuditQueries,
	),
)
