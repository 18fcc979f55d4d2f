package components

import (
	"organic-storefront/internal/infra/db"
	"organic-storefront/internal/infra/readstore"
	"organic-storefront/internal/infra/uow"
	"organic-storefront/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		// Read-side stores backing the query layer. Write repositories are
		// not provided here: the unit of work constructs its own tx-scoped
		// instances.
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderViewRepo)),
		),
		fx.Annotate(
			readstore.NewInventoryReadStore,
			fx.As(new(queries.InventoryViewRepo)),
		),
		fx.Annotate(
			readstore.NewBannerReadStore,
			fx.As(new(queries.BannerViewRepo)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogViewRepo)),
		),
		fx.Annotate(
			readstore.NewPaymentMethodReadStore,
			fx.As(new(queries.PaymentMethodViewRepo)),
		),
		fx.Annotate(
			readstore.NewAuditReadStore,
			fx.As(new(queries.AuditViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
