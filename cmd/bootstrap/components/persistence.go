package components

import (
	"storezee/internal/infra/readstore"
	sqlc "storezee/internal/infra/sqlc/generated"
	"storezee/internal/infra/uow"
	"storezee/internal/pkg/config"
	"storezee/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Catalog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CatalogReadQueries)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		// Customer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CustomerReadQueries)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
	),
)

// Write repositories are bound to the transaction inside the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		NewUoWOptions,
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewUoWOptions(cfg config.Config) uow.Options {
	return uow.Options{AcquireTimeout: cfg.DB.AcquireTimeout}
}
