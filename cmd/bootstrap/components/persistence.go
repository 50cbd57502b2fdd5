package components

import (
	"dealstream/internal/infra/readstore"
	"dealstream/internal/infra/repository"
	sqlc "dealstream/internal/infra/sqlc/generated"
	"dealstream/internal/infra/uow"
	"dealstream/internal/usecase/queries"
	"dealstream/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Offer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OfferReadQueries)),
		),
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(queries.OfferReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Offer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.OfferWriteQueries)),
		),
		fx.Annotate(
			repository.NewOfferRepository,
			fx.As(new(shared.OfferRepository)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.UserWriteQueries)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(shared.UserRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
