package components

import (
	"dealstream/internal/domain/offer"
	"dealstream/internal/infra/seed"
	"dealstream/internal/infra/upstream"
	"dealstream/internal/pkg/config"
	"dealstream/internal/usecase"
	"dealstream/internal/usecase/commands"
	"dealstream/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) offer.Normalizer {
		return offer.NewNormalizerWithRate(cfg.Ingest.PriceRate)
	},
	func(cfg config.Config) commands.AdminPolicy {
		return cfg.Admin
	},
	fx.Annotate(
		func(cfg config.Config) *upstream.ProductClient {
			return upstream.NewProductClient(cfg.Ingest)
		},
		fx.As(new(commands.OfferSource)),
	),
	fx.Annotate(
		seed.LoadCatalog,
		fx.As(new(commands.SupplementCatalog)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewIngestCommands,
		commands.NewMaintenanceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewOfferQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
