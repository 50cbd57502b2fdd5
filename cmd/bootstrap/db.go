package bootstrap

import (
	"context"
	"log/slog"

	"dealstream/internal/infra/db"
	"dealstream/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool and, unless DB_AUTO_MIGRATE is off, brings the schema
// up to date before anything else can query it.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx := context.Background()

	pool, closePool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "database", cfg.DB.DBName)

	if cfg.DB.AutoMigrate {
		if err := db.Migrate(ctx, pool); err != nil {
			closePool()
			return nil, err
		}
		logger.Info("database migrations applied")
	}

	lc.Append(fx.StopHook(closePool))
	return pool, nil
}
