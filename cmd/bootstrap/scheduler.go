package bootstrap

import (
	"context"
	"log/slog"

	"dealstream/internal/infra/scheduler"
	"dealstream/internal/pkg/config"
	"dealstream/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartIngestSchedule),
)

// StartIngestSchedule runs the ingestion pipeline on INGEST_CRON for the life
// of the app.
func StartIngestSchedule(lc fx.Lifecycle, cfg config.Config, ingest commands.IngestCommands, logger *slog.Logger) error {
	if cfg.Ingest.Disabled {
		logger.Info("ingest schedule disabled")
		return nil
	}

	job := func(ctx context.Context) error {
		_, err := ingest.Run(ctx)
		return err
	}

	c, err := scheduler.New("ingest", cfg.Ingest.Cron, job)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			logger.Info("ingest schedule armed", "cron", cfg.Ingest.Cron, "next", c.Next())
			if cfg.Ingest.RunOnStart {
				go func() {
					if _, err := ingest.Run(context.Background()); err != nil {
						logger.Error("startup ingestion failed", "error", err.Error())
					}
				}()
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return c.Stop(ctx)
		},
	})
	return nil
}
