package commands

import (
	"context"
	"log/slog"
	"time"

	"dealstream/internal/domain/offer"
	sqlc "dealstream/internal/infra/sqlc/generated"
	"dealstream/internal/pkg/errs"
	"dealstream/internal/pkg/patch"
	"dealstream/internal/usecase/shared"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("usecase/commands")
	meter  = otel.Meter("usecase/commands")
)

type IngestResult struct {
	Inserted int
	Fetched  int
	Skipped  int
	Duration time.Duration
}

type IngestCommands interface {
	Run(ctx context.Context) (*IngestResult, error)
}

type ingestCommandsImpl struct {
	uow         shared.UnitOfWork
	offers      shared.OfferRepository
	source      OfferSource
	catalog     SupplementCatalog
	normalizer  offer.Normalizer
	broadcaster OfferBroadcaster

	insertedCounter metric.Int64Counter
	runCounter      metric.Int64Counter
}

func NewIngestCommands(
	uow shared.UnitOfWork,
	offers shared.OfferRepository,
	source OfferSource,
	catalog SupplementCatalog,
	normalizer offer.Normalizer,
	broadcaster OfferBroadcaster,
) IngestCommands {
	inserted, err := meter.Int64Counter("offers_inserted_total",
		metric.WithDescription("offers newly stored by ingestion runs"))
	if err != nil {
		otel.Handle(err)
	}
	runs, err := meter.Int64Counter("ingest_runs_total",
		metric.WithDescription("ingestion runs by outcome"))
	if err != nil {
		otel.Handle(err)
	}

	return &ingestCommandsImpl{
		uow:             uow,
		offers:          offers,
		source:          source,
		catalog:         catalog,
		normalizer:      normalizer,
		broadcaster:     broadcaster,
		insertedCounter: inserted,
		runCounter:      runs,
	}
}

// Run fetches remote records, merges the supplement catalog, and stores every
// candidate not yet present. Each insert commits on its own, so rows written
// before a failure stay written. The returned count covers new rows only.
func (c *ingestCommandsImpl) Run(ctx context.Context) (*IngestResult, error) {
	ctx, span := tracer.Start(ctx, "Ingest.Run")
	defer span.End()

	started := time.Now()
	result := &IngestResult{}

	err := c.run(ctx, result)
	result.Duration = time.Since(started)

	span.SetAttributes(
		attribute.Int("fetched", result.Fetched),
		attribute.Int("inserted", result.Inserted),
		attribute.Int("skipped", result.Skipped),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.countRun(ctx, "error")
		slog.Error("ingestion run failed",
			"inserted", result.Inserted,
			"duration_ms", result.Duration.Milliseconds(),
			"error", err.Error())
		return result, err
	}

	c.countRun(ctx, "ok")
	slog.Info("ingestion run finished",
		"fetched", result.Fetched,
		"inserted", result.Inserted,
		"skipped", result.Skipped,
		"duration_ms", result.Duration.Milliseconds())
	return result, nil
}

func (c *ingestCommandsImpl) run(ctx context.Context, result *IngestResult) error {
	records, err := c.source.FetchAll(ctx)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "fetch remote offers"), errs.ErrUpstreamFetch)
	}
	result.Fetched = len(records)

	return c.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		for _, rec := range records {
			if rec.ID == "" {
				result.Skipped++
				slog.Warn("skipping remote record without id", "title", patch.Coalesce(rec.Title, ""))
				continue
			}
			if err := c.store(ctx, db, c.normalizer.FromRemote(rec), result); err != nil {
				return err
			}
		}

		for _, rec := range c.catalog.Records() {
			if err := c.store(ctx, db, c.normalizer.FromSupplement(rec), result); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *ingestCommandsImpl) store(ctx context.Context, db sqlc.DBTX, candidate *offer.Offer, result *IngestResult) error {
	inserted, err := c.offers.InsertIfAbsent(ctx, db, candidate)
	if err != nil {
		return errs.Mark(
			errs.Wrapf(err, "store offer %s/%s", candidate.Source(), candidate.ExternalID()),
			errs.ErrOfferPersist,
		)
	}
	if !inserted {
		slog.Debug("offer already stored", "source", candidate.Source().String(), "external_id", candidate.ExternalID())
		return nil
	}

	result.Inserted++
	if c.insertedCounter != nil {
		c.insertedCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("source", candidate.Source().String())))
	}
	slog.Info("new offer added",
		"id", candidate.ID(),
		"source", candidate.Source().String(),
		"title", candidate.Title(),
		"category", candidate.Category().String(),
		"price", candidate.Price())

	c.broadcaster.PublishNewOffer(ctx, candidate)
	return nil
}

func (c *ingestCommandsImpl) countRun(ctx context.Context, outcome string) {
	if c.runCounter != nil {
		c.runCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	}
}
