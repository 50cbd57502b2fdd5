package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"dealstream/internal/infra/readstore"
	"dealstream/internal/infra/repository"
	sqlc "dealstream/internal/infra/sqlc/generated"
	"dealstream/internal/pkg/errs"
	"dealstream/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

var tracer = otel.Tracer("infra/uow")

// retryPolicy bounds how often a transaction is replayed after a retryable
// conflict. Waits grow as base<<attempt plus up to 20% jitter.
type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

var defaultRetry = retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

func (p retryPolicy) allows(err error, attempt int) bool {
	return attempt < p.maxRetries && isRetryableError(err)
}

func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << attempt
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter))
	}
	return wait
}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	retry retryPolicy

	offers *repository.OfferRepository
	users  *repository.UserRepository
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		retry:  defaultRetry,
		offers: repository.NewOfferRepository(q),
		users:  repository.NewUserRepository(q),
	}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	ctx, span := tracer.Start(ctx, "Within")
	defer span.End()

	err := u.withRetry(ctx, func(ctx context.Context, attempt int) error {
		span.SetAttributes(attribute.Int("attempts", attempt+1))
		return u.runOnce(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool)
}

func (u *PostgresUoW) withRetry(ctx context.Context, run func(ctx context.Context, attempt int) error) error {
	for attempt := 0; ; attempt++ {
		err := run(ctx, attempt)
		if err == nil {
			return nil
		}
		if !u.retry.allows(err, attempt) {
			if attempt > 0 && isRetryableError(err) {
				slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		wait := u.retry.backoff(attempt)
		slog.Warn("retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// runOnce owns one pgx transaction from begin to commit or rollback.
func (u *PostgresUoW) runOnce(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{uow: u, dbtx: pgxTx}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

type pgTx struct {
	uow   *PostgresUoW
	dbtx  sqlc.DBTX
	reads shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX                   { return t.dbtx }
func (t *pgTx) Offers() shared.OfferRepository { return t.uow.offers }
func (t *pgTx) Users() shared.UserRepository   { return t.uow.users }

func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = newCommandReads(t.uow.q, t.dbtx)
	}
	return t.reads
}

// commandReads lets commands consult the user table on the same connection
// as their writes.
type commandReads struct {
	users *readstore.UserReadStore
}

func newCommandReads(q *sqlc.Queries, db sqlc.DBTX) *commandReads {
	return &commandReads{users: readstore.NewUserReadStore(q, db)}
}

func (r *commandReads) UserByUsername(ctx context.Context, username string) (*shared.UserCredentials, error) {
	return r.users.FindCredentials(ctx, username)
}

func (r *commandReads) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return r.users.ExistsByUsername(ctx, username)
}
