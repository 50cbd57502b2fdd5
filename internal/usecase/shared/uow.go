package shared

import (
	"context"

	"dealstream/internal/domain/offer"
	"dealstream/internal/domain/user"
	sqlc "dealstream/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within runs fn in one read-committed transaction, retried on
	// serialization failures and deadlocks. fn may therefore run more than once.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB hands fn the pool; each statement commits on its own.
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads serves lookups that need no transaction, such as login.
	CommandReads() CommandReads
}

type Tx interface {
	Offers() OfferRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByUsername(ctx context.Context, username string) (*UserCredentials, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
}

type OfferRepository interface {
	// InsertIfAbsent reports false without error when (source, external_id) already exists.
	InsertIfAbsent(ctx context.Context, db sqlc.DBTX, o *offer.Offer) (bool, error)
	RemapCategory(ctx context.Context, db sqlc.DBTX, from string, to offer.Category) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, u *user.User) error
}
