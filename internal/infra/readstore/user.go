package readstore

import (
	"context"

	"github.com/google/uuid"

	"dealstream/internal/infra"
	sqlc "dealstream/internal/infra/sqlc/generated"
	"dealstream/internal/pkg/pgconv"
	"dealstream/internal/usecase/queries"
	"dealstream/internal/usecase/shared"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error)
	FindUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Users, error)
	UserExistsByUsername(ctx context.Context, db sqlc.DBTX, username string) (bool, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.UserView{
		ID:        row.ID,
		Username:  row.Username,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

// FindCredentials returns the stored hash alongside the identity for login checks.
func (r *UserReadStore) FindCredentials(ctx context.Context, username string) (*shared.UserCredentials, error) {
	row, err := r.queries.FindUserByUsername(ctx, r.db, username)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by username", err)
	}

	return &shared.UserCredentials{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
	}, nil
}

func (r *UserReadStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	exists, err := r.queries.UserExistsByUsername(ctx, r.db, username)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check username", err)
	}
	return exists, nil
}
