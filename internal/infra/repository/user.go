package repository

import (
	"context"

	"dealstream/internal/domain/user"
	"dealstream/internal/infra"
	sqlc "dealstream/internal/infra/sqlc/generated"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) Create(ctx context.Context, db sqlc.DBTX, u *user.User) error {
	_, err := r.queries.CreateUser(ctx, db, sqlc.CreateUserParams{
		ID:           u.ID(),
		Username:     u.Username().Value(),
		PasswordHash: u.PasswordHash(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}
