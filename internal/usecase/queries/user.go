package queries

import (
	"context"

	"dealstream/internal/infra"
	"dealstream/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type UserQueries interface {
	// GetCurrentUser resolves the account behind an access token. A token
	// outliving its account yields ErrUserNotFound.
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	if userID == uuid.Nil {
		return nil, ErrUserNotFound
	}

	view, err := q.readStore.FindByID(ctx, userID)
	switch {
	case err == nil:
		return view, nil
	case infra.IsKind(err, infra.KindNotFound):
		return nil, errs.Mark(err, ErrUserNotFound)
	default:
		return nil, errs.Wrapf(err, "load user %s", userID)
	}
}
