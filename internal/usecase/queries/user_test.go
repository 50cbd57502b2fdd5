//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"dealstream/internal/infra"
	"dealstream/internal/pkg/errs"
	"dealstream/internal/usecase/queries"
	queriesmock "dealstream/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		want := &queries.UserView{ID: userID, Username: "alice@example.com", CreatedAt: time.Now()}
		store.EXPECT().FindByID(gomock.Any(), userID).Return(want, nil)

		got, err := queries.NewUserQueries(store).GetCurrentUser(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), userID).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err := queries.NewUserQueries(store).GetCurrentUser(context.Background(), userID)

		assert.True(t, errs.Is(err, queries.ErrUserNotFound))
	})

	t.Run("nil id never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)

		_, err := queries.NewUserQueries(store).GetCurrentUser(context.Background(), uuid.Nil)

		assert.True(t, errs.Is(err, queries.ErrUserNotFound))
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), userID).
			Return(nil, infra.WrapRepoErr("select user", errs.New("conn closed"), infra.KindDBFailure))

		_, err := queries.NewUserQueries(store).GetCurrentUser(context.Background(), userID)

		require.Error(t, err)
		assert.False(t, errs.Is(err, queries.ErrUserNotFound))
	})
}
