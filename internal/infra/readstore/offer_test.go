//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"dealstream/internal/domain/offer"
	"dealstream/internal/infra"
	sqlc "dealstream/internal/infra/sqlc/generated"
	"dealstream/internal/pkg/ptr"
	"dealstream/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOfferReadQueries struct {
	mock.Mock
}

func (m *MockOfferReadQueries) ListRecentOffers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRecentOffersParams) ([]sqlc.Offers, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Offers), args.Error(1)
}

func (m *MockOfferReadQueries) FindOfferByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Offers, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Offers), args.Error(1)
}

func (m *MockOfferReadQueries) CountOffersByCategory(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountOffersByCategoryRow, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.CountOffersByCategoryRow), args.Error(1)
}

func TestOfferReadStore_ListRecent(t *testing.T) {
	expiry := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	remote := builder.NewOfferBuilder()
	supplement := builder.NewOfferBuilder().WithID(2).WithExternalID("travel1").WithCategory(offer.CategoryTravel).WithSupplement().
		With(func(b *builder.OfferBuilder) {
			b.WebsiteURL = ptr.Of("https://travel.example.com")
			b.ExpiryDate = &expiry
		})

	travel := offer.CategoryTravel

	tests := []struct {
		name      string
		category  *offer.Category
		wantArg   sqlc.ListRecentOffersParams
		rows      []sqlc.Offers
		mockError error
		want      int
		wantErr   bool
	}{
		{
			name:    "no filter",
			wantArg: sqlc.ListRecentOffersParams{Limit: 50},
			rows:    []sqlc.Offers{supplement.BuildInfra(), remote.BuildInfra()},
			want:    2,
		},
		{
			name:     "category filter",
			category: &travel,
			wantArg:  sqlc.ListRecentOffersParams{Category: pgtype.Text{String: "Travel", Valid: true}, Limit: 50},
			rows:     []sqlc.Offers{supplement.BuildInfra()},
			want:     1,
		},
		{
			name:      "database error",
			wantArg:   sqlc.ListRecentOffersParams{Limit: 50},
			rows:      []sqlc.Offers{},
			mockError: assert.AnError,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockOfferReadQueries)
			mockQueries.On("ListRecentOffers", mock.Anything, mock.Anything, tt.wantArg).Return(tt.rows, tt.mockError)

			views, err := NewOfferReadStore(mockQueries, nil).ListRecent(context.Background(), tt.category, 50)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Len(t, views, tt.want)
			mockQueries.AssertExpectations(t)
		})
	}

	t.Run("maps nullable columns", func(t *testing.T) {
		mockQueries := new(MockOfferReadQueries)
		mockQueries.On("ListRecentOffers", mock.Anything, mock.Anything, mock.Anything).
			Return([]sqlc.Offers{supplement.BuildInfra()}, nil)

		views, err := NewOfferReadStore(mockQueries, nil).ListRecent(context.Background(), nil, 50)

		require.NoError(t, err)
		require.Len(t, views, 1)
		if diff := cmp.Diff(supplement.BuildView(), views[0]); diff != "" {
			t.Errorf("OfferView mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestOfferReadStore_FindByID(t *testing.T) {
	b := builder.NewOfferBuilder().WithID(7)

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockOfferReadQueries)
		mockQueries.On("FindOfferByID", mock.Anything, mock.Anything, int64(7)).Return(b.BuildInfra(), nil)

		view, err := NewOfferReadStore(mockQueries, nil).FindByID(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, b.BuildView(), view)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockOfferReadQueries)
		mockQueries.On("FindOfferByID", mock.Anything, mock.Anything, int64(7)).Return(sqlc.Offers{}, pgx.ErrNoRows)

		_, err := NewOfferReadStore(mockQueries, nil).FindByID(context.Background(), 7)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestOfferReadStore_CountByCategory(t *testing.T) {
	mockQueries := new(MockOfferReadQueries)
	mockQueries.On("CountOffersByCategory", mock.Anything, mock.Anything).Return([]sqlc.CountOffersByCategoryRow{
		{Category: "Electronics", Total: 6},
		{Category: "Food", Total: 10},
	}, nil)

	counts, err := NewOfferReadStore(mockQueries, nil).CountByCategory(context.Background())

	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "Food", counts[1].Category)
	assert.Equal(t, int64(10), counts[1].Total)
}
