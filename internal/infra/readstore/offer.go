package readstore

import (
	"context"

	"dealstream/internal/domain/offer"
	"dealstream/internal/infra"
	sqlc "dealstream/internal/infra/sqlc/generated"
	"dealstream/internal/pkg/pgconv"
	"dealstream/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type OfferReadQueries interface {
	ListRecentOffers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRecentOffersParams) ([]sqlc.Offers, error)
	FindOfferByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Offers, error)
	CountOffersByCategory(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountOffersByCategoryRow, error)
}

type OfferReadStore struct {
	queries OfferReadQueries
	db      sqlc.DBTX
}

func NewOfferReadStore(queries OfferReadQueries, db sqlc.DBTX) *OfferReadStore {
	return &OfferReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OfferReadStore) ListRecent(ctx context.Context, category *offer.Category, limit int32) ([]*queries.OfferView, error) {
	arg := sqlc.ListRecentOffersParams{Limit: limit}
	if category != nil {
		arg.Category = pgtype.Text{String: category.String(), Valid: true}
	}

	rows, err := r.queries.ListRecentOffers(ctx, r.db, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent offers", err, infra.KindDBFailure)
	}

	views := make([]*queries.OfferView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toOfferView(row))
	}
	return views, nil
}

func (r *OfferReadStore) FindByID(ctx context.Context, id int64) (*queries.OfferView, error) {
	row, err := r.queries.FindOfferByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer by ID", err)
	}
	return toOfferView(row), nil
}

func (r *OfferReadStore) CountByCategory(ctx context.Context) ([]*queries.CategoryCount, error) {
	rows, err := r.queries.CountOffersByCategory(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count offers by category", err, infra.KindDBFailure)
	}

	counts := make([]*queries.CategoryCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, &queries.CategoryCount{Category: row.Category, Total: row.Total})
	}
	return counts, nil
}

func toOfferView(row sqlc.Offers) *queries.OfferView {
	return &queries.OfferView{
		ID:          row.ID,
		Source:      row.Source,
		ExternalID:  row.ExternalID,
		Title:       row.Title,
		Description: row.Description,
		Price:       row.Price,
		Category:    row.Category,
		ImageURL:    row.Url,
		ContentHash: row.Hash,
		WebsiteURL:  pgconv.StringPtrFromPgtype(row.WebsiteUrl),
		ExpiryDate:  pgconv.DatePtrFromPgtype(row.ExpiryDate),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
