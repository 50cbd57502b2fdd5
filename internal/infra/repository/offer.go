package repository

import (
	"context"

	"dealstream/internal/domain/offer"
	"dealstream/internal/infra"
	sqlc "dealstream/internal/infra/sqlc/generated"
	"dealstream/internal/pkg/pgconv"
)

type OfferWriteQueries interface {
	InsertOfferIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOfferIfAbsentParams) (sqlc.InsertOfferIfAbsentRow, error)
	RemapOfferCategory(ctx context.Context, db sqlc.DBTX, arg sqlc.RemapOfferCategoryParams) (int64, error)
}

type OfferRepository struct {
	queries OfferWriteQueries
}

func NewOfferRepository(queries OfferWriteQueries) *OfferRepository {
	return &OfferRepository{
		queries: queries,
	}
}

// InsertIfAbsent stores o unless (source, external_id) is already present.
// On insert, o is marked persisted with the server-assigned id and created_at.
func (r *OfferRepository) InsertIfAbsent(ctx context.Context, db sqlc.DBTX, o *offer.Offer) (bool, error) {
	row, err := r.queries.InsertOfferIfAbsent(ctx, db, toInsertOfferParams(o))
	if err != nil {
		// ON CONFLICT DO NOTHING returns no row
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to insert offer", err, infra.KindDBFailure)
	}

	o.MarkPersisted(row.ID, pgconv.TimeFromPgtype(row.CreatedAt))
	return true, nil
}

func (r *OfferRepository) RemapCategory(ctx context.Context, db sqlc.DBTX, from string, to offer.Category) (int64, error) {
	n, err := r.queries.RemapOfferCategory(ctx, db, sqlc.RemapOfferCategoryParams{
		ToCategory:   to.String(),
		FromCategory: from,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to remap offer category", err)
	}
	return n, nil
}

func toInsertOfferParams(o *offer.Offer) sqlc.InsertOfferIfAbsentParams {
	return sqlc.InsertOfferIfAbsentParams{
		Source:      o.Source().String(),
		ExternalID:  o.ExternalID(),
		Title:       o.Title(),
		Description: o.Description(),
		Price:       o.Price(),
		Category:    o.Category().String(),
		Url:         o.ImageURL(),
		Hash:        o.ContentHash(),
		WebsiteUrl:  pgconv.StringPtrToPgtype(o.WebsiteURL()),
		ExpiryDate:  pgconv.DatePtrToPgtype(o.ExpiryDate()),
	}
}
