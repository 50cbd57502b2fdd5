package queries

import (
	"context"

	"dealstream/internal/domain/offer"
	"dealstream/internal/infra"
	"dealstream/internal/pkg/errs"
)

const (
	DefaultOfferLimit = 50
	MaxOfferLimit     = 50
)

var (
	ErrOfferNotFound   = errs.ErrOfferNotFound
	ErrInvalidCategory = errs.New("invalid category filter")
)

type OfferFilter struct {
	Category *string
	Limit    int
}

type OfferReadStore interface {
	ListRecent(ctx context.Context, category *offer.Category, limit int32) ([]*OfferView, error)
	FindByID(ctx context.Context, id int64) (*OfferView, error)
	CountByCategory(ctx context.Context) ([]*CategoryCount, error)
}

type OfferQueries interface {
	ListRecent(ctx context.Context, filter OfferFilter) ([]*OfferView, error)
	GetByID(ctx context.Context, id int64) (*OfferView, error)
	CountByCategory(ctx context.Context) ([]*CategoryCount, error)
}

type offerQueriesImpl struct {
	readStore OfferReadStore
}

func NewOfferQueries(readStore OfferReadStore) OfferQueries {
	return &offerQueriesImpl{readStore: readStore}
}

// ListRecent returns the newest offers first, at most MaxOfferLimit.
func (q *offerQueriesImpl) ListRecent(ctx context.Context, filter OfferFilter) ([]*OfferView, error) {
	var category *offer.Category
	if filter.Category != nil && *filter.Category != "" {
		c, err := offer.NewCategory(*filter.Category)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidCategory)
		}
		category = &c
	}

	return q.readStore.ListRecent(ctx, category, int32(ValidateLimit(filter.Limit)))
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, id int64) (*OfferView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *offerQueriesImpl) CountByCategory(ctx context.Context) ([]*CategoryCount, error) {
	return q.readStore.CountByCategory(ctx)
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultOfferLimit
	}
	if limit > MaxOfferLimit {
		return MaxOfferLimit
	}
	return limit
}
