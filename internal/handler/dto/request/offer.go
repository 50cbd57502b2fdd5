package request

import "dealstream/internal/usecase/queries"

// ListOffersQuery binds GET /offers query parameters.
type ListOffersQuery struct {
	Category string `form:"category"`
	Limit    int    `form:"limit" binding:"omitempty,min=0"`
}

func (q ListOffersQuery) ToFilter() queries.OfferFilter {
	filter := queries.OfferFilter{Limit: queries.ValidateLimit(q.Limit)}
	if q.Category != "" {
		category := q.Category
		filter.Category = &category
	}
	return filter
}

type OfferURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}
