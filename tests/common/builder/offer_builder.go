//go:build unit || e2e

package builder

import (
	"time"

	"dealstream/internal/domain/offer"
	sqlc "dealstream/internal/infra/sqlc/generated"
	"dealstream/internal/pkg/pgconv"
	"dealstream/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type OfferBuilder struct {
	ID          int64
	Source      offer.Source
	ExternalID  string
	Title       string
	Description string
	Price       int64
	Category    offer.Category
	ImageURL    string
	WebsiteURL  *string
	ExpiryDate  *time.Time
	CreatedAt   time.Time
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		ID:          1,
		Source:      offer.SourceRemoteAPI,
		ExternalID:  "42",
		Title:       "Widget",
		Description: "A small widget",
		Price:       50,
		Category:    offer.CategoryElectronics,
		ImageURL:    "https://img.example.com/42.png",
		CreatedAt:   time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC),
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) params() offer.Params {
	return offer.Params{
		Source:      b.Source,
		ExternalID:  b.ExternalID,
		Title:       b.Title,
		Description: b.Description,
		Price:       b.Price,
		Category:    b.Category,
		ImageURL:    b.ImageURL,
		WebsiteURL:  b.WebsiteURL,
		ExpiryDate:  b.ExpiryDate,
	}
}

// Build methods
func (b *OfferBuilder) BuildDomain() (*offer.Offer, error) {
	return offer.NewOffer(b.params())
}

func (b *OfferBuilder) BuildPersisted() *offer.Offer {
	return offer.Reconstruct(b.ID, b.params(), offer.Fingerprint(b.ExternalID), b.CreatedAt)
}

func (b *OfferBuilder) BuildInfra() sqlc.Offers {
	return sqlc.Offers{
		ID:          b.ID,
		Source:      b.Source.String(),
		ExternalID:  b.ExternalID,
		Title:       b.Title,
		Description: b.Description,
		Price:       b.Price,
		Category:    b.Category.String(),
		Url:         b.ImageURL,
		Hash:        offer.Fingerprint(b.ExternalID),
		WebsiteUrl:  pgconv.StringPtrToPgtype(b.WebsiteURL),
		ExpiryDate:  pgconv.DatePtrToPgtype(b.ExpiryDate),
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *OfferBuilder) BuildView() *queries.OfferView {
	return &queries.OfferView{
		ID:          b.ID,
		Source:      b.Source.String(),
		ExternalID:  b.ExternalID,
		Title:       b.Title,
		Description: b.Description,
		Price:       b.Price,
		Category:    b.Category.String(),
		ImageURL:    b.ImageURL,
		ContentHash: offer.Fingerprint(b.ExternalID),
		WebsiteURL:  b.WebsiteURL,
		ExpiryDate:  b.ExpiryDate,
		CreatedAt:   b.CreatedAt,
	}
}

// Fluent builder methods
func (b *OfferBuilder) WithID(id int64) *OfferBuilder {
	b.ID = id
	return b
}

func (b *OfferBuilder) WithExternalID(externalID string) *OfferBuilder {
	b.ExternalID = externalID
	return b
}

func (b *OfferBuilder) WithCategory(category offer.Category) *OfferBuilder {
	b.Category = category
	return b
}

func (b *OfferBuilder) WithSupplement() *OfferBuilder {
	b.Source = offer.SourceStaticSupplement
	return b
}
