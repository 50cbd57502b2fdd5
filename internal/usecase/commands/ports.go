package commands

import (
	"context"

	"dealstream/internal/domain/offer"
)

// OfferSource fetches the full remote product list in one call.
type OfferSource interface {
	FetchAll(ctx context.Context) ([]offer.RemoteRecord, error)
}

// SupplementCatalog yields the static supplement offers in a fixed order.
type SupplementCatalog interface {
	Records() []offer.SupplementRecord
}

// OfferBroadcaster pushes newly stored offers to connected clients.
// Implementations must not block the pipeline.
type OfferBroadcaster interface {
	PublishNewOffer(ctx context.Context, o *offer.Offer)
}
