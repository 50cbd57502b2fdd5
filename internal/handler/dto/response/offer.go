package response

import (
	"dealstream/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type OfferResponse struct {
	ID          int64   `json:"id"`
	Source      string  `json:"source"`
	ExternalID  string  `json:"external_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	Category    string  `json:"category"`
	URL         string  `json:"url"`
	Hash        string  `json:"hash"`
	WebsiteURL  *string `json:"website_url,omitempty"`
	ExpiryDate  *string `json:"expiry_date,omitempty" copier:"-"`
	CreatedAt   int64   `json:"created_at" copier:"-"`
}

func FromOfferView(v *queries.OfferView) *OfferResponse {
	res := &OfferResponse{}
	_ = copier.Copy(res, v)

	res.URL = v.ImageURL
	res.Hash = v.ContentHash
	if v.ExpiryDate != nil {
		d := v.ExpiryDate.Format("2006-01-02")
		res.ExpiryDate = &d
	}
	res.CreatedAt = v.CreatedAt.Unix()
	return res
}

func FromOfferViews(views []*queries.OfferView) []*OfferResponse {
	res := make([]*OfferResponse, len(views))
	for i, v := range views {
		res[i] = FromOfferView(v)
	}
	return res
}
