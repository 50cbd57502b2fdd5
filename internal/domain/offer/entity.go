package offer

import (
	"strings"
	"time"
)

// Offer is a canonical deal record. Offers are created by ingestion and never
// mutated afterwards, so the entity only exposes getters.
type Offer struct {
	id          int64
	source      Source
	externalID  string
	title       string
	description string
	price       int64
	category    Category
	imageURL    string
	contentHash string
	websiteURL  *string
	expiryDate  *time.Time
	createdAt   time.Time
}

type Params struct {
	Source      Source
	ExternalID  string
	Title       string
	Description string
	Price       int64
	Category    Category
	ImageURL    string
	WebsiteURL  *string
	ExpiryDate  *time.Time
}

// NewOffer validates p and builds an unpersisted candidate with its fingerprint.
func NewOffer(p Params) (*Offer, error) {
	if !p.Source.IsValid() {
		return nil, ErrInvalidSource
	}
	if strings.TrimSpace(p.ExternalID) == "" {
		return nil, ErrEmptyExternalID
	}
	if !p.Category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if p.Price < 0 {
		return nil, ErrNegativePrice
	}
	return newCandidate(p), nil
}

func newCandidate(p Params) *Offer {
	return &Offer{
		source:      p.Source,
		externalID:  p.ExternalID,
		title:       p.Title,
		description: p.Description,
		price:       p.Price,
		category:    p.Category,
		imageURL:    p.ImageURL,
		contentHash: Fingerprint(p.ExternalID),
		websiteURL:  p.WebsiteURL,
		expiryDate:  p.ExpiryDate,
	}
}

// Reconstruct rebuilds a stored offer from persisted columns without validation.
func Reconstruct(id int64, p Params, contentHash string, createdAt time.Time) *Offer {
	return &Offer{
		id:          id,
		source:      p.Source,
		externalID:  p.ExternalID,
		title:       p.Title,
		description: p.Description,
		price:       p.Price,
		category:    p.Category,
		imageURL:    p.ImageURL,
		contentHash: contentHash,
		websiteURL:  p.WebsiteURL,
		expiryDate:  p.ExpiryDate,
		createdAt:   createdAt,
	}
}

// MarkPersisted records the server-assigned identity after a successful insert.
func (o *Offer) MarkPersisted(id int64, createdAt time.Time) {
	o.id = id
	o.createdAt = createdAt
}

func (o *Offer) IsPersisted() bool { return o.id != 0 }

func (o *Offer) ID() int64              { return o.id }
func (o *Offer) Source() Source         { return o.source }
func (o *Offer) ExternalID() string     { return o.externalID }
func (o *Offer) Title() string          { return o.title }
func (o *Offer) Description() string    { return o.description }
func (o *Offer) Price() int64           { return o.price }
func (o *Offer) Category() Category     { return o.category }
func (o *Offer) ImageURL() string       { return o.imageURL }
func (o *Offer) ContentHash() string    { return o.contentHash }
func (o *Offer) WebsiteURL() *string    { return o.websiteURL }
func (o *Offer) ExpiryDate() *time.Time { return o.expiryDate }
func (o *Offer) CreatedAt() time.Time   { return o.createdAt }
