package queries

import (
	"time"

	"github.com/google/uuid"
)

// OfferView represents read-optimized offer data
type OfferView struct {
	ID          int64      `json:"id"`
	Source      string     `json:"source"`
	ExternalID  string     `json:"external_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       int64      `json:"price"`
	Category    string     `json:"category"`
	ImageURL    string     `json:"url"`
	ContentHash string     `json:"hash"`
	WebsiteURL  *string    `json:"website_url,omitempty"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

// UserView represents read-optimized user data without credentials
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
