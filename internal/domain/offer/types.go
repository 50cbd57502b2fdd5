package offer

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidSource   = errors.New("invalid offer source")
	ErrInvalidCategory = errors.New("invalid offer category")
	ErrEmptyExternalID = errors.New("external id must not be empty")
	ErrNegativePrice   = errors.New("price must not be negative")
)

type Source string

const (
	SourceRemoteAPI        Source = "remote-api"
	SourceStaticSupplement Source = "static-supplement"
)

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	switch s {
	case SourceRemoteAPI, SourceStaticSupplement:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryFashion     Category = "Fashion"
	CategoryJewellery   Category = "Jewellery"
	CategoryElectronics Category = "Electronics"
	CategoryTravel      Category = "Travel"
	CategoryFood        Category = "Food"
	CategoryShopping    Category = "Shopping"
	CategoryServices    Category = "Services"
)

// DefaultCategory is assigned to remote records whose category has no mapping.
const DefaultCategory = CategoryFashion

var categories = []Category{
	CategoryFashion,
	CategoryJewellery,
	CategoryElectronics,
	CategoryTravel,
	CategoryFood,
	CategoryShopping,
	CategoryServices,
}

// Categories returns the canonical categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// NewCategory accepts the canonical spelling, case-insensitively.
func NewCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, known := range categories {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", ErrInvalidCategory
}

// RemoteRecord is one product as returned by the remote product API.
// Pointer fields are nil when the upstream omitted them.
type RemoteRecord struct {
	ID          string
	Title       *string
	Description *string
	Price       *float64
	Category    *string
	Image       *string
}

// SupplementRecord is one hand-authored offer from the bundled supplement catalog.
type SupplementRecord struct {
	ExternalID  string
	Title       string
	Description string
	Price       int64
	Category    Category
	ImageURL    string
	WebsiteURL  *string
	ExpiryDate  *time.Time
}
