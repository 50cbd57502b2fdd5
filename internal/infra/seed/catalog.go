package seed

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"dealstream/internal/domain/offer"

	"github.com/titanous/json5"
)

const dateLayout = "2006-01-02"

//go:embed supplement.json5
var supplementFile []byte

type entry struct {
	ExternalID  string  `json:"external_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	Category    string  `json:"category"`
	URL         string  `json:"url"`
	WebsiteURL  *string `json:"website_url"`
	ExpiryDate  *string `json:"expiry_date"`
}

// Catalog is the static supplement list, kept in authored order.
type Catalog struct {
	records []offer.SupplementRecord
}

// LoadCatalog parses the embedded supplement file.
func LoadCatalog() (*Catalog, error) {
	return Parse(supplementFile)
}

func Parse(data []byte) (*Catalog, error) {
	var entries []entry
	if err := json5.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse supplement catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(entries))
	records := make([]offer.SupplementRecord, 0, len(entries))
	for i, e := range entries {
		rec, err := e.toRecord()
		if err != nil {
			return nil, fmt.Errorf("supplement entry %d: %w", i, err)
		}
		if _, dup := seen[rec.ExternalID]; dup {
			return nil, fmt.Errorf("supplement entry %d: duplicate external_id %q", i, rec.ExternalID)
		}
		seen[rec.ExternalID] = struct{}{}
		records = append(records, rec)
	}

	return &Catalog{records: records}, nil
}

func (e entry) toRecord() (offer.SupplementRecord, error) {
	id := strings.TrimSpace(e.ExternalID)
	if id == "" {
		return offer.SupplementRecord{}, offer.ErrEmptyExternalID
	}
	if e.Price < 0 {
		return offer.SupplementRecord{}, offer.ErrNegativePrice
	}
	category, err := offer.NewCategory(e.Category)
	if err != nil {
		return offer.SupplementRecord{}, fmt.Errorf("%w: %q", err, e.Category)
	}

	var expiry *time.Time
	if e.ExpiryDate != nil && *e.ExpiryDate != "" {
		t, err := time.Parse(dateLayout, *e.ExpiryDate)
		if err != nil {
			return offer.SupplementRecord{}, fmt.Errorf("expiry_date: %w", err)
		}
		expiry = &t
	}

	return offer.SupplementRecord{
		ExternalID:  id,
		Title:       e.Title,
		Description: e.Description,
		Price:       e.Price,
		Category:    category,
		ImageURL:    e.URL,
		WebsiteURL:  e.WebsiteURL,
		ExpiryDate:  expiry,
	}, nil
}

// Records returns a copy so callers cannot reorder the catalog.
func (c *Catalog) Records() []offer.SupplementRecord {
	out := make([]offer.SupplementRecord, len(c.records))
	copy(out, c.records)
	return out
}

func (c *Catalog) Len() int {
	return len(c.records)
}
