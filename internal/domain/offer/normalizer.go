package offer

import (
	"math"
	"strings"

	"dealstream/internal/pkg/patch"
)

// DefaultPriceRate converts remote price units to minor currency units.
const DefaultPriceRate = 10

var defaultCategoryMapping = map[string]Category{
	"men's clothing":   CategoryFashion,
	"women's clothing": CategoryFashion,
	"jewelery":         CategoryJewellery,
	"electronics":      CategoryElectronics,
}

type Normalizer interface {
	FromRemote(rec RemoteRecord) *Offer
	FromSupplement(rec SupplementRecord) *Offer
}

// DefaultNormalizer never fails: malformed fields fall back to defaults so that
// one bad upstream record cannot abort a batch.
type DefaultNormalizer struct {
	PriceRate       float64
	CategoryMapping map[string]Category
	Fallback        Category
}

func NewDefaultNormalizer() *DefaultNormalizer {
	return NewNormalizerWithRate(DefaultPriceRate)
}

func NewNormalizerWithRate(rate float64) *DefaultNormalizer {
	if rate <= 0 {
		rate = DefaultPriceRate
	}
	return &DefaultNormalizer{
		PriceRate:       rate,
		CategoryMapping: defaultCategoryMapping,
		Fallback:        DefaultCategory,
	}
}

func (n *DefaultNormalizer) FromRemote(rec RemoteRecord) *Offer {
	return newCandidate(Params{
		Source:      SourceRemoteAPI,
		ExternalID:  strings.TrimSpace(rec.ID),
		Title:       patch.CoalesceString(rec.Title, ""),
		Description: patch.CoalesceString(rec.Description, ""),
		Price:       n.ConvertPrice(patch.Coalesce(rec.Price, 0)),
		Category:    n.MapCategory(patch.CoalesceString(rec.Category, "")),
		ImageURL:    patch.CoalesceString(rec.Image, ""),
	})
}

func (n *DefaultNormalizer) FromSupplement(rec SupplementRecord) *Offer {
	category := rec.Category
	if !category.IsValid() {
		category = n.Fallback
	}
	return newCandidate(Params{
		Source:      SourceStaticSupplement,
		ExternalID:  rec.ExternalID,
		Title:       rec.Title,
		Description: rec.Description,
		Price:       rec.Price,
		Category:    category,
		ImageURL:    rec.ImageURL,
		WebsiteURL:  rec.WebsiteURL,
		ExpiryDate:  rec.ExpiryDate,
	})
}

// ConvertPrice rounds half away from zero; negative and non-finite inputs become 0.
func (n *DefaultNormalizer) ConvertPrice(sourcePrice float64) int64 {
	if math.IsNaN(sourcePrice) || math.IsInf(sourcePrice, 0) || sourcePrice <= 0 {
		return 0
	}
	return int64(math.Round(sourcePrice * n.PriceRate))
}

func (n *DefaultNormalizer) MapCategory(raw string) Category {
	if c, ok := n.CategoryMapping[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return c
	}
	return n.Fallback
}

// LegacyCategoryLabels returns the raw upstream labels that have a canonical
// mapping. Rows stored before normalization may still carry them.
func LegacyCategoryLabels() map[string]Category {
	out := make(map[string]Category, len(defaultCategoryMapping))
	for k, v := range defaultCategoryMapping {
		out[k] = v
	}
	return out
}
