//go:build unit

package seed

import (
	"testing"
	"time"

	"dealstream/internal/domain/offer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	records := catalog.Records()
	require.Len(t, records, 21)

	first := records[0]
	assert.Equal(t, "travel1", first.ExternalID)
	assert.Equal(t, offer.CategoryTravel, first.Category)
	assert.Equal(t, int64(25999), first.Price)
	require.NotNil(t, first.WebsiteURL)
	assert.Equal(t, "https://www.makemytrip.com", *first.WebsiteURL)
	require.NotNil(t, first.ExpiryDate)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), *first.ExpiryDate)

	assert.Equal(t, "travel21", records[len(records)-1].ExternalID)

	for _, r := range records {
		assert.Contains(t, []offer.Category{offer.CategoryTravel, offer.CategoryFood}, r.Category, r.ExternalID)
	}
}

func TestCatalog_RecordsIsCopy(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	records := catalog.Records()
	records[0].ExternalID = "mutated"

	assert.Equal(t, "travel1", catalog.Records()[0].ExternalID)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
		wantLen int
	}{
		{
			name: "comments and trailing commas",
			data: `[
				// one
				{external_id: "x1", title: "T", price: 10, category: "food", url: "",},
			]`,
			wantLen: 1,
		},
		{
			name:    "unknown category",
			data:    `[{external_id: "x1", price: 1, category: "Toys"}]`,
			wantErr: "invalid offer category",
		},
		{
			name:    "missing external id",
			data:    `[{price: 1, category: "Food"}]`,
			wantErr: "external id must not be empty",
		},
		{
			name:    "bad expiry date",
			data:    `[{external_id: "x1", price: 1, category: "Food", expiry_date: "31/12/2024"}]`,
			wantErr: "expiry_date",
		},
		{
			name:    "duplicate external id",
			data:    `[{external_id: "x1", category: "Food"}, {external_id: "x1", category: "Food"}]`,
			wantErr: "duplicate external_id",
		},
		{
			name:    "negative price",
			data:    `[{external_id: "x1", price: -5, category: "Food"}]`,
			wantErr: "price must not be negative",
		},
		{
			name:    "not a list",
			data:    `{external_id: "x1"}`,
			wantErr: "parse supplement catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := Parse([]byte(tt.data))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, catalog.Len())
		})
	}
}
