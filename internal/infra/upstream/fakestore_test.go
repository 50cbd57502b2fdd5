//go:build unit

package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dealstream/internal/domain/offer"
	"dealstream/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *ProductClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewProductClient(config.IngestConfig{
		SourceURL:   srv.URL + "/products",
		HTTPTimeout: 2 * time.Second,
		UserAgent:   "dealstream-test",
	})
}

func TestProductClient_FetchAll(t *testing.T) {
	t.Run("decodes records in upstream order", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products", r.URL.Path)
			assert.Equal(t, "dealstream-test", r.Header.Get("User-Agent"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"id": 42, "title": "Widget", "description": "A small widget", "price": 5, "category": "electronics", "image": "https://img/42.png"},
				{"id": "a-7", "title": "Ring", "price": 12.5, "category": "jewelery"},
				{"id": null, "title": "No id"}
			]`))
		})

		records, err := client.FetchAll(context.Background())

		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, "42", records[0].ID)
		require.NotNil(t, records[0].Price)
		assert.Equal(t, 5.0, *records[0].Price)
		require.NotNil(t, records[0].Category)
		assert.Equal(t, "electronics", *records[0].Category)

		assert.Equal(t, "a-7", records[1].ID)
		assert.Nil(t, records[1].Description)
		assert.Nil(t, records[1].Image)

		assert.Equal(t, "", records[2].ID)
	})

	t.Run("malformed fields degrade to nil without dropping the batch", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[
				{"id": 1, "title": "Good", "price": 9.99, "category": "electronics"},
				{"id": 2, "title": "Bad", "price": "12.5", "category": ["x"]},
				{"id": 3, "title": 123, "price": 1, "image": false}
			]`))
		})

		records, err := client.FetchAll(context.Background())

		require.NoError(t, err)
		require.Len(t, records, 3)

		require.NotNil(t, records[0].Price)
		assert.Equal(t, 9.99, *records[0].Price)

		assert.Equal(t, "2", records[1].ID)
		require.NotNil(t, records[1].Price)
		assert.Equal(t, 12.5, *records[1].Price)
		assert.Nil(t, records[1].Category)

		assert.Equal(t, "3", records[2].ID)
		assert.Nil(t, records[2].Title)
		assert.Nil(t, records[2].Image)
		require.NotNil(t, records[2].Price)
		assert.Equal(t, 1.0, *records[2].Price)
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		records, err := client.FetchAll(context.Background())

		require.Error(t, err)
		assert.Nil(t, records)
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	})

	t.Run("undecodable body is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"not":"a list"}`))
		})

		_, err := client.FetchAll(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode product list")
	})

	t.Run("cancelled context", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.FetchAll(ctx)

		require.Error(t, err)
	})

	t.Run("empty list", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})

		records, err := client.FetchAll(context.Background())

		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestDecodeProducts(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantLen int
		check   func(t *testing.T, got []offer.RemoteRecord)
		wantErr bool
	}{
		{
			name:    "top-level object is rejected",
			body:    `{"id": 1}`,
			wantErr: true,
		},
		{
			name:    "truncated body is rejected",
			body:    `[{"id": 1,`,
			wantErr: true,
		},
		{
			name:    "non-object items are dropped",
			body:    `[1, "two", null, {"id": 4, "title": "Kept"}]`,
			wantLen: 1,
			check: func(t *testing.T, got []offer.RemoteRecord) {
				assert.Equal(t, "4", got[0].ID)
			},
		},
		{
			name:    "non-numeric price string is nil",
			body:    `[{"id": 5, "price": "cheap"}]`,
			wantLen: 1,
			check: func(t *testing.T, got []offer.RemoteRecord) {
				assert.Nil(t, got[0].Price)
			},
		},
		{
			name:    "undecodable id keeps the record with an empty id",
			body:    `[{"id": {"nested": true}, "title": "No key"}]`,
			wantLen: 1,
			check: func(t *testing.T, got []offer.RemoteRecord) {
				assert.Equal(t, "", got[0].ID)
				require.NotNil(t, got[0].Title)
				assert.Equal(t, "No key", *got[0].Title)
			},
		},
		{
			name:    "explicit null fields are nil",
			body:    `[{"id": "x-1", "title": null, "price": null}]`,
			wantLen: 1,
			check: func(t *testing.T, got []offer.RemoteRecord) {
				assert.Nil(t, got[0].Title)
				assert.Nil(t, got[0].Price)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeProducts([]byte(tt.body))

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, tt.wantLen)
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}
