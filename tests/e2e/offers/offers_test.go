//go:build e2e

package offers_test

import (
	"fmt"
	"net/http"
	"testing"

	"dealstream/internal/handler/dto/response"
	"dealstream/tests/common/authtest"
	"dealstream/tests/common/dbtest"
	"dealstream/tests/common/httptest"
	"dealstream/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	offersURL   = "/offers"
	fetchNowURL = "/admin/fetch-now"

	supplementCount = 21
)

type offersSuite struct {
	e2e.SharedSuite
}

func TestOffersSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(offersSuite))
}

func (s *offersSuite) fetchNow(token string) *response.FetchNowResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fetchNowURL, nil, token)
	var res response.FetchNowResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return &res
}

func (s *offersSuite) TestListOffers() {
	s.Run("newest first with category filter", func() {
		first := dbtest.CreateTestOffer(s.T(), s.DB, "remote-api", "1", "Backpack", "Fashion", 1100)
		second := dbtest.CreateTestOffer(s.T(), s.DB, "remote-api", "2", "Monitor", "Electronics", 9990)
		third := dbtest.CreateTestOffer(s.T(), s.DB, "remote-api", "3", "SSD", "Electronics", 1090)
		_, err := s.DB.Exec(s.T().Context(),
			"UPDATE offers SET created_at = now() - make_interval(secs => 100 - id)")
		require.NoError(s.T(), err)

		var all []response.OfferResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, offersURL, nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &all)
		require.Len(s.T(), all, 3)
		assert.Equal(s.T(), []int64{third, second, first}, []int64{all[0].ID, all[1].ID, all[2].ID})

		var electronics []response.OfferResponse
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, offersURL+"?category=Electronics", nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &electronics)
		require.Len(s.T(), electronics, 2)
		for _, o := range electronics {
			assert.Equal(s.T(), "Electronics", o.Category)
		}

		var limited []response.OfferResponse
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, offersURL+"?limit=1", nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &limited)
		require.Len(s.T(), limited, 1)
		assert.Equal(s.T(), third, limited[0].ID)
	})

	s.Run("empty store returns an empty array", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, offersURL, nil, "")
		require.Equal(s.T(), http.StatusOK, w.Code)
		assert.JSONEq(s.T(), "[]", w.Body.String())
	})

	s.Run("unknown category", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, offersURL+"?category=Toys", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Unknown category")
	})
}

func (s *offersSuite) TestGetOffer() {
	s.Run("existing offer", func() {
		id := dbtest.CreateTestOffer(s.T(), s.DB, "static-supplement", "food1", "Pizza deal", "Food", 500)

		var res response.OfferResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf("%s/%d", offersURL, id), nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		assert.Equal(s.T(), id, res.ID)
		assert.Equal(s.T(), "Pizza deal", res.Title)
		assert.Equal(s.T(), "static-supplement", res.Source)
	})

	s.Run("missing offer", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, offersURL+"/999999", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Offer not found")
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, offersURL+"/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid id")
	})
}

func (s *offersSuite) TestFetchNow() {
	s.Run("requires a session", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fetchNowURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
		assert.Zero(s.T(), s.Upstream.Hits())
	})

	s.Run("viewer is forbidden", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "viewer@example.com")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fetchNowURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
		assert.Zero(s.T(), s.Upstream.Hits())
	})

	s.Run("ingests remote and supplement offers once", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com")
		s.Upstream.SetProducts(
			e2e.Product(1, "Backpack", 109.95, "men's clothing"),
			e2e.Product(9, "External Drive", 64, "electronics"),
		)

		res := s.fetchNow(token)
		assert.True(s.T(), res.Success)
		assert.Equal(s.T(), 2, res.Fetched)
		assert.Equal(s.T(), 2+supplementCount, res.Inserted)
		assert.Equal(s.T(), 2+supplementCount, dbtest.CountOffers(s.T(), s.DB))

		var electronics []response.OfferResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, offersURL+"?category=Electronics", nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &electronics)
		var drive *response.OfferResponse
		for i := range electronics {
			if electronics[i].Source == "remote-api" && electronics[i].ExternalID == "9" {
				drive = &electronics[i]
			}
		}
		require.NotNil(s.T(), drive)
		assert.Equal(s.T(), int64(640), drive.Price)
		assert.Len(s.T(), drive.Hash, 64)

		again := s.fetchNow(token)
		assert.Zero(s.T(), again.Inserted)
		assert.Equal(s.T(), 2+supplementCount, dbtest.CountOffers(s.T(), s.DB))
	})

	s.Run("upstream failure", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com")
		s.Upstream.Fail(http.StatusServiceUnavailable)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fetchNowURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadGateway, "Upstream fetch failed")
		assert.Zero(s.T(), dbtest.CountOffers(s.T(), s.DB))
	})
}
