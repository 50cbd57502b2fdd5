//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"dealstream/internal/handler/api"
	resdto "dealstream/internal/handler/dto/response"
	"dealstream/internal/pkg/errs"
	"dealstream/internal/usecase/commands"
	"dealstream/tests/common/httptest"
	commandsmock "dealstream/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockIngest *commandsmock.MockIngestCommands
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockIngest = commandsmock.NewMockIngestCommands(s.mockCtrl)
	s.router.POST("/admin/fetch-now", api.NewAdminHandler(s.mockIngest).FetchNow)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestFetchNow() {
	s.Run("success: reports inserted count", func() {
		s.mockIngest.EXPECT().Run(gomock.Any()).
			Return(&commands.IngestResult{Inserted: 3, Fetched: 20, Duration: 120 * time.Millisecond}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/fetch-now", nil, "")

		var body resdto.FetchNowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal(3, body.Inserted)
		s.Equal(20, body.Fetched)
		s.Equal(int64(120), body.TookMS)
	})

	s.Run("error: 502 on upstream failure", func() {
		s.mockIngest.EXPECT().Run(gomock.Any()).
			Return(&commands.IngestResult{}, errs.Mark(errors.New("timeout"), errs.ErrUpstreamFetch)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/fetch-now", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Upstream fetch failed")
	})

	s.Run("error: 500 on persistence failure", func() {
		s.mockIngest.EXPECT().Run(gomock.Any()).
			Return(&commands.IngestResult{Inserted: 1}, errs.Mark(errors.New("disk full"), errs.ErrOfferPersist)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/fetch-now", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Ingestion failed")
	})
}
