package api

import (
	"log/slog"
	"net/http"

	resdto "dealstream/internal/handler/dto/response"
	"dealstream/internal/handler/httperr"
	"dealstream/internal/pkg/errs"
	"dealstream/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	ingest commands.IngestCommands
}

func NewAdminHandler(ingest commands.IngestCommands) *AdminHandler {
	return &AdminHandler{ingest: ingest}
}

// @Summary Run ingestion now
// @Description Fetches the remote catalog and stores new offers; admin only
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.FetchNowResponse
// @Failure 401 {object} httperr.Body
// @Failure 403 {object} httperr.Body
// @Failure 502 {object} httperr.Body
// @Failure 500 {object} httperr.Body
// @Router /admin/fetch-now [post]
func (h *AdminHandler) FetchNow(c *gin.Context) {
	result, err := h.ingest.Run(c.Request.Context())
	if err != nil {
		inserted := 0
		if result != nil {
			inserted = result.Inserted
		}
		slog.Warn("manual ingestion failed", "inserted", inserted, "error", err.Error())

		detail := gin.H{"inserted": inserted}
		if errs.Is(err, errs.ErrUpstreamFetch) {
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Upstream fetch failed", detail)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Ingestion failed", detail)
		return
	}

	c.JSON(http.StatusOK, resdto.FetchNowResponse{
		Success:  true,
		Inserted: result.Inserted,
		Fetched:  result.Fetched,
		Skipped:  result.Skipped,
		TookMS:   result.Duration.Milliseconds(),
	})
}
