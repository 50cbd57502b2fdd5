package api

import (
	"net/http"

	"dealstream/internal/domain/offer"
	reqdto "dealstream/internal/handler/dto/request"
	resdto "dealstream/internal/handler/dto/response"
	"dealstream/internal/handler/httperr"
	"dealstream/internal/pkg/errs"
	"dealstream/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	q queries.OfferQueries
}

func NewOfferHandler(q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{q: q}
}

// @Summary List offers
// @Description Most recent offers first, optionally filtered by category
// @Tags offers
// @Produce json
// @Param category query string false "Category (Fashion, Jewellery, Electronics, Travel, Food, Shopping, Services)"
// @Param limit query int false "Max items (default and max 50)"
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} httperr.Body
// @Router /offers [get]
func (h *OfferHandler) List(c *gin.Context) {
	var query reqdto.ListOffersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, err := h.q.ListRecent(c.Request.Context(), query.ToFilter())
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCategory) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown category", gin.H{"category": query.Category, "allowed": offer.Categories()})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list offers", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOfferViews(views))
}

// @Summary Get offer
// @Tags offers
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Body
// @Failure 404 {object} httperr.Body
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	var uri reqdto.OfferURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		if errs.Is(err, queries.ErrOfferNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offer", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOfferView(view))
}
