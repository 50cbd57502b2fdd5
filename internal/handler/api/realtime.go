package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type RealtimeHandler struct {
	hub http.Handler
}

// NewRealtimeHandler takes the hub as a plain http.Handler; the upgrade is done there.
func NewRealtimeHandler(hub http.Handler) *RealtimeHandler {
	return &RealtimeHandler{hub: hub}
}

// @Summary Offer push channel
// @Description WebSocket upgrade; each new offer arrives as a newOffer event
// @Tags realtime
// @Router /ws [get]
func (h *RealtimeHandler) Subscribe(c *gin.Context) {
	h.hub.ServeHTTP(c.Writer, c.Request)
}
