package realtime

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"dealstream/internal/domain/offer"
	"dealstream/internal/pkg/config"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	EventNewOffer = "newOffer"

	defaultSendBuffer = 16
	writeTimeout      = 5 * time.Second
)

// Event is the frame written to every client: {"event": ..., "data": ...}.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type NewOfferPayload struct {
	ID          int64  `json:"id"`
	ExternalID  string `json:"external_id"`
	Title       string `json:"title"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

func NewOfferEvent(o *offer.Offer) Event {
	return Event{
		Event: EventNewOffer,
		Data: NewOfferPayload{
			ID:          o.ID(),
			ExternalID:  o.ExternalID(),
			Title:       o.Title(),
			Price:       o.Price(),
			Category:    o.Category().String(),
			Description: o.Description(),
			URL:         o.ImageURL(),
		},
	}
}

type client struct {
	send chan Event
}

// Hub fans events out to connected WebSocket clients. Delivery is best effort:
// a client whose buffer is full misses the event.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool

	sendBuffer     int
	originPatterns []string
}

func NewHub(cfg config.RealtimeConfig) *Hub {
	buf := cfg.SendBuffer
	if buf <= 0 {
		buf = defaultSendBuffer
	}
	return &Hub{
		clients:        make(map[*client]struct{}),
		sendBuffer:     buf,
		originPatterns: cfg.OriginPatterns,
	}
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		slog.Warn("websocket upgrade failed", "remote_addr", r.RemoteAddr, "error", err.Error())
		return
	}

	c := &client{send: make(chan Event, h.sendBuffer)}
	if !h.register(c) {
		_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}
	defer h.unregister(c)

	slog.Debug("websocket client connected", "remote_addr", r.RemoteAddr, "clients", h.ClientCount())

	// Inbound messages are ignored; CloseRead cancels ctx when the peer goes away.
	ctx := conn.CloseRead(r.Context())

	for {
		select {
		case <-ctx.Done():
			_ = conn.Close(websocket.StatusNormalClosure, "")
			return
		case ev, ok := <-c.send:
			if !ok {
				_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(wctx, conn, ev)
			cancel()
			if err != nil {
				slog.Debug("websocket write failed", "remote_addr", r.RemoteAddr, "error", err.Error())
				_ = conn.Close(websocket.StatusInternalError, "write failed")
				return
			}
		}
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

// Broadcast never blocks.
func (h *Hub) Broadcast(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	dropped := 0
	for c := range h.clients {
		select {
		case c.send <- ev:
		default:
			dropped++
		}
	}
	if dropped > 0 {
		slog.Warn("dropped event for slow websocket clients", "event", ev.Event, "dropped", dropped)
	}
}

func (h *Hub) PublishNewOffer(_ context.Context, o *offer.Offer) {
	h.Broadcast(NewOfferEvent(o))
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}
