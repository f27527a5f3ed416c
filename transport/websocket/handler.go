package websocket

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/netpong/netpong/game/engine"
	"github.com/netpong/netpong/game/registry"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// TODO: Configure this for production
		return true
	},
}

// Handler upgrades HTTP requests to WebSocket connections and runs their
// lifecycle against the room registry.
type Handler struct {
	registry *registry.Manager
}

// NewHandler creates a WebSocket handler backed by the given registry.
func NewHandler(reg *registry.Manager) *Handler {
	return &Handler{registry: reg}
}

// HandleWebSocket upgrades the request and joins the connection to its
// room. Query parameters: room (free-form id, default "default") and
// player ("1", "2", or "auto", default "auto").
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket: upgrade failed: %v", err)
		return
	}

	client := &Client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
	}

	roomID := r.URL.Query().Get("room")
	requested := parseRequestedSeat(r.URL.Query().Get("player"))

	client.room, client.seat = h.registry.Join(roomID, client, requested)
	client.sendAssign()

	go client.writePump()
	go client.readPump()
}

// parseRequestedSeat maps the player query parameter onto a seat request.
// Anything other than "1" or "2" means auto-assignment.
func parseRequestedSeat(player string) engine.Seat {
	switch player {
	case "1":
		return engine.Seat1
	case "2":
		return engine.Seat2
	default:
		return engine.Spectator
	}
}
