package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/netpong/netpong/game/engine"
	"github.com/netpong/netpong/game/room"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. Input messages are tiny.
	maxMessageSize = 512

	// Snapshot backlog per connection before it is considered unresponsive.
	sendBufferSize = 256
)

// inboundMessage is the union of everything a client may send. Only
// "input" is currently meaningful.
type inboundMessage struct {
	Type string `json:"type"`
	Up   bool   `json:"up"`
	Down bool   `json:"down"`
}

// assignMessage tells a client which seat it received. Player is nil for
// spectators.
type assignMessage struct {
	Type   string `json:"type"`
	Player *int   `json:"player"`
}

// Client is one WebSocket connection attached to a room. It implements
// room.Conn.
type Client struct {
	id   string
	conn *websocket.Conn
	send chan []byte

	room *room.Room
	seat engine.Seat

	done      chan struct{}
	closeOnce sync.Once
}

// ID returns the connection's unique identifier.
func (c *Client) ID() string {
	return c.id
}

// Send queues a payload for delivery without blocking. It reports false
// when the buffer is full or the connection is shutting down.
func (c *Client) Send(payload []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

// Close tears the connection down. Safe to call from any goroutine, any
// number of times.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

// sendAssign queues the seat-assignment message.
func (c *Client) sendAssign() {
	msg := assignMessage{Type: "assign"}
	if c.seat.Controlling() {
		player := int(c.seat)
		msg.Player = &player
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("websocket: failed to marshal assign for %s: %v", c.id, err)
		return
	}
	c.Send(payload)
}

// readPump pumps inbound messages into the room until the connection
// closes, then detaches. Malformed frames and unknown types are ignored;
// they never abort the connection or touch room state.
func (c *Client) readPump() {
	defer func() {
		c.room.Detach(c)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Printf("websocket: read error on %s: %v", c.id, err)
			}
			return
		}

		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		if msg.Type != "input" {
			continue
		}
		c.room.SetIntent(c.id, engine.Intent{Up: msg.Up, Down: msg.Down})
	}
}

// writePump pumps queued payloads to the connection and keeps it alive
// with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case payload := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
