package client

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// intentSendInterval is the fixed cadence for intent transmission. Changes
// are additionally sent immediately.
const intentSendInterval = time.Second / 30

// Client is one live connection to a NetPong server. It keeps a normalised
// copy of the latest snapshot and continuously reports the current intent.
type Client struct {
	conn *websocket.Conn

	mu       sync.Mutex
	state    State
	player   int
	assigned bool
	up, down bool

	kick      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// Dial connects to a server. serverURL may be the WebSocket endpoint
// ("ws://localhost:8080/ws") or a plain base URL ("http://localhost:8080"),
// in which case the scheme is rewritten and the /ws path appended. Room and
// player are added as query parameters when non-empty.
func Dial(serverURL, roomID, player string) (*Client, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	if u.Path == "" {
		u.Path = "/ws"
	}
	q := u.Query()
	if roomID != "" {
		q.Set("room", roomID)
	}
	if player != "" {
		q.Set("player", player)
	}
	u.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", u, err)
	}

	c := &Client{
		conn:  conn,
		state: DefaultState(),
		kick:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	go c.readLoop()
	go c.writeLoop()
	return c, nil
}

// State returns the latest normalised state. Always fully populated, even
// before the first snapshot arrives.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Seat returns the assigned controlling seat. ok is false while no
// assignment has arrived or when the client is a spectator; callers show a
// "connecting"/spectator indicator in that case.
func (c *Client) Seat() (seat int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.player, c.assigned && c.player != 0
}

// Assigned reports whether the server has answered with a seat assignment
// (including the spectator one).
func (c *Client) Assigned() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.assigned
}

// SetIntent records the current desired movement. A change is pushed to
// the server immediately; the steady cadence keeps repeating it either way.
func (c *Client) SetIntent(up, down bool) {
	c.mu.Lock()
	changed := up != c.up || down != c.down
	c.up, c.down = up, down
	c.mu.Unlock()

	if changed {
		select {
		case c.kick <- struct{}{}:
		default:
		}
	}
}

// Done is closed once the connection is gone.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Close tears the connection down. Safe to call multiple times.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

// readLoop consumes server messages until the connection closes. Loss of
// connection simply stops updates; no reconnect is attempted.
func (c *Client) readLoop() {
	defer c.Close()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var envelope struct {
			Type   string          `json:"type"`
			Player json.RawMessage `json:"player"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			continue
		}

		switch envelope.Type {
		case "assign":
			seat := parseAssignedPlayer(envelope.Player)
			c.mu.Lock()
			c.player = seat
			c.assigned = true
			c.mu.Unlock()

		case "state":
			next := Decode(data)
			c.mu.Lock()
			c.state = next
			c.mu.Unlock()
		}
	}
}

// writeLoop sends the current intent at the fixed cadence and immediately
// when kicked by SetIntent.
func (c *Client) writeLoop() {
	ticker := time.NewTicker(intentSendInterval)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
		case <-c.kick:
		}
		if err := c.sendIntent(); err != nil {
			return
		}
	}
}

// sendIntent transmits the full current intent, never a delta.
func (c *Client) sendIntent() error {
	c.mu.Lock()
	payload := map[string]any{"type": "input", "up": c.up, "down": c.down}
	c.mu.Unlock()
	return c.conn.WriteJSON(payload)
}

// parseAssignedPlayer accepts the assigned seat as a JSON number, a numeric
// string, or null (spectator). Anything unrecognizable counts as spectator.
func parseAssignedPlayer(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n int
	if json.Unmarshal(raw, &n) == nil && (n == 1 || n == 2) {
		return n
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		if n, err := strconv.Atoi(s); err == nil && (n == 1 || n == 2) {
			return n
		}
	}
	return 0
}
