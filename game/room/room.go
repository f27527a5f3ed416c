package room

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/netpong/netpong/game/engine"
)

// Conn is a room's view of an attached connection. Send must not block: it
// queues the payload and reports false when the connection cannot accept it,
// at which point the room detaches it and closes it. Close must be safe to
// call multiple times.
type Conn interface {
	ID() string
	Send(payload []byte) bool
	Close()
}

// Info is a point-in-time summary of a room's occupancy, used by the
// admin surfaces.
type Info struct {
	ID          string         `json:"id"`
	Connections int            `json:"connections"`
	Seats       map[string]bool `json:"seats"`
	Score       map[string]int  `json:"score"`
}

// Room is the authoritative state for one game instance. All fields behind
// mu are written only while it is held; the simulation fields (paddles,
// ball, score) are additionally written only from the room's own goroutine.
type Room struct {
	id  string
	cfg engine.Config

	mu      sync.Mutex
	conns   map[Conn]engine.Seat
	seats   map[engine.Seat]Conn
	intents map[string]engine.Intent
	paddleY [2]float64
	ball    engine.Ball
	score   [2]int

	rng *rand.Rand

	stop     chan struct{}
	stopOnce sync.Once

	// onEmpty fires after the last connection detaches. Set by the registry
	// to evict the room; may be nil.
	onEmpty func()
}

// New creates a room with default state: paddles centered, score 0-0, and
// the ball served toward a random side.
func New(id string, cfg engine.Config, onEmpty func()) *Room {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	towards := engine.Seat1
	if rng.Intn(2) == 0 {
		towards = engine.Seat2
	}

	r := &Room{
		id:      id,
		cfg:     cfg,
		conns:   make(map[Conn]engine.Seat),
		seats:   make(map[engine.Seat]Conn),
		intents: make(map[string]engine.Intent),
		rng:     rng,
		stop:    make(chan struct{}),
		onEmpty: onEmpty,
	}
	r.paddleY[0] = cfg.CenterPaddleY()
	r.paddleY[1] = cfg.CenterPaddleY()
	r.ball = engine.Serve(cfg, towards, r.serveVY())
	return r
}

// ID returns the room identifier.
func (r *Room) ID() string {
	return r.id
}

// Config returns the room's immutable geometry.
func (r *Room) Config() engine.Config {
	return r.cfg
}

// Start launches the simulation goroutine. It must be called exactly once.
func (r *Room) Start() {
	go r.run()
}

// Stop halts the simulation goroutine. Safe to call more than once and from
// any goroutine, including the simulation goroutine itself.
func (r *Room) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
}

// Attach registers a connection and assigns it a seat. A requested
// controlling seat is granted when free; otherwise the lowest free
// controlling seat is assigned, falling back to Spectator when both are
// taken. Assignment is atomic under the room mutex, so two concurrent
// connections can never claim the same seat.
func (r *Room) Attach(c Conn, requested engine.Seat) engine.Seat {
	r.mu.Lock()
	defer r.mu.Unlock()

	seat := r.allocateSeatLocked(requested)
	r.conns[c] = seat
	if seat.Controlling() {
		r.seats[seat] = c
	}
	r.intents[c.ID()] = engine.Intent{}

	log.Printf("room %s: connection %s attached as %s (%d connected)", r.id, c.ID(), seat, len(r.conns))
	return seat
}

// Detach removes a connection, frees its seat, and discards its intent.
// When the last connection leaves, onEmpty fires so the registry can decide
// whether to tear the room down; the room does not stop itself, since a new
// connection may join between emptying and eviction.
func (r *Room) Detach(c Conn) {
	r.mu.Lock()
	seat, ok := r.conns[c]
	if !ok {
		r.mu.Unlock()
		return
	}
	delete(r.conns, c)
	delete(r.intents, c.ID())
	if seat.Controlling() && r.seats[seat] == c {
		delete(r.seats, seat)
	}
	empty := len(r.conns) == 0
	r.mu.Unlock()

	log.Printf("room %s: connection %s detached (seat %s freed)", r.id, c.ID(), seat)

	if empty && r.onEmpty != nil {
		r.onEmpty()
	}
}

// SetIntent overwrites the connection's current intent. Intents from
// connections without a controlling seat are stored but never applied.
func (r *Room) SetIntent(connID string, intent engine.Intent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.intents[connID]; ok {
		r.intents[connID] = intent
	}
}

// ConnCount returns the number of attached connections.
func (r *Room) ConnCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}

// Seat returns the seat currently held by the connection.
func (r *Room) Seat(c Conn) engine.Seat {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conns[c]
}

// Info returns an occupancy summary for the admin surfaces.
func (r *Room) Info() Info {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, seat1 := r.seats[engine.Seat1]
	_, seat2 := r.seats[engine.Seat2]
	return Info{
		ID:          r.id,
		Connections: len(r.conns),
		Seats: map[string]bool{
			engine.Seat1.String(): seat1,
			engine.Seat2.String(): seat2,
		},
		Score: map[string]int{
			engine.Seat1.String(): r.score[0],
			engine.Seat2.String(): r.score[1],
		},
	}
}

// allocateSeatLocked implements the seat-assignment policy. Callers hold mu.
func (r *Room) allocateSeatLocked(requested engine.Seat) engine.Seat {
	if requested.Controlling() {
		if _, taken := r.seats[requested]; !taken {
			return requested
		}
	}
	if _, taken := r.seats[engine.Seat1]; !taken {
		return engine.Seat1
	}
	if _, taken := r.seats[engine.Seat2]; !taken {
		return engine.Seat2
	}
	return engine.Spectator
}

// serveVY draws the vertical component for the next serve.
func (r *Room) serveVY() float64 {
	return r.rng.Float64()*2*engine.MaxServeVY - engine.MaxServeVY
}
