package registry

import (
	"log"
	"sort"
	"sync"

	"github.com/netpong/netpong/game/engine"
	"github.com/netpong/netpong/game/room"
)

// DefaultRoomID is used when a connection names no room.
const DefaultRoomID = "default"

// Manager maps room ids to live rooms. Rooms are created lazily on first
// join and evicted once their last connection detaches.
type Manager struct {
	cfg engine.Config

	mu    sync.RWMutex
	rooms map[string]*room.Room
}

// NewManager creates a registry whose rooms all share the given geometry.
func NewManager(cfg engine.Config) *Manager {
	return &Manager{
		cfg:   cfg,
		rooms: make(map[string]*room.Room),
	}
}

// Join attaches a connection to the named room, creating and starting the
// room first if the id is unknown. Creation, lookup, and seat assignment
// happen under the registry lock, so concurrent first-connections to one id
// share a single room and concurrent seat claims stay exclusive.
func (m *Manager) Join(id string, c room.Conn, requested engine.Seat) (*room.Room, engine.Seat) {
	if id == "" {
		id = DefaultRoomID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rooms[id]
	if !ok {
		r = room.New(id, m.cfg, func() { m.evict(id) })
		m.rooms[id] = r
		r.Start()
		log.Printf("registry: created room %q (%d total)", id, len(m.rooms))
	}
	seat := r.Attach(c, requested)
	return r, seat
}

// Get returns the named room when it exists.
func (m *Manager) Get(id string) (*room.Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[id]
	return r, ok
}

// List returns occupancy summaries for every live room, sorted by id.
func (m *Manager) List() []room.Info {
	m.mu.RLock()
	rooms := make([]*room.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		rooms = append(rooms, r)
	}
	m.mu.RUnlock()

	infos := make([]room.Info, 0, len(rooms))
	for _, r := range rooms {
		infos = append(infos, r.Info())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Snapshot returns the named room's current wire snapshot.
func (m *Manager) Snapshot(id string) (room.Snapshot, bool) {
	r, ok := m.Get(id)
	if !ok {
		return room.Snapshot{}, false
	}
	return r.Snapshot(), true
}

// Len returns the number of live rooms.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// evict removes the named room and stops its simulation, unless a new
// connection joined between the room emptying and the eviction running.
func (m *Manager) evict(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rooms[id]
	if !ok || r.ConnCount() != 0 {
		return
	}
	delete(m.rooms, id)
	r.Stop()
	log.Printf("registry: evicted empty room %q (%d remaining)", id, len(m.rooms))
}
