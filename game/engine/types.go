package engine

// Seat identifies a controlling role in a room. Seat1 owns the left paddle,
// Seat2 the right paddle. Spectator is the zero value: a connection that
// watches but controls nothing.
type Seat int

const (
	Spectator Seat = iota
	Seat1
	Seat2
)

// Controlling reports whether the seat owns a paddle.
func (s Seat) Controlling() bool {
	return s == Seat1 || s == Seat2
}

// Opponent returns the other controlling seat, or Spectator for Spectator.
func (s Seat) Opponent() Seat {
	switch s {
	case Seat1:
		return Seat2
	case Seat2:
		return Seat1
	default:
		return Spectator
	}
}

// String returns the wire identifier for the seat ("1", "2", or "spectator").
func (s Seat) String() string {
	switch s {
	case Seat1:
		return "1"
	case Seat2:
		return "2"
	default:
		return "spectator"
	}
}

// Ball is the full kinematic state of the ball. Velocity components are in
// pixels per tick and are never exposed on the wire.
type Ball struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"-"`
	VY float64 `json:"-"`
}

// Intent is a connection's current desired paddle movement. Both flags true
// cancel out to no movement.
type Intent struct {
	Up   bool `json:"up"`
	Down bool `json:"down"`
}

// rect is an axis-aligned rectangle used for paddle collision.
type rect struct {
	x, y, w, h float64
}
