package room

import "github.com/netpong/netpong/game/engine"

// Wire snapshot types. Seat keys are emitted as strings ("1", "2");
// consumers are expected to accept numeric keys as well.

// PaddleState is the visible state of one paddle.
type PaddleState struct {
	Y float64 `json:"y"`
}

// BallState is the visible position of the ball. Velocity stays internal.
type BallState struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoundsState is the field size.
type BoundsState struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PaddleSpec is the shared paddle geometry.
type PaddleSpec struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Snapshot is the fully-populated wire representation of a room's visible
// state at one tick. Every field is always present.
type Snapshot struct {
	Type       string                 `json:"type"`
	Players    map[string]PaddleState `json:"players"`
	Ball       BallState              `json:"ball"`
	Score      map[string]int         `json:"score"`
	Bounds     BoundsState            `json:"bounds"`
	Paddle     PaddleSpec             `json:"paddle"`
	BallRadius float64                `json:"ballRadius"`
}

// Snapshot returns the room's current wire snapshot.
func (r *Room) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// snapshotLocked builds the wire snapshot. Callers hold mu.
func (r *Room) snapshotLocked() Snapshot {
	return Snapshot{
		Type: "state",
		Players: map[string]PaddleState{
			engine.Seat1.String(): {Y: r.paddleY[0]},
			engine.Seat2.String(): {Y: r.paddleY[1]},
		},
		Ball: BallState{X: r.ball.X, Y: r.ball.Y},
		Score: map[string]int{
			engine.Seat1.String(): r.score[0],
			engine.Seat2.String(): r.score[1],
		},
		Bounds:     BoundsState{Width: r.cfg.Width, Height: r.cfg.Height},
		Paddle:     PaddleSpec{W: r.cfg.PaddleWidth, H: r.cfg.PaddleHeight},
		BallRadius: r.cfg.BallRadius,
	}
}
