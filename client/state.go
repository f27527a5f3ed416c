package client

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/netpong/netpong/game/engine"
)

// PaddleState is one paddle's visible state.
type PaddleState struct {
	Y float64 `json:"y"`
}

// Position is a point on the field.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds is the field size.
type Bounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PaddleSpec is the shared paddle geometry.
type PaddleSpec struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// State is the render-ready view of a room. Every field is always
// populated; Players and Score always hold entries for seats 1 and 2.
type State struct {
	Players    map[int]PaddleState `json:"players"`
	Ball       Position            `json:"ball"`
	Score      map[int]int         `json:"score"`
	Bounds     Bounds              `json:"bounds"`
	Paddle     PaddleSpec          `json:"paddle"`
	BallRadius float64             `json:"ballRadius"`
}

// DefaultState returns the state used before the first snapshot and as the
// per-field fallback for anything a snapshot omits.
func DefaultState() State {
	cfg := engine.DefaultConfig()
	return State{
		Players: map[int]PaddleState{
			1: {Y: cfg.CenterPaddleY()},
			2: {Y: cfg.CenterPaddleY()},
		},
		Ball:  Position{X: cfg.Width / 2, Y: cfg.Height / 2},
		Score: map[int]int{1: 0, 2: 0},
		Bounds: Bounds{
			Width:  cfg.Width,
			Height: cfg.Height,
		},
		Paddle: PaddleSpec{
			W: cfg.PaddleWidth,
			H: cfg.PaddleHeight,
		},
		BallRadius: cfg.BallRadius,
	}
}

// Decode turns a raw snapshot payload into a fully-populated State. It is
// total: any payload, including garbage, yields a valid State.
func Decode(data []byte) State {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = nil
	}
	return Normalise(raw)
}

// Normalise fills every absent, null, or malformed field of a raw snapshot
// from DefaultState, per field. It is total and idempotent.
func Normalise(raw map[string]json.RawMessage) State {
	s := DefaultState()

	if v, ok := raw["players"]; ok {
		var players map[string]json.RawMessage
		if json.Unmarshal(v, &players) == nil {
			for key, entry := range players {
				seat, ok := parseSeatKey(key)
				if !ok {
					continue
				}
				var p struct {
					Y *float64 `json:"y"`
				}
				if json.Unmarshal(entry, &p) != nil || p.Y == nil {
					continue
				}
				s.Players[seat] = PaddleState{Y: *p.Y}
			}
		}
	}

	if v, ok := raw["ball"]; ok {
		var ball struct {
			X *float64 `json:"x"`
			Y *float64 `json:"y"`
		}
		if json.Unmarshal(v, &ball) == nil {
			if ball.X != nil {
				s.Ball.X = *ball.X
			}
			if ball.Y != nil {
				s.Ball.Y = *ball.Y
			}
		}
	}

	if v, ok := raw["score"]; ok {
		var score map[string]json.RawMessage
		if json.Unmarshal(v, &score) == nil {
			for key, entry := range score {
				seat, ok := parseSeatKey(key)
				if !ok {
					continue
				}
				var n *int
				if json.Unmarshal(entry, &n) != nil || n == nil {
					continue
				}
				s.Score[seat] = *n
			}
		}
	}

	if v, ok := raw["bounds"]; ok {
		var bounds struct {
			Width  *float64 `json:"width"`
			Height *float64 `json:"height"`
		}
		if json.Unmarshal(v, &bounds) == nil {
			if bounds.Width != nil {
				s.Bounds.Width = *bounds.Width
			}
			if bounds.Height != nil {
				s.Bounds.Height = *bounds.Height
			}
		}
	}

	if v, ok := raw["paddle"]; ok {
		var paddle struct {
			W *float64 `json:"w"`
			H *float64 `json:"h"`
		}
		if json.Unmarshal(v, &paddle) == nil {
			if paddle.W != nil {
				s.Paddle.W = *paddle.W
			}
			if paddle.H != nil {
				s.Paddle.H = *paddle.H
			}
		}
	}

	if v, ok := raw["ballRadius"]; ok {
		var radius *float64
		if json.Unmarshal(v, &radius) == nil && radius != nil {
			s.BallRadius = *radius
		}
	}

	return s
}

// parseSeatKey accepts seat identifiers in numeric or text form ("1", "01",
// " 2") and rejects everything that is not seat 1 or 2.
func parseSeatKey(key string) (int, bool) {
	seat, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil || (seat != 1 && seat != 2) {
		return 0, false
	}
	return seat, true
}
