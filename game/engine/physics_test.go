package engine

import (
	"math"
	"testing"
)

func TestMovePaddle_IntentResolution(t *testing.T) {
	cfg := DefaultConfig()
	start := cfg.CenterPaddleY()

	tests := []struct {
		name     string
		intent   Intent
		expected float64
	}{
		{"no intent", Intent{}, start},
		{"up only", Intent{Up: true}, start - cfg.PaddleSpeed},
		{"down only", Intent{Down: true}, start + cfg.PaddleSpeed},
		{"up and down cancel", Intent{Up: true, Down: true}, start},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := MovePaddle(cfg, start, test.intent)
			if got != test.expected {
				t.Errorf("MovePaddle(%v): expected %g, got %g", test.intent, test.expected, got)
			}
		})
	}
}

func TestMovePaddle_Clamped(t *testing.T) {
	cfg := DefaultConfig()

	// Drive the paddle far past each edge; it must never leave the field.
	y := 0.0
	for i := 0; i < 200; i++ {
		y = MovePaddle(cfg, y, Intent{Up: true})
		if y < 0 {
			t.Fatalf("paddle escaped top bound: y=%g", y)
		}
	}
	if y != 0 {
		t.Errorf("expected paddle pinned at 0, got %g", y)
	}

	for i := 0; i < 200; i++ {
		y = MovePaddle(cfg, y, Intent{Down: true})
		if y > cfg.MaxPaddleY() {
			t.Fatalf("paddle escaped bottom bound: y=%g", y)
		}
	}
	if y != cfg.MaxPaddleY() {
		t.Errorf("expected paddle pinned at %g, got %g", cfg.MaxPaddleY(), y)
	}
}

func TestMovePaddle_BothKeysStableAcrossTicks(t *testing.T) {
	cfg := DefaultConfig()
	y := cfg.CenterPaddleY()

	// Holding both keys must not oscillate the paddle.
	for i := 0; i < 50; i++ {
		next := MovePaddle(cfg, y, Intent{Up: true, Down: true})
		if next != y {
			t.Fatalf("tick %d: paddle moved from %g to %g with both keys held", i, y, next)
		}
		y = next
	}
}

func TestStep_WallReflection(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		ball Ball
	}{
		{"top wall", Ball{X: 400, Y: cfg.BallRadius + 1, VX: 0, VY: -5}},
		{"bottom wall", Ball{X: 400, Y: cfg.Height - cfg.BallRadius - 1, VX: 0, VY: 5}},
		{"deep overshoot top", Ball{X: 400, Y: 3, VX: 0, VY: -40}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			next, _, scored := Step(cfg, test.ball, cfg.CenterPaddleY(), cfg.CenterPaddleY())
			if scored {
				t.Fatal("wall bounce must not score")
			}
			if next.Y-cfg.BallRadius < 0 || next.Y+cfg.BallRadius > cfg.Height {
				t.Errorf("ball left vertical bounds: y=%g", next.Y)
			}
			if sign(next.VY) == sign(test.ball.VY) {
				t.Errorf("expected vy reflected, got %g (was %g)", next.VY, test.ball.VY)
			}
		})
	}
}

func TestStep_VerticalContainment(t *testing.T) {
	cfg := DefaultConfig()

	// Sweep a grid of positions and velocities; no single tick may leave the
	// ball outside the vertical bounds.
	for y := 0.0; y <= cfg.Height; y += 25 {
		for vy := -12.0; vy <= 12.0; vy += 3 {
			b := Ball{X: cfg.Width / 2, Y: y, VX: 2, VY: vy}
			next, _, _ := Step(cfg, b, cfg.CenterPaddleY(), cfg.CenterPaddleY())
			if next.Y < 0 || next.Y > cfg.Height {
				t.Fatalf("ball at y=%g vy=%g escaped to y=%g", y, vy, next.Y)
			}
		}
	}
}

func TestStep_LeftPaddleBounce(t *testing.T) {
	cfg := DefaultConfig()
	paddleY := cfg.CenterPaddleY()

	// Ball just right of the left paddle face, heading left into its center.
	b := Ball{
		X:  cfg.LeftPaddleX() + cfg.PaddleWidth + cfg.BallRadius + 2,
		Y:  paddleY + cfg.PaddleHeight/2,
		VX: -cfg.BallSpeed,
		VY: 0,
	}

	next, _, scored := Step(cfg, b, paddleY, cfg.CenterPaddleY())
	if scored {
		t.Fatal("paddle bounce must not score")
	}
	if next.VX <= 0 {
		t.Errorf("expected vx reflected to positive, got %g", next.VX)
	}
	if want := cfg.LeftPaddleX() + cfg.PaddleWidth + cfg.BallRadius; next.X != want {
		t.Errorf("expected ball repositioned to %g, got %g", want, next.X)
	}
}

func TestStep_RightPaddleBounce(t *testing.T) {
	cfg := DefaultConfig()
	paddleY := cfg.CenterPaddleY()

	b := Ball{
		X:  cfg.RightPaddleX() - cfg.BallRadius - 2,
		Y:  paddleY + cfg.PaddleHeight/2,
		VX: cfg.BallSpeed,
		VY: 0,
	}

	next, _, scored := Step(cfg, b, cfg.CenterPaddleY(), paddleY)
	if scored {
		t.Fatal("paddle bounce must not score")
	}
	if next.VX >= 0 {
		t.Errorf("expected vx reflected to negative, got %g", next.VX)
	}
	if want := cfg.RightPaddleX() - cfg.BallRadius; next.X != want {
		t.Errorf("expected ball repositioned to %g, got %g", want, next.X)
	}
}

func TestStep_PaddleMissScoresOpponent(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name   string
		ball   Ball
		scorer Seat
	}{
		{"exit right scores seat 1", Ball{X: cfg.Width + cfg.BallRadius, Y: 250, VX: cfg.BallSpeed, VY: 0}, Seat1},
		{"exit left scores seat 2", Ball{X: -cfg.BallRadius, Y: 250, VX: -cfg.BallSpeed, VY: 0}, Seat2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Paddles parked at the top so the center-height ball passes by.
			_, scorer, scored := Step(cfg, test.ball, 0, 0)
			if !scored {
				t.Fatal("expected a scoring event")
			}
			if scorer != test.scorer {
				t.Errorf("expected scorer %v, got %v", test.scorer, scorer)
			}
		})
	}
}

func TestStep_BallTowardRightEdgeEventuallyScoresSeat1(t *testing.T) {
	cfg := DefaultConfig()

	// Ball at field center moving straight right with the right paddle pinned
	// to the top: seat 1 must score once the ball clears the right edge.
	b := Ball{X: 400, Y: 250, VX: 5, VY: 0}
	for i := 0; i < 200; i++ {
		var scorer Seat
		var scored bool
		b, scorer, scored = Step(cfg, b, cfg.CenterPaddleY(), 0)
		if scored {
			if scorer != Seat1 {
				t.Fatalf("expected seat 1 to score, got %v", scorer)
			}
			reset := Serve(cfg, scorer.Opponent(), 0)
			if reset.X != 400 || reset.Y != 250 {
				t.Errorf("expected serve from (400, 250), got (%g, %g)", reset.X, reset.Y)
			}
			return
		}
	}
	t.Fatal("ball never scored after 200 ticks")
}

func TestStep_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	b := Ball{X: 123.5, Y: 77.25, VX: -4, VY: 3}

	first, scorer1, scored1 := Step(cfg, b, 40, 310)
	second, scorer2, scored2 := Step(cfg, b, 40, 310)
	if first != second || scorer1 != scorer2 || scored1 != scored2 {
		t.Errorf("identical inputs diverged: %+v vs %+v", first, second)
	}
}

func TestServe(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		towards Seat
		vy      float64
		wantVX  float64
		wantVY  float64
	}{
		{"toward seat 1 travels left", Seat1, 1.0, -cfg.BallSpeed, 1.0},
		{"toward seat 2 travels right", Seat2, -0.5, cfg.BallSpeed, -0.5},
		{"vertical component clamped high", Seat2, 9.0, cfg.BallSpeed, MaxServeVY},
		{"vertical component clamped low", Seat1, -9.0, -cfg.BallSpeed, -MaxServeVY},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := Serve(cfg, test.towards, test.vy)
			if b.X != cfg.Width/2 || b.Y != cfg.Height/2 {
				t.Errorf("expected serve from center, got (%g, %g)", b.X, b.Y)
			}
			if b.VX != test.wantVX {
				t.Errorf("expected vx %g, got %g", test.wantVX, b.VX)
			}
			if b.VY != test.wantVY {
				t.Errorf("expected vy %g, got %g", test.wantVY, b.VY)
			}
		})
	}
}

func TestAddSpin_PreservesBallSpeed(t *testing.T) {
	cfg := DefaultConfig()
	paddleY := cfg.CenterPaddleY()

	// Hit near the top edge of the paddle: vy picks up spin but total speed
	// stays at the configured ball speed.
	b := Ball{
		X:  cfg.LeftPaddleX() + cfg.PaddleWidth + cfg.BallRadius + 1,
		Y:  paddleY + 5,
		VX: -cfg.BallSpeed,
		VY: 0,
	}

	next, _, _ := Step(cfg, b, paddleY, cfg.CenterPaddleY())
	speed := math.Hypot(next.VX, next.VY)
	if math.Abs(speed-cfg.BallSpeed) > 1e-9 {
		t.Errorf("expected speed %g after spin, got %g", cfg.BallSpeed, speed)
	}
	if next.VY >= 0 {
		t.Errorf("expected upward spin from top-edge contact, got vy=%g", next.VY)
	}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
