package engine

import "math"

// spinFactor scales how strongly the contact point offsets the ball's
// vertical velocity on a paddle hit.
const spinFactor = 1.5

// MovePaddle applies one tick of intent to a paddle offset and clamps the
// result to the field. Up and down together cancel to no movement.
func MovePaddle(cfg Config, y float64, intent Intent) float64 {
	switch {
	case intent.Up && !intent.Down:
		y -= cfg.PaddleSpeed
	case intent.Down && !intent.Up:
		y += cfg.PaddleSpeed
	}
	return clamp(y, 0, cfg.MaxPaddleY())
}

// Step advances the ball one tick against the current paddle positions.
// It returns the next ball state, the seat credited with a point, and
// whether a point was scored this tick. When scored is true the returned
// ball still holds the out-of-bounds position; the caller serves a fresh
// ball via Serve.
func Step(cfg Config, b Ball, leftY, rightY float64) (next Ball, scorer Seat, scored bool) {
	b.X += b.VX
	b.Y += b.VY

	// Wall reflection keeps the ball inside the vertical bounds even when a
	// single tick would carry it past an edge.
	if b.Y-cfg.BallRadius <= 0 {
		b.Y = cfg.BallRadius
		b.VY = -b.VY
	} else if b.Y+cfg.BallRadius >= cfg.Height {
		b.Y = cfg.Height - cfg.BallRadius
		b.VY = -b.VY
	}

	left := rect{x: cfg.LeftPaddleX(), y: leftY, w: cfg.PaddleWidth, h: cfg.PaddleHeight}
	right := rect{x: cfg.RightPaddleX(), y: rightY, w: cfg.PaddleWidth, h: cfg.PaddleHeight}

	// Only a ball moving toward a paddle can bounce off it, and it is pushed
	// just clear of the paddle face so it cannot stick or tunnel through.
	if b.VX < 0 && ballIntersects(cfg, b, left) {
		b.X = left.x + left.w + cfg.BallRadius
		b.VX = -b.VX
		b = addSpin(cfg, b, left)
	} else if b.VX > 0 && ballIntersects(cfg, b, right) {
		b.X = right.x - cfg.BallRadius
		b.VX = -b.VX
		b = addSpin(cfg, b, right)
	}

	if b.X < -cfg.BallRadius {
		return b, Seat2, true
	}
	if b.X > cfg.Width+cfg.BallRadius {
		return b, Seat1, true
	}
	return b, Spectator, false
}

// Serve returns a ball at field center moving toward the given seat's side.
// vy supplies the vertical component and is clamped to [-MaxServeVY, MaxServeVY];
// the caller owns whatever randomness it wants there.
func Serve(cfg Config, towards Seat, vy float64) Ball {
	vx := cfg.BallSpeed
	if towards == Seat1 {
		vx = -cfg.BallSpeed
	}
	return Ball{
		X:  cfg.Width / 2,
		Y:  cfg.Height / 2,
		VX: vx,
		VY: clamp(vy, -MaxServeVY, MaxServeVY),
	}
}

// ballIntersects reports whether the ball's circle overlaps the rectangle,
// using the closest-point test.
func ballIntersects(cfg Config, b Ball, r rect) bool {
	closestX := clamp(b.X, r.x, r.x+r.w)
	closestY := clamp(b.Y, r.y, r.y+r.h)
	dx := b.X - closestX
	dy := b.Y - closestY
	return dx*dx+dy*dy <= cfg.BallRadius*cfg.BallRadius
}

// addSpin tilts the ball's vertical velocity by the contact offset from the
// paddle center, then rescales the velocity back to the configured ball speed
// so rallies never accelerate without bound.
func addSpin(cfg Config, b Ball, r rect) Ball {
	offset := (b.Y - (r.y + r.h/2)) / (r.h / 2)
	b.VY += offset * spinFactor
	speed := math.Hypot(b.VX, b.VY)
	scale := cfg.BallSpeed / math.Max(speed, 1e-5)
	b.VX *= scale
	b.VY *= scale
	return b
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
