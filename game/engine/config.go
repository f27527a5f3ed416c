package engine

import (
	"fmt"
	"time"
)

// Field and physics defaults. All speeds are in pixels per tick.
const (
	DefaultWidth        = 800
	DefaultHeight       = 500
	DefaultPaddleWidth  = 12
	DefaultPaddleHeight = 80
	DefaultPaddleSpeed  = 6
	DefaultPaddleInset  = 10
	DefaultBallRadius   = 8
	DefaultBallSpeed    = 5
	DefaultTickRate     = 60

	// MaxServeVY bounds the vertical component a serve may carry.
	MaxServeVY = 2.0
)

// Config defines the immutable geometry and speeds for one room.
// It is fixed at room creation and shared read-only afterwards.
type Config struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	PaddleWidth  float64 `json:"paddleWidth"`
	PaddleHeight float64 `json:"paddleHeight"`
	PaddleSpeed  float64 `json:"paddleSpeed"`
	PaddleInset  float64 `json:"paddleInset"`
	BallRadius   float64 `json:"ballRadius"`
	BallSpeed    float64 `json:"ballSpeed"`
	TickRate     int     `json:"tickRate"`
}

// DefaultConfig returns the standard field used for every room.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		PaddleWidth:  DefaultPaddleWidth,
		PaddleHeight: DefaultPaddleHeight,
		PaddleSpeed:  DefaultPaddleSpeed,
		PaddleInset:  DefaultPaddleInset,
		BallRadius:   DefaultBallRadius,
		BallSpeed:    DefaultBallSpeed,
		TickRate:     DefaultTickRate,
	}
}

// Validate checks a configuration for playability.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config validation: bounds must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.PaddleWidth <= 0 || c.PaddleHeight <= 0 {
		return fmt.Errorf("config validation: paddle dimensions must be positive, got %gx%g", c.PaddleWidth, c.PaddleHeight)
	}
	if c.PaddleHeight > c.Height {
		return fmt.Errorf("config validation: paddle height %g exceeds field height %g", c.PaddleHeight, c.Height)
	}
	if c.PaddleSpeed <= 0 {
		return fmt.Errorf("config validation: paddle speed must be positive, got %g", c.PaddleSpeed)
	}
	if c.BallRadius <= 0 || c.BallRadius*2 >= c.Height {
		return fmt.Errorf("config validation: ball radius %g does not fit field height %g", c.BallRadius, c.Height)
	}
	if c.BallSpeed <= 0 {
		return fmt.Errorf("config validation: ball speed must be positive, got %g", c.BallSpeed)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("config validation: tick rate must be positive, got %d", c.TickRate)
	}
	return nil
}

// TickInterval returns the wall-clock duration of one simulation tick.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// CenterPaddleY returns the paddle offset that centers a paddle vertically.
func (c Config) CenterPaddleY() float64 {
	return (c.Height - c.PaddleHeight) / 2
}

// LeftPaddleX returns the x coordinate of the left paddle's left edge.
func (c Config) LeftPaddleX() float64 {
	return c.PaddleInset
}

// RightPaddleX returns the x coordinate of the right paddle's left edge.
func (c Config) RightPaddleX() float64 {
	return c.Width - c.PaddleInset - c.PaddleWidth
}

// MaxPaddleY returns the largest legal paddle offset.
func (c Config) MaxPaddleY() float64 {
	return c.Height - c.PaddleHeight
}
