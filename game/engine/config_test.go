package engine

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 500 {
		t.Errorf("expected 800x500 bounds, got %gx%g", cfg.Width, cfg.Height)
	}
	if cfg.PaddleWidth != 12 || cfg.PaddleHeight != 80 {
		t.Errorf("expected 12x80 paddle, got %gx%g", cfg.PaddleWidth, cfg.PaddleHeight)
	}
	if cfg.BallRadius != 8 {
		t.Errorf("expected ball radius 8, got %g", cfg.BallRadius)
	}
	if cfg.CenterPaddleY() != 210 {
		t.Errorf("expected centered paddle at 210, got %g", cfg.CenterPaddleY())
	}
	if cfg.TickInterval() != time.Second/60 {
		t.Errorf("expected 60Hz tick interval, got %v", cfg.TickInterval())
	}
}

func TestConfigValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero paddle width", func(c *Config) { c.PaddleWidth = 0 }},
		{"paddle taller than field", func(c *Config) { c.PaddleHeight = c.Height + 1 }},
		{"zero paddle speed", func(c *Config) { c.PaddleSpeed = 0 }},
		{"ball larger than field", func(c *Config) { c.BallRadius = c.Height }},
		{"zero ball speed", func(c *Config) { c.BallSpeed = 0 }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := DefaultConfig()
			test.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSeat(t *testing.T) {
	if Seat1.Opponent() != Seat2 || Seat2.Opponent() != Seat1 {
		t.Error("seat opponents are not symmetric")
	}
	if Spectator.Opponent() != Spectator {
		t.Error("spectator has no opponent")
	}
	if !Seat1.Controlling() || !Seat2.Controlling() || Spectator.Controlling() {
		t.Error("controlling flags wrong")
	}
	if Seat1.String() != "1" || Seat2.String() != "2" || Spectator.String() != "spectator" {
		t.Error("seat wire identifiers wrong")
	}
}
