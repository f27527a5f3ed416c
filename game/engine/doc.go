// Package engine provides the core physics for the NetPong game.
//
// The engine package implements one fixed-duration simulation tick:
//   - Ball advancement by velocity
//   - Reflection off the top and bottom walls
//   - Circle-vs-rectangle paddle collision with spin
//   - Scoring detection when the ball leaves the field
//   - Clamped paddle movement from an up/down intent
//
// Core Types:
//
// Config carries the immutable per-room geometry (field bounds, paddle and
// ball dimensions, per-tick speeds). Ball is the full kinematic state of the
// ball. Seat identifies the left (Seat1) and right (Seat2) controlling roles.
//
// Usage:
//
//	cfg := engine.DefaultConfig()
//	ball := engine.Serve(cfg, engine.Seat2, 1.3)
//
//	ball, scorer, scored := engine.Step(cfg, ball, leftY, rightY)
//	if scored {
//		// credit scorer, serve again
//	}
//
// Determinism:
//
// Every function in this package is pure: identical inputs always produce
// identical outputs. The only randomness in the game, the vertical component
// of a serve, is supplied by the caller.
package engine
