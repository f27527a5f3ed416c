// Package room implements the authoritative game instance for NetPong.
//
// The room package owns everything mutable about one running game:
//   - Both paddle offsets, the ball, and the score
//   - The set of attached connections and their seat assignments
//   - The latest movement intent per connection (last write wins)
//   - The fixed-rate simulation goroutine that drives the physics
//
// Ownership model:
//
// A Room's simulation goroutine is the only writer of paddle, ball, and
// score state. Connection handlers never touch the simulation directly;
// they attach, detach, and overwrite intent slots, all serialized by the
// room mutex. Each tick the goroutine applies the seat owners' current
// intents, advances the engine, and broadcasts one complete snapshot to
// every attached connection.
//
// Broadcast delivery is best-effort and non-blocking: a connection that
// cannot accept a snapshot is detached so it can never stall the tick.
//
// Usage:
//
//	r := room.New("default", engine.DefaultConfig(), nil)
//	r.Start()
//
//	seat := r.Attach(conn, engine.Seat1)
//	r.SetIntent(conn.ID(), engine.Intent{Up: true})
//	...
//	r.Detach(conn)
package room
