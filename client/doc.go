// Package client implements the NetPong client-side sync layer.
//
// The client package implements:
//   - Connecting to a server with room and seat selection
//   - Total normalisation of incoming snapshots into a render-ready state
//   - Intent transmission at a fixed cadence plus immediately on change
//
// Normalisation:
//
// Decode and Normalise never fail. Every field absent, null, or malformed
// in an incoming snapshot is replaced by its default, per field, so the
// resulting State is always fully populated before rendering. Seat keys in
// players/score objects are accepted in numeric or text form.
//
// Usage:
//
//	c, err := client.Dial("ws://localhost:8080/ws", "default", "auto")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
//	c.SetIntent(true, false) // hold up
//	state := c.State()       // always fully populated
//
// Rendering is out of scope: the caller consumes State and draws it
// however it likes.
package client
