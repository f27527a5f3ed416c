// Package websocket provides the WebSocket transport for NetPong.
//
// The websocket package implements:
//   - Connection upgrade with room and seat selection via query parameters
//   - Seat assignment notification on connect
//   - Intent message ingestion (last write wins, malformed frames ignored)
//   - Snapshot delivery through a bounded, non-blocking send buffer
//   - Connection lifecycle management with ping/pong keepalive
//
// Message Protocol:
//
// Messages are JSON-encoded text frames:
//   - Outgoing: {"type": "assign", "player": 1|2|null} once on connect,
//     then {"type": "state", ...} on every simulation tick
//   - Incoming: {"type": "input", "up": bool, "down": bool}
//
// Room Integration:
//
// Clients select a room and seat at connection time via query parameters
// (?room=lobby&player=1). The handler joins the room through the registry,
// which assigns the actual seat; the assign message reflects the outcome,
// never an error.
//
// Usage:
//
//	handler := websocket.NewHandler(reg)
//	http.HandleFunc("/ws", handler.HandleWebSocket)
//
// Failure Containment:
//
// A malformed or unknown inbound message is dropped without closing the
// connection. A connection whose send buffer fills is detached by the room
// and closed here, so one slow peer never delays the others.
package websocket
