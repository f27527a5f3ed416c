// Package api provides the HTTP surface for the NetPong server.
//
// The api package implements:
//   - Read-only REST endpoints for room inspection
//   - Health checking
//   - WebSocket upgrade routing
//   - Static file serving for the browser client
//
// Endpoints:
//
// Room Inspection:
//   - GET /api/rooms - List live rooms with occupancy and score
//   - GET /api/rooms/{id}/state - Current snapshot of one room
//
// Operational:
//   - GET /health - Liveness probe
//   - GET /ws - WebSocket upgrade (query: room, player)
//
// All game mutation flows through the WebSocket path; the REST surface is
// deliberately read-only.
//
// Request/Response Format:
//
// All endpoints return JSON. Errors are returned as JSON with appropriate
// HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
//
// Usage:
//
//	server := api.NewServer(reg, wsHandler.HandleWebSocket)
//	http.ListenAndServe(":8080", server)
package api
