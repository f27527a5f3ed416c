// Package mcp exposes the NetPong server over the Model Context Protocol.
//
// The mcp package implements a thin MCP client that proxies every tool
// call to the REST API, so the MCP surface and the HTTP surface can never
// disagree about state. It is read-only: playing happens over WebSocket,
// not through tools.
//
// Tools:
//   - list_rooms: live rooms with occupancy and score
//   - room_state: full snapshot of one room
//   - server_info: health and endpoint overview
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
