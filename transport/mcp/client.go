package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/netpong/netpong/game/room"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"NetPong Server",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`NetPong - MCP Interface

This is a thin read-only client that proxies all requests to the REST API server.

NetPong is a realtime two-player Pong server. Each room runs an authoritative
60 Hz simulation; two WebSocket connections control the paddles and any number
of spectators watch. Playing happens over WebSocket (/ws?room=<id>&player=1|2|auto),
not through tools.

AVAILABLE TOOLS:
- list_rooms: List live rooms with seat occupancy and score
- room_state: Get the full snapshot of one room (paddles, ball, score, geometry)
- server_info: Health check and endpoint overview`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_rooms",
		Description: "List all live rooms with their connection counts, seat occupancy, and score",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListRooms)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "room_state",
		Description: "Get the current snapshot of a room: paddle positions, ball, score, and field geometry",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"room_id": map[string]interface{}{
					"type":        "string",
					"description": "Room identifier (e.g. \"default\")",
				},
			},
			Required: []string{"room_id"},
		},
	}, c.handleRoomState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "server_info",
		Description: "Check server health and list its endpoints",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleServerInfo)
}

// GetMCPServer returns the underlying MCP server instance
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// apiCall performs a GET against the REST API and decodes the response.
func (c *Client) apiCall(path string, result interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// Tool handlers

func (c *Client) handleListRooms(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count int         `json:"count"`
		Rooms []room.Info `json:"rooms"`
	}

	if err := c.apiCall("/api/rooms", &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if response.Count == 0 {
		return mcp.NewToolResultText("No live rooms. Rooms are created when the first player connects."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Live Rooms (%d):\n\n", response.Count)
	for _, info := range response.Rooms {
		fmt.Fprintf(&b, "- %s: %d connection(s), seat 1 %s, seat 2 %s, score %d-%d\n",
			info.ID, info.Connections,
			occupancy(info.Seats["1"]), occupancy(info.Seats["2"]),
			info.Score["1"], info.Score["2"])
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleRoomState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	roomID, _ := args["room_id"].(string)
	if roomID == "" {
		return mcp.NewToolResultError("room_id is required"), nil
	}

	var snap room.Snapshot
	if err := c.apiCall(fmt.Sprintf("/api/rooms/%s/state", roomID), &snap); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSnapshot(roomID, &snap)), nil
}

func (c *Client) handleServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var health map[string]string
	if err := c.apiCall("/health", &health); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf(`NetPong server at %s
Status: %s

Endpoints:
- GET  /health                    liveness probe
- GET  /api/rooms                 list live rooms
- GET  /api/rooms/{id}/state      room snapshot
- WS   /ws?room=<id>&player=1|2|auto  play or spectate
`, c.baseURL, health["status"])
	return mcp.NewToolResultText(result), nil
}

// formatSnapshot renders a snapshot as readable text.
func formatSnapshot(roomID string, snap *room.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Room %q\n", roomID)
	fmt.Fprintf(&b, "Score: %d-%d\n", snap.Score["1"], snap.Score["2"])
	fmt.Fprintf(&b, "Ball: (%.1f, %.1f)\n", snap.Ball.X, snap.Ball.Y)

	seats := make([]string, 0, len(snap.Players))
	for seat := range snap.Players {
		seats = append(seats, seat)
	}
	sort.Strings(seats)
	for _, seat := range seats {
		fmt.Fprintf(&b, "Paddle %s: y=%.1f\n", seat, snap.Players[seat].Y)
	}

	fmt.Fprintf(&b, "Field: %gx%g, paddle %gx%g, ball radius %g\n",
		snap.Bounds.Width, snap.Bounds.Height, snap.Paddle.W, snap.Paddle.H, snap.BallRadius)
	return b.String()
}

func occupancy(taken bool) string {
	if taken {
		return "taken"
	}
	return "free"
}
