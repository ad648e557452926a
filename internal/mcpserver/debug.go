package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/foxmcp/bridge/internal/tools"
)

func (s *Server) registerDebugTool(h *tools.Handlers, conn connectionStatus) {
	addTool(s.mcp, "debug_websocket_status", "Report whether the browser extension is currently connected", nil,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText(h.DebugWebSocketStatus(conn)), nil
		})
}
