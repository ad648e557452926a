// Package mcpserver implements the MCP Endpoint (spec §4.7): it adapts
// every Tool Handler to the mark3labs/mcp-go tool-call convention and
// serves the result over a single streamable HTTP endpoint. Parameter
// format is direct — arguments sit at the top level of the tool call's
// arguments object, never nested under a params wrapper.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/foxmcp/bridge/internal/bridgeerr"
	"github.com/foxmcp/bridge/internal/tools"
)

// connectionStatus is implemented by the WS Listener; kept local to avoid
// a dependency from this package back onto wsserver's concrete type.
type connectionStatus interface {
	IsConnected() bool
}

// Server wires a Handlers bundle to an MCP server instance and exposes it
// over HTTP.
type Server struct {
	mcp    *server.MCPServer
	http   *server.StreamableHTTPServer
	logger *slog.Logger
}

// New builds the MCP server and registers every tool named in spec §6.
func New(h *tools.Handlers, conn connectionStatus, logger *slog.Logger) *Server {
	mcpSrv := server.NewMCPServer(
		"foxmcp-bridge",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithLogging(),
		server.WithRecovery(),
	)

	s := &Server{mcp: mcpSrv, logger: logger}
	s.registerTabTools(h)
	s.registerHistoryTools(h)
	s.registerBookmarkTools(h)
	s.registerNavigationTools(h)
	s.registerContentTools(h)
	s.registerWindowTools(h)
	s.registerRequestTools(h)
	s.registerDebugTool(h, conn)

	s.http = server.NewStreamableHTTPServer(mcpSrv)
	return s
}

// Handler returns the http.Handler to mount the MCP endpoint under.
func (s *Server) Handler() *server.StreamableHTTPServer {
	return s.http
}

// textHandler wraps a (args)->(string, error) tool implementation with the
// MCP framework's call/result convention: on success a text result, on
// failure a descriptive error result naming the originating kind (spec §7
// "a human-readable explanation including the originating kind").
func textHandler(fn func(ctx context.Context, args map[string]any) (string, error)) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if args == nil {
			args = map[string]any{}
		}
		result, err := fn(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(formatToolError(err)), nil
		}
		return mcp.NewToolResultText(result), nil
	}
}

func formatToolError(err error) string {
	return fmt.Sprintf("%s: %s", bridgeerr.KindOf(err), err.Error())
}

func addTool(s *server.MCPServer, name, description string, opts []mcp.ToolOption, handler server.ToolHandlerFunc) {
	t := mcp.NewTool(name, append([]mcp.ToolOption{mcp.WithDescription(description)}, opts...)...)
	s.AddTool(t, handler)
}
