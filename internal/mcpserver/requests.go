package mcpserver

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/foxmcp/bridge/internal/tools"
)

func (s *Server) registerRequestTools(h *tools.Handlers) {
	addTool(s.mcp, "requests_start_monitoring", "Begin observing network requests matching a set of URL patterns", []mcp.ToolOption{
		mcp.WithArray("url_patterns", mcp.Required(), mcp.Description("match patterns, e.g. https://api.example.com/*")),
		mcp.WithObject("options", mcp.Description("extension-defined monitoring options")),
		mcp.WithNumber("tab_id", mcp.Description("restrict monitoring to this tab")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		patterns := argStringSlice(args, "url_patterns")
		options := argMap(args, "options")
		return h.RequestsStartMonitoring(ctx, patterns, options, argIntPtr(args, "tab_id"))
	}))

	addTool(s.mcp, "requests_stop_monitoring", "Stop a monitoring session and report statistics", []mcp.ToolOption{
		mcp.WithString("monitor_id", mcp.Required(), mcp.Description("session to stop")),
		mcp.WithNumber("drain_timeout", mcp.Description("seconds to wait for trailing captures before reporting totals, default 5")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		monitorID, _ := argString(args, "monitor_id")
		drainTimeout := time.Duration(argIntDefault(args, "drain_timeout", 5)) * time.Second
		return h.RequestsStopMonitoring(ctx, monitorID, drainTimeout)
	}))

	addTool(s.mcp, "requests_list_captured", "List requests captured by a monitoring session", []mcp.ToolOption{
		mcp.WithString("monitor_id", mcp.Required(), mcp.Description("session to list")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		monitorID, _ := argString(args, "monitor_id")
		return h.RequestsListCaptured(monitorID)
	}))

	addTool(s.mcp, "requests_get_content", "Get full headers/body for a captured request", []mcp.ToolOption{
		mcp.WithString("monitor_id", mcp.Required(), mcp.Description("owning session")),
		mcp.WithString("request_id", mcp.Required(), mcp.Description("captured request id")),
		mcp.WithBoolean("include_binary", mcp.Description("base64-encode binary bodies, default false")),
		mcp.WithString("save_request_body_to", mcp.Description("write the request body to this path instead of inlining it")),
		mcp.WithString("save_response_body_to", mcp.Description("write the response body to this path instead of inlining it")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		monitorID, _ := argString(args, "monitor_id")
		requestID, _ := argString(args, "request_id")
		includeBinary := argBoolDefault(args, "include_binary", false)
		saveReq, _ := argString(args, "save_request_body_to")
		saveResp, _ := argString(args, "save_response_body_to")
		return h.RequestsGetContent(ctx, monitorID, requestID, includeBinary, saveReq, saveResp)
	}))
}
