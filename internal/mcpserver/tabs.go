package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/foxmcp/bridge/internal/tools"
)

func (s *Server) registerTabTools(h *tools.Handlers) {
	addTool(s.mcp, "tabs_list", "List all open browser tabs", nil,
		textHandler(func(ctx context.Context, args map[string]any) (string, error) {
			return h.TabsList(ctx)
		}))

	addTool(s.mcp, "tabs_create", "Open a new browser tab", []mcp.ToolOption{
		mcp.WithString("url", mcp.Required(), mcp.Description("URL to load in the new tab")),
		mcp.WithBoolean("active", mcp.Description("make the new tab active")),
		mcp.WithBoolean("pinned", mcp.Description("pin the new tab")),
		mcp.WithNumber("window_id", mcp.Description("window to create the tab in")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		url, _ := argString(args, "url")
		active := argBoolDefault(args, "active", true)
		pinned := argBoolDefault(args, "pinned", false)
		return h.TabsCreate(ctx, url, active, pinned, argIntPtr(args, "window_id"))
	}))

	addTool(s.mcp, "tabs_close", "Close a browser tab", []mcp.ToolOption{
		mcp.WithNumber("tab_id", mcp.Required(), mcp.Description("id of the tab to close")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		tabID := argIntDefault(args, "tab_id", 0)
		return h.TabsClose(ctx, tabID)
	}))

	addTool(s.mcp, "tabs_switch", "Switch to a browser tab", []mcp.ToolOption{
		mcp.WithNumber("tab_id", mcp.Required(), mcp.Description("id of the tab to activate")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		tabID := argIntDefault(args, "tab_id", 0)
		return h.TabsSwitch(ctx, tabID)
	}))

	addTool(s.mcp, "tabs_capture_screenshot", "Capture a screenshot of a tab", []mcp.ToolOption{
		mcp.WithString("filename", mcp.Description("if set, save to this path instead of returning a data URL")),
		mcp.WithNumber("window_id", mcp.Description("window to capture")),
		mcp.WithString("format", mcp.Description("png or jpeg, default png")),
		mcp.WithNumber("quality", mcp.Description("0-100, default 90")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		filename, _ := argString(args, "filename")
		format := argStringDefault(args, "format", "png")
		quality := argIntDefault(args, "quality", 90)
		return h.TabsCaptureScreenshot(ctx, filename, argIntPtr(args, "window_id"), format, quality)
	}))
}
