package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/foxmcp/bridge/internal/tools"
)

func (s *Server) registerWindowTools(h *tools.Handlers) {
	populateOpt := mcp.WithBoolean("populate", mcp.Description("include each window's tabs, default true"))

	addTool(s.mcp, "list_windows", "List all browser windows", []mcp.ToolOption{populateOpt},
		textHandler(func(ctx context.Context, args map[string]any) (string, error) {
			return h.WindowsList(ctx, argBoolDefault(args, "populate", true))
		}))

	addTool(s.mcp, "get_window", "Get a window by id", []mcp.ToolOption{
		mcp.WithNumber("window_id", mcp.Required(), mcp.Description("window to fetch")),
		populateOpt,
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		windowID := argIntDefault(args, "window_id", 0)
		return h.WindowsGet(ctx, windowID, argBoolDefault(args, "populate", true))
	}))

	addTool(s.mcp, "get_current_window", "Get the window owning the current tab", []mcp.ToolOption{populateOpt},
		textHandler(func(ctx context.Context, args map[string]any) (string, error) {
			return h.WindowsGetCurrent(ctx, argBoolDefault(args, "populate", true))
		}))

	addTool(s.mcp, "get_last_focused_window", "Get the most recently focused window", []mcp.ToolOption{populateOpt},
		textHandler(func(ctx context.Context, args map[string]any) (string, error) {
			return h.WindowsGetLastFocused(ctx, argBoolDefault(args, "populate", true))
		}))

	addTool(s.mcp, "create_window", "Create a new browser window", []mcp.ToolOption{
		mcp.WithString("url", mcp.Description("URL to load in the new window")),
		mcp.WithString("window_type", mcp.Description("normal, popup, panel; default normal")),
		mcp.WithString("state", mcp.Description("normal, minimized, maximized, fullscreen; default normal")),
		mcp.WithBoolean("focused", mcp.Description("focus the new window, default true")),
		mcp.WithNumber("width", mcp.Description("window width in pixels")),
		mcp.WithNumber("height", mcp.Description("window height in pixels")),
		mcp.WithNumber("top", mcp.Description("window top offset in pixels")),
		mcp.WithNumber("left", mcp.Description("window left offset in pixels")),
		mcp.WithBoolean("incognito", mcp.Description("open an incognito window, default false")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		return h.WindowsCreate(ctx, tools.CreateWindowOptions{
			URL:        argStringDefault(args, "url", ""),
			WindowType: argStringDefault(args, "window_type", "normal"),
			State:      argStringDefault(args, "state", "normal"),
			Focused:    argBoolDefault(args, "focused", true),
			Width:      argIntPtr(args, "width"),
			Height:     argIntPtr(args, "height"),
			Top:        argIntPtr(args, "top"),
			Left:       argIntPtr(args, "left"),
			Incognito:  argBoolDefault(args, "incognito", false),
		})
	}))

	addTool(s.mcp, "close_window", "Close a browser window", []mcp.ToolOption{
		mcp.WithNumber("window_id", mcp.Required(), mcp.Description("window to close")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		return h.WindowsClose(ctx, argIntDefault(args, "window_id", 0))
	}))

	addTool(s.mcp, "focus_window", "Focus a browser window", []mcp.ToolOption{
		mcp.WithNumber("window_id", mcp.Required(), mcp.Description("window to focus")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		return h.WindowsFocus(ctx, argIntDefault(args, "window_id", 0))
	}))

	addTool(s.mcp, "update_window", "Update a browser window's state or geometry", []mcp.ToolOption{
		mcp.WithNumber("window_id", mcp.Required(), mcp.Description("window to update")),
		mcp.WithString("state", mcp.Description("normal, minimized, maximized, fullscreen")),
		mcp.WithBoolean("focused", mcp.Description("focus the window")),
		mcp.WithNumber("width", mcp.Description("window width in pixels")),
		mcp.WithNumber("height", mcp.Description("window height in pixels")),
		mcp.WithNumber("top", mcp.Description("window top offset in pixels")),
		mcp.WithNumber("left", mcp.Description("window left offset in pixels")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		windowID := argIntDefault(args, "window_id", 0)
		return h.WindowsUpdate(ctx, windowID, tools.UpdateWindowOptions{
			State:   argStringDefault(args, "state", ""),
			Focused: argBoolPtr(args, "focused"),
			Width:   argIntPtr(args, "width"),
			Height:  argIntPtr(args, "height"),
			Top:     argIntPtr(args, "top"),
			Left:    argIntPtr(args, "left"),
		})
	}))
}
