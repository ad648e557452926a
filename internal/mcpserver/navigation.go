package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/foxmcp/bridge/internal/tools"
)

func (s *Server) registerNavigationTools(h *tools.Handlers) {
	addTool(s.mcp, "navigation_go_to_url", "Navigate a tab to a URL", []mcp.ToolOption{
		mcp.WithNumber("tab_id", mcp.Required(), mcp.Description("tab to navigate")),
		mcp.WithString("url", mcp.Required(), mcp.Description("destination URL")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		tabID := argIntDefault(args, "tab_id", 0)
		url, _ := argString(args, "url")
		return h.NavigationGoToURL(ctx, tabID, url)
	}))

	addTool(s.mcp, "navigation_back", "Navigate a tab back in history", []mcp.ToolOption{
		mcp.WithNumber("tab_id", mcp.Required(), mcp.Description("tab to navigate")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		return h.NavigationBack(ctx, argIntDefault(args, "tab_id", 0))
	}))

	addTool(s.mcp, "navigation_forward", "Navigate a tab forward in history", []mcp.ToolOption{
		mcp.WithNumber("tab_id", mcp.Required(), mcp.Description("tab to navigate")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		return h.NavigationForward(ctx, argIntDefault(args, "tab_id", 0))
	}))

	addTool(s.mcp, "navigation_reload", "Reload a tab", []mcp.ToolOption{
		mcp.WithNumber("tab_id", mcp.Required(), mcp.Description("tab to reload")),
		mcp.WithBoolean("bypass_cache", mcp.Description("bypass the cache, default false")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		tabID := argIntDefault(args, "tab_id", 0)
		bypassCache := argBoolDefault(args, "bypass_cache", false)
		return h.NavigationReload(ctx, tabID, bypassCache)
	}))
}
