package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/foxmcp/bridge/internal/tools"
)

func (s *Server) registerContentTools(h *tools.Handlers) {
	addTool(s.mcp, "content_get_text", "Get a tab's visible text", []mcp.ToolOption{
		mcp.WithNumber("tab_id", mcp.Required(), mcp.Description("tab to read")),
		mcp.WithNumber("max_length", mcp.Description("truncate to this many characters")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		tabID := argIntDefault(args, "tab_id", 0)
		return h.ContentGetText(ctx, tabID, argIntPtr(args, "max_length"))
	}))

	addTool(s.mcp, "content_get_html", "Get a tab's HTML", []mcp.ToolOption{
		mcp.WithNumber("tab_id", mcp.Required(), mcp.Description("tab to read")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		return h.ContentGetHTML(ctx, argIntDefault(args, "tab_id", 0))
	}))

	addTool(s.mcp, "content_execute_script", "Execute a JavaScript snippet in a tab", []mcp.ToolOption{
		mcp.WithNumber("tab_id", mcp.Required(), mcp.Description("tab to run the script in")),
		mcp.WithString("script", mcp.Required(), mcp.Description("JavaScript source")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		tabID := argIntDefault(args, "tab_id", 0)
		script, _ := argString(args, "script")
		return h.ContentExecuteScript(ctx, tabID, script)
	}))

	addTool(s.mcp, "content_execute_predefined", "Run a predefined script and inject its output into a tab", []mcp.ToolOption{
		mcp.WithNumber("tab_id", mcp.Required(), mcp.Description("tab to run the script in")),
		mcp.WithString("script_name", mcp.Required(), mcp.Description("name of the script under FOXMCP_EXT_SCRIPTS")),
		mcp.WithString("script_args", mcp.Description("JSON array of string arguments")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		tabID := argIntDefault(args, "tab_id", 0)
		scriptName, _ := argString(args, "script_name")
		scriptArgs := argStringDefault(args, "script_args", "")
		return h.ContentExecutePredefined(ctx, tabID, scriptName, scriptArgs)
	}))
}
