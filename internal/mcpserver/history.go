package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/foxmcp/bridge/internal/tools"
)

func (s *Server) registerHistoryTools(h *tools.Handlers) {
	addTool(s.mcp, "history_query", "Search browsing history", []mcp.ToolOption{
		mcp.WithString("query", mcp.Required(), mcp.Description("search text")),
		mcp.WithNumber("max_results", mcp.Description("maximum items to return, default 50")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		query, _ := argString(args, "query")
		maxResults := argIntDefault(args, "max_results", 50)
		return h.HistoryQuery(ctx, query, maxResults)
	}))

	addTool(s.mcp, "history_get_recent", "Get most recently visited pages", []mcp.ToolOption{
		mcp.WithNumber("count", mcp.Description("number of items to return, default 10")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		count := argIntDefault(args, "count", 10)
		return h.HistoryGetRecent(ctx, count)
	}))

	addTool(s.mcp, "history_delete_item", "Delete a history entry by URL", []mcp.ToolOption{
		mcp.WithString("url", mcp.Required(), mcp.Description("URL to remove from history")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		url, _ := argString(args, "url")
		return h.HistoryDeleteItem(ctx, url)
	}))
}
