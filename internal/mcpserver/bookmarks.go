package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/foxmcp/bridge/internal/tools"
)

func (s *Server) registerBookmarkTools(h *tools.Handlers) {
	addTool(s.mcp, "bookmarks_list", "List bookmarks as a tree", []mcp.ToolOption{
		mcp.WithString("folder_id", mcp.Description("restrict the listing to this folder")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		folderID, _ := argString(args, "folder_id")
		return h.BookmarksList(ctx, folderID)
	}))

	addTool(s.mcp, "bookmarks_search", "Search bookmarks by text", []mcp.ToolOption{
		mcp.WithString("query", mcp.Required(), mcp.Description("search text")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		query, _ := argString(args, "query")
		return h.BookmarksSearch(ctx, query)
	}))

	addTool(s.mcp, "bookmarks_create", "Create a bookmark", []mcp.ToolOption{
		mcp.WithString("title", mcp.Required(), mcp.Description("bookmark title")),
		mcp.WithString("url", mcp.Required(), mcp.Description("bookmark URL")),
		mcp.WithString("parent_id", mcp.Description("parent folder id")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		title, _ := argString(args, "title")
		url, _ := argString(args, "url")
		parentID, _ := argString(args, "parent_id")
		return h.BookmarksCreate(ctx, title, url, parentID)
	}))

	addTool(s.mcp, "bookmarks_create_folder", "Create a bookmark folder", []mcp.ToolOption{
		mcp.WithString("title", mcp.Required(), mcp.Description("folder title")),
		mcp.WithString("parent_id", mcp.Description("parent folder id")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		title, _ := argString(args, "title")
		parentID, _ := argString(args, "parent_id")
		return h.BookmarksCreateFolder(ctx, title, parentID)
	}))

	addTool(s.mcp, "bookmarks_update", "Update a bookmark's title or URL", []mcp.ToolOption{
		mcp.WithString("bookmark_id", mcp.Required(), mcp.Description("bookmark to update")),
		mcp.WithString("title", mcp.Description("new title")),
		mcp.WithString("url", mcp.Description("new URL")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		bookmarkID, _ := argString(args, "bookmark_id")
		title, _ := argString(args, "title")
		url, _ := argString(args, "url")
		return h.BookmarksUpdate(ctx, bookmarkID, title, url)
	}))

	addTool(s.mcp, "bookmarks_delete", "Delete a bookmark", []mcp.ToolOption{
		mcp.WithString("bookmark_id", mcp.Required(), mcp.Description("bookmark to delete")),
	}, textHandler(func(ctx context.Context, args map[string]any) (string, error) {
		bookmarkID, _ := argString(args, "bookmark_id")
		return h.BookmarksDelete(ctx, bookmarkID)
	}))
}
