package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/foxmcp/bridge/internal/dispatcher"
	"github.com/foxmcp/bridge/internal/envelope"
)

// BookmarksList implements bookmarks_list: a formatted tree with folder
// (📁) and bookmark (🔖) prefixes, including id and parentId per node
// (spec §4.4).
func (h *Handlers) BookmarksList(ctx context.Context, folderID string) (string, error) {
	data := map[string]any{}
	if folderID != "" {
		data["folderId"] = folderID
	}

	raw, err := h.Dispatcher.Call(ctx, envelope.ActionBookmarksList, data, dispatcher.DefaultTimeout)
	if err != nil {
		return "", err
	}
	var nodes []BookmarkNode
	if err := decodeInto(raw, &nodes); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, n := range nodes {
		formatBookmarkTree(&b, n, 0)
	}
	return b.String(), nil
}

func formatBookmarkTree(b *strings.Builder, n BookmarkNode, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.URL == "" {
		fmt.Fprintf(b, "%s📁 %s (id=%s, parentId=%s)\n", indent, n.Title, n.ID, n.ParentID)
	} else {
		fmt.Fprintf(b, "%s🔖 %s - %s (id=%s, parentId=%s)\n", indent, n.Title, n.URL, n.ID, n.ParentID)
	}
	for _, c := range n.Children {
		formatBookmarkTree(b, c, depth+1)
	}
}

// BookmarksSearch implements bookmarks_search.
func (h *Handlers) BookmarksSearch(ctx context.Context, query string) (string, error) {
	if query == "" {
		return "", invalidArgument("query must not be empty")
	}
	raw, err := h.Dispatcher.Call(ctx, envelope.ActionBookmarksSearch, map[string]any{"query": query}, dispatcher.DefaultTimeout)
	if err != nil {
		return "", err
	}
	var nodes []BookmarkNode
	if err := decodeInto(raw, &nodes); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Bookmarks matching %q (%d found):\n", query, len(nodes))
	for _, n := range nodes {
		fmt.Fprintf(&b, "🔖 %s - %s (id=%s)\n", n.Title, n.URL, n.ID)
	}
	return b.String(), nil
}

// BookmarksCreate implements bookmarks_create.
func (h *Handlers) BookmarksCreate(ctx context.Context, title, url, parentID string) (string, error) {
	if title == "" || url == "" {
		return "", invalidArgument("title and url must not be empty")
	}
	data := map[string]any{"title": title, "url": url}
	if parentID != "" {
		data["parentId"] = parentID
	}

	raw, err := h.Dispatcher.Call(ctx, envelope.ActionBookmarksCreate, data, dispatcher.DefaultTimeout)
	if err != nil {
		return "", err
	}
	var n BookmarkNode
	if err := decodeInto(raw, &n); err != nil {
		return "", err
	}
	return fmt.Sprintf("Created bookmark %q (id=%s)", n.Title, n.ID), nil
}

// BookmarksCreateFolder implements bookmarks_create_folder.
func (h *Handlers) BookmarksCreateFolder(ctx context.Context, title, parentID string) (string, error) {
	if title == "" {
		return "", invalidArgument("title must not be empty")
	}
	data := map[string]any{"title": title}
	if parentID != "" {
		data["parentId"] = parentID
	}

	raw, err := h.Dispatcher.Call(ctx, envelope.ActionBookmarksCreateFolder, data, dispatcher.DefaultTimeout)
	if err != nil {
		return "", err
	}
	var n BookmarkNode
	if err := decodeInto(raw, &n); err != nil {
		return "", err
	}
	return fmt.Sprintf("Created folder %q (id=%s)", n.Title, n.ID), nil
}

// BookmarksUpdate implements bookmarks_update.
func (h *Handlers) BookmarksUpdate(ctx context.Context, bookmarkID, title, url string) (string, error) {
	if bookmarkID == "" {
		return "", invalidArgument("bookmark_id must not be empty")
	}
	data := map[string]any{"bookmarkId": bookmarkID}
	if title != "" {
		data["title"] = title
	}
	if url != "" {
		data["url"] = url
	}

	raw, err := h.Dispatcher.Call(ctx, envelope.ActionBookmarksUpdate, data, dispatcher.DefaultTimeout)
	if err != nil {
		return "", err
	}
	var n BookmarkNode
	if err := decodeInto(raw, &n); err != nil {
		return "", err
	}
	return fmt.Sprintf("Updated bookmark %q (id=%s)", n.Title, n.ID), nil
}

// BookmarksDelete implements bookmarks_delete.
func (h *Handlers) BookmarksDelete(ctx context.Context, bookmarkID string) (string, error) {
	if bookmarkID == "" {
		return "", invalidArgument("bookmark_id must not be empty")
	}
	if _, err := h.Dispatcher.Call(ctx, envelope.ActionBookmarksDelete, map[string]any{"bookmarkId": bookmarkID}, dispatcher.DefaultTimeout); err != nil {
		return "", err
	}
	return fmt.Sprintf("Deleted bookmark %s", bookmarkID), nil
}
