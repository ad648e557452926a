package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/foxmcp/bridge/internal/dispatcher"
	"github.com/foxmcp/bridge/internal/envelope"
)

// HistoryQuery implements history_query. The wire key is "query" (not
// "text") and maxResults; note the camelCase on the wire (spec §4.4).
func (h *Handlers) HistoryQuery(ctx context.Context, query string, maxResults int) (string, error) {
	if query == "" {
		return "", invalidArgument("query must not be empty")
	}
	if maxResults <= 0 {
		maxResults = 50
	}

	raw, err := h.Dispatcher.Call(ctx, envelope.ActionHistoryQuery, map[string]any{
		"query":      query,
		"maxResults": maxResults,
	}, dispatcher.DefaultTimeout)
	if err != nil {
		return "", err
	}

	var items []HistoryItem
	if err := decodeInto(raw, &items); err != nil {
		return "", err
	}
	return formatHistoryItems(items), nil
}

// HistoryGetRecent implements history_get_recent.
func (h *Handlers) HistoryGetRecent(ctx context.Context, count int) (string, error) {
	if count <= 0 {
		count = 10
	}

	raw, err := h.Dispatcher.Call(ctx, envelope.ActionHistoryRecent, map[string]any{
		"count": count,
	}, dispatcher.DefaultTimeout)
	if err != nil {
		return "", err
	}

	var items []HistoryItem
	if err := decodeInto(raw, &items); err != nil {
		return "", err
	}
	return formatHistoryItems(items), nil
}

// HistoryDeleteItem implements history_delete_item.
func (h *Handlers) HistoryDeleteItem(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", invalidArgument("url must not be empty")
	}
	if _, err := h.Dispatcher.Call(ctx, envelope.ActionHistoryDeleteItem, map[string]any{"url": url}, dispatcher.DefaultTimeout); err != nil {
		return "", err
	}
	return fmt.Sprintf("Deleted history entry for %s", url), nil
}

func formatHistoryItems(items []HistoryItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "History (%d found):\n", len(items))
	for _, it := range items {
		visited := time.UnixMilli(int64(it.LastVisitTime)).UTC().Format(time.RFC3339)
		fmt.Fprintf(&b, "- %s - %s (last visited %s, %d visits)\n", it.Title, it.URL, visited, it.VisitCount)
	}
	return b.String()
}
