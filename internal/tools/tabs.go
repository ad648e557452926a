package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/foxmcp/bridge/internal/dispatcher"
	"github.com/foxmcp/bridge/internal/envelope"
)

// TabsList implements tabs_list (spec §4.4, §6): list all open tabs.
func (h *Handlers) TabsList(ctx context.Context) (string, error) {
	raw, err := h.Dispatcher.Call(ctx, envelope.ActionTabsList, map[string]any{}, dispatcher.DefaultTimeout)
	if err != nil {
		return "", err
	}

	var tabs []Tab
	if err := decodeInto(raw, &tabs); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Open tabs (%d found):\n", len(tabs))
	for _, t := range tabs {
		var suffixes []string
		if t.Active {
			suffixes = append(suffixes, "active")
		}
		if t.Pinned {
			suffixes = append(suffixes, "pinned")
		}
		suffix := ""
		for _, s := range suffixes {
			suffix += fmt.Sprintf(" (%s)", s)
		}
		fmt.Fprintf(&b, "- ID %d: %s - %s%s\n", t.ID, t.Title, t.URL, suffix)
	}
	return b.String(), nil
}

// TabsCreate implements tabs_create.
func (h *Handlers) TabsCreate(ctx context.Context, url string, active, pinned bool, windowID *int) (string, error) {
	if url == "" {
		return "", invalidArgument("url must not be empty")
	}
	data := map[string]any{"url": url, "active": active, "pinned": pinned}
	if windowID != nil {
		data["windowId"] = *windowID
	}

	raw, err := h.Dispatcher.Call(ctx, envelope.ActionTabsCreate, data, dispatcher.DefaultTimeout)
	if err != nil {
		return "", err
	}
	var tab Tab
	if err := decodeInto(raw, &tab); err != nil {
		return "", err
	}
	return fmt.Sprintf("Created tab ID %d: %s", tab.ID, tab.URL), nil
}

// TabsClose implements tabs_close.
func (h *Handlers) TabsClose(ctx context.Context, tabID int) (string, error) {
	if _, err := h.Dispatcher.Call(ctx, envelope.ActionTabsClose, map[string]any{"tabId": tabID}, dispatcher.DefaultTimeout); err != nil {
		return "", err
	}
	return fmt.Sprintf("Tab %d closed", tabID), nil
}

// TabsSwitch implements tabs_switch.
func (h *Handlers) TabsSwitch(ctx context.Context, tabID int) (string, error) {
	if _, err := h.Dispatcher.Call(ctx, envelope.ActionTabsSwitch, map[string]any{"tabId": tabID}, dispatcher.DefaultTimeout); err != nil {
		return "", err
	}
	return fmt.Sprintf("Switched to tab %d", tabID), nil
}
