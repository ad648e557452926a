package tools

import (
	"context"
	"fmt"

	"github.com/foxmcp/bridge/internal/dispatcher"
	"github.com/foxmcp/bridge/internal/envelope"
)

// NavigationGoToURL implements navigation_go_to_url.
func (h *Handlers) NavigationGoToURL(ctx context.Context, tabID int, url string) (string, error) {
	if url == "" {
		return "", invalidArgument("url must not be empty")
	}
	if _, err := h.Dispatcher.Call(ctx, envelope.ActionNavigationGoToURL, map[string]any{
		"tabId": tabID,
		"url":   url,
	}, dispatcher.DefaultTimeout); err != nil {
		return "", err
	}
	return fmt.Sprintf("Navigated tab %d to %s", tabID, url), nil
}

// NavigationBack implements navigation_back.
func (h *Handlers) NavigationBack(ctx context.Context, tabID int) (string, error) {
	if _, err := h.Dispatcher.Call(ctx, envelope.ActionNavigationBack, map[string]any{"tabId": tabID}, dispatcher.DefaultTimeout); err != nil {
		return "", err
	}
	return fmt.Sprintf("Tab %d navigated back", tabID), nil
}

// NavigationForward implements navigation_forward.
func (h *Handlers) NavigationForward(ctx context.Context, tabID int) (string, error) {
	if _, err := h.Dispatcher.Call(ctx, envelope.ActionNavigationForward, map[string]any{"tabId": tabID}, dispatcher.DefaultTimeout); err != nil {
		return "", err
	}
	return fmt.Sprintf("Tab %d navigated forward", tabID), nil
}

// NavigationReload implements navigation_reload.
func (h *Handlers) NavigationReload(ctx context.Context, tabID int, bypassCache bool) (string, error) {
	if _, err := h.Dispatcher.Call(ctx, envelope.ActionNavigationReload, map[string]any{
		"tabId":       tabID,
		"bypassCache": bypassCache,
	}, dispatcher.DefaultTimeout); err != nil {
		return "", err
	}
	return fmt.Sprintf("Tab %d reloaded", tabID), nil
}
