package tools

import (
	"context"
	"fmt"

	"github.com/foxmcp/bridge/internal/dispatcher"
	"github.com/foxmcp/bridge/internal/envelope"
)

// WindowsList implements list_windows.
func (h *Handlers) WindowsList(ctx context.Context, populate bool) (string, error) {
	raw, err := h.Dispatcher.Call(ctx, envelope.ActionWindowsList, map[string]any{"populate": populate}, dispatcher.DefaultTimeout)
	if err != nil {
		return "", err
	}
	var windows []WindowInfo
	if err := decodeInto(raw, &windows); err != nil {
		return "", err
	}
	return formatWindowList(windows), nil
}

func formatWindowList(windows []WindowInfo) string {
	out := fmt.Sprintf("Windows (%d found):\n", len(windows))
	for _, w := range windows {
		out += formatWindowLine(w)
	}
	return out
}

func formatWindowLine(w WindowInfo) string {
	focused := ""
	if w.Focused {
		focused = " (focused)"
	}
	return fmt.Sprintf("- ID %d: %s, %d tabs%s\n", w.ID, w.State, len(w.Tabs), focused)
}

// WindowsGet implements get_window.
func (h *Handlers) WindowsGet(ctx context.Context, windowID int, populate bool) (string, error) {
	raw, err := h.Dispatcher.Call(ctx, envelope.ActionWindowsGet, map[string]any{
		"windowId": windowID,
		"populate": populate,
	}, dispatcher.DefaultTimeout)
	if err != nil {
		return "", err
	}
	var w WindowInfo
	if err := decodeInto(raw, &w); err != nil {
		return "", err
	}
	return formatWindowLine(w), nil
}

// WindowsGetCurrent implements get_current_window.
func (h *Handlers) WindowsGetCurrent(ctx context.Context, populate bool) (string, error) {
	raw, err := h.Dispatcher.Call(ctx, envelope.ActionWindowsGetCurrent, map[string]any{"populate": populate}, dispatcher.DefaultTimeout)
	if err != nil {
		return "", err
	}
	var w WindowInfo
	if err := decodeInto(raw, &w); err != nil {
		return "", err
	}
	return formatWindowLine(w), nil
}

// WindowsGetLastFocused implements get_last_focused_window.
func (h *Handlers) WindowsGetLastFocused(ctx context.Context, populate bool) (string, error) {
	raw, err := h.Dispatcher.Call(ctx, envelope.ActionWindowsGetLastUsed, map[string]any{"populate": populate}, dispatcher.DefaultTimeout)
	if err != nil {
		return "", err
	}
	var w WindowInfo
	if err := decodeInto(raw, &w); err != nil {
		return "", err
	}
	return formatWindowLine(w), nil
}

// CreateWindowOptions bundles create_window's optional fields (spec §6).
type CreateWindowOptions struct {
	URL        string
	WindowType string
	State      string
	Focused    bool
	Width      *int
	Height     *int
	Top        *int
	Left       *int
	Incognito  bool
}

// WindowsCreate implements create_window.
func (h *Handlers) WindowsCreate(ctx context.Context, opts CreateWindowOptions) (string, error) {
	data := map[string]any{"incognito": opts.Incognito, "focused": opts.Focused}
	if opts.URL != "" {
		data["url"] = opts.URL
	}
	if opts.WindowType != "" {
		data["type"] = opts.WindowType
	}
	if opts.State != "" {
		data["state"] = opts.State
	}
	if opts.Width != nil {
		data["width"] = *opts.Width
	}
	if opts.Height != nil {
		data["height"] = *opts.Height
	}
	if opts.Top != nil {
		data["top"] = *opts.Top
	}
	if opts.Left != nil {
		data["left"] = *opts.Left
	}

	raw, err := h.Dispatcher.Call(ctx, envelope.ActionWindowsCreate, data, dispatcher.DefaultTimeout)
	if err != nil {
		return "", err
	}
	var w WindowInfo
	if err := decodeInto(raw, &w); err != nil {
		return "", err
	}
	return fmt.Sprintf("Created window ID %d", w.ID), nil
}

// WindowsClose implements close_window.
func (h *Handlers) WindowsClose(ctx context.Context, windowID int) (string, error) {
	if _, err := h.Dispatcher.Call(ctx, envelope.ActionWindowsClose, map[string]any{"windowId": windowID}, dispatcher.DefaultTimeout); err != nil {
		return "", err
	}
	return fmt.Sprintf("Window %d closed", windowID), nil
}

// WindowsFocus implements focus_window.
func (h *Handlers) WindowsFocus(ctx context.Context, windowID int) (string, error) {
	if _, err := h.Dispatcher.Call(ctx, envelope.ActionWindowsFocus, map[string]any{"windowId": windowID}, dispatcher.DefaultTimeout); err != nil {
		return "", err
	}
	return fmt.Sprintf("Window %d focused", windowID), nil
}

// UpdateWindowOptions bundles update_window's optional fields (spec §6).
type UpdateWindowOptions struct {
	State   string
	Focused *bool
	Width   *int
	Height  *int
	Top     *int
	Left    *int
}

// WindowsUpdate implements update_window.
func (h *Handlers) WindowsUpdate(ctx context.Context, windowID int, opts UpdateWindowOptions) (string, error) {
	data := map[string]any{"windowId": windowID}
	if opts.State != "" {
		data["state"] = opts.State
	}
	if opts.Focused != nil {
		data["focused"] = *opts.Focused
	}
	if opts.Width != nil {
		data["width"] = *opts.Width
	}
	if opts.Height != nil {
		data["height"] = *opts.Height
	}
	if opts.Top != nil {
		data["top"] = *opts.Top
	}
	if opts.Left != nil {
		data["left"] = *opts.Left
	}

	if _, err := h.Dispatcher.Call(ctx, envelope.ActionWindowsUpdate, data, dispatcher.DefaultTimeout); err != nil {
		return "", err
	}
	return fmt.Sprintf("Window %d updated", windowID), nil
}
