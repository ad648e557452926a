package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/foxmcp/bridge/internal/envelope"
)

func TestWindowsListFormatsFocused(t *testing.T) {
	fc := &fakeCaller{responses: map[envelope.Action]json.RawMessage{
		envelope.ActionWindowsList: raw(t, []WindowInfo{
			{ID: 1, State: "normal", Focused: true, Tabs: []Tab{{ID: 1}, {ID: 2}}},
			{ID: 2, State: "minimized"},
		}),
	}}
	h := newTestHandlers(fc)

	got, err := h.WindowsList(context.Background(), true)
	if err != nil {
		t.Fatalf("WindowsList: %v", err)
	}
	want := "Windows (2 found):\n" +
		"- ID 1: normal, 2 tabs (focused)\n" +
		"- ID 2: minimized, 0 tabs\n"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWindowsGetLastFocusedUsesCorrectAction(t *testing.T) {
	fc := &fakeCaller{responses: map[envelope.Action]json.RawMessage{
		envelope.ActionWindowsGetLastUsed: raw(t, WindowInfo{ID: 5, State: "normal"}),
	}}
	h := newTestHandlers(fc)

	if _, err := h.WindowsGetLastFocused(context.Background(), false); err != nil {
		t.Fatalf("WindowsGetLastFocused: %v", err)
	}
	if len(fc.calls) != 1 || fc.calls[0] != envelope.ActionWindowsGetLastUsed {
		t.Fatalf("expected a single call to windows.get_last_focused, got %v", fc.calls)
	}
}

func TestWindowsCreateSuccess(t *testing.T) {
	fc := &fakeCaller{responses: map[envelope.Action]json.RawMessage{
		envelope.ActionWindowsCreate: raw(t, WindowInfo{ID: 10}),
	}}
	h := newTestHandlers(fc)

	got, err := h.WindowsCreate(context.Background(), CreateWindowOptions{URL: "https://example.com"})
	if err != nil {
		t.Fatalf("WindowsCreate: %v", err)
	}
	if got != "Created window ID 10" {
		t.Fatalf("got %q", got)
	}
}

func TestWindowsCloseFocusUpdate(t *testing.T) {
	fc := &fakeCaller{responses: map[envelope.Action]json.RawMessage{
		envelope.ActionWindowsClose:  raw(t, struct{}{}),
		envelope.ActionWindowsFocus:  raw(t, struct{}{}),
		envelope.ActionWindowsUpdate: raw(t, struct{}{}),
	}}
	h := newTestHandlers(fc)

	if got, err := h.WindowsClose(context.Background(), 3); err != nil || got != "Window 3 closed" {
		t.Fatalf("WindowsClose: got %q, err %v", got, err)
	}
	if got, err := h.WindowsFocus(context.Background(), 3); err != nil || got != "Window 3 focused" {
		t.Fatalf("WindowsFocus: got %q, err %v", got, err)
	}
	focused := true
	if got, err := h.WindowsUpdate(context.Background(), 3, UpdateWindowOptions{State: "maximized", Focused: &focused}); err != nil || got != "Window 3 updated" {
		t.Fatalf("WindowsUpdate: got %q, err %v", got, err)
	}
}
