package tools

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/foxmcp/bridge/internal/bridgeerr"
	"github.com/foxmcp/bridge/internal/envelope"
)

type fakeCaller struct {
	responses map[envelope.Action]json.RawMessage
	errs      map[envelope.Action]error
	calls     []envelope.Action
	lastData  map[envelope.Action]any
}

func (f *fakeCaller) Call(ctx context.Context, action envelope.Action, data any, timeout time.Duration) (json.RawMessage, error) {
	f.calls = append(f.calls, action)
	if f.lastData == nil {
		f.lastData = map[envelope.Action]any{}
	}
	f.lastData[action] = data
	if err, ok := f.errs[action]; ok {
		return nil, err
	}
	return f.responses[action], nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func raw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func newTestHandlers(fc *fakeCaller) *Handlers {
	return &Handlers{Dispatcher: fc, Logger: testLogger()}
}

func TestTabsListFormatsActivePinnedSuffixes(t *testing.T) {
	fc := &fakeCaller{responses: map[envelope.Action]json.RawMessage{
		envelope.ActionTabsList: raw(t, []Tab{
			{ID: 1, Title: "Example", URL: "https://example.com", Active: true},
			{ID: 2, Title: "Pinned", URL: "https://pinned.example", Pinned: true},
			{ID: 3, Title: "Both", URL: "https://both.example", Active: true, Pinned: true},
			{ID: 4, Title: "Plain", URL: "https://plain.example"},
		}),
	}}
	h := newTestHandlers(fc)

	got, err := h.TabsList(context.Background())
	if err != nil {
		t.Fatalf("TabsList: %v", err)
	}
	want := "Open tabs (4 found):\n" +
		"- ID 1: Example - https://example.com (active)\n" +
		"- ID 2: Pinned - https://pinned.example (pinned)\n" +
		"- ID 3: Both - https://both.example (active) (pinned)\n" +
		"- ID 4: Plain - https://plain.example\n"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestTabsCreateRejectsEmptyURL(t *testing.T) {
	h := newTestHandlers(&fakeCaller{})
	if _, err := h.TabsCreate(context.Background(), "", false, false, nil); bridgeerr.KindOf(err) != bridgeerr.KindInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestTabsCreateSuccess(t *testing.T) {
	fc := &fakeCaller{responses: map[envelope.Action]json.RawMessage{
		envelope.ActionTabsCreate: raw(t, Tab{ID: 42, Title: "New Tab", URL: "https://new.example"}),
	}}
	h := newTestHandlers(fc)

	got, err := h.TabsCreate(context.Background(), "https://new.example", true, false, nil)
	if err != nil {
		t.Fatalf("TabsCreate: %v", err)
	}
	want := "Created tab ID 42: https://new.example"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestTabsClose(t *testing.T) {
	fc := &fakeCaller{responses: map[envelope.Action]json.RawMessage{
		envelope.ActionTabsClose: raw(t, struct{}{}),
	}}
	h := newTestHandlers(fc)

	got, err := h.TabsClose(context.Background(), 7)
	if err != nil {
		t.Fatalf("TabsClose: %v", err)
	}
	if got != "Tab 7 closed" {
		t.Fatalf("got %q", got)
	}
}

func TestTabsSwitchPropagatesDispatcherError(t *testing.T) {
	fc := &fakeCaller{errs: map[envelope.Action]error{
		envelope.ActionTabsSwitch: bridgeerr.New(bridgeerr.KindNotFound, "no such tab"),
	}}
	h := newTestHandlers(fc)

	if _, err := h.TabsSwitch(context.Background(), 99); bridgeerr.KindOf(err) != bridgeerr.KindNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
}
