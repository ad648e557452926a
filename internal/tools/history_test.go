package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/foxmcp/bridge/internal/bridgeerr"
	"github.com/foxmcp/bridge/internal/envelope"
)

func TestHistoryQueryRejectsEmptyQuery(t *testing.T) {
	h := newTestHandlers(&fakeCaller{})
	if _, err := h.HistoryQuery(context.Background(), "", 0); bridgeerr.KindOf(err) != bridgeerr.KindInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestHistoryQueryDefaultsMaxResults(t *testing.T) {
	fc := &fakeCaller{responses: map[envelope.Action]json.RawMessage{
		envelope.ActionHistoryQuery: raw(t, []HistoryItem{}),
	}}
	h := newTestHandlers(fc)

	if _, err := h.HistoryQuery(context.Background(), "golang", 0); err != nil {
		t.Fatalf("HistoryQuery: %v", err)
	}
	data, ok := fc.lastData[envelope.ActionHistoryQuery].(map[string]any)
	if !ok {
		t.Fatalf("expected map payload, got %T", fc.lastData[envelope.ActionHistoryQuery])
	}
	if data["maxResults"] != 50 {
		t.Fatalf("expected default maxResults 50, got %v", data["maxResults"])
	}
	if data["query"] != "golang" {
		t.Fatalf("expected query key, got %v", data)
	}
}

func TestHistoryQueryFormatsResults(t *testing.T) {
	fc := &fakeCaller{responses: map[envelope.Action]json.RawMessage{
		envelope.ActionHistoryQuery: raw(t, []HistoryItem{
			{URL: "https://example.com", Title: "Example", LastVisitTime: 1700000000000, VisitCount: 3},
		}),
	}}
	h := newTestHandlers(fc)

	got, err := h.HistoryQuery(context.Background(), "example", 10)
	if err != nil {
		t.Fatalf("HistoryQuery: %v", err)
	}
	if got == "" {
		t.Fatalf("expected non-empty result")
	}
	if got[:len("History (1 found):\n")] != "History (1 found):\n" {
		t.Fatalf("got %q", got)
	}
}

func TestHistoryDeleteItemRejectsEmptyURL(t *testing.T) {
	h := newTestHandlers(&fakeCaller{})
	if _, err := h.HistoryDeleteItem(context.Background(), ""); bridgeerr.KindOf(err) != bridgeerr.KindInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestHistoryDeleteItemSuccess(t *testing.T) {
	fc := &fakeCaller{responses: map[envelope.Action]json.RawMessage{
		envelope.ActionHistoryDeleteItem: raw(t, struct{}{}),
	}}
	h := newTestHandlers(fc)

	got, err := h.HistoryDeleteItem(context.Background(), "https://example.com")
	if err != nil {
		t.Fatalf("HistoryDeleteItem: %v", err)
	}
	want := "Deleted history entry for https://example.com"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
