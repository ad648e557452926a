package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/foxmcp/bridge/internal/bridgeerr"
	"github.com/foxmcp/bridge/internal/envelope"
)

func TestBookmarksListFormatsTree(t *testing.T) {
	fc := &fakeCaller{responses: map[envelope.Action]json.RawMessage{
		envelope.ActionBookmarksList: raw(t, []BookmarkNode{
			{
				ID: "1", Title: "Work", ParentID: "0",
				Children: []BookmarkNode{
					{ID: "2", ParentID: "1", Title: "Docs", URL: "https://docs.example.com"},
				},
			},
		}),
	}}
	h := newTestHandlers(fc)

	got, err := h.BookmarksList(context.Background(), "")
	if err != nil {
		t.Fatalf("BookmarksList: %v", err)
	}
	if !strings.Contains(got, "📁 Work") {
		t.Fatalf("expected folder marker, got %q", got)
	}
	if !strings.Contains(got, "  🔖 Docs - https://docs.example.com") {
		t.Fatalf("expected indented bookmark marker, got %q", got)
	}
}

func TestBookmarksSearchRejectsEmptyQuery(t *testing.T) {
	h := newTestHandlers(&fakeCaller{})
	if _, err := h.BookmarksSearch(context.Background(), ""); bridgeerr.KindOf(err) != bridgeerr.KindInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestBookmarksCreateRejectsMissingFields(t *testing.T) {
	h := newTestHandlers(&fakeCaller{})
	if _, err := h.BookmarksCreate(context.Background(), "", "https://example.com", ""); bridgeerr.KindOf(err) != bridgeerr.KindInvalidArgument {
		t.Fatalf("expected invalid_argument for missing title, got %v", err)
	}
	if _, err := h.BookmarksCreate(context.Background(), "Example", "", ""); bridgeerr.KindOf(err) != bridgeerr.KindInvalidArgument {
		t.Fatalf("expected invalid_argument for missing url, got %v", err)
	}
}

func TestBookmarksCreateSuccess(t *testing.T) {
	fc := &fakeCaller{responses: map[envelope.Action]json.RawMessage{
		envelope.ActionBookmarksCreate: raw(t, BookmarkNode{ID: "9", Title: "Example", URL: "https://example.com"}),
	}}
	h := newTestHandlers(fc)

	got, err := h.BookmarksCreate(context.Background(), "Example", "https://example.com", "")
	if err != nil {
		t.Fatalf("BookmarksCreate: %v", err)
	}
	want := `Created bookmark "Example" (id=9)`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestBookmarksDeleteRejectsEmptyID(t *testing.T) {
	h := newTestHandlers(&fakeCaller{})
	if _, err := h.BookmarksDelete(context.Background(), ""); bridgeerr.KindOf(err) != bridgeerr.KindInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}
