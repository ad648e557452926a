package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/foxmcp/bridge/internal/bridgeerr"
	"github.com/foxmcp/bridge/internal/envelope"
	"github.com/foxmcp/bridge/internal/scripts"
)

func intPtr(n int) *int { return &n }

func writeExecutableScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestContentGetTextRejectsNegativeMaxLength(t *testing.T) {
	h := newTestHandlers(&fakeCaller{})
	if _, err := h.ContentGetText(context.Background(), 1, intPtr(-1)); bridgeerr.KindOf(err) != bridgeerr.KindInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestContentGetTextZeroMaxLengthReturnsEmpty(t *testing.T) {
	fc := &fakeCaller{responses: map[envelope.Action]json.RawMessage{
		envelope.ActionContentGetText: raw(t, "hello world"),
	}}
	h := newTestHandlers(fc)

	got, err := h.ContentGetText(context.Background(), 1, intPtr(0))
	if err != nil {
		t.Fatalf("ContentGetText: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestContentGetTextTruncates(t *testing.T) {
	fc := &fakeCaller{responses: map[envelope.Action]json.RawMessage{
		envelope.ActionContentGetText: raw(t, "hello world"),
	}}
	h := newTestHandlers(fc)

	got, err := h.ContentGetText(context.Background(), 1, intPtr(5))
	if err != nil {
		t.Fatalf("ContentGetText: %v", err)
	}
	if got != "hello" {
		t.Fatalf("got %q want %q", got, "hello")
	}
}

func TestContentExecuteScriptRejectsEmpty(t *testing.T) {
	h := newTestHandlers(&fakeCaller{})
	if _, err := h.ContentExecuteScript(context.Background(), 1, ""); bridgeerr.KindOf(err) != bridgeerr.KindInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestContentExecuteScriptReturnsExtensionResult(t *testing.T) {
	fc := &fakeCaller{responses: map[envelope.Action]json.RawMessage{
		envelope.ActionContentExecuteScript: raw(t, map[string]any{"ok": true}),
	}}
	h := newTestHandlers(fc)

	got, err := h.ContentExecuteScript(context.Background(), 1, "document.title")
	if err != nil {
		t.Fatalf("ContentExecuteScript: %v", err)
	}
	if got != `{"ok":true}` {
		t.Fatalf("got %q", got)
	}
}

func TestContentExecutePredefinedRunsScriptThenExecutes(t *testing.T) {
	dir := t.TempDir()
	writeExecutableScript(t, dir, "greet.js", "#!/bin/sh\necho 'console.log(1)'\n")

	fc := &fakeCaller{responses: map[envelope.Action]json.RawMessage{
		envelope.ActionContentExecuteScript: raw(t, "done"),
	}}
	h := &Handlers{Dispatcher: fc, Scripts: scripts.New(dir), Logger: testLogger()}

	got, err := h.ContentExecutePredefined(context.Background(), 1, "greet.js", `[]`)
	if err != nil {
		t.Fatalf("ContentExecutePredefined: %v", err)
	}
	if got != `"done"` {
		t.Fatalf("got %q", got)
	}
}

func TestContentExecutePredefinedRejectsEmptyName(t *testing.T) {
	h := newTestHandlers(&fakeCaller{})
	if _, err := h.ContentExecutePredefined(context.Background(), 1, "", "[]"); bridgeerr.KindOf(err) != bridgeerr.KindInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}
