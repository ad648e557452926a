package mcpserver

import (
	"strings"
	"testing"

	"github.com/foxmcp/bridge/internal/bridgeerr"
)

func TestFormatToolErrorIncludesKind(t *testing.T) {
	err := bridgeerr.New(bridgeerr.KindInvalidArgument, "url must not be empty")
	got := formatToolError(err)
	if !strings.Contains(got, "invalid_argument") {
		t.Fatalf("expected kind in message, got %q", got)
	}
	if !strings.Contains(got, "url must not be empty") {
		t.Fatalf("expected underlying message, got %q", got)
	}
}
