package envelope

import (
	"encoding/json"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	original, err := NewRequest("req-1", string(ActionTabsList), map[string]any{"foo": "bar"})
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}

	raw, err := original.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	parsed, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if parsed.ID != original.ID || parsed.Action != original.Action || parsed.Type != original.Type {
		t.Fatalf("round trip mismatch: got %+v, want %+v", parsed, original)
	}

	var gotData, wantData map[string]any
	if err := json.Unmarshal(parsed.Data, &gotData); err != nil {
		t.Fatalf("unmarshal parsed data: %v", err)
	}
	if err := json.Unmarshal(original.Data, &wantData); err != nil {
		t.Fatalf("unmarshal original data: %v", err)
	}
	if gotData["foo"] != wantData["foo"] {
		t.Fatalf("data mismatch: got %v, want %v", gotData, wantData)
	}
}

func TestParseRejectsMissingID(t *testing.T) {
	_, err := Parse([]byte(`{"type":"request","action":"tabs.list","data":{}}`))
	if err == nil {
		t.Fatal("expected error for missing id")
	}
}

func TestParseRejectsUnknownType(t *testing.T) {
	_, err := Parse([]byte(`{"id":"1","type":"bogus","action":"tabs.list","data":{}}`))
	if err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestIsNotification(t *testing.T) {
	e := &Envelope{Type: TypeRequest, Action: "requests.capture"}
	if !e.IsNotification() {
		t.Fatal("expected requests.* request to be a notification")
	}

	e2 := &Envelope{Type: TypeRequest, Action: "tabs.list"}
	if e2.IsNotification() {
		t.Fatal("tabs.list is not a notification namespace")
	}

	e3 := &Envelope{Type: TypeResponse, Action: "requests.capture"}
	if e3.IsNotification() {
		t.Fatal("a response is never a notification")
	}
}

func TestAsErrorOnNonError(t *testing.T) {
	e := &Envelope{Type: TypeResponse}
	if e.AsError() != nil {
		t.Fatal("expected nil for non-error envelope")
	}
}

func TestKnownActionsClosed(t *testing.T) {
	if IsKnown("not.a.real.action") {
		t.Fatal("unknown action reported as known")
	}
	if !IsKnown(ActionPing) {
		t.Fatal("ping should be known")
	}
}
