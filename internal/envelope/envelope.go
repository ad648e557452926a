// Package envelope defines the wire format exchanged with the browser
// extension over the WebSocket connection, and the closed catalog of
// actions that may appear on it.
package envelope

import (
	"encoding/json"
	"fmt"
	"time"
)

// Type is the discriminator of an Envelope.
type Type string

const (
	// TypeRequest flows server -> extension only, except for unsolicited
	// notification frames in the requests.* namespace (see Type notes on
	// the Monitor Registry).
	TypeRequest  Type = "request"
	TypeResponse Type = "response"
	TypeError    Type = "error"
)

// Envelope is the JSON object carried by every WebSocket text frame in
// either direction.
type Envelope struct {
	ID        string          `json:"id"`
	Type      Type            `json:"type"`
	Action    string          `json:"action"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

// ErrorData is the shape of Data on a TypeError envelope.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewRequest builds a request envelope with the given id, action and data.
func NewRequest(id, action string, data any) (*Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("envelope: marshal data for action %q: %w", action, err)
	}
	return &Envelope{
		ID:        id,
		Type:      TypeRequest,
		Action:    action,
		Data:      raw,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}, nil
}

// Parse decodes a raw WebSocket text frame into an Envelope.
//
// Frames missing an id or carrying an unrecognized type are rejected so the
// caller can log and drop them per the WS Listener contract; they can never
// correlate to a pending waiter.
func Parse(raw []byte) (*Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("envelope: invalid JSON: %w", err)
	}
	if e.ID == "" {
		return nil, fmt.Errorf("envelope: missing id")
	}
	switch e.Type {
	case TypeRequest, TypeResponse, TypeError:
	default:
		return nil, fmt.Errorf("envelope: unknown type %q", e.Type)
	}
	return &e, nil
}

// Marshal serializes the envelope to the wire format.
func (e *Envelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// DecodeData unmarshals the envelope's Data into v.
func (e *Envelope) DecodeData(v any) error {
	if len(e.Data) == 0 {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}

// AsError returns the structured error carried by a TypeError envelope, or
// nil if this envelope is not an error.
func (e *Envelope) AsError() *ErrorData {
	if e.Type != TypeError {
		return nil
	}
	var ed ErrorData
	if err := e.DecodeData(&ed); err != nil {
		return &ErrorData{Code: "protocol_error", Message: "unparseable error data"}
	}
	return &ed
}

// IsNotification reports whether this is an unsolicited frame from the
// extension: a TypeRequest envelope in the requests.* namespace, which
// expects no response (see Monitor Registry, spec §4.6 and Design Note on
// distinguishing notifications from ordinary requests).
func (e *Envelope) IsNotification() bool {
	return e.Type == TypeRequest && isRequestsNamespace(e.Action)
}

func isRequestsNamespace(action string) bool {
	const prefix = "requests."
	return len(action) > len(prefix) && action[:len(prefix)] == prefix
}
