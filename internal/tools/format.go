package tools

import (
	"encoding/json"

	"github.com/foxmcp/bridge/internal/bridgeerr"
)

// decodeInto unmarshals raw into v, wrapping a failure as an extension_error
// so callers never see a bare JSON error.
func decodeInto(raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return bridgeerr.Wrap(bridgeerr.KindExtensionError, "failed to parse extension response", err)
	}
	return nil
}
