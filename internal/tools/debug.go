package tools

// connectionStatus abstracts the WS Listener so tests can substitute a fake
// and so this package does not import wsserver directly.
type connectionStatus interface {
	IsConnected() bool
}

// DebugWebSocketStatus implements debug_websocket_status: a quick
// diagnostic for whether the bridge currently has an extension attached
// (spec §4.4).
func (h *Handlers) DebugWebSocketStatus(listener connectionStatus) string {
	if listener.IsConnected() {
		return "Extension connected"
	}
	return "Extension not connected"
}
