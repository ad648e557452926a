package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// defaultDrainTimeout is requests_stop_monitoring's drain_timeout default
// (spec §6: "requests_stop_monitoring — monitor_id, drain_timeout=5").
const defaultDrainTimeout = 5 * time.Second

// RequestsStartMonitoring implements requests_start_monitoring.
func (h *Handlers) RequestsStartMonitoring(ctx context.Context, urlPatterns []string, options map[string]any, tabID *int) (string, error) {
	result, err := h.Monitor.StartMonitoring(ctx, urlPatterns, options, tabID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Started monitoring %s (monitor_id=%s)", result.Status, result.MonitorID), nil
}

// RequestsStopMonitoring implements requests_stop_monitoring. A
// non-positive drainTimeout falls back to the spec's 5-second default.
func (h *Handlers) RequestsStopMonitoring(ctx context.Context, monitorID string, drainTimeout time.Duration) (string, error) {
	if monitorID == "" {
		return "", invalidArgument("monitor_id must not be empty")
	}
	if drainTimeout <= 0 {
		drainTimeout = defaultDrainTimeout
	}
	result, err := h.Monitor.StopMonitoring(ctx, monitorID, drainTimeout)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"Stopped monitoring %s: %d requests captured, %d bytes total, over %s",
		result.MonitorID, result.TotalRequestsCaptured, result.TotalDataSize, result.Duration.Round(time.Millisecond),
	), nil
}

// RequestsListCaptured implements requests_list_captured.
func (h *Handlers) RequestsListCaptured(monitorID string) (string, error) {
	if monitorID == "" {
		return "", invalidArgument("monitor_id must not be empty")
	}
	summaries, err := h.Monitor.ListCaptured(monitorID)
	if err != nil {
		return "", err
	}

	out := fmt.Sprintf("Captured requests for %s (%d total):\n", monitorID, len(summaries))
	for _, s := range summaries {
		out += fmt.Sprintf("- %s %s -> %d (%dms, %d bytes)\n", s.Method, s.URL, s.StatusCode, s.DurationMS, s.RequestSize+s.ResponseSize)
	}
	return out, nil
}

// RequestsGetContent implements requests_get_content. Returns structured
// JSON rather than a human-readable string, since the payload can include
// saved-file references alongside inline bodies (spec §4.4).
func (h *Handlers) RequestsGetContent(ctx context.Context, monitorID, requestID string, includeBinary bool, saveRequestBodyTo, saveResponseBodyTo string) (string, error) {
	if monitorID == "" || requestID == "" {
		return "", invalidArgument("monitor_id and request_id must not be empty")
	}

	result, err := h.Monitor.GetContent(ctx, monitorID, requestID, includeBinary, saveRequestBodyTo, saveResponseBodyTo)
	if err != nil {
		if result == nil {
			return "", err
		}
		// A save failure partway through still leaves assembled headers/
		// body content worth returning; serialize it alongside the error
		// instead of discarding it (spec §7).
		return marshalWithError(result, err)
	}

	out, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// marshalWithError serializes partial into a JSON object and adds an
// "error" field describing cause, for tools whose result must stay
// structured even on partial failure (spec §7).
func marshalWithError(partial any, cause error) (string, error) {
	fields, err := json.Marshal(partial)
	if err != nil {
		return "", err
	}
	var merged map[string]any
	if err := json.Unmarshal(fields, &merged); err != nil {
		return "", err
	}
	merged["error"] = cause.Error()
	out, err := json.Marshal(merged)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
