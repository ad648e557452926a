package monitor

import "time"

// maxCaptures bounds a session's capture buffer; the oldest entry is
// evicted when a new one arrives past this cap (spec §4.6 "Capture").
const maxCaptures = 500

// Summary is the metadata the extension reports per observed request.
type Summary struct {
	RequestID    string `json:"request_id"`
	Timestamp    string `json:"timestamp"`
	URL          string `json:"url"`
	Method       string `json:"method"`
	StatusCode   int    `json:"status_code"`
	DurationMS   int64  `json:"duration_ms"`
	RequestSize  int64  `json:"request_size"`
	ResponseSize int64  `json:"response_size"`
	ContentType  string `json:"content_type"`
	TabID        int    `json:"tab_id"`
}

// StartResult is returned by StartMonitoring.
type StartResult struct {
	MonitorID string    `json:"monitor_id"`
	Status    string    `json:"status"`
	StartedAt time.Time `json:"started_at"`
}

// StopResult is returned by StopMonitoring.
type StopResult struct {
	MonitorID             string        `json:"monitor_id"`
	Duration              time.Duration `json:"duration"`
	TotalRequestsCaptured int           `json:"total_requests_captured"`
	TotalDataSize         int64         `json:"total_data_size"`
}

// ContentResult is returned by GetContent.
type ContentResult struct {
	RequestID         string            `json:"request_id"`
	Headers           map[string]string `json:"headers,omitempty"`
	RequestBody       string            `json:"request_body,omitempty"`
	ResponseBody      string            `json:"response_body,omitempty"`
	RequestBodySaved  string            `json:"request_body_saved_to,omitempty"`
	ResponseBodySaved string            `json:"response_body_saved_to,omitempty"`
}

// captureNotification is the shape of data on an unsolicited
// requests.captured frame from the extension.
type captureNotification struct {
	MonitorID string  `json:"monitor_id"`
	Summary   Summary `json:"summary"`
}
