// Package monitor implements the Monitor Registry (spec §4.6): tracking
// live request-monitoring sessions initiated by the extension, storing
// captured request metadata and, on demand, full content.
package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/foxmcp/bridge/internal/bridgeerr"
	"github.com/foxmcp/bridge/internal/dispatcher"
	"github.com/foxmcp/bridge/internal/envelope"
)

// caller abstracts the Dispatcher so tests can substitute a fake.
type caller interface {
	Call(ctx context.Context, action envelope.Action, data any, timeout time.Duration) (json.RawMessage, error)
}

// session is a single in-memory monitoring session.
type session struct {
	id          string
	urlPatterns []string
	options     map[string]any
	tabID       *int
	startedAt   time.Time

	mu        sync.Mutex
	summaries []Summary
}

func (s *session) append(sum Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries = append(s.summaries, sum)
	if len(s.summaries) > maxCaptures {
		// Evict the oldest entry; preserves relative arrival order of the
		// rest (spec §8 invariant 5).
		s.summaries = s.summaries[len(s.summaries)-maxCaptures:]
	}
}

func (s *session) list() []Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Summary, len(s.summaries))
	copy(out, s.summaries)
	return out
}

func (s *session) totalDataSize() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, sm := range s.summaries {
		total += sm.RequestSize + sm.ResponseSize
	}
	return total
}

func (s *session) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.summaries)
}

// Registry tracks all active monitor sessions.
type Registry struct {
	mu         sync.Mutex
	sessions   map[string]*session
	dispatcher caller
	logger     *slog.Logger
}

// New creates an empty Registry backed by d.
func New(d *dispatcher.Dispatcher, logger *slog.Logger) *Registry {
	return &Registry{
		sessions:   make(map[string]*session),
		dispatcher: d,
		logger:     logger,
	}
}

// StartMonitoring validates url patterns, mints a monitor id, tells the
// extension to begin capturing, and allocates the session record.
func (r *Registry) StartMonitoring(ctx context.Context, urlPatterns []string, options map[string]any, tabID *int) (*StartResult, error) {
	if len(urlPatterns) == 0 {
		return nil, bridgeerr.New(bridgeerr.KindInvalidArgument, "url_patterns must be a non-empty array")
	}
	for _, p := range urlPatterns {
		if p == "" {
			return nil, bridgeerr.New(bridgeerr.KindInvalidArgument, "url_patterns must not contain empty strings")
		}
	}

	id := uuid.NewString()

	payload := map[string]any{
		"monitor_id":   id,
		"url_patterns": urlPatterns,
		"options":      options,
	}
	if tabID != nil {
		payload["tab_id"] = *tabID
	}

	if _, err := r.dispatcher.Call(ctx, envelope.ActionRequestsStartMonitoring, payload, dispatcher.DefaultTimeout); err != nil {
		return nil, err
	}

	sess := &session{
		id:          id,
		urlPatterns: urlPatterns,
		options:     options,
		tabID:       tabID,
		startedAt:   time.Now(),
	}

	r.mu.Lock()
	r.sessions[id] = sess
	r.mu.Unlock()

	return &StartResult{MonitorID: id, Status: "active", StartedAt: sess.startedAt}, nil
}

// ListCaptured returns all summaries currently held for monitorID.
func (r *Registry) ListCaptured(monitorID string) ([]Summary, error) {
	sess, err := r.lookup(monitorID)
	if err != nil {
		return nil, err
	}
	return sess.list(), nil
}

// GetContent fetches full content for a captured request from the
// extension, optionally saving the request/response bodies to disk.
func (r *Registry) GetContent(ctx context.Context, monitorID, requestID string, includeBinary bool, saveRequestBodyTo, saveResponseBodyTo string) (*ContentResult, error) {
	if _, err := r.lookup(monitorID); err != nil {
		return nil, err
	}

	raw, err := r.dispatcher.Call(ctx, envelope.ActionRequestsGetContent, map[string]any{
		"monitor_id":     monitorID,
		"request_id":     requestID,
		"include_binary": includeBinary,
	}, dispatcher.DefaultTimeout)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Headers      map[string]string `json:"headers"`
		RequestBody  string            `json:"request_body"`
		ResponseBody string            `json:"response_body"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, bridgeerr.Wrap(bridgeerr.KindProtocolError, "failed to parse extension content response", err)
	}

	// result is returned alongside a non-nil error below if a save fails
	// partway through, so callers can still report whatever was already
	// assembled (spec §7: requests_get_content includes an error field
	// alongside what data could be assembled).
	result := &ContentResult{RequestID: requestID, Headers: parsed.Headers}

	if saveRequestBodyTo != "" && parsed.RequestBody != "" {
		if err := os.WriteFile(saveRequestBodyTo, []byte(parsed.RequestBody), 0o644); err != nil {
			return result, bridgeerr.Wrap(bridgeerr.KindIOError, "failed to save request body", err)
		}
		result.RequestBodySaved = saveRequestBodyTo
	} else {
		result.RequestBody = parsed.RequestBody
	}

	if saveResponseBodyTo != "" && parsed.ResponseBody != "" {
		if err := os.WriteFile(saveResponseBodyTo, []byte(parsed.ResponseBody), 0o644); err != nil {
			return result, bridgeerr.Wrap(bridgeerr.KindIOError, "failed to save response body", err)
		}
		result.ResponseBodySaved = saveResponseBodyTo
	} else {
		result.ResponseBody = parsed.ResponseBody
	}

	return result, nil
}

// StopMonitoring signals the extension to stop, waits briefly for trailing
// capture frames, removes the session, and returns final statistics.
func (r *Registry) StopMonitoring(ctx context.Context, monitorID string, drainTimeout time.Duration) (*StopResult, error) {
	sess, err := r.lookup(monitorID)
	if err != nil {
		return nil, err
	}

	if _, err := r.dispatcher.Call(ctx, envelope.ActionRequestsStopMonitoring, map[string]any{
		"monitor_id": monitorID,
	}, dispatcher.DefaultTimeout); err != nil {
		return nil, err
	}

	r.drain(sess, drainTimeout)

	r.mu.Lock()
	delete(r.sessions, monitorID)
	r.mu.Unlock()

	return &StopResult{
		MonitorID:             monitorID,
		Duration:              time.Since(sess.startedAt),
		TotalRequestsCaptured: sess.count(),
		TotalDataSize:         sess.totalDataSize(),
	}, nil
}

// drain polls briefly for trailing capture frames to arrive after the
// extension has been told to stop (spec §4.6 "a short sequence of polls is
// acceptable").
func (r *Registry) drain(sess *session, timeout time.Duration) {
	if timeout <= 0 {
		return
	}
	deadline := time.Now().Add(timeout)
	const pollInterval = 100 * time.Millisecond
	last := sess.count()
	for time.Now().Before(deadline) {
		time.Sleep(pollInterval)
		cur := sess.count()
		if cur == last {
			return
		}
		last = cur
	}
}

func (r *Registry) lookup(monitorID string) (*session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[monitorID]
	if !ok {
		return nil, bridgeerr.New(bridgeerr.KindNotFound, fmt.Sprintf("no monitor session %q", monitorID))
	}
	return sess, nil
}

// HandleNotification implements wsserver.NotificationHandler: it appends a
// capture summary reported by the extension to the matching session.
func (r *Registry) HandleNotification(e *envelope.Envelope) {
	var note captureNotification
	if err := e.DecodeData(&note); err != nil {
		r.logger.Warn("dropping malformed capture notification", "error", err)
		return
	}

	r.mu.Lock()
	sess, ok := r.sessions[note.MonitorID]
	r.mu.Unlock()
	if !ok {
		r.logger.Debug("capture notification for unknown monitor", "monitor_id", note.MonitorID)
		return
	}

	sess.append(note.Summary)
}

// Invalidate removes every active session (spec §4.6 "If the extension
// disconnects mid-session, all sessions are invalidated").
func (r *Registry) Invalidate() {
	r.mu.Lock()
	r.sessions = make(map[string]*session)
	r.mu.Unlock()
}
