// Package dispatcher multiplexes many concurrent MCP tool invocations onto
// the single full-duplex WebSocket channel to the browser extension,
// correlating responses to callers by request id (spec §4.2).
package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/foxmcp/bridge/internal/bridgeerr"
	"github.com/foxmcp/bridge/internal/envelope"
)

// DefaultTimeout is the per-call deadline applied when a handler does not
// specify one (spec §4.2).
const DefaultTimeout = 15 * time.Second

// FrameSender delivers an outbound envelope to the extension. The WS
// Listener implements this; the Dispatcher never touches a socket directly.
type FrameSender interface {
	Send(e *envelope.Envelope) error
}

// waiter is a one-shot completion handle parked on a request id.
type waiter struct {
	action   envelope.Action
	resultCh chan result
	done     bool
}

type result struct {
	data json.RawMessage
	err  error
}

// Dispatcher owns the pending-call table and the extension connection slot.
// Both are shared resources requiring serialized access; this type is the
// single well-defined critical section for both, per spec §5.
type Dispatcher struct {
	mu      sync.Mutex
	waiters map[string]*waiter
	writer  FrameSender // nil when Idle
	logger  *slog.Logger
}

// New creates a Dispatcher with no extension connected (state Idle).
func New(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		waiters: make(map[string]*waiter),
		logger:  logger,
	}
}

// Connect transitions the Dispatcher to Active with the given frame sender.
// The caller (WS Listener) is responsible for having already closed any
// prior connection before calling this (graceful replacement, spec §4.1).
func (d *Dispatcher) Connect(w FrameSender) {
	d.mu.Lock()
	d.writer = w
	d.mu.Unlock()
}

// Disconnect transitions the Dispatcher to Idle and fails every outstanding
// waiter with KindDisconnected (spec §3 "Active->Idle" transition).
func (d *Dispatcher) Disconnect() {
	d.mu.Lock()
	d.writer = nil
	pending := d.waiters
	d.waiters = make(map[string]*waiter)
	d.mu.Unlock()

	for id, w := range pending {
		d.complete(w, id, result{err: bridgeerr.New(bridgeerr.KindDisconnected, "extension disconnected")})
	}
}

// IsConnected reports whether an extension is currently Active.
func (d *Dispatcher) IsConnected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writer != nil
}

// Call sends action/data to the extension and awaits a matching response,
// error, timeout or disconnect. Exactly one of those four outcomes is ever
// delivered (spec §8 invariant 2).
func (d *Dispatcher) Call(ctx context.Context, action envelope.Action, data any, timeout time.Duration) (json.RawMessage, error) {
	if !envelope.IsKnown(action) {
		return nil, bridgeerr.New(bridgeerr.KindInvalidArgument, fmt.Sprintf("unknown action %q", action))
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	id := uuid.NewString()

	d.mu.Lock()
	if d.writer == nil {
		d.mu.Unlock()
		return nil, bridgeerr.New(bridgeerr.KindDisconnected, "no extension connected")
	}
	w := &waiter{action: action, resultCh: make(chan result, 1)}
	d.waiters[id] = w
	writer := d.writer
	d.mu.Unlock()

	req, err := envelope.NewRequest(id, string(action), data)
	if err != nil {
		d.removeWaiter(id)
		return nil, bridgeerr.Wrap(bridgeerr.KindInvalidArgument, "failed to build request", err)
	}

	if err := writer.Send(req); err != nil {
		d.removeWaiter(id)
		return nil, bridgeerr.Wrap(bridgeerr.KindDisconnected, "failed to send request", err)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-w.resultCh:
		return res.data, res.err
	case <-timer.C:
		d.removeWaiter(id)
		return nil, bridgeerr.New(bridgeerr.KindTimeout, fmt.Sprintf("timed out waiting for %s after %s", action, timeout))
	case <-ctx.Done():
		d.removeWaiter(id)
		return nil, bridgeerr.Wrap(bridgeerr.KindTimeout, "call canceled", ctx.Err())
	}
}

// Deliver routes an inbound response/error envelope to the waiter matching
// its id, if any. It reports whether a waiter was found (the WS Listener
// uses this to decide between handing off to the Dispatcher and discarding
// a late/orphan reply).
func (d *Dispatcher) Deliver(e *envelope.Envelope) bool {
	d.mu.Lock()
	w, ok := d.waiters[e.ID]
	if ok {
		delete(d.waiters, e.ID)
	}
	d.mu.Unlock()

	if !ok {
		return false
	}

	if e.Action != "" && e.Action != string(w.action) {
		d.logger.Warn("response action mismatch", "id", e.ID, "expected", w.action, "got", e.Action)
	}

	var res result
	switch e.Type {
	case envelope.TypeError:
		ed := e.AsError()
		res = result{err: bridgeerr.New(bridgeerr.KindExtensionError, fmt.Sprintf("%s: %s", ed.Code, ed.Message))}
	default:
		res = result{data: e.Data}
	}
	d.complete(w, e.ID, res)
	return true
}

func (d *Dispatcher) complete(w *waiter, id string, res result) {
	if w.done {
		return
	}
	w.done = true
	select {
	case w.resultCh <- res:
	default:
		d.logger.Warn("duplicate completion discarded", "id", id)
	}
}

func (d *Dispatcher) removeWaiter(id string) {
	d.mu.Lock()
	delete(d.waiters, id)
	d.mu.Unlock()
}
