package dispatcher

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/foxmcp/bridge/internal/bridgeerr"
	"github.com/foxmcp/bridge/internal/envelope"
)

type fakeSender struct {
	mu       sync.Mutex
	sent     []*envelope.Envelope
	sendFunc func(*envelope.Envelope) error
}

func (f *fakeSender) Send(e *envelope.Envelope) error {
	f.mu.Lock()
	f.sent = append(f.sent, e)
	f.mu.Unlock()
	if f.sendFunc != nil {
		return f.sendFunc(e)
	}
	return nil
}

func (f *fakeSender) last() *envelope.Envelope {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return nil
	}
	return f.sent[len(f.sent)-1]
}

func newTestDispatcher() *Dispatcher {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCallDisconnectedFailsFast(t *testing.T) {
	d := newTestDispatcher()
	_, err := d.Call(context.Background(), envelope.ActionTabsList, map[string]any{}, time.Second)
	if bridgeerr.KindOf(err) != bridgeerr.KindDisconnected {
		t.Fatalf("expected disconnected, got %v", err)
	}
}

func TestCallSuccess(t *testing.T) {
	d := newTestDispatcher()
	sender := &fakeSender{}
	d.Connect(sender)

	go func() {
		for {
			time.Sleep(time.Millisecond)
			if e := sender.last(); e != nil {
				resp, _ := envelope.NewRequest(e.ID, string(envelope.ActionTabsList), map[string]any{"ok": true})
				resp.Type = envelope.TypeResponse
				d.Deliver(resp)
				return
			}
		}
	}()

	data, err := d.Call(context.Background(), envelope.ActionTabsList, map[string]any{}, 2*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["ok"] != true {
		t.Fatalf("unexpected payload: %v", got)
	}
}

func TestCallTimeout(t *testing.T) {
	d := newTestDispatcher()
	d.Connect(&fakeSender{})

	_, err := d.Call(context.Background(), envelope.ActionTabsList, map[string]any{}, 20*time.Millisecond)
	if bridgeerr.KindOf(err) != bridgeerr.KindTimeout {
		t.Fatalf("expected timeout, got %v", err)
	}
}

func TestLateResponseAfterTimeoutDiscarded(t *testing.T) {
	d := newTestDispatcher()
	sender := &fakeSender{}
	d.Connect(sender)

	_, err := d.Call(context.Background(), envelope.ActionTabsList, map[string]any{}, 20*time.Millisecond)
	if bridgeerr.KindOf(err) != bridgeerr.KindTimeout {
		t.Fatalf("expected timeout, got %v", err)
	}

	e := sender.last()
	resp, _ := envelope.NewRequest(e.ID, string(envelope.ActionTabsList), map[string]any{})
	resp.Type = envelope.TypeResponse
	if d.Deliver(resp) {
		t.Fatal("expected late response to be discarded (no waiter)")
	}
}

func TestDisconnectFailsAllWaiters(t *testing.T) {
	d := newTestDispatcher()
	d.Connect(&fakeSender{})

	var wg sync.WaitGroup
	errs := make([]error, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := d.Call(context.Background(), envelope.ActionPing, map[string]any{}, 2*time.Second)
			errs[i] = err
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	d.Disconnect()
	wg.Wait()

	for i, err := range errs {
		if bridgeerr.KindOf(err) != bridgeerr.KindDisconnected {
			t.Fatalf("waiter %d: expected disconnected, got %v", i, err)
		}
	}
}

func TestDeliverMismatchedActionStillCompletes(t *testing.T) {
	d := newTestDispatcher()
	sender := &fakeSender{}
	d.Connect(sender)

	go func() {
		for {
			time.Sleep(time.Millisecond)
			if e := sender.last(); e != nil {
				resp, _ := envelope.NewRequest(e.ID, "tabs.active", map[string]any{})
				resp.Type = envelope.TypeResponse
				d.Deliver(resp)
				return
			}
		}
	}()

	_, err := d.Call(context.Background(), envelope.ActionTabsList, map[string]any{}, 2*time.Second)
	if err != nil {
		t.Fatalf("mismatched action should still complete the waiter: %v", err)
	}
}

func TestCallRejectsUnknownAction(t *testing.T) {
	d := newTestDispatcher()
	d.Connect(&fakeSender{})
	_, err := d.Call(context.Background(), envelope.Action("not.real"), nil, time.Second)
	if bridgeerr.KindOf(err) != bridgeerr.KindInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}
