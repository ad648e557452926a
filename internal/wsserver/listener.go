// Package wsserver implements the WS Listener (spec §4.1): it accepts at
// most one browser-extension WebSocket connection at a time, runs the
// serialized write path and the read loop, and routes inbound frames to
// the Dispatcher (responses/errors) or the notification handler (unsolicited
// requests.* frames from the extension, consumed by the Monitor Registry).
package wsserver

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/foxmcp/bridge/internal/dispatcher"
	"github.com/foxmcp/bridge/internal/envelope"
)

// writeTimeout bounds how long a single frame write may block before the
// connection is treated as broken (spec §4.1 "Write path").
const writeTimeout = 5 * time.Second

// outboxCapacity bounds backpressure on the per-connection outbound queue.
const outboxCapacity = 64

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// NotificationHandler receives unsolicited extension frames that carry
// monitor capture events (spec §4.6).
type NotificationHandler interface {
	HandleNotification(e *envelope.Envelope)
}

// Listener accepts the single extension WebSocket connection on a loopback
// address and bridges it to the Dispatcher.
type Listener struct {
	dispatcher   *dispatcher.Dispatcher
	notifier     NotificationHandler
	logger       *slog.Logger
	pingInterval time.Duration

	httpServer *http.Server
	netListen  net.Listener

	currentMu sync.RWMutex
	current   *connHandle

	// onDisconnect, if set, runs after every extension disconnection (after
	// the Dispatcher has already failed its waiters). The Monitor Registry
	// uses this to invalidate all sessions (spec §4.6 "If the extension
	// disconnects mid-session, all sessions are invalidated").
	onDisconnect func()
}

// New creates a Listener. pingInterval of 0 disables liveness pings.
func New(d *dispatcher.Dispatcher, notifier NotificationHandler, logger *slog.Logger, pingInterval time.Duration) *Listener {
	return &Listener{
		dispatcher:   d,
		notifier:     notifier,
		logger:       logger,
		pingInterval: pingInterval,
	}
}

// OnDisconnect registers fn to run after each extension disconnection.
func (l *Listener) OnDisconnect(fn func()) {
	l.onDisconnect = fn
}

// Start binds to host:port (loopback only; the caller is responsible for
// having rewritten a non-loopback host per spec §6) and begins accepting
// the extension WebSocket at /ws. Returns the bound port.
func (l *Listener) Start(host string, port int) (int, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", l.handleWebSocket)

	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return 0, fmt.Errorf("wsserver: listen on %s: %w", addr, err)
	}
	l.netListen = ln

	l.httpServer = &http.Server{Handler: mux}
	go func() {
		if err := l.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			l.logger.Error("ws listener stopped", "error", err)
		}
	}()

	return ln.Addr().(*net.TCPAddr).Port, nil
}

// Stop gracefully shuts down the listener and closes any active connection.
func (l *Listener) Stop(ctx context.Context) error {
	l.currentMu.RLock()
	current := l.current
	l.currentMu.RUnlock()
	if current != nil {
		current.close()
	}
	if l.httpServer == nil {
		return nil
	}
	return l.httpServer.Shutdown(ctx)
}

// IsConnected reports whether an extension is currently attached.
func (l *Listener) IsConnected() bool {
	return l.dispatcher.IsConnected()
}

func (l *Listener) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		l.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	ch := newConnHandle(conn, l.logger)

	// New-connection policy (spec §4.1): gracefully close any incumbent
	// before promoting the new connection. The old one may be a stale
	// half-open socket; do not reject the new arrival on its account.
	// current and the Dispatcher's connection are swapped together under
	// one lock so two near-simultaneous handshakes can't both think
	// they're replacing the same incumbent and leave l.current pointing
	// at a different connection than the Dispatcher's writer (spec §8
	// invariant 3: at most one extension connection is Active at any
	// instant). Waiters parked on the incumbent fail with disconnected, and
	// onDisconnect runs, before the new connection is adopted.
	l.currentMu.Lock()
	incumbent := l.current
	if incumbent != nil {
		l.logger.Info("replacing existing extension connection")
		incumbent.close()
		l.dispatcher.Disconnect()
		if l.onDisconnect != nil {
			l.onDisconnect()
		}
	}
	l.current = ch
	l.dispatcher.Connect(ch)
	l.currentMu.Unlock()

	l.logger.Info("extension connected", "remote", r.RemoteAddr)

	go ch.writeLoop()
	if l.pingInterval > 0 {
		go ch.pingLoop(l.pingInterval)
	}

	l.readLoop(ch)
}

func (l *Listener) readLoop(ch *connHandle) {
	defer func() {
		ch.close()

		l.currentMu.Lock()
		stillCurrent := l.current == ch
		if stillCurrent {
			l.current = nil
			l.dispatcher.Disconnect()
			if l.onDisconnect != nil {
				l.onDisconnect()
			}
		}
		l.currentMu.Unlock()
		l.logger.Info("extension disconnected")
	}()

	for {
		_, data, err := ch.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				l.logger.Warn("websocket read error", "error", err)
			}
			return
		}

		e, err := envelope.Parse(data)
		if err != nil {
			l.logger.Warn("dropping unparseable frame", "error", err)
			continue
		}

		l.route(e)
	}
}

func (l *Listener) route(e *envelope.Envelope) {
	switch e.Type {
	case envelope.TypeResponse, envelope.TypeError:
		if !l.dispatcher.Deliver(e) {
			l.logger.Debug("discarding orphan response", "id", e.ID, "action", e.Action)
		}
	case envelope.TypeRequest:
		if e.IsNotification() {
			if l.notifier != nil {
				l.notifier.HandleNotification(e)
			}
			return
		}
		l.logger.Warn("dropping unexpected request frame from extension", "action", e.Action)
	}
}
