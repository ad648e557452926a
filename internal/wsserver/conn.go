package wsserver

import (
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/foxmcp/bridge/internal/envelope"
)

// connHandle wraps a single WebSocket connection with a serialized write
// path: exactly one goroutine ever calls conn.WriteMessage, draining an
// outbound queue (spec §4.1, §5 "write path is serialized").
type connHandle struct {
	conn   *websocket.Conn
	logger *slog.Logger
	outbox chan *envelope.Envelope

	closeOnce sync.Once
	closed    chan struct{}
}

func newConnHandle(conn *websocket.Conn, logger *slog.Logger) *connHandle {
	return &connHandle{
		conn:   conn,
		logger: logger,
		outbox: make(chan *envelope.Envelope, outboxCapacity),
		closed: make(chan struct{}),
	}
}

// Send enqueues e for the writer goroutine. It satisfies
// dispatcher.FrameSender.
func (c *connHandle) Send(e *envelope.Envelope) error {
	select {
	case c.outbox <- e:
		return nil
	case <-c.closed:
		return errClosed
	case <-time.After(writeTimeout):
		// A full outbox means the writer is stuck; treat the connection as
		// broken rather than blocking the caller indefinitely.
		c.close()
		return errClosed
	}
}

func (c *connHandle) writeLoop() {
	for {
		select {
		case e := <-c.outbox:
			data, err := e.Marshal()
			if err != nil {
				c.logger.Error("failed to marshal outbound frame", "error", err)
				continue
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				c.logger.Error("websocket write failed", "error", err)
				c.close()
				return
			}
		case <-c.closed:
			return
		}
	}
}

func (c *connHandle) pingLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			ping, err := envelope.NewRequest(pingID(), string(envelope.ActionPing), map[string]any{})
			if err != nil {
				continue
			}
			if err := c.Send(ping); err != nil {
				return
			}
		case <-c.closed:
			return
		}
	}
}

func (c *connHandle) close() {
	c.closeOnce.Do(func() {
		close(c.closed)
		c.conn.Close()
	})
}

var errClosed = &connClosedError{}

type connClosedError struct{}

func (*connClosedError) Error() string { return "wsserver: connection closed" }

var pingCounter atomic.Int64

// pingID mints a distinct id per liveness ping; these expect no response
// from a tool caller and are fire-and-forget, so collisions are harmless,
// but distinct ids keep logs readable.
func pingID() string {
	n := pingCounter.Add(1)
	return "ping-" + time.Now().UTC().Format("150405.000000") + "-" + strconv.FormatInt(n, 10)
}
