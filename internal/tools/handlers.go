// Package tools implements the Tool Handlers (spec §4.4): one handler per
// MCP tool, each validating its arguments against a closed schema,
// constructing an action request, invoking the Dispatcher, and formatting
// the result for the MCP client.
package tools

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/foxmcp/bridge/internal/bridgeerr"
	"github.com/foxmcp/bridge/internal/dispatcher"
	"github.com/foxmcp/bridge/internal/envelope"
	"github.com/foxmcp/bridge/internal/monitor"
	"github.com/foxmcp/bridge/internal/scripts"
)

// caller is the subset of *dispatcher.Dispatcher the handlers need; defined
// here, mirroring the narrow-interface pattern used elsewhere in this
// codebase for testability, so tests can substitute a fake.
type caller interface {
	Call(ctx context.Context, action envelope.Action, data any, timeout time.Duration) (json.RawMessage, error)
}

// Handlers bundles every dependency a Tool Handler needs: the Dispatcher
// for extension round trips, the Script Executor for predefined scripts,
// and the Monitor Registry for request observation.
type Handlers struct {
	Dispatcher caller
	Scripts    *scripts.Executor
	Monitor    *monitor.Registry
	Logger     *slog.Logger
}

// New builds a Handlers bundle.
func New(d *dispatcher.Dispatcher, exec *scripts.Executor, mon *monitor.Registry, logger *slog.Logger) *Handlers {
	return &Handlers{Dispatcher: d, Scripts: exec, Monitor: mon, Logger: logger}
}

// invalidArgument is a convenience constructor mirroring spec §7.
func invalidArgument(msg string) error {
	return bridgeerr.New(bridgeerr.KindInvalidArgument, msg)
}
