// Command foxmcp-bridge starts the FoxMCP bridge: a WebSocket listener for
// the browser extension and, unless disabled, an MCP HTTP endpoint that
// exposes every browser operation as an MCP tool.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/foxmcp/bridge/internal/config"
	"github.com/foxmcp/bridge/internal/dispatcher"
	"github.com/foxmcp/bridge/internal/mcpserver"
	"github.com/foxmcp/bridge/internal/monitor"
	"github.com/foxmcp/bridge/internal/scripts"
	"github.com/foxmcp/bridge/internal/tools"
	"github.com/foxmcp/bridge/internal/wsserver"
)

// pingInterval governs the WS Listener's liveness pings (spec §4.1).
const pingInterval = 30 * time.Second

func main() {
	cfg, warnings := config.Parse(os.Args[1:])

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	for _, w := range warnings {
		logger.Warn(w)
	}

	logger.Info("foxmcp-bridge starting", "ws_port", cfg.Port, "mcp_port", cfg.MCPPort, "mcp_enabled", !cfg.NoMCP)

	d := dispatcher.New(logger)
	mon := monitor.New(d, logger)
	exec := scripts.New(cfg.ScriptsDir)
	if !exec.Configured() {
		logger.Warn("FOXMCP_EXT_SCRIPTS not set; content_execute_predefined is disabled")
	}

	handlers := tools.New(d, exec, mon, logger)

	wsListener := wsserver.New(d, mon, logger, pingInterval)
	wsListener.OnDisconnect(mon.Invalidate)

	wsPort, err := wsListener.Start(cfg.Host, cfg.Port)
	if err != nil {
		logger.Error("failed to start websocket listener", "error", err)
		os.Exit(1)
	}
	logger.Info("extension websocket listening", "url", fmt.Sprintf("ws://%s:%d/ws", cfg.Host, wsPort))

	var mcpHTTPServer *http.Server
	if !cfg.NoMCP {
		mcpSrv := mcpserver.New(handlers, wsListener, logger)
		mcpHTTPServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.MCPPort),
			Handler: mcpSrv.Handler(),
		}
		go func() {
			logger.Info("mcp endpoint listening", "url", fmt.Sprintf("http://%s:%d", cfg.Host, cfg.MCPPort))
			if err := mcpHTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("mcp endpoint stopped", "error", err)
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := wsListener.Stop(shutdownCtx); err != nil {
		logger.Error("error stopping websocket listener", "error", err)
	}
	if mcpHTTPServer != nil {
		if err := mcpHTTPServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("error stopping mcp endpoint", "error", err)
		}
	}

	logger.Info("foxmcp-bridge stopped")
}
