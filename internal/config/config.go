// Package config parses the bridge's CLI surface: startup parameters that
// affect behavior, kept deliberately minimal (spec §10 "Network boundary").
package config

import (
	"flag"
	"log/slog"
	"os"
)

const (
	// DefaultWSPort is the extension WebSocket listener's default port.
	DefaultWSPort = 8765
	// DefaultMCPPort is the MCP HTTP endpoint's default port.
	DefaultMCPPort = 3000
	// LoopbackHost is the only host any listener is ever bound to.
	LoopbackHost = "127.0.0.1"

	// ScriptsEnvVar names the environment variable that configures the
	// Script Executor's directory. Unset disables the feature.
	ScriptsEnvVar = "FOXMCP_EXT_SCRIPTS"
)

// Config is the fully resolved set of startup parameters.
type Config struct {
	Host       string
	Port       int
	MCPPort    int
	NoMCP      bool
	LogLevel   slog.Level
	ScriptsDir string
}

// Parse reads args (typically os.Args[1:]) and the process environment into
// a Config. A non-loopback --host is rewritten to loopback with a warning
// rather than rejected outright, per spec: "external binding is rejected by
// construction."
func Parse(args []string) (*Config, []string) {
	fs := flag.NewFlagSet("foxmcp-bridge", flag.ExitOnError)
	host := fs.String("host", LoopbackHost, "bind host (forced to loopback)")
	port := fs.Int("port", DefaultWSPort, "extension WebSocket port")
	mcpPort := fs.Int("mcp-port", DefaultMCPPort, "MCP HTTP endpoint port")
	noMCP := fs.Bool("no-mcp", false, "disable the MCP HTTP endpoint")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.Parse(args)

	var warnings []string
	resolvedHost := *host
	if resolvedHost != LoopbackHost && resolvedHost != "localhost" {
		warnings = append(warnings, "non-loopback --host "+resolvedHost+" rewritten to "+LoopbackHost)
		resolvedHost = LoopbackHost
	}

	level := slog.LevelInfo
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return &Config{
		Host:       resolvedHost,
		Port:       *port,
		MCPPort:    *mcpPort,
		NoMCP:      *noMCP,
		LogLevel:   level,
		ScriptsDir: os.Getenv(ScriptsEnvVar),
	}, warnings
}
