// Package scripts implements the Script Executor (spec §4.5): it resolves a
// named script inside a configured directory and runs it, returning its
// stdout as a JavaScript snippet to be injected into a page.
package scripts

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/foxmcp/bridge/internal/bridgeerr"
)

// Timeout bounds a single script invocation (spec §4.5 "Execution contract").
const Timeout = 30 * time.Second

var validName = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Executor resolves and runs predefined scripts confined to Dir.
type Executor struct {
	// Dir is the absolute path named by FOXMCP_EXT_SCRIPTS. An empty Dir
	// means the feature is disabled (spec §4.5 precondition 1).
	Dir string
}

// New builds an Executor for the given configured directory (may be empty).
func New(dir string) *Executor {
	return &Executor{Dir: dir}
}

// Configured reports whether FOXMCP_EXT_SCRIPTS was set.
func (e *Executor) Configured() bool {
	return e.Dir != ""
}

// Run executes scriptName with the decoded scriptArgs (a JSON array of
// strings, or "" for no arguments) and returns its stdout decoded as UTF-8.
//
// Every precondition of spec §4.5 is checked in order; the first violation
// short-circuits before any filesystem access beyond what is needed to
// check it, and before any child process is spawned (spec §8 invariant 4).
func (e *Executor) Run(ctx context.Context, scriptName, scriptArgs string) (string, error) {
	if !e.Configured() {
		return "", bridgeerr.New(bridgeerr.KindNotConfigured, "FOXMCP_EXT_SCRIPTS is not set")
	}

	if !validName.MatchString(scriptName) {
		return "", bridgeerr.New(bridgeerr.KindInvalidName, "script_name contains characters outside [A-Za-z0-9._-]")
	}
	if strings.Contains(scriptName, "..") {
		return "", bridgeerr.New(bridgeerr.KindInvalidName, "script_name contains '..'")
	}

	dirReal, err := filepath.EvalSymlinks(e.Dir)
	if err != nil {
		return "", bridgeerr.Wrap(bridgeerr.KindNotConfigured, "FOXMCP_EXT_SCRIPTS does not resolve", err)
	}
	candidate := filepath.Join(e.Dir, scriptName)

	resolved, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		return "", bridgeerr.Wrap(bridgeerr.KindNotFound, "script not found", err)
	}

	// Containment check against the real, absolute directory path: a
	// symlink inside Dir that escapes it must not be followed out.
	rel, err := filepath.Rel(dirReal, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", bridgeerr.New(bridgeerr.KindInvalidName, "script_name escapes the configured directory")
	}

	info, err := stat(resolved)
	if err != nil {
		return "", bridgeerr.Wrap(bridgeerr.KindNotFound, "script not found", err)
	}
	if info.IsDir() {
		return "", bridgeerr.New(bridgeerr.KindNotFound, "script_name refers to a directory")
	}
	if !isExecutable(info) {
		return "", bridgeerr.New(bridgeerr.KindNotExecutable, "script is not executable")
	}

	args, err := decodeArgs(scriptArgs)
	if err != nil {
		return "", err
	}

	runCtx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, resolved, args...)
	cmd.Dir = dirReal
	cmd.Stdin = nil

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", bridgeerr.Wrap(bridgeerr.KindExecutionFailed, strings.TrimSpace(stderr.String()), err)
	}

	return stdout.String(), nil
}

func decodeArgs(scriptArgs string) ([]string, error) {
	if scriptArgs == "" {
		return nil, nil
	}
	var args []string
	if err := json.Unmarshal([]byte(scriptArgs), &args); err != nil {
		return nil, bridgeerr.Wrap(bridgeerr.KindInvalidArgs, "script_args must be a JSON array of strings", err)
	}
	return args, nil
}
