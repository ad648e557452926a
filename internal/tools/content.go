package tools

import (
	"context"
	"encoding/json"

	"github.com/foxmcp/bridge/internal/bridgeerr"
	"github.com/foxmcp/bridge/internal/dispatcher"
	"github.com/foxmcp/bridge/internal/envelope"
)

// ContentGetText implements content_get_text.
func (h *Handlers) ContentGetText(ctx context.Context, tabID int, maxLength *int) (string, error) {
	if maxLength != nil && *maxLength < 0 {
		return "", invalidArgument("max_length must not be negative")
	}

	raw, err := h.Dispatcher.Call(ctx, envelope.ActionContentGetText, map[string]any{"tabId": tabID}, dispatcher.DefaultTimeout)
	if err != nil {
		return "", err
	}
	var text string
	if err := decodeInto(raw, &text); err != nil {
		return "", err
	}

	if maxLength != nil {
		if *maxLength == 0 {
			return "", nil
		}
		if runes := []rune(text); len(runes) > *maxLength {
			text = string(runes[:*maxLength])
		}
	}
	return text, nil
}

// ContentGetHTML implements content_get_html.
func (h *Handlers) ContentGetHTML(ctx context.Context, tabID int) (string, error) {
	raw, err := h.Dispatcher.Call(ctx, envelope.ActionContentGetHTML, map[string]any{"tabId": tabID}, dispatcher.DefaultTimeout)
	if err != nil {
		return "", err
	}
	var html string
	if err := decodeInto(raw, &html); err != nil {
		return "", err
	}
	return html, nil
}

// ContentExecuteScript implements content_execute_script. The script is
// sent to the extension exactly as received; the core does not rewrite
// user code (spec §9 open question) and returns whatever the extension
// reports, serialized as JSON.
func (h *Handlers) ContentExecuteScript(ctx context.Context, tabID int, script string) (string, error) {
	if script == "" {
		return "", invalidArgument("script must not be empty")
	}

	raw, err := h.Dispatcher.Call(ctx, envelope.ActionContentExecuteScript, map[string]any{
		"tabId":  tabID,
		"script": script,
	}, dispatcher.DefaultTimeout)
	if err != nil {
		return "", err
	}
	return rawToJSONString(raw)
}

// ContentExecutePredefined implements content_execute_predefined: it runs
// the Script Executor locally to produce a JavaScript snippet, then issues
// content.execute_script with the produced code (spec §4.5 "Composition").
// Failures of either step propagate with their origin identified.
func (h *Handlers) ContentExecutePredefined(ctx context.Context, tabID int, scriptName, scriptArgs string) (string, error) {
	if scriptName == "" {
		return "", invalidArgument("script_name must not be empty")
	}

	code, err := h.Scripts.Run(ctx, scriptName, scriptArgs)
	if err != nil {
		return "", bridgeerr.Wrap(bridgeerr.KindOf(err), "predefined script execution failed", err)
	}

	out, err := h.ContentExecuteScript(ctx, tabID, code)
	if err != nil {
		return "", bridgeerr.Wrap(bridgeerr.KindOf(err), "predefined script injection failed", err)
	}
	return out, nil
}

func rawToJSONString(raw json.RawMessage) (string, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", bridgeerr.Wrap(bridgeerr.KindExtensionError, "failed to parse script result", err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return "", bridgeerr.Wrap(bridgeerr.KindExtensionError, "failed to format script result", err)
	}
	return string(out), nil
}
