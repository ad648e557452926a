package tools

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/foxmcp/bridge/internal/bridgeerr"
	"github.com/foxmcp/bridge/internal/envelope"
)

// screenshotTimeout is longer than the default call timeout because
// capturing and encoding a visible tab can take longer than a simple round
// trip (spec §4.2 "Long-running actions ... may specify larger timeouts").
const screenshotTimeout = 30 * time.Second

// TabsCaptureScreenshot implements tabs_capture_screenshot.
func (h *Handlers) TabsCaptureScreenshot(ctx context.Context, filename string, windowID *int, format string, quality int) (string, error) {
	if format == "" {
		format = "png"
	}
	if format != "png" && format != "jpeg" {
		return "", invalidArgument("format must be png or jpeg")
	}
	if quality < 0 || quality > 100 {
		return "", invalidArgument("quality must be between 0 and 100")
	}

	data := map[string]any{"format": format, "quality": quality}
	if windowID != nil {
		data["windowId"] = *windowID
	}

	raw, err := h.Dispatcher.Call(ctx, envelope.ActionTabsCaptureScreenshot, data, screenshotTimeout)
	if err != nil {
		return "", err
	}

	var dataURL string
	if err := decodeInto(raw, &dataURL); err != nil {
		return "", err
	}

	if filename == "" {
		return dataURL, nil
	}

	path := withExtension(filename, format)
	payload, err := decodeDataURL(dataURL)
	if err != nil {
		return "", bridgeerr.Wrap(bridgeerr.KindIOError, "failed to decode screenshot data", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", bridgeerr.Wrap(bridgeerr.KindIOError, "failed to write screenshot file", err)
	}
	return fmt.Sprintf("Screenshot saved to %s", path), nil
}

// withExtension appends the format-appropriate suffix unless filename
// already carries it (spec §8 boundary behavior: "shot" + png -> "shot.png",
// "shot.png" stays "shot.png").
func withExtension(filename, format string) string {
	ext := "." + format
	if strings.HasSuffix(strings.ToLower(filename), ext) {
		return filename
	}
	return filename + ext
}

func decodeDataURL(dataURL string) ([]byte, error) {
	idx := strings.Index(dataURL, ",")
	if idx < 0 {
		return nil, fmt.Errorf("not a data URL")
	}
	return base64.StdEncoding.DecodeString(dataURL[idx+1:])
}
