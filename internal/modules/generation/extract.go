package generation

import (
	"encoding/json"
	"strings"
)

// Extract pulls the first JSON object out of raw generator text. The
// whole reply is tried first, then the span between the first '{' and
// the last '}' to strip markdown fences and chatter. Returns nil when
// nothing parses; extraction never errors.
func Extract(text string) map[string]any {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(trimmed), &out); err == nil {
		return out
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start < 0 || end <= start {
		return nil
	}
	out = nil
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), &out); err != nil {
		return nil
	}
	return out
}
