package kubectl

import (
	"encoding/json"
	"strings"
)

// outputKey is the field name used when raw output is wrapped as-is.
const outputKey = "output"

// NormalizeOutput converts raw kubectl stdout into a structured payload.
// Output that looks like JSON (common with -o json) is parsed; anything else,
// including output that fails to parse, is wrapped verbatim under the
// "output" key. Empty output normalizes to an empty-string record, not an
// error.
func NormalizeOutput(stdout string) any {
	trimmed := strings.TrimSpace(stdout)
	if trimmed == "" {
		return map[string]any{outputKey: ""}
	}

	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var parsed any
		if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
			return parsed
		}
	}

	return map[string]any{outputKey: stdout}
}
