package copywriting

import (
	"bytes"
	"encoding/json"
	"strings"
)

// NormalizeFeatures turns the raw features value into a FeatureList.
//
// An array is taken element by element and never re-split. A string is split
// on line breaks. Any other JSON value is read as its literal text and split
// like a string; absent or null means no text. In every case lines are
// trimmed and empty ones dropped. ErrNoFeatures is returned when nothing is left.
func NormalizeFeatures(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)

	var lines []string
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		// nothing to read
	case raw[0] == '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, ErrNoFeatures
		}
		lines = make([]string, 0, len(items))
		for _, item := range items {
			lines = appendLine(lines, literalText(item))
		}
	default:
		for _, line := range strings.Split(literalText(raw), "\n") {
			lines = appendLine(lines, line)
		}
	}

	if len(lines) == 0 {
		return nil, ErrNoFeatures
	}
	return lines, nil
}

func appendLine(lines []string, line string) []string {
	if line = strings.TrimSpace(line); line != "" {
		lines = append(lines, line)
	}
	return lines
}

// literalText returns the decoded value of a JSON string, or the compact JSON
// text of anything else. null reads as empty.
func literalText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
