package genai

import (
	"encoding/json"
	"strings"
)

// ExtractJSON recovers a JSON value from model output that may wrap the
// payload in prose or markdown fences. It first tries a direct parse of
// the whole string; on failure it parses the substring between the
// first '{' and the last '}'. Returns (nil, false) when no JSON can be
// recovered. Assumes a top-level object, not an array.
func ExtractJSON(text string) (any, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}

	var v any
	if err := json.Unmarshal([]byte(text), &v); err == nil {
		return v, true
	}

	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first == -1 || last == -1 || last <= first {
		return nil, false
	}

	if err := json.Unmarshal([]byte(text[first:last+1]), &v); err != nil {
		return nil, false
	}
	return v, true
}
