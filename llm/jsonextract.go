package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSONObject is returned when the response contains no JSON object.
var ErrNoJSONObject = errors.New("no JSON object found in response")

// ExtractJSONObject parses the first JSON object found in raw model output
// and unmarshals it into v. Model responses are frequently wrapped in
// markdown code fences or surrounded by prose, so fence markers are stripped
// first, then the substring from the first '{' to the last '}' is parsed.
func ExtractJSONObject(raw string, v any) error {
	cleaned := stripCodeFences(raw)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return ErrNoJSONObject
	}

	return json.Unmarshal([]byte(cleaned[start:end+1]), v)
}

// stripCodeFences removes ``` fence markers, including a "json" language tag.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
