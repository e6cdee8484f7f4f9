package services

import (
	"regexp"
	"strings"
)

var fencedBlockRe = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)```")

// ExtractJSONPayload pulls a single JSON document out of raw model output
// that may be wrapped in markdown fences or explanatory prose. It is a
// heuristic, not a parser: the result is not guaranteed to be valid JSON and
// the caller must handle parse failure downstream.
//
// Priority order: fenced code block interior, then the outermost array or
// object span (whichever delimiter appears first), then the trimmed input
// with stray fence markers removed.
func ExtractJSONPayload(raw string) string {
	if m := fencedBlockRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}

	objStart := strings.Index(raw, "{")
	arrStart := strings.Index(raw, "[")

	if arrStart != -1 && (objStart == -1 || arrStart < objStart) {
		if end := strings.LastIndex(raw, "]"); end > arrStart {
			return strings.TrimSpace(raw[arrStart : end+1])
		}
	}
	if objStart != -1 {
		if end := strings.LastIndex(raw, "}"); end > objStart {
			return strings.TrimSpace(raw[objStart : end+1])
		}
	}

	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}
