package genai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractionError reports that no parseable JSON document could be recovered
// from a generation response. Raw retains the original text for diagnostics.
type ExtractionError struct {
	Raw    string
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract json: %s", e.Reason)
}

// Extract recovers a JSON document from raw model output.
//
// Primary strategy: sanitize the whole text and parse it. Fallback, only on
// primary failure: isolate the substring between the first { and the last }
// of the original raw text, apply the aggressive escaping pass to it, and
// parse that. The fallback deliberately escapes control characters anywhere
// in the candidate: once the text is cut at object boundaries, raw newlines
// and tabs can only be value-internal.
//
// If both strategies fail, the returned error is an *ExtractionError; retry
// is the caller's responsibility.
func Extract(raw string) (json.RawMessage, error) {
	sanitized := Sanitize(raw)
	if json.Valid([]byte(sanitized)) {
		return json.RawMessage(sanitized), nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return nil, &ExtractionError{Raw: raw, Reason: "no JSON object found in response"}
	}

	candidate := stripControlKeepWhitespace(raw[start : end+1])
	candidate = escapeEverywhere(candidate)
	if json.Valid([]byte(candidate)) {
		return json.RawMessage(candidate), nil
	}

	return nil, &ExtractionError{Raw: raw, Reason: "response is not valid JSON after recovery"}
}

// stripControlKeepWhitespace drops control characters except newline, tab and
// carriage return, which escapeEverywhere converts to escape sequences.
func stripControlKeepWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' || r == '\r' || (r >= 0x20 && r != 0x7f) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
