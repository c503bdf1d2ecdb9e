// Package genai turns free-form model output into validated domain records.
//
// The generation provider frequently wraps JSON in markdown fences, leaves
// control characters in the stream, or emits multi-line prose inside a single
// string value without escaping it. Everything in this package exists to
// recover a parseable, validated document from that output, retrying the
// generation a bounded number of times when recovery fails.
package genai

import (
	"strings"
)

// Sanitize normalizes raw model output into a string that has a chance of
// parsing as JSON. It is pure and total: when nothing is recoverable it
// returns a best-effort string for the extractor to reject downstream.
//
// Steps, in order: strip a wrapping markdown code fence, drop non-printable
// control characters (tab and newline are kept for the next step), then
// escape raw newlines and tabs that occur inside an open string literal.
func Sanitize(raw string) string {
	s := stripFence(raw)
	s = stripControl(s)
	return escapeInsideStrings(s)
}

// stripFence removes a leading ``` or ```json fence line and a trailing ```
// fence, if present.
func stripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	} else {
		// A single fence line with no content.
		return ""
	}
	if end := strings.LastIndex(s, "```"); end >= 0 {
		s = s[:end]
	}
	return strings.TrimSpace(s)
}

// stripControl removes control characters below the printable range, keeping
// tab and newline, which escapeInsideStrings handles. Carriage returns are
// dropped here so CRLF sequences collapse to a plain newline.
func stripControl(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' || (r >= 0x20 && r != 0x7f) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeInsideStrings rewrites raw newline and tab characters that occur
// inside a double-quoted JSON string into the literal escape sequences \n
// and \t. A newline between an odd and the next odd count of unescaped
// quotes is part of a string value, not document structure.
func escapeInsideStrings(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false
	for _, r := range s {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		switch r {
		case '\\':
			if inString {
				escaped = true
			}
			b.WriteRune(r)
		case '"':
			inString = !inString
			b.WriteRune(r)
		case '\n':
			if inString {
				b.WriteString(`\n`)
			} else {
				b.WriteRune(r)
			}
		case '\t':
			if inString {
				b.WriteString(`\t`)
			} else {
				b.WriteRune(r)
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeEverywhere escapes every raw carriage return, newline and tab in s,
// regardless of string context. Used by the extraction fallback once the
// candidate has been isolated to object boundaries, where any remaining raw
// whitespace control character can only live inside a value.
func escapeEverywhere(s string) string {
	replacer := strings.NewReplacer(
		"\r\n", `\n`,
		"\n", `\n`,
		"\r", `\n`,
		"\t", `\t`,
	)
	return replacer.Replace(s)
}
