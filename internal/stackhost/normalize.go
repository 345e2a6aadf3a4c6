package stackhost

import (
	"encoding/json"
	"regexp"
	"strings"
)

// htmlPreviewLength bounds the tag-stripped page text carried inside an
// HTMLResponseError.
const htmlPreviewLength = 200

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// normalizeBody runs the response-normalization pipeline on a raw backend
// body. The backend is inconsistent: it returns well-formed JSON, bare
// strings (including double-encoded JSON), and occasionally unquoted
// pseudo-JSON object literals. This is the single place that sniffing
// happens; handlers never inspect raw bodies themselves.
//
// Pipeline order:
//  1. empty body normalizes to an empty object, so "no content" callers
//     need no nil-checks
//  2. a valid JSON body passes through as its parsed value
//  3. a JSON string body is reparsed strictly; if the inner value is JSON
//     it replaces the string
//  4. an unparseable string that contains a colon but does not open an
//     object or array is classified as a malformed object literal
//  5. any other bare string (e.g. an unquoted account identifier) is
//     returned as-is
func normalizeBody(raw []byte) (interface{}, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return map[string]interface{}{}, nil
	}

	var value interface{}
	if err := json.Unmarshal([]byte(trimmed), &value); err != nil {
		return normalizeString(trimmed)
	}

	if s, ok := value.(string); ok && s != "" {
		return normalizeString(s)
	}

	return value, nil
}

// normalizeString handles bodies that are (or decode to) a bare string.
func normalizeString(s string) (interface{}, error) {
	var inner interface{}
	if err := json.Unmarshal([]byte(s), &inner); err == nil {
		return inner, nil
	}

	if looksLikeObjectLiteral(s) {
		return nil, &ResponseFormatError{Snippet: snippet(s)}
	}

	return s, nil
}

// looksLikeObjectLiteral reports whether a string resembles the backend's
// unquoted pseudo-JSON output ("key: value, other: thing") rather than a
// plain token or message.
func looksLikeObjectLiteral(s string) bool {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return false
	}
	return strings.Contains(trimmed, ":")
}

// isHTMLContentType reports whether a Content-Type header declares HTML.
func isHTMLContentType(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "text/html")
}

// htmlPreview strips tags from an HTML body and returns a bounded,
// whitespace-collapsed text preview for diagnostics.
func htmlPreview(body []byte) string {
	text := tagPattern.ReplaceAllString(string(body), " ")
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > htmlPreviewLength {
		text = text[:htmlPreviewLength]
	}
	return text
}

func snippet(s string) string {
	if len(s) > 120 {
		return s[:120]
	}
	return s
}
