package stackhost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBody(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected interface{}
	}{
		{
			name:     "well-formed object passes through",
			raw:      `{"name":"example.com","active":true}`,
			expected: map[string]interface{}{"name": "example.com", "active": true},
		},
		{
			name:     "array passes through",
			raw:      `[1,2,3]`,
			expected: []interface{}{float64(1), float64(2), float64(3)},
		},
		{
			name:     "number passes through",
			raw:      `42`,
			expected: float64(42),
		},
		{
			name:     "double-encoded JSON string is reparsed",
			raw:      `"{\"id\":\"abc\"}"`,
			expected: map[string]interface{}{"id": "abc"},
		},
		{
			name:     "empty body normalizes to empty object",
			raw:      "",
			expected: map[string]interface{}{},
		},
		{
			name:     "whitespace-only body normalizes to empty object",
			raw:      "  \n\t",
			expected: map[string]interface{}{},
		},
		{
			name:     "bare token is returned as-is",
			raw:      `0af25dd8-9f45-4ea2-b2c8-75b1c1f2a0de`,
			expected: "0af25dd8-9f45-4ea2-b2c8-75b1c1f2a0de",
		},
		{
			name:     "quoted plain string without colon stays a string",
			raw:      `"all good"`,
			expected: "all good",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := normalizeBody([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestNormalizeBodyObjectLiteral(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unquoted object literal", `result: ok, count: 3`},
		{"quoted object literal", `"error: subscription required"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalizeBody([]byte(tt.raw))
			require.Error(t, err)

			var formatErr *ResponseFormatError
			require.ErrorAs(t, err, &formatErr)
			assert.NotEmpty(t, formatErr.Snippet)
		})
	}
}

func TestLooksLikeObjectLiteral(t *testing.T) {
	assert.True(t, looksLikeObjectLiteral("status: pending"))
	assert.False(t, looksLikeObjectLiteral(`{"status":"pending"}`))
	assert.False(t, looksLikeObjectLiteral(`["a","b"]`))
	assert.False(t, looksLikeObjectLiteral("plain message"))
}

func TestHTMLPreview(t *testing.T) {
	preview := htmlPreview([]byte("<html><body><h1>403   Forbidden</h1><p>nginx</p></body></html>"))
	assert.Equal(t, "403 Forbidden nginx", preview)

	huge := []byte("<div>")
	for i := 0; i < 100; i++ {
		huge = append(huge, []byte("padding words here ")...)
	}
	assert.LessOrEqual(t, len(htmlPreview(huge)), htmlPreviewLength)
}
