package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_TableDriven(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Bare host gets https scheme",
			input:    "example.com",
			expected: "https://example.com",
		},
		{
			name:     "Bare host with path gets https scheme",
			input:    "golang.org/doc",
			expected: "https://golang.org/doc",
		},
		{
			name:     "http scheme is preserved",
			input:    "http://example.com",
			expected: "http://example.com",
		},
		{
			name:     "https scheme is preserved",
			input:    "https://example.com",
			expected: "https://example.com",
		},
		{
			name:     "Empty string gets the prefix",
			input:    "",
			expected: "https://",
		},
		{
			name:     "Unparseable input gets the prefix",
			input:    "http://[::1:bad",
			expected: "https://http://[::1:bad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"example.com",
		"http://example.com",
		"https://example.com/path?q=1",
		"golang.org",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "Normalize must be idempotent for %q", input)
	}
}

func TestNewBookmark(t *testing.T) {
	b := NewBookmark("golang", "https://golang.org")

	assert.Equal(t, "golang", b.ShortName)
	assert.Equal(t, "https://golang.org", b.LongURI)
	assert.False(t, b.CreatedAt.IsZero())
}
