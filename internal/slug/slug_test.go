package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	testCases := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "simple title",
			title:    "Hello World!",
			expected: "hello-world",
		},
		{
			name:     "already a slug",
			title:    "hello-world",
			expected: "hello-world",
		},
		{
			name:     "mixed punctuation",
			title:    "Go: A Love/Hate Story?",
			expected: "go-a-lovehate-story",
		},
		{
			name:     "uppercase and digits",
			title:    "Top 10 Posts",
			expected: "top-10-posts",
		},
		{
			name:     "underscores survive",
			title:    "snake_case title",
			expected: "snake_case-title",
		},
		{
			name:     "empty title",
			title:    "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Derive(tc.title))
		})
	}
}

func TestDeriveIdempotent(t *testing.T) {
	once := Derive("Hello World!")
	assert.Equal(t, once, Derive(once))
}
