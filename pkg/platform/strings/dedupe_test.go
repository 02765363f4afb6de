package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "trims and drops empties",
			input:    []string{"  localhost:9092 ", "", "  "},
			expected: []string{"localhost:9092"},
		},
		{
			name:     "removes duplicates keeping first occurrence",
			input:    []string{"a", "b", "a", "c", "b"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "duplicate after trim",
			input:    []string{"broker:9092", "  broker:9092"},
			expected: []string{"broker:9092"},
		},
		{
			name:     "nil input",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}
