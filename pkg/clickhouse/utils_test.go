package clickhouse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanNames(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "sorted and deduplicated ignoring case",
			input:    []string{"toDate", "count", "COUNT", "argMax"},
			expected: []string{"argMax", "count", "toDate"},
		},
		{
			name:     "operators and multi-word entries dropped",
			input:    []string{"plus", "+", "ORDER BY", "IF NOT EXISTS", "_CAST", " trim "},
			expected: []string{"_CAST", "plus", "trim"},
		},
		{
			name:     "empty",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, cleanNames(tt.input))
		})
	}
}
