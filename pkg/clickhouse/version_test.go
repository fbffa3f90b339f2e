package clickhouse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *VersionInfo
		wantErr  bool
	}{
		{
			name:     "standard version format",
			input:    "25.7.1.3997",
			expected: &VersionInfo{Major: 25, Minor: 7, Patch: 1, Raw: "25.7.1.3997"},
		},
		{
			name:     "version with official build",
			input:    "21.10.3.9 (official build)",
			expected: &VersionInfo{Major: 21, Minor: 10, Patch: 3, Raw: "21.10.3.9 (official build)"},
		},
		{
			name:     "version with testing suffix",
			input:    "22.8.2.11-testing",
			expected: &VersionInfo{Major: 22, Minor: 8, Patch: 2, Raw: "22.8.2.11-testing"},
		},
		{
			name:     "minimal version format",
			input:    "20.3",
			expected: &VersionInfo{Major: 20, Minor: 3, Raw: "20.3"},
		},
		{
			name:    "invalid version format",
			input:   "invalid",
			wantErr: true,
		},
		{
			name:    "empty version",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseVersion(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestVersionInfo(t *testing.T) {
	v := VersionInfo{Major: 24, Minor: 8, Patch: 3, Raw: "24.8.3.59"}

	require.Equal(t, "24.8.3", v.String())
	require.True(t, v.IsAtLeast(24, 8))
	require.True(t, v.IsAtLeast(23, 12))
	require.False(t, v.IsAtLeast(24, 9))
	require.False(t, v.IsAtLeast(25, 1))
}
