package discovery

import (
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []string{
		"tests/test_cases/test_login.py",
		"tests/test_cases/test_contact_us.py",
		"tests/test_cases/test_dropdown.py",
		"tests/test_cases/test_popup_alerts.py",
	}

	cases := []struct {
		name     string
		pattern  string
		expected int
	}{
		{
			name:     "empty pattern returns all",
			pattern:  "",
			expected: 4,
		},
		{
			name:     "exact wildcard match",
			pattern:  "test_login*",
			expected: 1,
		},
		{
			name:     "surrounding wildcards",
			pattern:  "*contact*",
			expected: 1,
		},
		{
			name:     "suffix wildcard",
			pattern:  "*.py",
			expected: 4,
		},
		{
			name:     "plain substring without wildcards",
			pattern:  "popup",
			expected: 1,
		},
		{
			name:     "no matches",
			pattern:  "*checkout*",
			expected: 0,
		},
		{
			name:     "multiple wildcard parts",
			pattern:  "*test*alerts*",
			expected: 1,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tests, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("pattern %q: expected %d matches, got %d: %v", tt.pattern, tt.expected, len(result), result)
			}
		})
	}
}
