package gdrive

import (
	"testing"
)

func TestEscapeQuery(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"007", "007"},
		{"O'Brien", `O\'Brien`},
		{`back\slash`, `back\\slash`},
	}

	for _, test := range tests {
		if got := escapeQuery(test.name); got != test.expected {
			t.Errorf("escapeQuery(%q) = %q, expected %q", test.name, got, test.expected)
		}
	}
}
