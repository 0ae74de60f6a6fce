package sample

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
		expected  []float64
	}{
		{
			name:     "whitespace delimited",
			input:    "1 2 3.5 -4",
			expected: []float64{1, 2, 3.5, -4},
		},
		{
			name:     "commas and newlines",
			input:    "1, 2\n3",
			expected: []float64{1, 2, 3},
		},
		{
			name:     "invalid tokens skipped",
			input:    "1 abc 2 NaN 3",
			expected: []float64{1, 2, 3},
		},
		{
			name:      "empty input",
			input:     "   ",
			expectErr: true,
		},
		{
			name:      "no numeric tokens",
			input:     "foo bar baz",
			expectErr: true,
		},
		{
			name:      "over the size cap",
			input:     strings.Repeat("1 ", MaxSize+1),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)

			if tt.expectErr {
				if err == nil {
					t.Errorf("Expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d values, got %d", len(tt.expected), len(got))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Value %d: expected %v, got %v", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if _, err := Validate([]float64{}); err == nil {
		t.Error("Expected error for empty sample")
	}
	if _, err := Validate([]float64{1, 2, 3}); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	tooLong := make([]float64, MaxSize+1)
	if _, err := Validate(tooLong); err == nil {
		t.Error("Expected error for oversized sample")
	}
}
