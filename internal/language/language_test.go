package language

import (
	"testing"
)

func TestToISO2(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// 2-letter codes pass through
		{"en", "en"},
		{"EN", "en"},
		{"es", "es"},
		// 3-letter codes convert
		{"eng", "en"},
		{"spa", "es"},
		{"fra", "fr"},
		{"fre", "fr"},
		{"zho", "zh"},
		{"chi", "zh"},
		{"eus", "eu"},
		{"baq", "eu"},
		{"vie", "vi"},
		// Word forms
		{"english", "en"},
		{"Chinese", "zh"},
		{"SPANISH", "es"},
		// Unknown 2-letter passes through
		{"xy", "xy"},
		// Unknown 3-letter returns empty
		{"xyz", ""},
		// Empty
		{"", ""},
		{" ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ToISO2(tt.input)
			if result != tt.expected {
				t.Errorf("ToISO2(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "English"},
		{"eng", "English"},
		{"zh", "Chinese"},
		{"chi", "Chinese"},
		{"zho", "Chinese"},
		{"eu", "Basque"},
		{"ca", "Catalan"},
		{"", "Unknown"},
		{"xyz", "XYZ"},
		{"chinese", "Chinese"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := DisplayName(tt.input)
			if result != tt.expected {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNeedsSegmentation(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"zh", true},
		{"ZH", true},
		{"zho", true},
		{"chi", true},
		{"chinese", true},
		{"en", false},
		{"es", false},
		{"ja", false},
		{"", false},
		{"xx", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NeedsSegmentation(tt.input)
			if result != tt.expected {
				t.Errorf("NeedsSegmentation(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
