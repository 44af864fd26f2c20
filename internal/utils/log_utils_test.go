package utils

import (
	"strings"
	"testing"
)

func TestSanitizeLogString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "Normal string",
			input:    "Alice Smith",
			expected: "Alice Smith",
		},
		{
			name:     "String with format specifiers",
			input:    "Guest %s in %d",
			expected: "Guest %%s in %%d",
		},
		{
			name:     "String with newlines",
			input:    "First line\nSecond line\r\nThird line",
			expected: "First line Second line Third line",
		},
		{
			name:     "Long string truncation",
			input:    strings.Repeat("A", 300),
			expected: strings.Repeat("A", MaxLogStringLength) + "... (truncated)",
		},
		{
			name:     "String with control characters",
			input:    "Room\twith\x00control\x1Fcharacters",
			expected: "Room with control characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeLogString(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeLogString(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMaskGuestName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Alice", "A****"},
		{"Alice Smith", "A**** S****"},
		{"  Ø  ", "Ø"},
		{"", "<empty>"},
		{"Bob\nInjected", "B** I*******"},
	}

	for _, tt := range tests {
		if got := MaskGuestName(tt.input); got != tt.expected {
			t.Errorf("MaskGuestName(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
