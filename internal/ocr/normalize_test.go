package ocr

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"crlf to lf", "a\r\nb\rc", "a\nb\nc"},
		{"tabs become double space", "Graving\t5 000,00", "Graving  5 000,00"},
		{"symbols stripped", "Byggmester® Bob™ AS", "Byggmester Bob AS"},
		{"blank lines collapse", "a\n\n\n\n\nb", "a\n\nb"},
		{"trailing spaces trimmed", "Faktura   \nKunde", "Faktura\nKunde"},
		{"l before digit is one", "Fakturanr: l234", "Fakturanr: 1234"},
		{"l after digit is one", "Fakturanr: 12l4", "Fakturanr: 1214"},
		{"O next to digit is zero", "Beløp: 1O0,00", "Beløp: 100,00"},
		{"I before digit run is one", "KID: I12", "KID: 112"},
		{"S between digits is five", "KID: 1S2", "KID: 152"},
		{"S next to one digit untouched", "Suite 4S", "Suite 4S"},
		{"comma thousand separator stripped", "Total: 1,234,567", "Total: 1234567"},
		{"dot thousand separator stripped", "Beløp: 1.500,00", "Beløp: 1500,00"},
		{"decimal comma untouched", "Beløp: 5 000,00", "Beløp: 5 000,00"},
		{"decimal dot untouched", "Total: 1500.99", "Total: 1500.99"},
		{"currency token spaced", "1500kr", "1500 kr"},
		{"nok token spaced", "1500NOK", "1500 NOK"},
		{"column spaces preserved", "Graving  5 000,00  6 250,00", "Graving  5 000,00  6 250,00"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q): got %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Byggmester Bob AS\r\nFakturanr: l234\n\n\nBeløp: 1.500,00kr",
		"Graving  5 000,00  6 250,00",
		"Total: 1,234,567.89",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
