package validate

import "testing"

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value string
		valid bool
	}{
		{"bare eight digits", "22334455", "+47 22 33 44 55", true},
		{"already canonical", "+47 22 33 44 55", "+47 22 33 44 55", true},
		{"plus prefix compact", "+4722334455", "+47 22 33 44 55", true},
		{"zero zero prefix", "0047 22 33 44 55", "+47 22 33 44 55", true},
		{"hyphenated", "22-33-44-55", "+47 22 33 44 55", true},
		{"nine digit block", "412345678", "+47 412 34 56 78", true},
		{"too short", "12345", "12345", false},
		{"too long", "223344556677", "223344556677", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Phone(tt.input, "47")
			if got.Valid != tt.valid {
				t.Fatalf("Phone(%q).Valid: got %v, want %v (%s)", tt.input, got.Valid, tt.valid, got.Reason)
			}
			if got.Value != tt.value {
				t.Errorf("Phone(%q).Value: got %q, want %q", tt.input, got.Value, tt.value)
			}
		})
	}
}

func TestPhoneCountryCode(t *testing.T) {
	got := Phone("0046 22 33 44 55", "46")
	if !got.Valid || got.Value != "+46 22 33 44 55" {
		t.Errorf("swedish code: got %+v", got)
	}
	// an empty configured code falls back to Norway
	got = Phone("22334455", "")
	if !got.Valid || got.Value != "+47 22 33 44 55" {
		t.Errorf("fallback code: got %+v", got)
	}
}
