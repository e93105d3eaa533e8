package validators

import "testing"

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"0881234567", true},
		{"+359881234567", true},
		{"+359 88 123 4567", true},
		{"088-123-4567", true},
		{"(088) 123 4567", true},
		{"1234567", true},
		{"123456", false},      // too few digits
		{"088abc4567", false},  // letters
		{"088123456+7", false}, // plus not leading
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidPhone(tt.phone); got != tt.want {
			t.Errorf("IsValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Ivan", true},
		{"Iv", true},
		{"I", false},
		{"  I  ", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidName(tt.name); got != tt.want {
			t.Errorf("IsValidName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2026-09-01", true},
		{"2026-9-1", false},
		{"01-09-2026", false},
		{"2026/09/01", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidDate(tt.date); got != tt.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestIsValidTime(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"09:00", true},
		{"19:30", true},
		{"9:00", false},
		{"09.00", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidTime(tt.in); got != tt.want {
			t.Errorf("IsValidTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
